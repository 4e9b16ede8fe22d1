package entities

import (
	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/physics"
)

// NewPlayerEntity 在世界原点创建玩家实体
// 参数:
//   - em: EntityManager 实例
//   - space: 物理空间（不能为 nil）
//   - width, height: 碰撞盒尺寸
//
// 返回: 创建的实体ID
func NewPlayerEntity(em *ecs.EntityManager, space *physics.Space, width, height float64) ecs.EntityID {
	if space == nil {
		panic("entities: NewPlayerEntity requires a physics space")
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PlayerComponent{})
	ecs.AddComponent(em, id, &components.PositionComponent{})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  width,
		Height: height,
	})

	collider := space.AddBox(id, physics.KindPlayer, width, height)
	collider.SetPose(0, 0, 0)
	ecs.AddComponent(em, id, &components.ColliderComponent{Handle: collider})

	return id
}
