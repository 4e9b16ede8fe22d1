package systems

import (
	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/physics"
)

// PhysicsSystem 把实体位姿写入物理空间并推进一步
//
// 必须在轨迹/玩家移动之后、碰撞处理之前运行，
// 这样本帧的接触事件反映的是本帧写入的位置。
type PhysicsSystem struct {
	em    *ecs.EntityManager
	space *physics.Space
}

// NewPhysicsSystem 创建物理系统，并注册实体移除回调以释放碰撞体
//
// 参数:
//   - em: 实体管理器，用于查询位置与碰撞体组件
//   - space: 物理空间
//
// 返回:
//   - *PhysicsSystem: 物理系统实例
func NewPhysicsSystem(em *ecs.EntityManager, space *physics.Space) *PhysicsSystem {
	ps := &PhysicsSystem{
		em:    em,
		space: space,
	}
	em.OnEntityRemoved(ps.releaseCollider)
	return ps
}

// Update 同步所有碰撞体位姿后推进物理空间
func (ps *PhysicsSystem) Update(deltaTime float64) {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.ColliderComponent](ps.em)
	for _, id := range ids {
		pos, ok := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		if !ok {
			continue
		}
		collider, ok := ecs.GetComponent[*components.ColliderComponent](ps.em, id)
		if !ok || collider.Handle == nil {
			continue
		}
		collider.Handle.SetPose(pos.X, pos.Y, pos.Rotation)
	}

	ps.space.Step(deltaTime)
}

// releaseCollider 实体移除时释放其碰撞体
func (ps *PhysicsSystem) releaseCollider(id ecs.EntityID) {
	ps.space.Remove(id)
}

// Space 返回物理空间（接触事件来源）
func (ps *PhysicsSystem) Space() *physics.Space {
	return ps.space
}
