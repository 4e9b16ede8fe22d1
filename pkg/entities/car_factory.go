package entities

import (
	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/physics"
	"github.com/decker502/lotofcars/pkg/utils"
)

// CarSpec 生成一辆车所需的参数
type CarSpec struct {
	Tier          string     // 生成档位名称
	Start         utils.Vec2 // 入口
	End           utils.Vec2 // 出口
	Offset1       float64    // 第一个控制点的垂直偏移
	Offset2       float64    // 第二个控制点的垂直偏移
	Duration      float64    // 通过时间（秒，> 0）
	LifetimeSlack float64    // 生命周期 = Duration + LifetimeSlack
	Width         float64    // 碰撞盒宽度
	Height        float64    // 碰撞盒高度
}

// NewCarEntity 创建一个车辆实体
// 参数:
//   - em: EntityManager 实例
//   - space: 物理空间（不能为 nil，车辆必须有碰撞体）
//   - spec: 车辆参数
//
// 返回: 创建的实体ID
func NewCarEntity(em *ecs.EntityManager, space *physics.Space, spec CarSpec) ecs.EntityID {
	if space == nil {
		panic("entities: NewCarEntity requires a physics space")
	}

	// 先构造轨迹，duration 非法时在创建实体之前 panic
	trajectory := components.NewTrajectoryComponent(spec.Start, spec.End, spec.Offset1, spec.Offset2, spec.Duration)

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.CarComponent{Tier: spec.Tier})
	ecs.AddComponent(em, id, trajectory)

	// 生命周期略长于一次完整通过，走完曲线后很快被回收
	ecs.AddComponent(em, id, &components.LifetimeComponent{
		Remaining: spec.Duration + spec.LifetimeSlack,
	})

	// 初始位置与朝向取曲线起点
	start := trajectory.Position()
	rotation := trajectory.Heading().Angle()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X:        start.X,
		Y:        start.Y,
		Rotation: rotation,
	})
	ecs.AddComponent(em, id, &components.HeadingFrameComponent{
		Frame: utils.HeadingFrameIndex(utils.RadiansToDegrees(rotation)),
	})

	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  spec.Width,
		Height: spec.Height,
	})

	collider := space.AddBox(id, physics.KindCar, spec.Width, spec.Height)
	collider.SetPose(start.X, start.Y, rotation)
	ecs.AddComponent(em, id, &components.ColliderComponent{Handle: collider})

	return id
}
