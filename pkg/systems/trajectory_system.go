package systems

import (
	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/utils"
)

// TrajectorySystem 沿曲线推进所有车辆，并写回位置与朝向
type TrajectorySystem struct {
	entityManager *ecs.EntityManager
}

// NewTrajectorySystem 创建轨迹系统
func NewTrajectorySystem(em *ecs.EntityManager) *TrajectorySystem {
	return &TrajectorySystem{entityManager: em}
}

// Update 推进每条轨迹的进度 T，写入位置；切线非零时更新朝向与精灵帧
func (s *TrajectorySystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.TrajectoryComponent, *components.PositionComponent](s.entityManager)

	for _, id := range entities {
		trajectory, ok := ecs.GetComponent[*components.TrajectoryComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		trajectory.Advance(deltaTime)

		p := trajectory.Position()
		pos.X = p.X
		pos.Y = p.Y

		heading := trajectory.Heading()
		if heading.IsZero() {
			continue
		}
		pos.Rotation = heading.Angle()

		if frame, ok := ecs.GetComponent[*components.HeadingFrameComponent](s.entityManager, id); ok {
			frame.Frame = utils.HeadingFrameIndex(utils.RadiansToDegrees(pos.Rotation))
		}
	}
}
