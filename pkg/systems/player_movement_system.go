package systems

import (
	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/utils"
)

// IntentSource 玩家移动意图（按住方向键的语义，每帧读取）
type IntentSource interface {
	MoveIntent() utils.Vec2
}

// IntentFunc 函数适配器
type IntentFunc func() utils.Vec2

// MoveIntent 实现 IntentSource
func (f IntentFunc) MoveIntent() utils.Vec2 {
	return f()
}

// PlayerMovementSystem 把输入意图累加为速度并积分位置
//
//	velocity += intent * acceleration * dt   （意图非零时）
//	velocity *= decay                         （每帧）
//	position += velocity * dt
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	intent        IntentSource
	acceleration  float64
	decay         float64
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, intent IntentSource, acceleration, decay float64) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		intent:        intent,
		acceleration:  acceleration,
		decay:         decay,
	}
}

// SetIntentSource 替换输入来源
func (s *PlayerMovementSystem) SetIntentSource(intent IntentSource) {
	s.intent = intent
}

// Update 更新所有玩家实体
func (s *PlayerMovementSystem) Update(deltaTime float64) {
	var direction utils.Vec2
	if s.intent != nil {
		direction = s.intent.MoveIntent()
	}

	players := ecs.GetEntitiesWith3[*components.PlayerComponent, *components.VelocityComponent, *components.PositionComponent](s.entityManager)
	for _, id := range players {
		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if !ok {
			continue
		}

		if direction.LengthSquared() != 0 {
			vel.VX += direction.X * s.acceleration * deltaTime
			vel.VY += direction.Y * s.acceleration * deltaTime
		}
		vel.VX *= s.decay
		vel.VY *= s.decay

		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime
	}
}
