package systems

import (
	"math"
	"testing"

	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/utils"
)

func newTestPlayer(em *ecs.EntityManager) (*components.PositionComponent, *components.VelocityComponent) {
	id := em.CreateEntity()
	pos := &components.PositionComponent{}
	vel := &components.VelocityComponent{}
	ecs.AddComponent(em, id, &components.PlayerComponent{})
	ecs.AddComponent(em, id, pos)
	ecs.AddComponent(em, id, vel)
	return pos, vel
}

// TestPlayerMovementSystem_Accelerate 按住方向键时加速
func TestPlayerMovementSystem_Accelerate(t *testing.T) {
	em := ecs.NewEntityManager()
	pos, vel := newTestPlayer(em)

	intent := IntentFunc(func() utils.Vec2 { return utils.Vec2{X: 1} })
	pm := NewPlayerMovementSystem(em, intent, 1024, 0.8)
	pm.Update(0.1)

	// 102.4 * 0.8
	if math.Abs(vel.VX-81.92) > 1e-9 || vel.VY != 0 {
		t.Errorf("velocity = (%v, %v), want (81.92, 0)", vel.VX, vel.VY)
	}
	if math.Abs(pos.X-8.192) > 1e-9 {
		t.Errorf("X = %v, want 8.192", pos.X)
	}
}

// TestPlayerMovementSystem_Decay 松开按键后速度按帧衰减
func TestPlayerMovementSystem_Decay(t *testing.T) {
	em := ecs.NewEntityManager()
	pos, vel := newTestPlayer(em)
	vel.VX = 100
	vel.VY = -50

	pm := NewPlayerMovementSystem(em, nil, 1024, 0.5)
	pm.Update(0.1)

	if vel.VX != 50 || vel.VY != -25 {
		t.Errorf("velocity = (%v, %v), want (50, -25)", vel.VX, vel.VY)
	}
	if math.Abs(pos.X-5) > 1e-9 || math.Abs(pos.Y+2.5) > 1e-9 {
		t.Errorf("position = (%v, %v), want (5, -2.5)", pos.X, pos.Y)
	}

	prev := math.Hypot(vel.VX, vel.VY)
	for i := 0; i < 20; i++ {
		pm.Update(1.0 / 60)
		speed := math.Hypot(vel.VX, vel.VY)
		if speed >= prev {
			t.Fatalf("speed should decrease without input: %v -> %v", prev, speed)
		}
		prev = speed
	}
}

// TestPlayerMovementSystem_SwapIntent 替换输入来源
func TestPlayerMovementSystem_SwapIntent(t *testing.T) {
	em := ecs.NewEntityManager()
	_, vel := newTestPlayer(em)

	pm := NewPlayerMovementSystem(em, nil, 1000, 1)
	pm.SetIntentSource(IntentFunc(func() utils.Vec2 { return utils.Vec2{Y: -1} }))
	pm.Update(0.5)

	if vel.VX != 0 || vel.VY != -500 {
		t.Errorf("velocity = (%v, %v), want (0, -500)", vel.VX, vel.VY)
	}
}

// TestPlayerMovementSystem_CarsUntouched 只移动玩家实体
func TestPlayerMovementSystem_CarsUntouched(t *testing.T) {
	em := ecs.NewEntityManager()
	car := em.CreateEntity()
	carPos := &components.PositionComponent{X: 7, Y: 7}
	ecs.AddComponent(em, car, &components.CarComponent{})
	ecs.AddComponent(em, car, carPos)
	ecs.AddComponent(em, car, &components.VelocityComponent{VX: 10})

	pm := NewPlayerMovementSystem(em, IntentFunc(func() utils.Vec2 { return utils.Vec2{X: 1} }), 1024, 0.8)
	pm.Update(1)

	if carPos.X != 7 || carPos.Y != 7 {
		t.Errorf("car moved to (%v, %v)", carPos.X, carPos.Y)
	}
}
