package systems

import (
	"testing"

	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
)

// TestLifetimeSystem_Boundary 剩余时间恰好耗尽的那一帧销毁
func TestLifetimeSystem_Boundary(t *testing.T) {
	tests := []struct {
		name        string
		remaining   float64
		dt          float64
		wantDestroy bool
	}{
		{"恰好耗尽", 0.1, 0.1, true},
		{"超出", 0.1, 0.25, true},
		{"未耗尽", 0.1, 0.05, false},
		{"已为零", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := em.CreateEntity()
			ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: tt.remaining})

			ls := NewLifetimeSystem(em)
			ls.Update(tt.dt)

			if got := em.IsMarkedForDestroy(id); got != tt.wantDestroy {
				t.Errorf("marked = %v, want %v", got, tt.wantDestroy)
			}

			em.RemoveMarkedEntities()
			if exists := em.EntityExists(id); exists == tt.wantDestroy {
				t.Errorf("exists after cleanup = %v, want %v", exists, !tt.wantDestroy)
			}
		})
	}
}

// TestLifetimeSystem_Countdown 剩余时间逐帧递减
func TestLifetimeSystem_Countdown(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	lifetime := &components.LifetimeComponent{Remaining: 1.0}
	ecs.AddComponent(em, id, lifetime)

	ls := NewLifetimeSystem(em)
	ls.Update(0.25)
	ls.Update(0.25)

	if lifetime.Remaining != 0.5 {
		t.Errorf("Remaining = %v, want 0.5", lifetime.Remaining)
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("entity should still be alive")
	}

	ls.Update(0.5)
	if !em.IsMarkedForDestroy(id) {
		t.Error("entity should be destroyed once remaining reaches 0")
	}
	if ls.ExpiredCount() != 1 {
		t.Errorf("ExpiredCount = %d, want 1", ls.ExpiredCount())
	}
}

// TestLifetimeSystem_SkipsAlreadyDestroyed 本帧已被销毁的实体不重复计数
func TestLifetimeSystem_SkipsAlreadyDestroyed(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{Remaining: 0.01})
	em.DestroyEntity(id)

	ls := NewLifetimeSystem(em)
	ls.Update(1)

	if ls.ExpiredCount() != 0 {
		t.Errorf("ExpiredCount = %d, want 0", ls.ExpiredCount())
	}
}
