package systems

import (
	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
)

// LifetimeSystem 管理实体的生命周期
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	expired       int // 累计过期回收的实体数
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 更新所有拥有生命周期组件的实体
func (s *LifetimeSystem) Update(deltaTime float64) {
	// 查询所有拥有 LifetimeComponent 的实体
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		// 本帧已被碰撞销毁的实体不重复计数
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}

		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok {
			continue
		}

		// 扣减剩余时间
		lifetime.Remaining -= deltaTime

		// 如果已过期,标记实体待删除
		if lifetime.Expired() {
			s.entityManager.DestroyEntity(id)
			s.expired++
		}
	}
}

// ExpiredCount 累计过期回收的实体数
func (s *LifetimeSystem) ExpiredCount() int {
	return s.expired
}
