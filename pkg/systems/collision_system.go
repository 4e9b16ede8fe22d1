package systems

import (
	"log"

	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/config"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/physics"
)

// CollisionEventSource 物理引擎的"开始接触"事件流
type CollisionEventSource interface {
	DrainEvents() []physics.CollisionEvent
}

// CollisionStats 碰撞处理统计
type CollisionStats struct {
	CarCar    int // 车-车（双方销毁）
	CarPlayer int // 车-玩家（玩家回到原点）
	Ignored   int // 其他组合或已移除的实体
}

type colliderRole int

const (
	roleNone colliderRole = iota
	roleCar
	rolePlayer
)

// CollisionSystem 按领域规则处理接触事件
//
// 无状态、事件驱动：同一帧内的事件按到达顺序逐个处理。
// 重复销毁同一实体是空操作。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	source        CollisionEventSource
	contact       config.CarPlayerContact
	stats         CollisionStats
}

// NewCollisionSystem 创建碰撞处理系统
// 参数:
//   - em: EntityManager 实例
//   - source: 接触事件来源（物理空间）
//   - contact: 车辆撞到玩家时的处理方式
func NewCollisionSystem(em *ecs.EntityManager, source CollisionEventSource, contact config.CarPlayerContact) *CollisionSystem {
	log.Printf("[CollisionSystem] Car-player contact policy: %s", contact)
	return &CollisionSystem{
		entityManager: em,
		source:        source,
		contact:       contact,
	}
}

// Update 取出本帧的接触事件并处理
func (s *CollisionSystem) Update(deltaTime float64) {
	if s.source == nil {
		return
	}
	s.Resolve(s.source.DrainEvents())
}

// Resolve 按到达顺序处理一批接触事件
func (s *CollisionSystem) Resolve(events []physics.CollisionEvent) {
	for _, event := range events {
		s.resolveOne(event)
	}
}

func (s *CollisionSystem) resolveOne(event physics.CollisionEvent) {
	roleA := s.roleOf(event.A)
	roleB := s.roleOf(event.B)

	switch {
	case roleA == roleCar && roleB == roleCar:
		if event.A == event.B {
			s.stats.Ignored++
			return
		}
		// 车-车：双方同时销毁
		s.entityManager.DestroyEntity(event.A)
		s.entityManager.DestroyEntity(event.B)
		s.stats.CarCar++
		log.Printf("[CollisionSystem] Car %d hit car %d, both destroyed", event.A, event.B)

	case roleA == roleCar && roleB == rolePlayer:
		s.hitPlayer(event.B, event.A)

	case roleA == rolePlayer && roleB == roleCar:
		s.hitPlayer(event.A, event.B)

	default:
		s.stats.Ignored++
	}
}

// hitPlayer 玩家被车辆撞到：回到世界原点
func (s *CollisionSystem) hitPlayer(playerID, carID ecs.EntityID) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID); ok {
		pos.X = 0
		pos.Y = 0
	}
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, playerID); ok {
		vel.VX = 0
		vel.VY = 0
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID); ok {
		player.Resets++
	}

	if s.contact == config.ContactResetAndDestroy {
		s.entityManager.DestroyEntity(carID)
	}

	s.stats.CarPlayer++
	log.Printf("[CollisionSystem] Car %d hit player %d, player reset to origin", carID, playerID)
}

// roleOf 判断碰撞体所属实体的角色；已从注册表移除的实体返回 roleNone
func (s *CollisionSystem) roleOf(id ecs.EntityID) colliderRole {
	if !s.entityManager.EntityExists(id) {
		return roleNone
	}
	if ecs.HasComponent[*components.CarComponent](s.entityManager, id) {
		return roleCar
	}
	if ecs.HasComponent[*components.PlayerComponent](s.entityManager, id) {
		return rolePlayer
	}
	return roleNone
}

// Stats 返回累计统计
func (s *CollisionSystem) Stats() CollisionStats {
	return s.stats
}
