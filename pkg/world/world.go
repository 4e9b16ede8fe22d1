// Package world 组装车辆/玩家的 ECS 世界，并按固定顺序推进每一帧
//
// 帧内顺序：
//
//	生成 → 玩家移动 → 轨迹推进 → 物理同步与步进 → 碰撞处理 → 生命周期 → 清理
//
// 本包不依赖任何渲染后端，桌面端（ebiten）与终端（tcell）共用。
package world

import (
	"log"
	"math/rand"

	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/config"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/entities"
	"github.com/decker502/lotofcars/pkg/physics"
	"github.com/decker502/lotofcars/pkg/systems"
)

// Stats 世界运行统计快照
type Stats struct {
	Ticks     int
	Cars      int
	Spawned   int
	Skipped   int
	Expired   int
	CarCar    int
	CarPlayer int
	Resets    int
}

// World 持有实体管理器、物理空间与全部系统
type World struct {
	cfg *config.GameConfig

	entityManager *ecs.EntityManager
	space         *physics.Space

	cameraSystem     *systems.CameraSystem
	spawnSystem      *systems.SpawnSystem
	playerMovement   *systems.PlayerMovementSystem
	trajectorySystem *systems.TrajectorySystem
	physicsSystem    *systems.PhysicsSystem
	collisionSystem  *systems.CollisionSystem
	lifetimeSystem   *systems.LifetimeSystem

	player ecs.EntityID
	ticks  int
}

// New 根据已验证的配置创建世界
// 镜头以原点为中心、大小等于窗口；玩家出生在原点。
// rng 为 nil 时使用固定种子 1。
func New(cfg *config.GameConfig, rng *rand.Rand) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	em := ecs.NewEntityManager()
	space := physics.NewSpace()

	w := &World{
		cfg:           cfg,
		entityManager: em,
		space:         space,
	}

	w.cameraSystem = systems.NewCameraSystem(em)
	w.cameraSystem.AttachCamera(0, 0, float64(cfg.Window.Width), float64(cfg.Window.Height))

	// 物理系统必须先于任何碰撞体实体的销毁注册移除回调
	w.physicsSystem = systems.NewPhysicsSystem(em, space)
	w.spawnSystem = systems.NewSpawnSystem(em, space, w.cameraSystem, cfg.Spawn, rng)
	w.playerMovement = systems.NewPlayerMovementSystem(em, nil, cfg.Player.Acceleration, cfg.Player.Decay)
	w.trajectorySystem = systems.NewTrajectorySystem(em)
	w.collisionSystem = systems.NewCollisionSystem(em, space, cfg.Collision.CarPlayerContact)
	w.lifetimeSystem = systems.NewLifetimeSystem(em)

	w.player = entities.NewPlayerEntity(em, space, cfg.Player.Footprint.Width, cfg.Player.Footprint.Height)

	log.Printf("[World] Created: window=%dx%d, tiers=%d, player=%d",
		cfg.Window.Width, cfg.Window.Height, len(cfg.Spawn.Tiers), w.player)
	return w
}

// Update 推进一帧
func (w *World) Update(deltaTime float64) {
	w.spawnSystem.Update(deltaTime)
	w.playerMovement.Update(deltaTime)
	w.trajectorySystem.Update(deltaTime)
	w.physicsSystem.Update(deltaTime)
	w.collisionSystem.Update(deltaTime)
	w.lifetimeSystem.Update(deltaTime)

	// 清理本帧标记删除的实体（同时释放其碰撞体）
	w.entityManager.RemoveMarkedEntities()
	w.ticks++
}

// SetIntentSource 设置玩家移动输入来源
func (w *World) SetIntentSource(intent systems.IntentSource) {
	w.playerMovement.SetIntentSource(intent)
}

// TriggerSpawn 立即生成一辆车（调试用）
func (w *World) TriggerSpawn() (ecs.EntityID, bool) {
	return w.spawnSystem.TriggerSpawn()
}

// SpawnCar 按给定参数直接生成一辆车
func (w *World) SpawnCar(spec entities.CarSpec) ecs.EntityID {
	return entities.NewCarEntity(w.entityManager, w.space, spec)
}

// Resize 可见区域大小变化（窗口缩放）
func (w *World) Resize(width, height float64) {
	w.cameraSystem.Resize(width, height)
}

// Viewport 当前可见区域
func (w *World) Viewport() (systems.Viewport, bool) {
	return w.cameraSystem.Viewport()
}

// EntityManager 返回实体管理器（渲染层只读访问）
func (w *World) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// Space 返回物理空间
func (w *World) Space() *physics.Space {
	return w.space
}

// Spawner 返回车辆生成系统
func (w *World) Spawner() *systems.SpawnSystem {
	return w.spawnSystem
}

// Player 返回玩家实体ID
func (w *World) Player() ecs.EntityID {
	return w.player
}

// Config 返回世界使用的配置
func (w *World) Config() *config.GameConfig {
	return w.cfg
}

// Cars 返回当前存活车辆（按ID升序）
func (w *World) Cars() []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.CarComponent, *components.PositionComponent](w.entityManager)
}

// Stats 返回统计快照
func (w *World) Stats() Stats {
	collision := w.collisionSystem.Stats()
	stats := Stats{
		Ticks:     w.ticks,
		Cars:      len(w.Cars()),
		Spawned:   w.spawnSystem.SpawnedCount(),
		Skipped:   w.spawnSystem.SkippedCount(),
		Expired:   w.lifetimeSystem.ExpiredCount(),
		CarCar:    collision.CarCar,
		CarPlayer: collision.CarPlayer,
	}
	if player, ok := ecs.GetComponent[*components.PlayerComponent](w.entityManager, w.player); ok {
		stats.Resets = player.Resets
	}
	return stats
}
