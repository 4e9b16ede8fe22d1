package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/config"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/entities"
	"github.com/decker502/lotofcars/pkg/physics"
	"github.com/decker502/lotofcars/pkg/utils"
)

// SpawnAxis 车辆穿越画面的方向
type SpawnAxis int

const (
	// AxisHorizontal 从左右边缘进出
	AxisHorizontal SpawnAxis = iota
	// AxisVertical 从上下边缘进出
	AxisVertical
)

// spawnTier 生成档位及其计时器实体
type spawnTier struct {
	config  config.SpawnTierConfig
	spawner ecs.EntityID // 持有 TimerComponent 的生成器实体
}

// SpawnSystem 按固定间隔在可见区域边缘生成车辆
//
// 每个档位独立计时；没有镜头时跳过本周期，不报错。
type SpawnSystem struct {
	entityManager *ecs.EntityManager
	space         *physics.Space
	viewport      ViewportProvider
	rng           *rand.Rand
	rules         config.SpawnRulesConfig
	tiers         []spawnTier
	enabled       bool
	spawned       int // 累计生成数量
	skipped       int // 因没有镜头而跳过的周期数
}

// NewSpawnSystem 创建车辆生成系统
// 参数:
//   - em: EntityManager 实例
//   - space: 物理空间（车辆碰撞体）
//   - viewport: 可见区域来源
//   - rules: 生成规则（已验证）
//   - rng: 随机源（可设种子，保证测试可复现）
func NewSpawnSystem(em *ecs.EntityManager, space *physics.Space, viewport ViewportProvider, rules config.SpawnRulesConfig, rng *rand.Rand) *SpawnSystem {
	s := &SpawnSystem{
		entityManager: em,
		space:         space,
		viewport:      viewport,
		rng:           rng,
		rules:         rules,
		tiers:         make([]spawnTier, 0, len(rules.Tiers)),
		enabled:       true,
	}

	for _, tierConfig := range rules.Tiers {
		spawner := em.CreateEntity()
		ecs.AddComponent(em, spawner, &components.TimerComponent{
			Name:       "spawn_" + tierConfig.Name,
			TargetTime: tierConfig.Interval,
		})
		s.tiers = append(s.tiers, spawnTier{config: tierConfig, spawner: spawner})
		log.Printf("[SpawnSystem] Tier %q: interval=%.2fs, duration=[%.1f, %.1f], footprint=%.0fx%.0f",
			tierConfig.Name, tierConfig.Interval, tierConfig.DurationMin, tierConfig.DurationMax,
			tierConfig.Footprint.Width, tierConfig.Footprint.Height)
	}

	return s
}

// Update 累加各档位计时器，到期时生成一辆车
func (s *SpawnSystem) Update(deltaTime float64) {
	if !s.enabled {
		return
	}

	for _, tier := range s.tiers {
		timer, ok := ecs.GetComponent[*components.TimerComponent](s.entityManager, tier.spawner)
		if !ok {
			continue
		}
		if timer.Tick(deltaTime) {
			timer.Reset()
			s.spawn(tier.config)
		}
	}
}

// TriggerSpawn 立即按第一个档位生成一辆车（调试按键）
func (s *SpawnSystem) TriggerSpawn() (ecs.EntityID, bool) {
	if len(s.tiers) == 0 {
		return ecs.InvalidEntity, false
	}
	return s.spawn(s.tiers[0].config)
}

// SpawnTier 立即按指定档位生成一辆车
func (s *SpawnSystem) SpawnTier(name string) (ecs.EntityID, bool) {
	for _, tier := range s.tiers {
		if tier.config.Name == name {
			return s.spawn(tier.config)
		}
	}
	log.Printf("[SpawnSystem] WARNING: unknown tier %q", name)
	return ecs.InvalidEntity, false
}

// spawn 查询可见区域并生成车辆；没有镜头时跳过
func (s *SpawnSystem) spawn(tier config.SpawnTierConfig) (ecs.EntityID, bool) {
	vp, ok := s.viewport.Viewport()
	if !ok {
		s.skipped++
		log.Printf("[SpawnSystem] No camera available, skipping spawn cycle for tier %q", tier.Name)
		return ecs.InvalidEntity, false
	}

	spec := s.PlanCar(tier, vp)
	id := entities.NewCarEntity(s.entityManager, s.space, spec)
	s.spawned++
	log.Printf("[SpawnSystem] Spawned car %d (%s): (%.0f, %.0f) -> (%.0f, %.0f), duration=%.2fs",
		id, tier.Name, spec.Start.X, spec.Start.Y, spec.End.X, spec.End.Y, spec.Duration)
	return id, true
}

// PlanCar 在可见区域上采样一条边到边的路径
//
// 随机数消耗顺序固定：方向、入口、出口、是否交换、偏移1、偏移2、通过时间。
func (s *SpawnSystem) PlanCar(tier config.SpawnTierConfig, vp Viewport) entities.CarSpec {
	axis := SpawnAxis(s.rng.Intn(2))

	var start, end utils.Vec2
	margin := s.rules.Margin

	switch axis {
	case AxisHorizontal:
		entryLo, entryHi, exitLo, exitHi := s.edgeRanges(vp.Min.Y, vp.Max.Y, vp.Size.Y)
		start = utils.Vec2{X: vp.Min.X - margin, Y: s.uniform(entryLo, entryHi)}
		end = utils.Vec2{X: vp.Max.X + margin, Y: s.uniform(exitLo, exitHi)}
	default:
		entryLo, entryHi, exitLo, exitHi := s.edgeRanges(vp.Min.X, vp.Max.X, vp.Size.X)
		start = utils.Vec2{X: s.uniform(entryLo, entryHi), Y: vp.Min.Y - margin}
		end = utils.Vec2{X: s.uniform(exitLo, exitHi), Y: vp.Max.Y + margin}
	}

	// 随机交换入口与出口，改变行驶方向
	if s.rng.Intn(2) == 1 {
		start, end = end, start
	}

	return entities.CarSpec{
		Tier:          tier.Name,
		Start:         start,
		End:           end,
		Offset1:       s.uniform(tier.OffsetMin, tier.OffsetMax),
		Offset2:       s.uniform(tier.OffsetMin, tier.OffsetMax),
		Duration:      s.uniform(tier.DurationMin, tier.DurationMax),
		LifetimeSlack: s.rules.LifetimeSlack,
		Width:         tier.Footprint.Width,
		Height:        tier.Footprint.Height,
	}
}

// edgeRanges 计算入口/出口坐标的采样范围
func (s *SpawnSystem) edgeRanges(lo, hi, size float64) (entryLo, entryHi, exitLo, exitHi float64) {
	if s.rules.EdgeMode == config.EdgeModeLegacy {
		return lo, lo + size, lo, hi + size
	}
	return lo, hi, lo, hi
}

// uniform 在 [lo, hi) 上均匀采样；lo == hi 时返回 lo
func (s *SpawnSystem) uniform(lo, hi float64) float64 {
	return utils.Lerp(lo, hi, s.rng.Float64())
}

// Enable 启用自动生成
func (s *SpawnSystem) Enable() {
	s.enabled = true
	log.Printf("[SpawnSystem] Auto spawn ENABLED")
}

// Disable 禁用自动生成（手动 TriggerSpawn 仍可用）
func (s *SpawnSystem) Disable() {
	s.enabled = false
	log.Printf("[SpawnSystem] Auto spawn DISABLED")
}

// SpawnedCount 累计生成的车辆数
func (s *SpawnSystem) SpawnedCount() int {
	return s.spawned
}

// SkippedCount 因没有镜头而跳过的周期数
func (s *SpawnSystem) SkippedCount() int {
	return s.skipped
}
