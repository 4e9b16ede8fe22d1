package config

import (
	"fmt"
)

// EdgeMode 入口/出口坐标的采样方式
type EdgeMode string

const (
	// EdgeModeSymmetric 入口和出口都在可见范围 [min, max] 内采样
	EdgeModeSymmetric EdgeMode = "symmetric"
	// EdgeModeLegacy 出口范围额外延伸一个可见尺寸 [min, max+size]（复现旧版效果）
	EdgeModeLegacy EdgeMode = "legacy"
)

// SpawnRulesConfig 车辆生成规则配置
type SpawnRulesConfig struct {
	EdgeMode      EdgeMode          `yaml:"edgeMode"`      // 入口/出口采样方式
	Margin        float64           `yaml:"margin"`        // 入口/出口到可见区域边缘的距离
	LifetimeSlack float64           `yaml:"lifetimeSlack"` // 生命周期 = duration + slack
	Tiers         []SpawnTierConfig `yaml:"tiers"`         // 生成档位
}

// SpawnTierConfig 单个生成档位（速度档）
type SpawnTierConfig struct {
	Name        string          `yaml:"name"`
	Interval    float64         `yaml:"interval"`    // 生成间隔（秒）
	DurationMin float64         `yaml:"durationMin"` // 通过时间下限（秒）
	DurationMax float64         `yaml:"durationMax"` // 通过时间上限（秒）
	OffsetMin   float64         `yaml:"offsetMin"`   // 曲线控制点偏移下限
	OffsetMax   float64         `yaml:"offsetMax"`   // 曲线控制点偏移上限
	Footprint   FootprintConfig `yaml:"footprint"`   // 碰撞盒尺寸
}

// FootprintConfig 碰撞盒尺寸
type FootprintConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// validateSpawnRules 验证配置的有效性
func validateSpawnRules(config *SpawnRulesConfig) error {
	switch config.EdgeMode {
	case EdgeModeSymmetric, EdgeModeLegacy:
	default:
		return fmt.Errorf("edgeMode must be %q or %q, got %q", EdgeModeSymmetric, EdgeModeLegacy, config.EdgeMode)
	}

	if config.Margin < 0 {
		return fmt.Errorf("margin must be >= 0, got %v", config.Margin)
	}
	if config.LifetimeSlack < 0 {
		return fmt.Errorf("lifetimeSlack must be >= 0, got %v", config.LifetimeSlack)
	}

	if len(config.Tiers) == 0 {
		return fmt.Errorf("tiers cannot be empty")
	}

	seen := make(map[string]bool, len(config.Tiers))
	for i, tier := range config.Tiers {
		if tier.Name == "" {
			return fmt.Errorf("tier %d: name cannot be empty", i)
		}
		if seen[tier.Name] {
			return fmt.Errorf("tier %q: duplicate name", tier.Name)
		}
		seen[tier.Name] = true

		if tier.Interval <= 0 {
			return fmt.Errorf("tier %q: interval must be > 0, got %v", tier.Name, tier.Interval)
		}
		if tier.DurationMin <= 0 {
			return fmt.Errorf("tier %q: durationMin must be > 0, got %v", tier.Name, tier.DurationMin)
		}
		if tier.DurationMax < tier.DurationMin {
			return fmt.Errorf("tier %q: durationMax (%v) must be >= durationMin (%v)", tier.Name, tier.DurationMax, tier.DurationMin)
		}
		if tier.OffsetMax < tier.OffsetMin {
			return fmt.Errorf("tier %q: offsetMax (%v) must be >= offsetMin (%v)", tier.Name, tier.OffsetMax, tier.OffsetMin)
		}
		if err := validateFootprint(tier.Footprint); err != nil {
			return fmt.Errorf("tier %q: %w", tier.Name, err)
		}
	}

	return nil
}

func validateFootprint(f FootprintConfig) error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("footprint must be positive, got %vx%v", f.Width, f.Height)
	}
	return nil
}
