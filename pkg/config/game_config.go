package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CarPlayerContact 车辆与玩家接触时的处理方式
type CarPlayerContact string

const (
	// ContactReset 只把玩家送回原点，车辆继续行驶
	ContactReset CarPlayerContact = "reset"
	// ContactResetAndDestroy 玩家回到原点，同时销毁车辆
	ContactResetAndDestroy CarPlayerContact = "reset_and_destroy"
)

// GameConfig 游戏模拟参数
type GameConfig struct {
	Window    WindowConfig     `yaml:"window"`
	Spawn     SpawnRulesConfig `yaml:"spawn"`
	Player    PlayerConfig     `yaml:"player"`
	Collision CollisionConfig  `yaml:"collision"`
}

// WindowConfig 窗口与默认可见区域
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PlayerConfig 玩家移动参数
type PlayerConfig struct {
	Acceleration float64         `yaml:"acceleration"` // 输入加速度（像素/秒²）
	Decay        float64         `yaml:"decay"`        // 每帧速度衰减系数
	Footprint    FootprintConfig `yaml:"footprint"`
}

// CollisionConfig 碰撞规则
type CollisionConfig struct {
	CarPlayerContact CarPlayerContact `yaml:"carPlayerContact"`
}

// DefaultGameConfig 返回内置默认配置（与 data/lotofcars.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{Width: 960, Height: 720, Title: "Lot of Cars"},
		Spawn: SpawnRulesConfig{
			EdgeMode:      EdgeModeSymmetric,
			Margin:        32,
			LifetimeSlack: 0.1,
			Tiers: []SpawnTierConfig{
				{
					Name:        "rush",
					Interval:    0.5,
					DurationMin: 2.0,
					DurationMax: 4.0,
					OffsetMin:   -1000,
					OffsetMax:   1000,
					Footprint:   FootprintConfig{Width: 20, Height: 10},
				},
				{
					Name:        "cruise",
					Interval:    3.0,
					DurationMin: 12.5,
					DurationMax: 14.5,
					OffsetMin:   -1000,
					OffsetMax:   1000,
					Footprint:   FootprintConfig{Width: 32, Height: 32},
				},
			},
		},
		Player: PlayerConfig{
			Acceleration: 1024,
			Decay:        0.8,
			Footprint:    FootprintConfig{Width: 16, Height: 16},
		},
		Collision: CollisionConfig{CarPlayerContact: ContactReset},
	}
}

// LoadGameConfig 从 YAML 文件加载游戏配置
func LoadGameConfig(filePath string) (*GameConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 配置
// 未出现的字段保留默认值
func ParseGameConfig(data []byte) (*GameConfig, error) {
	config := DefaultGameConfig()
	// 档位列表整体替换而不是逐项合并
	config.Spawn.Tiers = nil

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if config.Spawn.Tiers == nil {
		config.Spawn.Tiers = DefaultGameConfig().Spawn.Tiers
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return config, nil
}

// Validate 验证配置的有效性
func (c *GameConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if err := validateSpawnRules(&c.Spawn); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}

	if c.Player.Acceleration < 0 {
		return fmt.Errorf("player.acceleration must be >= 0, got %v", c.Player.Acceleration)
	}
	if c.Player.Decay < 0 || c.Player.Decay > 1 {
		return fmt.Errorf("player.decay must be in [0, 1], got %v", c.Player.Decay)
	}
	if err := validateFootprint(c.Player.Footprint); err != nil {
		return fmt.Errorf("player: %w", err)
	}

	switch c.Collision.CarPlayerContact {
	case ContactReset, ContactResetAndDestroy:
	default:
		return fmt.Errorf("collision.carPlayerContact must be %q or %q, got %q",
			ContactReset, ContactResetAndDestroy, c.Collision.CarPlayerContact)
	}

	return nil
}

// Tier 按名称查找生成档位
func (c *GameConfig) Tier(name string) (SpawnTierConfig, bool) {
	for _, tier := range c.Spawn.Tiers {
		if tier.Name == name {
			return tier, true
		}
	}
	return SpawnTierConfig{}, false
}
