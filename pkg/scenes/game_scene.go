package scenes

import (
	"image/color"
	"log"
	"math/rand"

	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/config"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/game"
	"github.com/decker502/lotofcars/pkg/systems"
	"github.com/decker502/lotofcars/pkg/utils"
	"github.com/decker502/lotofcars/pkg/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	// backgroundColor 停车场地面
	backgroundColor = color.RGBA{R: 74, G: 84, B: 98, A: 255}
	playerColor     = color.RGBA{R: 240, G: 220, B: 90, A: 255}
)

// tierColors 各档位车身颜色（按配置顺序循环使用）
var tierColors = []color.RGBA{
	{R: 205, G: 70, B: 60, A: 255},
	{R: 70, G: 140, B: 210, A: 255},
	{R: 90, G: 180, B: 110, A: 255},
	{R: 210, G: 140, B: 60, A: 255},
}

// GameScene 停车场主场景
//
// 持有一个 world.World，负责输入采集与渲染；
// 模拟本身与渲染后端无关。
type GameScene struct {
	world        *world.World
	sceneManager *game.SceneManager
	seed         int64

	// 每个档位一张朝向图集
	atlases map[string]*carAtlas

	debug bool
}

// NewGameScene 创建游戏场景
// 参数:
//   - cfg: 已验证的游戏配置
//   - sm: 场景管理器（用于 R 键重新开始，可为 nil）
//   - seed: 车辆生成随机种子
//   - debug: 是否显示曲线调试层
func NewGameScene(cfg *config.GameConfig, sm *game.SceneManager, seed int64, debug bool) *GameScene {
	w := world.New(cfg, rand.New(rand.NewSource(seed)))
	w.SetIntentSource(keyboardIntent{})

	atlases := make(map[string]*carAtlas, len(cfg.Spawn.Tiers))
	for i, tier := range cfg.Spawn.Tiers {
		atlases[tier.Name] = newCarAtlas(tier.Footprint.Width, tier.Footprint.Height, tierColors[i%len(tierColors)])
	}

	log.Printf("[GameScene] Created: seed=%d, debug=%v, atlases=%d", seed, debug, len(atlases))

	return &GameScene{
		world:        w,
		sceneManager: sm,
		seed:         seed,
		atlases:      atlases,
		debug:        debug,
	}
}

// Update 处理按键后推进世界
func (s *GameScene) Update(deltaTime float64) {
	// F: 立即生成一辆车
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if id, ok := s.world.TriggerSpawn(); ok {
			log.Printf("[GameScene] Debug spawn: car %d", id)
		}
	}

	// F3: 切换调试层
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.debug = !s.debug
		log.Printf("[GameScene] Debug overlay: %v", s.debug)
	}

	// R: 换一个种子重新开始
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && s.sceneManager != nil {
		s.sceneManager.Restart(s.seed + 1)
		return
	}

	s.world.Update(deltaTime)
}

// Resize 实现 game.Resizable：可见区域跟随逻辑屏幕尺寸
func (s *GameScene) Resize(width, height int) {
	s.world.Resize(float64(width), float64(height))
}

// Draw 绘制车辆、玩家与调试层
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	vp, ok := s.world.Viewport()
	if !ok {
		return
	}

	s.drawCars(screen, vp)
	s.drawPlayer(screen, vp)

	if s.debug {
		s.drawDebug(screen, vp)
	}
}

func (s *GameScene) drawCars(screen *ebiten.Image, vp systems.Viewport) {
	em := s.world.EntityManager()
	for _, id := range s.world.Cars() {
		car, _ := ecs.GetComponent[*components.CarComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		frame, ok := ecs.GetComponent[*components.HeadingFrameComponent](em, id)
		if car == nil || pos == nil || !ok {
			continue
		}
		atlas, ok := s.atlases[car.Tier]
		if !ok {
			continue
		}

		sx, sy := worldToScreen(vp, utils.Vec2{X: pos.X, Y: pos.Y})
		half := float64(atlas.frameSize) / 2

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(sx-half, sy-half)
		screen.DrawImage(atlas.Frame(frame.Frame), op)
	}
}

func (s *GameScene) drawPlayer(screen *ebiten.Image, vp systems.Viewport) {
	em := s.world.EntityManager()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, s.world.Player())
	if !ok {
		return
	}
	box, ok := ecs.GetComponent[*components.CollisionComponent](em, s.world.Player())
	if !ok {
		return
	}

	sx, sy := worldToScreen(vp, utils.Vec2{X: pos.X, Y: pos.Y})
	vector.DrawFilledRect(screen,
		float32(sx-box.Width/2), float32(sy-box.Height/2),
		float32(box.Width), float32(box.Height),
		playerColor, false)
}

// worldToScreen 世界坐标（y 向上，原点在镜头中心）转屏幕像素坐标（y 向下）
func worldToScreen(vp systems.Viewport, p utils.Vec2) (float64, float64) {
	return p.X - vp.Min.X, vp.Max.Y - p.Y
}

// World 返回场景持有的世界（测试与调试用）
func (s *GameScene) World() *world.World {
	return s.world
}
