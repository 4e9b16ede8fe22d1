package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/systems"
	"github.com/decker502/lotofcars/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	debugCurveSubdivisions = 20
	debugTickLength        = 10.0
)

var (
	debugTickColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	debugControlColor = color.RGBA{R: 255, G: 255, B: 0, A: 160}
	debugBoxColor     = color.RGBA{R: 0, G: 255, B: 255, A: 200}
)

// drawDebug 绘制每辆车的曲线切线、控制点与碰撞盒，以及统计信息
func (s *GameScene) drawDebug(screen *ebiten.Image, vp systems.Viewport) {
	em := s.world.EntityManager()

	for _, id := range s.world.Cars() {
		trajectory, ok := ecs.GetComponent[*components.TrajectoryComponent](em, id)
		if !ok {
			continue
		}

		for _, tick := range debugTicks(trajectory.Curve, debugCurveSubdivisions) {
			x0, y0 := worldToScreen(vp, tick[0])
			x1, y1 := worldToScreen(vp, tick[1])
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, debugTickColor, false)
		}

		for _, point := range trajectory.Curve.ControlPoints() {
			x, y := worldToScreen(vp, point)
			vector.DrawFilledRect(screen, float32(x-2), float32(y-2), 4, 4, debugControlColor, false)
		}

		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
			if box, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
				x, y := worldToScreen(vp, utils.Vec2{X: pos.X, Y: pos.Y})
				vector.StrokeRect(screen, float32(x-box.Width/2), float32(y-box.Height/2),
					float32(box.Width), float32(box.Height), 1, debugBoxColor, false)
			}
		}
	}

	stats := s.world.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"cars: %d  spawned: %d  expired: %d\ncar-car: %d  car-player: %d  resets: %d\nF: spawn  F3: debug  R: restart",
		stats.Cars, stats.Spawned, stats.Expired, stats.CarCar, stats.CarPlayer, stats.Resets,
	), 8, 8)
}

// debugTicks 曲线上等分采样点处的切线短线段（世界坐标）
// 切线为零的采样点退化为一个点
func debugTicks(curve utils.CubicBezier, subdivisions int) [][2]utils.Vec2 {
	samples := utils.CurveSamples(curve, subdivisions)
	ticks := make([][2]utils.Vec2, 0, len(samples))
	for _, sample := range samples {
		dir := sample.Velocity.NormalizeOrZero()
		ticks = append(ticks, [2]utils.Vec2{
			sample.Position,
			sample.Position.Add(dir.Scale(debugTickLength)),
		})
	}
	return ticks
}
