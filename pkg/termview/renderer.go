// Package termview 在终端中以字符绘制停车场世界
//
// 每个字符格对应 CellWidth×CellHeight 的世界区域，
// 车辆用指向其朝向的箭头表示，玩家为 '@'。
package termview

import (
	"fmt"
	"math"

	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/systems"
	"github.com/decker502/lotofcars/pkg/utils"
	"github.com/decker502/lotofcars/pkg/world"
	"github.com/gdamore/tcell/v2"
)

const (
	// CellWidth 每个字符格的世界宽度
	CellWidth = 8.0
	// CellHeight 每个字符格的世界高度（终端字符约为 1:2）
	CellHeight = 16.0
)

// headingGlyphs 八个方向的箭头，从 +X 开始逆时针
var headingGlyphs = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

var (
	backgroundStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(74, 84, 98))
	playerStyle     = backgroundStyle.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	tierStyles      = []tcell.Style{
		backgroundStyle.Foreground(tcell.ColorRed),
		backgroundStyle.Foreground(tcell.ColorAqua),
		backgroundStyle.Foreground(tcell.ColorGreen),
		backgroundStyle.Foreground(tcell.ColorOrange),
	}
)

// Renderer 终端渲染器
type Renderer struct {
	screen    tcell.Screen
	tierIndex map[string]int
}

// NewRenderer 创建渲染器；tiers 决定车辆颜色顺序
func NewRenderer(screen tcell.Screen, tiers []string) *Renderer {
	index := make(map[string]int, len(tiers))
	for i, name := range tiers {
		index[name] = i
	}
	return &Renderer{screen: screen, tierIndex: index}
}

// ViewportSize 当前终端尺寸对应的世界可见区域大小
func (r *Renderer) ViewportSize() (float64, float64) {
	cols, rows := r.screen.Size()
	return float64(cols) * CellWidth, float64(rows) * CellHeight
}

// CellOf 世界坐标所在的字符格（y 向上的世界坐标映射到向下增长的行号）
func CellOf(vp systems.Viewport, p utils.Vec2) (col, row int) {
	col = int(math.Floor((p.X - vp.Min.X) / CellWidth))
	row = int(math.Floor((vp.Max.Y - p.Y) / CellHeight))
	return col, row
}

// HeadingGlyph 把 49 帧朝向量化为 8 个箭头
func HeadingGlyph(frame int) rune {
	if frame < 0 || frame >= utils.HeadingFrameCount {
		frame = 0
	}
	octant := int(math.Round(float64(frame)*8/utils.HeadingFrameCount)) % len(headingGlyphs)
	return headingGlyphs[octant]
}

// Draw 绘制一帧：背景、车辆、玩家与状态栏
func (r *Renderer) Draw(w *world.World) {
	cols, rows := r.screen.Size()
	r.screen.Fill(' ', backgroundStyle)

	vp, ok := w.Viewport()
	if ok {
		em := w.EntityManager()
		for _, id := range w.Cars() {
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			car, _ := ecs.GetComponent[*components.CarComponent](em, id)
			if pos == nil || car == nil {
				continue
			}
			glyph := headingGlyphs[0]
			if frame, ok := ecs.GetComponent[*components.HeadingFrameComponent](em, id); ok {
				glyph = HeadingGlyph(frame.Frame)
			}
			r.put(vp, cols, rows, utils.Vec2{X: pos.X, Y: pos.Y}, glyph, r.tierStyle(car.Tier))
		}

		if pos, ok := ecs.GetComponent[*components.PositionComponent](em, w.Player()); ok {
			r.put(vp, cols, rows, utils.Vec2{X: pos.X, Y: pos.Y}, '@', playerStyle)
		}
	}

	stats := w.Stats()
	status := fmt.Sprintf(" cars %d | spawned %d | car-car %d | resets %d | wasd move  f spawn  q quit ",
		stats.Cars, stats.Spawned, stats.CarCar, stats.Resets)
	for i, ch := range status {
		if i >= cols {
			break
		}
		r.screen.SetContent(i, rows-1, ch, nil, statusStyle)
	}

	r.screen.Show()
}

func (r *Renderer) put(vp systems.Viewport, cols, rows int, p utils.Vec2, glyph rune, style tcell.Style) {
	col, row := CellOf(vp, p)
	if col < 0 || row < 0 || col >= cols || row >= rows-1 {
		return
	}
	r.screen.SetContent(col, row, glyph, nil, style)
}

func (r *Renderer) tierStyle(tier string) tcell.Style {
	i, ok := r.tierIndex[tier]
	if !ok {
		return tierStyles[0]
	}
	return tierStyles[i%len(tierStyles)]
}
