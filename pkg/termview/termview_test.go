package termview

import (
	"math/rand"
	"testing"

	"github.com/decker502/lotofcars/pkg/config"
	"github.com/decker502/lotofcars/pkg/entities"
	"github.com/decker502/lotofcars/pkg/systems"
	"github.com/decker502/lotofcars/pkg/utils"
	"github.com/decker502/lotofcars/pkg/world"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

// TestHeadingGlyph 49 帧量化到 8 个箭头
func TestHeadingGlyph(t *testing.T) {
	tests := []struct {
		frame int
		want  rune
	}{
		{0, '→'},
		{12, '↑'},  // 90°
		{24, '←'},  // 180°
		{36, '↓'},  // 270°
		{48, '→'},  // 接近 360°
		{-3, '→'},  // 越界
		{100, '→'}, // 越界
	}

	for _, tt := range tests {
		if got := HeadingGlyph(tt.frame); got != tt.want {
			t.Errorf("HeadingGlyph(%d) = %q, want %q", tt.frame, got, tt.want)
		}
	}
}

// TestCellOf 世界坐标到字符格
func TestCellOf(t *testing.T) {
	vp := systems.Viewport{
		Min:  utils.Vec2{X: -320, Y: -192},
		Max:  utils.Vec2{X: 320, Y: 192},
		Size: utils.Vec2{X: 640, Y: 384},
	}

	tests := []struct {
		name     string
		p        utils.Vec2
		col, row int
	}{
		{"左上角", utils.Vec2{X: -320, Y: 192}, 0, 0},
		{"原点", utils.Vec2{}, 40, 12},
		{"y 向上行号变小", utils.Vec2{Y: 20}, 40, 10},
		{"画面外", utils.Vec2{X: -400}, -10, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := CellOf(vp, tt.p)
			if col != tt.col || row != tt.row {
				t.Errorf("CellOf(%v) = (%d, %d), want (%d, %d)", tt.p, col, row, tt.col, tt.row)
			}
		})
	}
}

// TestHeldIntent 按键保持与过期
func TestHeldIntent(t *testing.T) {
	h := NewHeldIntent(0.2)

	h.Press(utils.Vec2{X: 1})
	h.Press(utils.Vec2{Y: -1})
	if got := h.MoveIntent(); got != (utils.Vec2{X: 1, Y: -1}) {
		t.Fatalf("MoveIntent = %v, want (1, -1)", got)
	}

	h.Tick(0.1)
	h.Press(utils.Vec2{Y: 1})
	h.Tick(0.15)
	// X 轴已过期，Y 轴被第二次按键续期
	if got := h.MoveIntent(); got != (utils.Vec2{Y: 1}) {
		t.Errorf("MoveIntent = %v, want (0, 1)", got)
	}

	h.Tick(1)
	if got := h.MoveIntent(); !got.IsZero() {
		t.Errorf("MoveIntent = %v, want zero after release", got)
	}

	if d := NewHeldIntent(0); d.hold != DefaultHold {
		t.Errorf("hold = %v, want DefaultHold", d.hold)
	}
}

// TestKeyDirection 键位映射
func TestKeyDirection(t *testing.T) {
	if dir, ok := KeyDirection('w'); !ok || dir != (utils.Vec2{Y: 1}) {
		t.Errorf("w -> %v, %v", dir, ok)
	}
	if dir, ok := KeyDirection('h'); !ok || dir != (utils.Vec2{X: -1}) {
		t.Errorf("h -> %v, %v", dir, ok)
	}
	if _, ok := KeyDirection('x'); ok {
		t.Error("x should not map to a direction")
	}
}

// TestRendererDraw 车辆与玩家被绘制到对应字符格
func TestRendererDraw(t *testing.T) {
	screen := newSimScreen(t, 80, 25)
	renderer := NewRenderer(screen, []string{"rush", "cruise"})

	w := world.New(config.DefaultGameConfig(), rand.New(rand.NewSource(3)))
	w.Spawner().Disable()
	vw, vh := renderer.ViewportSize()
	w.Resize(vw, vh)

	// 朝 +Y 行驶的车辆
	w.SpawnCar(entities.CarSpec{
		Tier:          "cruise",
		Start:         utils.Vec2{X: 160, Y: -80},
		End:           utils.Vec2{X: 160, Y: 80},
		Duration:      5,
		LifetimeSlack: 0.1,
		Width:         20,
		Height:        10,
	})
	w.Update(1.0 / 60)

	renderer.Draw(w)

	vp, _ := w.Viewport()
	col, row := CellOf(vp, utils.Vec2{})
	if mainc, _, _, _ := screen.GetContent(col, row); mainc != '@' {
		t.Errorf("player cell = %q, want '@'", mainc)
	}

	found := false
	cols, rows := screen.Size()
	for y := 0; y < rows-1 && !found; y++ {
		for x := 0; x < cols; x++ {
			if mainc, _, _, _ := screen.GetContent(x, y); mainc == '↑' {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected an upward arrow for the car heading +Y")
	}

	if mainc, _, _, _ := screen.GetContent(1, rows-1); mainc != 'c' {
		t.Errorf("status line should start with \" cars\", got %q", mainc)
	}
}
