package scenes

import (
	"image"
	"math"
	"testing"

	"github.com/decker502/lotofcars/pkg/systems"
	"github.com/decker502/lotofcars/pkg/utils"
)

// TestWorldToScreen 世界坐标（y 向上）到屏幕坐标（y 向下）的映射
func TestWorldToScreen(t *testing.T) {
	vp := systems.Viewport{
		Min:  utils.Vec2{X: -480, Y: -360},
		Max:  utils.Vec2{X: 480, Y: 360},
		Size: utils.Vec2{X: 960, Y: 720},
	}

	tests := []struct {
		name  string
		world utils.Vec2
		wantX float64
		wantY float64
	}{
		{"原点在画面中心", utils.Vec2{}, 480, 360},
		{"左上角", utils.Vec2{X: -480, Y: 360}, 0, 0},
		{"右下角", utils.Vec2{X: 480, Y: -360}, 960, 720},
		{"向上为屏幕上方", utils.Vec2{Y: 100}, 480, 260},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := worldToScreen(vp, tt.world)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("worldToScreen(%v) = (%v, %v), want (%v, %v)", tt.world, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestAtlasFrameRect 7×7 图集按行优先排列
func TestAtlasFrameRect(t *testing.T) {
	tests := []struct {
		frame int
		want  image.Rectangle
	}{
		{0, image.Rect(0, 0, 25, 25)},
		{6, image.Rect(150, 0, 175, 25)},
		{7, image.Rect(0, 25, 25, 50)},
		{12, image.Rect(125, 25, 150, 50)},
		{48, image.Rect(150, 150, 175, 175)},
	}

	for _, tt := range tests {
		if got := atlasFrameRect(tt.frame, atlasFrameSize); got != tt.want {
			t.Errorf("atlasFrameRect(%d) = %v, want %v", tt.frame, got, tt.want)
		}
	}
}

// TestAtlasFrameSizeFor 帧必须容纳任意朝向的车身
func TestAtlasFrameSizeFor(t *testing.T) {
	if got := atlasFrameSizeFor(20, 10); got != atlasFrameSize {
		t.Errorf("small car frame = %d, want %d", got, atlasFrameSize)
	}
	got := atlasFrameSizeFor(32, 32)
	if float64(got) < math.Hypot(32, 32) {
		t.Errorf("large car frame = %d, too small for a rotated 32x32 body", got)
	}
}

// TestIntentFromKeys 按键组合到移动意图
func TestIntentFromKeys(t *testing.T) {
	tests := []struct {
		name                  string
		up, down, left, right bool
		want                  utils.Vec2
	}{
		{"无输入", false, false, false, false, utils.Vec2{}},
		{"上", true, false, false, false, utils.Vec2{Y: 1}},
		{"下", false, true, false, false, utils.Vec2{Y: -1}},
		{"左", false, false, true, false, utils.Vec2{X: -1}},
		{"右上（不归一化）", true, false, false, true, utils.Vec2{X: 1, Y: 1}},
		{"左右抵消", false, false, true, true, utils.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := intentFromKeys(tt.up, tt.down, tt.left, tt.right)
			if got != tt.want {
				t.Errorf("intentFromKeys = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestDebugTicks 调试层切线段：21 个采样点，每段长 10 像素
func TestDebugTicks(t *testing.T) {
	curve := utils.NewCarCurve(utils.Vec2{}, utils.Vec2{X: 300}, 100, -100)
	ticks := debugTicks(curve, debugCurveSubdivisions)

	if len(ticks) != debugCurveSubdivisions+1 {
		t.Fatalf("len(ticks) = %d, want %d", len(ticks), debugCurveSubdivisions+1)
	}
	for i, tick := range ticks {
		if l := tick[1].Distance(tick[0]); math.Abs(l-debugTickLength) > 1e-9 {
			t.Errorf("tick %d length = %v, want %v", i, l, debugTickLength)
		}
	}
	if ticks[0][0] != (utils.Vec2{}) {
		t.Errorf("first tick should start at the curve start, got %v", ticks[0][0])
	}
}
