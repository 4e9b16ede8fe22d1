package termview

import (
	"github.com/decker502/lotofcars/pkg/utils"
)

// DefaultHold 一次按键维持移动意图的时间（秒）
//
// 终端只上报按下（及自动重复），没有松开事件，
// 因此每次按键让该轴方向保持一小段时间。
const DefaultHold = 0.15

// HeldIntent 把离散按键转换为持续的移动意图
// 实现 systems.IntentSource
type HeldIntent struct {
	hold    float64
	x, y    float64 // 各轴方向（-1/0/1）
	xRemain float64
	yRemain float64
}

// NewHeldIntent 创建按键保持意图；hold <= 0 时使用 DefaultHold
func NewHeldIntent(hold float64) *HeldIntent {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &HeldIntent{hold: hold}
}

// Press 记录一次方向按键（世界坐标 y 向上）
func (h *HeldIntent) Press(dir utils.Vec2) {
	if dir.X != 0 {
		h.x = dir.X
		h.xRemain = h.hold
	}
	if dir.Y != 0 {
		h.y = dir.Y
		h.yRemain = h.hold
	}
}

// Tick 扣减保持时间
func (h *HeldIntent) Tick(deltaTime float64) {
	h.xRemain -= deltaTime
	h.yRemain -= deltaTime
	if h.xRemain <= 0 {
		h.x, h.xRemain = 0, 0
	}
	if h.yRemain <= 0 {
		h.y, h.yRemain = 0, 0
	}
}

// MoveIntent 当前仍在保持期内的方向
func (h *HeldIntent) MoveIntent() utils.Vec2 {
	return utils.Vec2{X: h.x, Y: h.y}
}

// KeyDirection 键位到方向：wasd / hjkl
func KeyDirection(r rune) (utils.Vec2, bool) {
	switch r {
	case 'w', 'W', 'k':
		return utils.Vec2{Y: 1}, true
	case 's', 'S', 'j':
		return utils.Vec2{Y: -1}, true
	case 'a', 'A', 'h':
		return utils.Vec2{X: -1}, true
	case 'd', 'D', 'l':
		return utils.Vec2{X: 1}, true
	}
	return utils.Vec2{}, false
}
