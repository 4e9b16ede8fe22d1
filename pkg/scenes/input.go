package scenes

import (
	"github.com/decker502/lotofcars/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyboardIntent 从键盘读取玩家移动意图（WASD 或方向键）
type keyboardIntent struct{}

// MoveIntent 实现 systems.IntentSource
func (keyboardIntent) MoveIntent() utils.Vec2 {
	return intentFromKeys(
		ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	)
}

// intentFromKeys 按键状态转为方向（世界坐标 y 轴向上，不做归一化）
func intentFromKeys(up, down, left, right bool) utils.Vec2 {
	return utils.Vec2{
		X: boolToFloat(right) - boolToFloat(left),
		Y: boolToFloat(up) - boolToFloat(down),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
