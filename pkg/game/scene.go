package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., the parking lot itself).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，用于接收逻辑屏幕尺寸变化
//
// 实现此接口的场景会在 Layout 返回新尺寸时收到通知，
// 用于同步镜头的可见区域。
type Resizable interface {
	Resize(width, height int)
}
