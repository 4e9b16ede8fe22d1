package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/decker502/lotofcars/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// atlasColumns 车辆图集每行帧数（7×7 = 49 个朝向）
	atlasColumns = 7
	// atlasFrameSize 默认单帧边长（像素）
	atlasFrameSize = 25
)

// carAtlas 程序生成的车辆朝向图集
//
// 第 i 帧表示朝向 i*360/49 度（世界坐标，逆时针）。
// 帧按行优先排列：frame = row*7 + col。
type carAtlas struct {
	image     *ebiten.Image
	frames    []*ebiten.Image
	frameSize int
}

// atlasFrameSizeFor 能容纳任意朝向车身的帧边长（不小于 25）
func atlasFrameSizeFor(width, height float64) int {
	diagonal := int(math.Ceil(math.Hypot(width, height)))
	if diagonal+1 > atlasFrameSize {
		return diagonal + 1
	}
	return atlasFrameSize
}

// atlasFrameRect 第 frame 帧在图集中的矩形
func atlasFrameRect(frame, frameSize int) image.Rectangle {
	col := frame % atlasColumns
	row := frame / atlasColumns
	x := col * frameSize
	y := row * frameSize
	return image.Rect(x, y, x+frameSize, y+frameSize)
}

// newCarAtlas 绘制一辆朝 +X 的车，再旋转出 49 个朝向
func newCarAtlas(width, height float64, body color.Color) *carAtlas {
	frameSize := atlasFrameSizeFor(width, height)

	sprite := ebiten.NewImage(int(math.Ceil(width)), int(math.Ceil(height)))
	vector.DrawFilledRect(sprite, 0, 0, float32(width), float32(height), body, false)
	// 挡风玻璃靠近车头（+X 一侧）
	glass := color.RGBA{R: 200, G: 225, B: 240, A: 255}
	vector.DrawFilledRect(sprite, float32(width*0.6), float32(height*0.15), float32(width*0.2), float32(height*0.7), glass, false)

	atlas := &carAtlas{
		image:     ebiten.NewImage(frameSize*atlasColumns, frameSize*atlasColumns),
		frames:    make([]*ebiten.Image, utils.HeadingFrameCount),
		frameSize: frameSize,
	}

	for i := 0; i < utils.HeadingFrameCount; i++ {
		rect := atlasFrameRect(i, frameSize)
		degrees := float64(i) * 360 / utils.HeadingFrameCount

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-width/2, -height/2)
		// 屏幕坐标 y 轴向下，逆时针朝向需取负角
		op.GeoM.Rotate(-degrees * math.Pi / 180)
		op.GeoM.Translate(float64(rect.Min.X)+float64(frameSize)/2, float64(rect.Min.Y)+float64(frameSize)/2)
		op.Filter = ebiten.FilterLinear
		atlas.image.DrawImage(sprite, op)

		atlas.frames[i] = atlas.image.SubImage(rect).(*ebiten.Image)
	}

	return atlas
}

// Frame 返回指定朝向帧；越界时取 0 帧
func (a *carAtlas) Frame(frame int) *ebiten.Image {
	if frame < 0 || frame >= len(a.frames) {
		frame = 0
	}
	return a.frames[frame]
}
