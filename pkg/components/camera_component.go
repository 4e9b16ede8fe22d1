package components

// CameraComponent 描述当前可见区域（世界坐标）
type CameraComponent struct {
	// CenterX, CenterY 镜头中心
	CenterX float64
	CenterY float64

	// Width, Height 可见区域尺寸（像素）
	Width  float64
	Height float64
}
