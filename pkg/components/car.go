package components

// CarComponent 车辆标记组件
type CarComponent struct {
	Tier string // 生成档位名称，如 "rush"、"cruise"
}

// HeadingFrameComponent 车辆朝向对应的精灵帧（0~48）
type HeadingFrameComponent struct {
	Frame int
}
