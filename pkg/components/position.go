package components

// PositionComponent 实体的空间变换（世界坐标，Y 轴向上）
type PositionComponent struct {
	X float64
	Y float64
	// Rotation 朝向（弧度，0 指向 +X，逆时针为正）
	Rotation float64
}

// VelocityComponent 线速度累加器（像素/秒）
type VelocityComponent struct {
	VX float64
	VY float64
}
