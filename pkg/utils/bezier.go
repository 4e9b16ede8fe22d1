package utils

// CubicBezier 单段三次贝塞尔曲线
//
// 参数 t ∈ [0, 1]：t=0 位于起点，t=1 位于终点。
// 区间外的 t 仍可求值（多项式外推），但不具有几何意义。
// 创建后不可修改。
type CubicBezier struct {
	p0, p1, p2, p3 Vec2
}

// NewCubicBezier 由四个控制点创建三次贝塞尔曲线
func NewCubicBezier(p0, p1, p2, p3 Vec2) CubicBezier {
	return CubicBezier{p0: p0, p1: p1, p2: p2, p3: p3}
}

// NewCarCurve 生成车辆行驶曲线
//
// 两个控制点分别位于起点到终点连线的 1/3 和 2/3 处，
// 并沿垂直方向偏移 offset1 / offset2（有符号）。
// offset 均为 0 时退化为直线段；start == end 时为零长度曲线。
func NewCarCurve(start, end Vec2, offset1, offset2 float64) CubicBezier {
	third := start.Distance(end) / 3
	dir := end.Sub(start).NormalizeOrZero()
	perp := dir.Perp()

	c1 := start.Add(dir.Scale(third)).Add(perp.Scale(offset1))
	c2 := start.Add(dir.Scale(third * 2)).Add(perp.Scale(offset2))

	return NewCubicBezier(start, c1, c2, end)
}

// ControlPoints 返回 [起点, 控制点1, 控制点2, 终点]
func (c CubicBezier) ControlPoints() [4]Vec2 {
	return [4]Vec2{c.p0, c.p1, c.p2, c.p3}
}

// Position 计算参数 t 处的位置
// 公式：B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
func (c CubicBezier) Position(t float64) Vec2 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Vec2{
		X: b0*c.p0.X + b1*c.p1.X + b2*c.p2.X + b3*c.p3.X,
		Y: b0*c.p0.Y + b1*c.p1.Y + b2*c.p2.Y + b3*c.p3.Y,
	}
}

// Velocity 计算参数 t 处的导数（切线方向，单位：距离/参数）
// 公式：B'(t) = 3(1-t)²(P1-P0) + 6(1-t)t(P2-P1) + 3t²(P3-P2)
func (c CubicBezier) Velocity(t float64) Vec2 {
	u := 1 - t
	d0 := c.p1.Sub(c.p0)
	d1 := c.p2.Sub(c.p1)
	d2 := c.p3.Sub(c.p2)
	k0 := 3 * u * u
	k1 := 6 * u * t
	k2 := 3 * t * t
	return Vec2{
		X: k0*d0.X + k1*d1.X + k2*d2.X,
		Y: k0*d0.Y + k1*d1.Y + k2*d2.Y,
	}
}

// CurveSample 曲线采样点
type CurveSample struct {
	Position Vec2
	Velocity Vec2
}

// CurveSamples 在 [0, 1] 上等分采样 subdivisions+1 个点（调试绘制用）
func CurveSamples(c CubicBezier, subdivisions int) []CurveSample {
	if subdivisions < 1 {
		subdivisions = 1
	}
	samples := make([]CurveSample, 0, subdivisions+1)
	for i := 0; i <= subdivisions; i++ {
		t := float64(i) / float64(subdivisions)
		samples = append(samples, CurveSample{
			Position: c.Position(t),
			Velocity: c.Velocity(t),
		})
	}
	return samples
}
