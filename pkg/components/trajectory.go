package components

import (
	"fmt"

	"github.com/decker502/lotofcars/pkg/utils"
)

// TrajectoryComponent 车辆沿曲线行驶的状态
//
// T 为归一化进度，每帧增加 dt/Duration，不做上限截断；
// T 超过 1 后由生命周期组件负责回收实体。
type TrajectoryComponent struct {
	Curve    utils.CubicBezier
	T        float64 // 曲线参数（单调递增，可超过 1）
	Duration float64 // 走完一次曲线所需秒数（> 0）
}

// NewTrajectoryComponent 创建轨迹组件
// duration <= 0 属于编程错误，直接 panic
func NewTrajectoryComponent(start, end utils.Vec2, offset1, offset2, duration float64) *TrajectoryComponent {
	if !(duration > 0) {
		panic(fmt.Sprintf("trajectory duration must be > 0, got %v", duration))
	}
	return &TrajectoryComponent{
		Curve:    utils.NewCarCurve(start, end, offset1, offset2),
		T:        0,
		Duration: duration,
	}
}

// Position 当前进度处的位置（不截断 T）
func (tc *TrajectoryComponent) Position() utils.Vec2 {
	return tc.Curve.Position(tc.T)
}

// Velocity 当前进度处的切线
func (tc *TrajectoryComponent) Velocity() utils.Vec2 {
	return tc.Curve.Velocity(tc.T)
}

// Heading 当前朝向（单位向量；切线为零时返回零向量）
func (tc *TrajectoryComponent) Heading() utils.Vec2 {
	return tc.Velocity().NormalizeOrZero()
}

// Advance 推进进度：T += dt / Duration
func (tc *TrajectoryComponent) Advance(dt float64) {
	tc.T += dt / tc.Duration
}

// Finished 是否已走完整条曲线
func (tc *TrajectoryComponent) Finished() bool {
	return tc.T >= 1
}
