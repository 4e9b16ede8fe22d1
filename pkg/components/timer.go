package components

// TimerComponent 通用计时器组件
// 用于处理需要固定间隔触发的行为（如车辆生成周期）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "spawn_rush"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
}

// Tick 累加时间，到达目标时间时置 IsReady 并保留溢出部分
// 返回本次累加后是否就绪
func (tc *TimerComponent) Tick(dt float64) bool {
	tc.CurrentTime += dt
	if tc.TargetTime > 0 && tc.CurrentTime >= tc.TargetTime {
		tc.CurrentTime -= tc.TargetTime
		// 单帧时间跨越多个周期时只触发一次
		if tc.CurrentTime >= tc.TargetTime {
			tc.CurrentTime = 0
		}
		tc.IsReady = true
	}
	return tc.IsReady
}

// Reset 消费就绪状态
func (tc *TimerComponent) Reset() {
	tc.IsReady = false
}
