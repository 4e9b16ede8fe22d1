package components

// LifetimeComponent 管理实体的生命周期
// 用于自动清理存在时间超过上限的实体(如驶出画面的车辆)
type LifetimeComponent struct {
	Remaining float64 // 剩余存活时间(秒)，<= 0 时实体在当帧被销毁
}

// Expired 是否已到期
func (lc *LifetimeComponent) Expired() bool {
	return lc.Remaining <= 0
}
