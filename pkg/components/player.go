package components

// PlayerComponent 玩家标记组件（单例）
type PlayerComponent struct {
	// Resets 被车辆撞回原点的次数
	Resets int
}
