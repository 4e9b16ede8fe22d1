package components

// CollisionComponent 定义实体的碰撞盒尺寸
// 碰撞盒中心对齐实体位置，随 PositionComponent.Rotation 旋转
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// ColliderComponent 持有实体在物理空间中的碰撞体
//
// 碰撞体与视觉表现合并在同一实体上，实体销毁时由物理系统的移除回调一并释放。
type ColliderComponent struct {
	Handle ColliderHandle
}

// ColliderHandle 物理后端的碰撞体句柄
type ColliderHandle interface {
	// SetPose 写入位置与朝向（运动学写入）
	SetPose(x, y, rotation float64)
}
