// Package physics 封装 Chipmunk2D（jakecoffman/cp）碰撞检测
//
// 游戏逻辑每帧写入所有碰撞体的位置与朝向，Step 之后读取"开始接触"事件。
// 碰撞体不产生物理响应：begin 回调返回 false，cp 会忽略该接触直到双方分离，
// 因此每次新接触只报告一次。
package physics

import (
	"log"

	"github.com/jakecoffman/cp"

	"github.com/decker502/lotofcars/pkg/ecs"
)

// BodyKind 碰撞体类别
type BodyKind int

const (
	// KindCar 车辆
	KindCar BodyKind = iota + 1
	// KindPlayer 玩家
	KindPlayer
)

func (k BodyKind) String() string {
	switch k {
	case KindCar:
		return "car"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// CollisionEvent 一次"开始接触"事件（无序的碰撞体对）
type CollisionEvent struct {
	A ecs.EntityID
	B ecs.EntityID
}

// Involves 事件是否涉及指定实体
func (e CollisionEvent) Involves(id ecs.EntityID) bool {
	return e.A == id || e.B == id
}

// Space 物理空间
type Space struct {
	space     *cp.Space
	colliders map[ecs.EntityID]*Collider
	pending   []CollisionEvent
}

// Collider 单个实体的碰撞体（盒形）
type Collider struct {
	Entity ecs.EntityID
	Kind   BodyKind
	body   *cp.Body
	shape  *cp.Shape
}

// NewSpace 创建物理空间并注册 车-车、车-玩家 的接触回调
func NewSpace() *Space {
	s := &Space{
		space:     cp.NewSpace(),
		colliders: make(map[ecs.EntityID]*Collider),
		pending:   make([]CollisionEvent, 0, 16),
	}

	pairs := [][2]BodyKind{
		{KindCar, KindCar},
		{KindCar, KindPlayer},
	}
	for _, pair := range pairs {
		handler := s.space.NewCollisionHandler(cp.CollisionType(pair[0]), cp.CollisionType(pair[1]))
		handler.BeginFunc = s.onBegin
	}

	return s
}

// onBegin 记录接触事件，返回 false 让 cp 忽略本次接触的物理响应
func (s *Space) onBegin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	idA, okA := a.UserData.(ecs.EntityID)
	idB, okB := b.UserData.(ecs.EntityID)
	if okA && okB {
		s.pending = append(s.pending, CollisionEvent{A: idA, B: idB})
	}
	return false
}

// AddBox 为实体添加盒形碰撞体
// 同一实体重复添加会先移除旧碰撞体
func (s *Space) AddBox(id ecs.EntityID, kind BodyKind, width, height float64) *Collider {
	if _, exists := s.colliders[id]; exists {
		log.Printf("[Physics] WARNING: entity %d already has a collider, replacing", id)
		s.Remove(id)
	}

	// 位置由游戏逻辑驱动；质量有限、转动惯量无穷大，且所有接触都被忽略
	body := s.space.AddBody(cp.NewBody(1, cp.INFINITY))
	shape := s.space.AddShape(cp.NewBox(body, width, height, 0))
	shape.SetCollisionType(cp.CollisionType(kind))
	shape.UserData = id

	collider := &Collider{Entity: id, Kind: kind, body: body, shape: shape}
	s.colliders[id] = collider
	return collider
}

// SetPose 写入位置与朝向（弧度）
func (c *Collider) SetPose(x, y, rotation float64) {
	c.body.SetPosition(cp.Vector{X: x, Y: y})
	c.body.SetAngle(rotation)
}

// Pose 读取当前位置与朝向
func (c *Collider) Pose() (x, y, rotation float64) {
	p := c.body.Position()
	return p.X, p.Y, c.body.Angle()
}

// Remove 移除实体的碰撞体；不存在时为空操作
func (s *Space) Remove(id ecs.EntityID) {
	collider, exists := s.colliders[id]
	if !exists {
		return
	}
	s.space.RemoveShape(collider.shape)
	s.space.RemoveBody(collider.body)
	delete(s.colliders, id)
}

// Collider 查询实体的碰撞体
func (s *Space) Collider(id ecs.EntityID) (*Collider, bool) {
	c, ok := s.colliders[id]
	return c, ok
}

// ColliderCount 当前碰撞体数量
func (s *Space) ColliderCount() int {
	return len(s.colliders)
}

// Step 推进物理空间，检测新接触
func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt)
}

// DrainEvents 取出本帧产生的接触事件（按产生顺序）
func (s *Space) DrainEvents() []CollisionEvent {
	if len(s.pending) == 0 {
		return nil
	}
	events := make([]CollisionEvent, len(s.pending))
	copy(events, s.pending)
	s.pending = s.pending[:0]
	return events
}
