package systems

import (
	"testing"

	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
)

// TestCameraSystem_NoCamera 没有镜头实体时 Viewport 返回 false
func TestCameraSystem_NoCamera(t *testing.T) {
	cs := NewCameraSystem(ecs.NewEntityManager())

	if _, ok := cs.Viewport(); ok {
		t.Error("Viewport should be unavailable without a camera entity")
	}
	if cs.CameraEntity() != ecs.InvalidEntity {
		t.Error("camera entity should be invalid before AttachCamera")
	}
}

// TestCameraSystem_Viewport 测试可见区域计算
func TestCameraSystem_Viewport(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em)
	cs.AttachCamera(0, 0, 800, 600)

	vp, ok := cs.Viewport()
	if !ok {
		t.Fatal("Viewport should be available")
	}
	if vp.Min.X != -400 || vp.Min.Y != -300 || vp.Max.X != 400 || vp.Max.Y != 300 {
		t.Errorf("unexpected bounds min=%v max=%v", vp.Min, vp.Max)
	}
	if vp.Size.X != 800 || vp.Size.Y != 600 {
		t.Errorf("unexpected size %v", vp.Size)
	}

	// 跟随窗口尺寸
	cs.Resize(1000, 500)
	vp, _ = cs.Viewport()
	if vp.Min.X != -500 || vp.Max.Y != 250 {
		t.Errorf("unexpected bounds after resize min=%v max=%v", vp.Min, vp.Max)
	}

	// 镜头组件存在于实体上
	if _, ok := ecs.GetComponent[*components.CameraComponent](em, cs.CameraEntity()); !ok {
		t.Error("CameraComponent not attached")
	}
}

// TestCameraSystem_DestroyedCamera 镜头实体被销毁后 Viewport 不可用
func TestCameraSystem_DestroyedCamera(t *testing.T) {
	em := ecs.NewEntityManager()
	cs := NewCameraSystem(em)
	id := cs.AttachCamera(100, 50, 200, 200)

	em.DestroyEntity(id)
	if _, ok := cs.Viewport(); ok {
		t.Error("Viewport should be unavailable once the camera is marked for destruction")
	}
	em.RemoveMarkedEntities()
	if _, ok := cs.Viewport(); ok {
		t.Error("Viewport should be unavailable after the camera is removed")
	}
}
