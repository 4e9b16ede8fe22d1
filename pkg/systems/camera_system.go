package systems

import (
	"github.com/decker502/lotofcars/pkg/components"
	"github.com/decker502/lotofcars/pkg/ecs"
	"github.com/decker502/lotofcars/pkg/utils"
)

// Viewport 可见区域（世界坐标）
type Viewport struct {
	Min  utils.Vec2
	Max  utils.Vec2
	Size utils.Vec2
}

// ViewportProvider 提供当前可见区域；没有镜头时返回 false
type ViewportProvider interface {
	Viewport() (Viewport, bool)
}

// CameraSystem 管理镜头实体，并作为生成系统的可见区域来源
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头系统。
// 镜头实体由调用方通过 AttachCamera 创建（没有镜头时生成系统跳过本周期）。
func NewCameraSystem(em *ecs.EntityManager) *CameraSystem {
	return &CameraSystem{
		entityManager: em,
		cameraEntity:  ecs.InvalidEntity,
	}
}

// AttachCamera 创建以 (centerX, centerY) 为中心、尺寸 width x height 的镜头实体
func (cs *CameraSystem) AttachCamera(centerX, centerY, width, height float64) ecs.EntityID {
	if cs.cameraEntity != ecs.InvalidEntity && cs.entityManager.EntityExists(cs.cameraEntity) {
		cs.entityManager.DestroyEntity(cs.cameraEntity)
	}

	cs.cameraEntity = cs.entityManager.CreateEntity()
	ecs.AddComponent(cs.entityManager, cs.cameraEntity, &components.CameraComponent{
		CenterX: centerX,
		CenterY: centerY,
		Width:   width,
		Height:  height,
	})
	return cs.cameraEntity
}

// CameraEntity 返回镜头实体ID（未创建时为 InvalidEntity）
func (cs *CameraSystem) CameraEntity() ecs.EntityID {
	return cs.cameraEntity
}

// Resize 跟随窗口布局调整可见区域尺寸
func (cs *CameraSystem) Resize(width, height float64) {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	cameraComp.Width = width
	cameraComp.Height = height
}

// Viewport 计算当前可见区域
func (cs *CameraSystem) Viewport() (Viewport, bool) {
	cameraComp, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok || cs.entityManager.IsMarkedForDestroy(cs.cameraEntity) {
		return Viewport{}, false
	}

	half := utils.Vec2{X: cameraComp.Width / 2, Y: cameraComp.Height / 2}
	center := utils.Vec2{X: cameraComp.CenterX, Y: cameraComp.CenterY}
	return Viewport{
		Min:  center.Sub(half),
		Max:  center.Add(half),
		Size: utils.Vec2{X: cameraComp.Width, Y: cameraComp.Height},
	}, true
}
