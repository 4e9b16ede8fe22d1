package ecs

import (
	"testing"
)

// ========== 测试组件定义 ==========

type benchmarkPosition struct {
	X, Y     float64
	Rotation float64
}

type benchmarkTrajectory struct {
	T        float64
	Duration float64
}

type benchmarkLifetime struct {
	Remaining float64
}

// setupBenchmarkCars 创建指定数量的"车辆"实体，每个实体包含位置、轨迹、生命周期组件
func setupBenchmarkCars(count int) *EntityManager {
	em := NewEntityManager()

	for i := 0; i < count; i++ {
		entity := em.CreateEntity()
		AddComponent(em, entity, &benchmarkPosition{X: float64(i), Y: float64(i * 2)})
		AddComponent(em, entity, &benchmarkTrajectory{Duration: 2})
		AddComponent(em, entity, &benchmarkLifetime{Remaining: 2.1})
	}

	return em
}

// BenchmarkGetEntitiesWith3 查询 1000 辆车（3组件）
func BenchmarkGetEntitiesWith3(b *testing.B) {
	em := setupBenchmarkCars(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith3[*benchmarkPosition, *benchmarkTrajectory, *benchmarkLifetime](em)
	}
}

// BenchmarkGetComponent 获取单个组件
func BenchmarkGetComponent(b *testing.B) {
	em := setupBenchmarkCars(1)
	entity := EntityID(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := GetComponent[*benchmarkTrajectory](em, entity); !ok {
			b.Fatal("component not found")
		}
	}
}

// BenchmarkDestroyAndRemove 模拟每帧销毁一批过期车辆
func BenchmarkDestroyAndRemove(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		em := setupBenchmarkCars(500)
		b.StartTimer()

		for _, id := range GetEntitiesWith1[*benchmarkLifetime](em) {
			em.DestroyEntity(id)
		}
		em.RemoveMarkedEntities()
	}
}
