package ecs_test

import (
	"testing"

	"github.com/plus3/chronos/ecs"
)

func BenchmarkCreateEntity(b *testing.B) {
	m := ecs.NewEntityManager(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.CreateEntity(ecs.With(Position{X: 1.0, Y: 2.0}), ecs.With(Velocity{DX: 0.5, DY: 0.5}))
	}
}

func BenchmarkCreateEntityWithMultipleComponents(b *testing.B) {
	m := ecs.NewEntityManager(1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.CreateEntity(
			ecs.With(Position{X: 1.0, Y: 2.0}),
			ecs.With(Velocity{DX: 0.5, DY: 0.5}),
			ecs.With(Health{Current: 100, Max: 100}),
			ecs.With(Name{Value: "Entity"}),
		)
	}
}

func BenchmarkRemoveEntity(b *testing.B) {
	m := ecs.NewEntityManager(b.N)

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = m.CreateEntity(ecs.With(Position{X: 1.0, Y: 2.0}), ecs.With(Velocity{DX: 0.5, DY: 0.5}))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.RemoveEntity(ids[i])
	}
}

func BenchmarkReadComponent(b *testing.B) {
	m := ecs.NewEntityManager(16)
	id := m.CreateEntity(ecs.With(Position{X: 1.0, Y: 2.0}), ecs.With(Velocity{DX: 0.5, DY: 0.5}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.ReadComponent[Position](m, id)
	}
}

func BenchmarkAddComponent(b *testing.B) {
	m := ecs.NewEntityManager(b.N)

	ids := make([]ecs.EntityId, b.N)
	for i := 0; i < b.N; i++ {
		ids[i] = m.CreateEntity(ecs.With(Position{X: 1.0, Y: 2.0}))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ecs.AddComponent(m, ids[i], Velocity{DX: 0.5, DY: 0.5})
	}
}

func BenchmarkChurn(b *testing.B) {
	m := ecs.NewEntityManager(1024)
	for i := 0; i < 1024; i++ {
		m.CreateEntity(ecs.With(Position{}), ecs.With(Health{Current: i}))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := ecs.EntityId(i % 1024)
		_ = m.RemoveEntity(id)
		m.CreateEntity(ecs.With(Position{}), ecs.With(Health{Current: i}))
	}
}
