package ecs_test

import (
	"errors"
	"fmt"

	"github.com/plus3/chronos/ecs"
)

// ExampleEntityManager demonstrates the basic lifecycle of entities and their
// components. Components of one type live in a single dense column, so ids are
// cheap integers and lookups are constant time.
func ExampleEntityManager() {
	m := ecs.NewEntityManager(16)

	player := m.CreateEntity(
		ecs.With(Position{X: 10, Y: 20}),
		ecs.With(Health{Current: 100, Max: 100}),
	)

	pos := ecs.ReadComponent[Position](m, player)
	fmt.Printf("Player spawned at (%.0f, %.0f)\n", pos.X, pos.Y)

	pos.X = 15
	pos.Y = 25
	pos = ecs.ReadComponent[Position](m, player)
	fmt.Printf("Player moved to (%.0f, %.0f)\n", pos.X, pos.Y)

	_ = m.RemoveEntity(player)
	fmt.Println("Entities:", m.EntityCount())

	// Output:
	// Player spawned at (10, 20)
	// Player moved to (15, 25)
	// Entities: 0
}

// ExampleEntityManager_idReuse shows that freed ids are handed out again, most
// recently freed first. Ids carry no generation, so a stale copy of a removed
// id refers to whatever entity is created next.
func ExampleEntityManager_idReuse() {
	m := ecs.NewEntityManager(4)
	a := m.CreateEntity()
	b := m.CreateEntity()
	_ = m.RemoveEntity(a)
	_ = m.RemoveEntity(b)

	fmt.Println(m.CreateEntity(), m.CreateEntity(), m.CreateEntity())

	// Output:
	// entity#1 entity#0 entity#2
}

// ExampleGetComponent shows how missing entities and missing components are
// reported.
func ExampleGetComponent() {
	m := ecs.NewEntityManager(4)
	id := m.CreateEntity(ecs.With(Name{Value: "crate"}))

	name, _ := ecs.GetComponent[Name](m, id)
	fmt.Println(name.Value)

	_, err := ecs.GetComponent[Velocity](m, id)
	fmt.Println(errors.Is(err, ecs.ErrComponentNotFound))

	_ = m.RemoveEntity(id)
	_, err = ecs.GetComponent[Name](m, id)
	fmt.Println(errors.Is(err, ecs.ErrUnknownEntity))

	// Output:
	// crate
	// true
	// true
}
