package ecs

import "reflect"

// componentColumn is the type-erased view of one SparseSet held by the
// directory. Only this package implements it.
type componentColumn interface {
	Remove(id EntityId) bool
	Resize(capacity int)
	Size() int
	Len() int
	componentType() reflect.Type
}

// column binds a SparseSet to its registered type.
type column[T any] struct {
	*SparseSet[T]
	typ reflect.Type
}

func newColumn[T any](capacity int) *column[T] {
	return &column[T]{
		SparseSet: NewSparseSet[T](capacity),
		typ:       reflect.TypeFor[T](),
	}
}

func (c *column[T]) componentType() reflect.Type {
	return c.typ
}
