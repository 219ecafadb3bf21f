package ecs

import "fmt"

// absent marks a sparse slot with no dense entry.
const absent = -1

// SparseSet stores the components of a single type T. Values live in a dense,
// hole-free array; owners[i] is the entity that owns dense[i], and sparse maps
// an entity id to its dense slot.
type SparseSet[T any] struct {
	sparse []int
	dense  []T
	owners []EntityId
}

// NewSparseSet creates a set able to hold entity ids below capacity.
func NewSparseSet[T any](capacity int) *SparseSet[T] {
	s := &SparseSet[T]{}
	s.Resize(capacity)
	return s
}

// Resize grows the sparse index to newCapacity. It never shrinks.
func (s *SparseSet[T]) Resize(newCapacity int) {
	old := len(s.sparse)
	if newCapacity <= old {
		return
	}
	s.sparse = append(s.sparse, make([]int, newCapacity-old)...)
	for i := old; i < newCapacity; i++ {
		s.sparse[i] = absent
	}
}

// Add stores value for id. The id must be below Size(); the directory grows
// every column before delegating here. An id that already holds a value has
// it replaced in place.
func (s *SparseSet[T]) Add(id EntityId, value T) {
	if int(id) >= len(s.sparse) {
		panic(fmt.Sprintf("sparse set: %s out of range (size %d)", id, len(s.sparse)))
	}

	if idx := s.sparse[id]; idx != absent {
		s.dense[idx] = value
		return
	}

	s.dense = append(s.dense, value)
	s.owners = append(s.owners, id)
	s.sparse[id] = len(s.dense) - 1
}

// Remove deletes the value owned by id by moving the last dense element into
// its slot. Dense order is not preserved. Returns false when id holds nothing.
func (s *SparseSet[T]) Remove(id EntityId) bool {
	idx := s.index(id)
	if idx == absent {
		return false
	}

	last := len(s.owners) - 1
	if last < 0 {
		panic("sparse set: owners empty while removing " + id.String())
	}

	moved := s.owners[last]
	s.dense[idx] = s.dense[last]
	s.owners[idx] = moved

	var zero T
	s.dense[last] = zero
	s.dense = s.dense[:last]
	s.owners = s.owners[:last]

	if idx < last {
		s.sparse[moved] = idx
	}
	s.sparse[id] = absent
	return true
}

// Get returns a pointer to the value owned by id, or nil. The pointer is only
// valid until the next Add or Remove on this set.
func (s *SparseSet[T]) Get(id EntityId) *T {
	idx := s.index(id)
	if idx == absent {
		return nil
	}
	return &s.dense[idx]
}

// Has reports whether id holds a value.
func (s *SparseSet[T]) Has(id EntityId) bool {
	return s.index(id) != absent
}

// Size returns the capacity of the sparse index, not the number of values.
func (s *SparseSet[T]) Size() int {
	return len(s.sparse)
}

// Len returns the number of stored values.
func (s *SparseSet[T]) Len() int {
	return len(s.dense)
}

// Owners returns the dense owner array. Callers must not modify it.
func (s *SparseSet[T]) Owners() []EntityId {
	return s.owners
}

// Values returns the dense value array, parallel to Owners.
func (s *SparseSet[T]) Values() []T {
	return s.dense
}

func (s *SparseSet[T]) index(id EntityId) int {
	if int(id) >= len(s.sparse) {
		return absent
	}
	return s.sparse[id]
}
