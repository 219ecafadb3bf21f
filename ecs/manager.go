package ecs

import (
	"reflect"

	"go.uber.org/zap"
)

// Component is one element of a creation bundle. Build it with With.
type Component interface {
	attach(d *ComponentDirectory, id EntityId)
	Type() reflect.Type
}

type bundled[T any] struct {
	value T
}

// With wraps value for CreateEntity, keeping its compile-time type.
func With[T any](value T) Component {
	return bundled[T]{value: value}
}

func (b bundled[T]) attach(d *ComponentDirectory, id EntityId) {
	PutComponent(d, id, b.value)
}

func (b bundled[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// EntityManager allocates and recycles entity ids and owns the component
// directory. It is not safe for concurrent use.
type EntityManager struct {
	nextId    EntityId
	freeIds   []EntityId
	freeMask  idSet
	directory *ComponentDirectory
	logger    *zap.Logger
}

// NewEntityManager creates a manager whose directory starts at capacity.
func NewEntityManager(capacity int, opts ...Option) *EntityManager {
	o := buildOptions(opts)
	return &EntityManager{
		directory: NewComponentDirectory(capacity, opts...),
		logger:    o.logger,
	}
}

// CreateEntity allocates an id, reusing the most recently freed one first, and
// attaches every component of the bundle in order.
func (m *EntityManager) CreateEntity(bundle ...Component) EntityId {
	var id EntityId
	if n := len(m.freeIds); n > 0 {
		id = m.freeIds[n-1]
		m.freeIds = m.freeIds[:n-1]
		m.freeMask.unset(id)
	} else {
		id = m.nextId
		m.nextId++
	}

	for _, c := range bundle {
		c.attach(m.directory, id)
	}
	return id
}

// RemoveEntity purges every component of id and returns the id to the free
// pool. Ids that are not live are rejected.
func (m *EntityManager) RemoveEntity(id EntityId) error {
	if !m.EntityExists(id) {
		m.logger.Warn("remove of unknown entity", zap.Stringer("entity", id))
		return unknownEntity(id)
	}

	m.directory.RemoveAllComponents(id)
	m.freeIds = append(m.freeIds, id)
	m.freeMask.set(id)
	return nil
}

// EntityCount returns the number of live entities.
func (m *EntityManager) EntityCount() int {
	return int(m.nextId) - len(m.freeIds)
}

// EntityExists reports whether id has been issued and not removed since.
func (m *EntityManager) EntityExists(id EntityId) bool {
	return id < m.nextId && !m.freeMask.has(id)
}

// Directory exposes the underlying component directory.
func (m *EntityManager) Directory() *ComponentDirectory {
	return m.directory
}

// AddComponent attaches value to a live entity.
func AddComponent[T any](m *EntityManager, id EntityId, value T) error {
	if !m.EntityExists(id) {
		m.logger.Warn("add component to unknown entity",
			zap.Stringer("entity", id),
			zap.Stringer("type", reflect.TypeFor[T]()))
		return unknownEntity(id)
	}
	PutComponent(m.directory, id, value)
	return nil
}

// GetComponent returns the T of a live entity. It fails with ErrUnknownEntity
// or ErrComponentNotFound.
func GetComponent[T any](m *EntityManager, id EntityId) (*T, error) {
	if !m.EntityExists(id) {
		return nil, unknownEntity(id)
	}
	v := LookupComponent[T](m.directory, id)
	if v == nil {
		return nil, componentNotFound(id, reflect.TypeFor[T]())
	}
	return v, nil
}

// ReadComponent returns the T of id, or nil for any reason it is unavailable.
func ReadComponent[T any](m *EntityManager, id EntityId) *T {
	if !m.EntityExists(id) {
		return nil
	}
	return LookupComponent[T](m.directory, id)
}

// HasComponent reports whether the live entity id holds a T.
func HasComponent[T any](m *EntityManager, id EntityId) bool {
	return ReadComponent[T](m, id) != nil
}

// RemoveComponent detaches the T of a live entity.
func RemoveComponent[T any](m *EntityManager, id EntityId) error {
	if !m.EntityExists(id) {
		return unknownEntity(id)
	}
	if !DeleteComponent[T](m.directory, id) {
		return componentNotFound(id, reflect.TypeFor[T]())
	}
	return nil
}
