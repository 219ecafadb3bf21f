package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
	"go.uber.org/zap"
)

// ComponentDirectory holds one SparseSet per component type, created on first
// use. All columns share a single capacity so that any entity id is
// addressable in every column, including columns the entity has nothing in.
type ComponentDirectory struct {
	columns  *intmap.Map[int, componentColumn]
	order    []componentColumn
	capacity int
	logger   *zap.Logger
}

// ColumnInfo describes a registered column.
type ColumnInfo struct {
	Type     reflect.Type
	Len      int
	Capacity int
}

// NewComponentDirectory creates an empty directory whose columns start with
// the given capacity.
func NewComponentDirectory(capacity int, opts ...Option) *ComponentDirectory {
	o := buildOptions(opts)
	return &ComponentDirectory{
		columns:  intmap.New[int, componentColumn](16),
		capacity: max(capacity, 0),
		logger:   o.logger,
	}
}

// Capacity returns the shared sparse capacity of every column.
func (d *ComponentDirectory) Capacity() int {
	return d.capacity
}

// ColumnCount returns the number of registered component types.
func (d *ComponentDirectory) ColumnCount() int {
	return len(d.order)
}

// Columns describes every registered column in registration order.
func (d *ComponentDirectory) Columns() []ColumnInfo {
	infos := make([]ColumnInfo, 0, len(d.order))
	for _, col := range d.order {
		infos = append(infos, ColumnInfo{
			Type:     col.componentType(),
			Len:      col.Len(),
			Capacity: col.Size(),
		})
	}
	return infos
}

// RemoveAllComponents removes id from every column, whether or not it held a
// value there.
func (d *ComponentDirectory) RemoveAllComponents(id EntityId) {
	for _, col := range d.order {
		col.Remove(id)
	}
}

// PutComponent stores value for id in the column for T, registering the
// column and growing the shared capacity as needed.
func PutComponent[T any](d *ComponentDirectory, id EntityId, value T) {
	col := lookupColumn[T](d)
	if col == nil {
		col = registerColumn[T](d)
	}

	if int(id) >= d.capacity {
		d.grow(int(id) + 1)
	}

	col.Add(id, value)
}

// LookupComponent returns the T owned by id, or nil when T was never stored
// or id holds no T.
func LookupComponent[T any](d *ComponentDirectory, id EntityId) *T {
	col := lookupColumn[T](d)
	if col == nil {
		return nil
	}
	return col.Get(id)
}

// ContainsComponent reports whether id holds a T.
func ContainsComponent[T any](d *ComponentDirectory, id EntityId) bool {
	return LookupComponent[T](d, id) != nil
}

// DeleteComponent removes the T owned by id. Returns false when there was none.
func DeleteComponent[T any](d *ComponentDirectory, id EntityId) bool {
	col := lookupColumn[T](d)
	if col == nil {
		return false
	}
	return col.Remove(id)
}

// Column returns the SparseSet backing T, or nil when T was never stored.
func Column[T any](d *ComponentDirectory) *SparseSet[T] {
	col := lookupColumn[T](d)
	if col == nil {
		return nil
	}
	return col.SparseSet
}

func lookupColumn[T any](d *ComponentDirectory) *column[T] {
	erased, ok := d.columns.Get(typeKey(reflect.TypeFor[T]()))
	if !ok {
		return nil
	}

	col, ok := erased.(*column[T])
	if !ok {
		panic("component directory: column for " + reflect.TypeFor[T]().String() +
			" holds " + erased.componentType().String())
	}
	return col
}

func registerColumn[T any](d *ComponentDirectory) *column[T] {
	col := newColumn[T](d.capacity)
	d.columns.Put(typeKey(col.typ), col)
	d.order = append(d.order, col)

	d.logger.Debug("registered component column",
		zap.Stringer("type", col.typ),
		zap.Int("capacity", d.capacity))
	return col
}

// grow doubles the shared capacity until it reaches minCapacity and resizes
// every column to match.
func (d *ComponentDirectory) grow(minCapacity int) {
	newCapacity := d.capacity
	if newCapacity == 0 {
		newCapacity = minCapacity
	}
	for newCapacity < minCapacity {
		newCapacity *= 2
	}

	d.logger.Debug("growing component directory",
		zap.Int("from", d.capacity),
		zap.Int("to", newCapacity),
		zap.Int("columns", len(d.order)))

	d.capacity = newCapacity
	for _, col := range d.order {
		col.Resize(newCapacity)
	}
}
