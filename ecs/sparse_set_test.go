package ecs_test

import (
	"testing"

	"github.com/plus3/chronos/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparseSetNew(t *testing.T) {
	set := ecs.NewSparseSet[string](0)
	assert.Equal(t, 0, set.Size())
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Owners())
	assert.Empty(t, set.Values())
	assert.Nil(t, set.Get(0))
}

func TestSparseSetAdd(t *testing.T) {
	set := ecs.NewSparseSet[string](10)
	set.Add(0, "Hello")
	set.Add(1, "World")
	set.Add(2, "Engine")

	assert.Equal(t, 3, set.Len())
	assert.Len(t, set.Owners(), 3)
	assert.Equal(t, "Hello", *set.Get(0))
	assert.Equal(t, "World", *set.Get(1))
	assert.Equal(t, "Engine", *set.Get(2))
}

func TestSparseSetAddReplacesExisting(t *testing.T) {
	set := ecs.NewSparseSet[string](4)
	set.Add(1, "first")
	set.Add(1, "second")

	assert.Equal(t, 1, set.Len())
	assert.Equal(t, "second", *set.Get(1))
}

func TestSparseSetAddOutOfRangePanics(t *testing.T) {
	set := ecs.NewSparseSet[string](2)
	assert.Panics(t, func() { set.Add(2, "nope") })
}

func TestSparseSetRemove(t *testing.T) {
	set := ecs.NewSparseSet[string](10)
	set.Add(0, "Hello")
	set.Add(5, "World")
	set.Add(7, "Engine")

	assert.True(t, set.Remove(5))

	assert.Equal(t, 2, set.Len())
	assert.Len(t, set.Owners(), 2)
	assert.Nil(t, set.Get(5))
	assert.Nil(t, set.Get(1))
	assert.Equal(t, "Hello", *set.Get(0))
	assert.Equal(t, "Engine", *set.Get(7))
}

func TestSparseSetRemoveLast(t *testing.T) {
	set := ecs.NewSparseSet[string](10)
	set.Add(0, "Hello")
	set.Add(7, "Engine")

	assert.True(t, set.Remove(7))
	assert.Nil(t, set.Get(7))
	assert.Equal(t, "Hello", *set.Get(0))
	assert.Equal(t, []ecs.EntityId{0}, set.Owners())
}

func TestSparseSetRemoveAbsent(t *testing.T) {
	set := ecs.NewSparseSet[string](4)
	set.Add(1, "one")

	assert.False(t, set.Remove(2))
	assert.False(t, set.Remove(100))
	assert.Equal(t, 1, set.Len())
}

func TestSparseSetAddRemoveMixed(t *testing.T) {
	set := ecs.NewSparseSet[string](10)
	set.Add(0, "Hello")
	set.Add(5, "World")
	set.Add(7, "Engine")

	set.Remove(5)
	set.Add(2, "Chronos")

	assert.Equal(t, 3, set.Len())
	assert.Nil(t, set.Get(5))
	assert.Nil(t, set.Get(1))
	assert.Equal(t, "Hello", *set.Get(0))
	assert.Equal(t, "Engine", *set.Get(7))
	assert.Equal(t, "Chronos", *set.Get(2))
}

func TestSparseSetResize(t *testing.T) {
	set := ecs.NewSparseSet[string](2)
	set.Add(1, "kept")

	set.Resize(5)
	assert.Equal(t, 5, set.Size())

	set.Add(3, "Resize")
	assert.Equal(t, "Resize", *set.Get(3))
	assert.Equal(t, "kept", *set.Get(1))

	set.Resize(1)
	assert.Equal(t, 5, set.Size(), "resize never shrinks")
}

func TestSparseSetGetIsMutable(t *testing.T) {
	set := ecs.NewSparseSet[Position](4)
	set.Add(2, Position{X: 1, Y: 1})

	set.Get(2).X = 10
	assert.Equal(t, float32(10), set.Get(2).X)
}

func TestSparseSetInvariantsUnderChurn(t *testing.T) {
	set := ecs.NewSparseSet[int](64)
	for i := 0; i < 64; i++ {
		set.Add(ecs.EntityId(i), i*10)
	}
	for i := 0; i < 64; i += 3 {
		require.True(t, set.Remove(ecs.EntityId(i)))
	}

	require.Equal(t, len(set.Owners()), len(set.Values()))
	for idx, owner := range set.Owners() {
		assert.Equal(t, int(owner)*10, set.Values()[idx])
		assert.Same(t, &set.Values()[idx], set.Get(owner))
	}
	for i := 0; i < 64; i++ {
		assert.Equal(t, i%3 != 0, set.Has(ecs.EntityId(i)), "entity %d", i)
	}
}
