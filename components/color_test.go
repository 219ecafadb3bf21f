package components_test

import (
	"testing"

	"github.com/plus3/chronos/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRGBA(t *testing.T, c components.RGBA, r, g, b uint8, alpha float32) {
	t.Helper()
	gotR, gotG, gotB, gotA := c.Get()
	assert.Equal(t, r, gotR)
	assert.Equal(t, g, gotG)
	assert.Equal(t, b, gotB)
	assert.InDelta(t, alpha, gotA, 1e-6)
}

func TestNewRGBA(t *testing.T) {
	assertRGBA(t, components.NewRGBA(255, 128, 64, 0.5), 255, 128, 64, 0.5)
}

func TestNewRGBAClampsAlpha(t *testing.T) {
	assertRGBA(t, components.NewRGBA(1, 2, 3, 4.0), 1, 2, 3, 1)
	assertRGBA(t, components.NewRGBA(1, 2, 3, -2.0), 1, 2, 3, 0)
}

func TestRGBAFromHex(t *testing.T) {
	assertRGBA(t, components.RGBAFromHex(0xFF_00_00_FF), 255, 0, 0, 1)
	assertRGBA(t, components.RGBAFromHex(0xF8_F4_FF_FF), 248, 244, 255, 1)
	assertRGBA(t, components.RGBAFromHex(0x00_00_00_00), 0, 0, 0, 0)
}

func TestEmptyAndDefaultRGBA(t *testing.T) {
	assertRGBA(t, components.EmptyRGBA(), 0, 0, 0, 1)
	assertRGBA(t, components.DefaultRGBA(), 1, 1, 1, 1)
}

func TestUniformColor(t *testing.T) {
	c := components.UniformColor(components.NewRGBA(0, 255, 0, 1))
	assert.True(t, c.IsUniform())

	rgba, ok := c.Uniform()
	require.True(t, ok)
	assertRGBA(t, rgba, 0, 255, 0, 1)

	_, ok = c.VertexColors()
	assert.False(t, ok)
}

func TestPerVertexColor(t *testing.T) {
	c := components.PerVertexColor([]float32{1, 0, 0, 1})
	assert.False(t, c.IsUniform())

	colors, ok := c.VertexColors()
	require.True(t, ok)
	assert.Equal(t, []float32{1, 0, 0, 1}, colors)

	_, ok = c.Uniform()
	assert.False(t, ok)
}

func TestDefaultColor(t *testing.T) {
	rgba, ok := components.DefaultColor().Uniform()
	require.True(t, ok)
	assert.Equal(t, components.DefaultRGBA(), rgba)
}
