package components

// RGBA is an 8-bit-per-channel color with a floating point alpha in [0, 1].
type RGBA struct {
	r, g, b uint8
	alpha   float32
}

// NewRGBA builds a color, clamping alpha to [0, 1].
func NewRGBA(r, g, b uint8, alpha float32) RGBA {
	return RGBA{r: r, g: g, b: b, alpha: min(max(alpha, 0), 1)}
}

// RGBAFromHex decodes 0xRRGGBBAA.
func RGBAFromHex(hex uint32) RGBA {
	return RGBA{
		r:     uint8(hex >> 24),
		g:     uint8(hex >> 16),
		b:     uint8(hex >> 8),
		alpha: float32(uint8(hex)) / 255,
	}
}

// EmptyRGBA is opaque black.
func EmptyRGBA() RGBA {
	return RGBA{alpha: 1}
}

// DefaultRGBA is the color used when none is specified.
func DefaultRGBA() RGBA {
	return RGBA{r: 1, g: 1, b: 1, alpha: 1}
}

// Get returns the channels.
func (c RGBA) Get() (r, g, b uint8, alpha float32) {
	return c.r, c.g, c.b, c.alpha
}

// Color is either one RGBA for the whole shape or a flat list of per-vertex
// channel values.
type Color struct {
	uniform   RGBA
	perVertex []float32
	vertex    bool
}

// UniformColor paints every vertex with c.
func UniformColor(c RGBA) Color {
	return Color{uniform: c}
}

// PerVertexColor assigns colors vertex by vertex.
func PerVertexColor(colors []float32) Color {
	return Color{perVertex: colors, vertex: true}
}

// DefaultColor is a uniform DefaultRGBA.
func DefaultColor() Color {
	return UniformColor(DefaultRGBA())
}

// IsUniform reports whether the color applies to every vertex.
func (c Color) IsUniform() bool {
	return !c.vertex
}

// Uniform returns the uniform color, if any.
func (c Color) Uniform() (RGBA, bool) {
	if c.vertex {
		return RGBA{}, false
	}
	return c.uniform, true
}

// VertexColors returns the per-vertex values, if any.
func (c Color) VertexColors() ([]float32, bool) {
	if !c.vertex {
		return nil, false
	}
	return c.perVertex, true
}
