package components

// Material pairs a compiled shader program with the color it is drawn with.
type Material struct {
	ShaderId uint32
	Color    Color
}
