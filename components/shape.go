package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape is an ordered vertex list.
type Shape struct {
	vertices []mgl32.Vec3
}

// NewShape wraps an arbitrary vertex list.
func NewShape(vertices []mgl32.Vec3) Shape {
	return Shape{vertices: vertices}
}

func NewTriangle(v1, v2, v3 mgl32.Vec3) Shape {
	return Shape{vertices: []mgl32.Vec3{v1, v2, v3}}
}

func NewRectangle(v1, v2, v3, v4 mgl32.Vec3) Shape {
	return Shape{vertices: []mgl32.Vec3{v1, v2, v3, v4}}
}

// NewCircle returns the center followed by segments points on the circle, all
// in the center's z plane.
func NewCircle(center mgl32.Vec3, radius float32, segments int) Shape {
	vertices := make([]mgl32.Vec3, 0, segments+1)
	vertices = append(vertices, center)

	for i := 0; i < segments; i++ {
		angle := float64(i) / float64(segments) * 2 * math.Pi
		vertices = append(vertices, mgl32.Vec3{
			center.X() + radius*float32(math.Cos(angle)),
			center.Y() + radius*float32(math.Sin(angle)),
			center.Z(),
		})
	}

	return Shape{vertices: vertices}
}

// Vertices returns the vertex list. Callers must not modify it.
func (s Shape) Vertices() []mgl32.Vec3 {
	return s.vertices
}
