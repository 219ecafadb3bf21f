package main

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/chronos/components"
	"github.com/plus3/chronos/ecs"
)

type velocity struct {
	DX, DY, DZ float32
}

type lifetime struct {
	Frames int
}

var palette = []uint32{0xFF0000FF, 0x00FF00FF, 0x0000FFFF, 0xF8F4FFFF}

// randomBundle builds one to four components, always starting with a shape so
// every entity is renderable.
func randomBundle(rng *rand.Rand) []ecs.Component {
	origin := mgl32.Vec3{rng.Float32() * 100, rng.Float32() * 100, 0}
	bundle := []ecs.Component{
		ecs.With(components.NewTriangle(origin, origin.Add(mgl32.Vec3{1, 0, 0}), origin.Add(mgl32.Vec3{0, 1, 0}))),
	}

	extra := rng.Intn(4)
	if extra >= 1 {
		bundle = append(bundle, ecs.With(components.UniformColor(components.RGBAFromHex(palette[rng.Intn(len(palette))]))))
	}
	if extra >= 2 {
		bundle = append(bundle, ecs.With(components.TransformFromTranslation(origin)))
	}
	if extra >= 3 {
		bundle = append(bundle, ecs.With(velocity{DX: rng.Float32(), DY: rng.Float32()}))
	}
	if rng.Intn(8) == 0 {
		bundle = append(bundle, ecs.With(lifetime{Frames: rng.Intn(120)}))
	}
	return bundle
}
