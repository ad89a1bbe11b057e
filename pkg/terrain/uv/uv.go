// Package uv assigns box-projected texture coordinates to mesh vertices.
package uv

import (
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// MaxTranslation bounds the random per-call UV offset on each axis.
const MaxTranslation = 0.8

// Facing is the coordinate plane a triangle is projected onto.
type Facing int

const (
	Up      Facing = iota // normal along ±Y, projects (x, z)
	Forward               // normal along ±Z, projects (x, y)
	Right                 // normal along ±X, projects (z, y)
)

func (f Facing) String() string {
	switch f {
	case Forward:
		return "forward"
	case Right:
		return "right"
	default:
		return "up"
	}
}

// FacingOf classifies normal by its largest positive dot product against
// the six axis directions. A zero normal faces Up.
func FacingOf(normal r3.Vector) Facing {
	ret, best := Up, 0.0
	consider := func(dir r3.Vector, f Facing) bool {
		if d := normal.Dot(dir); d > best {
			ret, best = f, d
			return true
		}
		return false
	}

	if !consider(r3.Vector{X: 1}, Right) {
		consider(r3.Vector{X: -1}, Right)
	}
	if !consider(r3.Vector{Z: 1}, Forward) {
		consider(r3.Vector{Z: -1}, Forward)
	}
	if !consider(r3.Vector{Y: 1}, Up) {
		consider(r3.Vector{Y: -1}, Up)
	}
	return ret
}

// Project maps v onto the plane selected by f.
func (f Facing) Project(v r3.Vector) r2.Point {
	switch f {
	case Forward:
		return r2.Point{X: v.X, Y: v.Y}
	case Right:
		return r2.Point{X: v.Z, Y: v.Y}
	default:
		return r2.Point{X: v.X, Y: v.Z}
	}
}

// Compute returns one UV per vertex. Vertices are taken three at a time as
// triangles; a trailing partial group borrows vertices from the start of
// the slice to form its normal. Each projection is divided by scale and
// shifted by one random offset in [0, MaxTranslation) drawn from rng.
// A non-positive scale is treated as 1.
func Compute(rng *rand.Rand, vertices []r3.Vector, scale float64) []r2.Point {
	if !(scale > 0) {
		scale = 1
	}
	shift := r2.Point{
		X: rng.Float64() * MaxTranslation,
		Y: rng.Float64() * MaxTranslation,
	}

	n := len(vertices)
	uvs := make([]r2.Point, n)
	for i := 0; i < n; i += 3 {
		i1, i2 := (i+1)%n, (i+2)%n
		v0, v1, v2 := vertices[i], vertices[i1], vertices[i2]
		facing := FacingOf(v1.Sub(v0).Cross(v2.Sub(v0)))

		for k := i; k < i+3 && k < n; k++ {
			uvs[k] = facing.Project(vertices[k]).Mul(1 / scale).Add(shift)
		}
	}
	return uvs
}

// ComputeSeeded is Compute with a random source seeded from seed.
func ComputeSeeded(seed int64, vertices []r3.Vector, scale float64) []r2.Point {
	return Compute(rand.New(rand.NewSource(seed)), vertices, scale)
}
