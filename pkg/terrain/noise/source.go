// Package noise synthesises normalised fractal height fields from a seeded
// 2D noise primitive.
package noise

import (
	"strings"

	perlin "github.com/aquilax/go-perlin"
)

// Source is a 2D noise primitive with output in [-1, 1].
type Source interface {
	Noise2D(x, y float64) float64
}

// Primitive names accepted by NewSource.
const (
	KindSimplex = "simplex"
	KindPerlin  = "perlin"
)

// NewSource returns the primitive named by kind, seeded with seed.
// Unknown or empty kinds select simplex.
func NewSource(kind string, seed int64) Source {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindPerlin:
		return NewPerlin(seed)
	default:
		return NewSimplex(seed)
	}
}

// Perlin is classic gradient noise. Only one octave is taken from the
// underlying generator; layering is done by Generate.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin seeds a single-octave Perlin generator.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(2, 2, 1, seed)}
}

// Noise2D returns Perlin noise at (x, y), clamped to [-1, 1].
func (p *Perlin) Noise2D(x, y float64) float64 {
	v := p.p.Noise2D(x, y)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
