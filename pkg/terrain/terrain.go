// Package terrain runs the full generation pipeline: Poisson-disc sampling,
// Delaunay triangulation, box-projected UVs, fractal noise and displacement.
//
// Every stage is deterministic for a given Params value. Stages draw from
// their own random sources derived from Params.Seed, so each can be rerun on
// its own.
package terrain

import (
	"hash/fnv"
	"io"
	"log/slog"
	"math/rand"

	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/compose"
	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/mesh"
	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/noise"
	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/sample"
	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/uv"
)

// Params is the complete input of one generation.
type Params struct {
	Seed int64

	Sampling    sample.Region
	Noise       noise.Params
	NoiseSource string // noise.KindSimplex or noise.KindPerlin

	UVScale          float64
	Regions          []compose.Region
	Curve            compose.Curve
	HeightMultiplier float64

	// CleanupMargin drops triangles that lie entirely within this distance
	// of the region edge. Zero disables cleanup.
	CleanupMargin float64
}

// DefaultParams returns the editor defaults.
func DefaultParams() Params {
	return Params{
		Sampling: sample.Region{
			Width:    10,
			Height:   10,
			Radius:   1,
			Attempts: sample.DefaultAttempts,
		},
		Noise: noise.Params{
			Resolution:  256,
			Scale:       20,
			Octaves:     4,
			Persistence: 0.5,
			Lacunarity:  2,
		},
		NoiseSource:      noise.KindSimplex,
		UVScale:          500,
		Regions:          compose.DefaultRegions(),
		HeightMultiplier: 1,
	}
}

// Result holds the output of every stage.
type Result struct {
	Points        sample.PointSet
	Triangulation *mesh.Triangulation
	Mesh          mesh.Mesh
	Field         noise.Field
	Colors        compose.ColorBuffer
}

// Option configures Generate.
type Option func(*options)

type options struct {
	log *slog.Logger
}

// WithLogger reports stage progress to log at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Generate runs the pipeline. Fewer than three sampled points produce an
// empty mesh; the field and colors are still computed.
func Generate(p Params, opts ...Option) *Result {
	o := options{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log

	region := p.Sampling.Clamped()
	points := sample.GenerateRand(rand.New(rand.NewSource(p.Seed)), region)
	log.Debug("points sampled",
		"points", points.Len(),
		"boundary", points.Boundary(),
		"radius", region.Radius,
	)

	tri := mesh.Triangulate(points.Points)
	m := tri.Mesh()
	if tri.Empty() {
		log.Debug("triangulation skipped", "points", points.Len())
	} else {
		log.Debug("points triangulated", "triangles", tri.Len())
	}

	if p.CleanupMargin > 0 && !m.Empty() {
		before := m.TriangleCount()
		m = mesh.CropMargin(m, region.Width, region.Height, p.CleanupMargin)
		log.Debug("border cleaned", "removed", before-m.TriangleCount(), "margin", p.CleanupMargin)
	}

	m.UV = uv.Compute(rand.New(rand.NewSource(p.Seed+1)), m.Vertices, p.UVScale)

	field := noise.Generate(noise.NewSource(p.NoiseSource, p.Seed), p.Noise)
	log.Debug("noise generated", "size", field.Size, "source", p.NoiseSource)

	m, colors := compose.Compose(m, field, p.Regions, p.Curve, p.HeightMultiplier)
	log.Debug("terrain composed",
		"vertices", len(m.Vertices),
		"triangles", m.TriangleCount(),
		"minZ", m.Bounds.Min.Z,
		"maxZ", m.Bounds.Max.Z,
	)

	return &Result{
		Points:        points,
		Triangulation: tri,
		Mesh:          m,
		Field:         field,
		Colors:        colors,
	}
}

// SeedFromPhrase hashes a human-readable phrase into a seed.
func SeedFromPhrase(phrase string) int64 {
	h := fnv.New64a()
	h.Write([]byte(phrase))
	return int64(h.Sum64())
}
