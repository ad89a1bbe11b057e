// Package sample produces blue-noise point sets with Bridson's Poisson-disc
// algorithm, accelerated by a dense bucket grid.
package sample

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

const (
	// MinRadius is the smallest separation the sampler will work with.
	MinRadius = 0.1

	// DefaultAttempts is the conventional rejection budget per active point.
	DefaultAttempts = 30

	// neighborReach covers every cell that can hold a point closer than r
	// when the cell size is r/sqrt(2).
	neighborReach = 2
)

// Region describes the sampling rectangle [0, Width) × [0, Height).
type Region struct {
	Width, Height float64
	Radius        float64 // minimum separation between accepted points
	Attempts      int     // candidates tried around an active point before it retires

	// Border injects the four corners and evenly spaced edge points before
	// the rejection loop so the set reaches the region's edges.
	Border bool
}

// Clamped returns a copy of r with degenerate values raised to safe floors.
func (r Region) Clamped() Region {
	if !(r.Radius >= MinRadius) {
		r.Radius = MinRadius
	}
	if !(r.Width >= r.Radius) {
		r.Width = r.Radius
	}
	if !(r.Height >= r.Radius) {
		r.Height = r.Radius
	}
	if r.Attempts < 1 {
		r.Attempts = 1
	}
	return r
}

// PointSet is the ordered output of the sampler. Injected boundary points,
// when present, occupy the leading indices.
type PointSet struct {
	Points []r2.Point
	Radius float64

	boundary int
}

// Len returns the number of points.
func (ps PointSet) Len() int { return len(ps.Points) }

// IsBoundary reports whether point i was injected along the region border
// rather than accepted by the rejection loop.
func (ps PointSet) IsBoundary(i int) bool { return i < ps.boundary }

// Boundary returns the number of injected boundary points.
func (ps PointSet) Boundary() int { return ps.boundary }

// Generate samples region with a random source seeded from seed.
func Generate(region Region, seed int64) PointSet {
	return GenerateRand(rand.New(rand.NewSource(seed)), region)
}

// GenerateRand samples region drawing every random number from rng.
func GenerateRand(rng *rand.Rand, region Region) PointSet {
	region = region.Clamped()
	r := region.Radius
	r2min := r * r

	grid := NewGrid(region.Width, region.Height, r/math.Sqrt2)
	points := make([]r2.Point, 0, grid.W*grid.H/2)
	active := make([]int, 0, 128)

	insert := func(p r2.Point) {
		idx := len(points)
		points = append(points, p)
		active = append(active, idx)
		grid.Insert(p, idx)
	}

	valid := func(c r2.Point) bool {
		if c.X < 0 || c.X >= region.Width || c.Y < 0 || c.Y >= region.Height {
			return false
		}
		ok := true
		grid.Neighbors(c, neighborReach, func(idx int) bool {
			d := points[idx].Sub(c)
			if d.Dot(d) < r2min {
				ok = false
			}
			return ok
		})
		return ok
	}

	var boundary int
	if region.Border {
		for _, p := range borderPoints(region) {
			insert(p)
		}
		boundary = len(points)
	}
	insert(r2.Point{X: region.Width / 2, Y: region.Height / 2})

	for len(active) > 0 {
		ai := rng.Intn(len(active))
		center := points[active[ai]]

		accepted := false
		for a := 0; a < region.Attempts; a++ {
			angle := rng.Float64() * 2 * math.Pi
			dist := r + rng.Float64()*r
			candidate := r2.Point{
				X: center.X + dist*math.Sin(angle),
				Y: center.Y + dist*math.Cos(angle),
			}
			if valid(candidate) {
				insert(candidate)
				accepted = true
				break
			}
		}

		if !accepted {
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return PointSet{Points: points, Radius: r, boundary: boundary}
}

// borderPoints returns the corners followed by evenly spaced points along
// the bottom, top, left and right edges. Spacing is the edge length divided
// by floor(edge/r), so neighbouring edge points sit at least r apart.
func borderPoints(region Region) []r2.Point {
	w, h := region.Width, region.Height
	pts := []r2.Point{{X: 0, Y: 0}, {X: w, Y: 0}, {X: 0, Y: h}, {X: w, Y: h}}

	nx := max(1, int(math.Floor(w/region.Radius)))
	stepX := w / float64(nx)
	for k := 1; k < nx; k++ {
		x := float64(k) * stepX
		pts = append(pts, r2.Point{X: x, Y: 0}, r2.Point{X: x, Y: h})
	}

	ny := max(1, int(math.Floor(h/region.Radius)))
	stepY := h / float64(ny)
	for k := 1; k < ny; k++ {
		y := float64(k) * stepY
		pts = append(pts, r2.Point{X: 0, Y: y}, r2.Point{X: w, Y: y})
	}
	return pts
}
