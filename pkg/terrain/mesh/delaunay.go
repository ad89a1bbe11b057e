package mesh

import (
	"math"

	"github.com/fogleman/delaunay"
	"github.com/golang/geo/r2"
)

type edgeKey struct{ u, v int }

// Triangulate computes the Delaunay triangulation of points. Fewer than
// three usable points, or input with no triangulation (all collinear),
// yield an empty triangulation. Exact duplicates and non-finite points are
// skipped and never referenced by a triangle. Triangles are CCW and index
// into points.
func Triangulate(points []r2.Point) *Triangulation {
	tr := &Triangulation{Points: points}
	if len(points) < 3 {
		return tr
	}

	index := make([]int, 0, len(points))
	input := make([]delaunay.Point, 0, len(points))
	seen := make(map[r2.Point]struct{}, len(points))
	for i, p := range points {
		if !finite(p) {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		index = append(index, i)
		input = append(input, delaunay.Point{X: p.X, Y: p.Y})
	}
	if len(input) < 3 {
		return tr
	}

	d, err := delaunay.Triangulate(input)
	if err != nil || len(d.Triangles) == 0 {
		return tr
	}

	tr.Triangles = make([]int, len(d.Triangles))
	for t := 0; t < len(d.Triangles); t += 3 {
		a, b, c := index[d.Triangles[t]], index[d.Triangles[t+1]], index[d.Triangles[t+2]]
		if orient(points[a], points[b], points[c]) < 0 {
			b, c = c, b
		}
		tr.Triangles[t], tr.Triangles[t+1], tr.Triangles[t+2] = a, b, c
	}
	tr.link()
	return tr
}

func orient(a, b, c r2.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func finite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
