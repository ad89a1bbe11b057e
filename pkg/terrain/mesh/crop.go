package mesh

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Crop returns a copy of m keeping only the triangles whose XY footprint
// intersects rect. Vertices are left in place so surviving indices, UVs
// and any per-vertex data stay valid.
func Crop(m Mesh, rect r2.Rect) Mesh {
	out := m.Clone()
	if rect.IsEmpty() {
		out.Triangles = nil
		return out.Recalculated()
	}

	kept := make([]int, 0, len(m.Triangles))
	for i := 0; i+2 < len(m.Triangles); i += 3 {
		a := xy(m.Vertices[m.Triangles[i]])
		b := xy(m.Vertices[m.Triangles[i+1]])
		c := xy(m.Vertices[m.Triangles[i+2]])
		if triangleIntersectsRect(a, b, c, rect) {
			kept = append(kept, m.Triangles[i], m.Triangles[i+1], m.Triangles[i+2])
		}
	}
	out.Triangles = kept
	return out.Recalculated()
}

// CropMargin trims triangles lying entirely within margin of the edges of
// the [0, width] × [0, height] region. A non-positive margin returns m
// unchanged.
func CropMargin(m Mesh, width, height, margin float64) Mesh {
	if margin <= 0 {
		return m
	}
	region := r2.RectFromPoints(r2.Point{}, r2.Point{X: width, Y: height})
	return Crop(m, region.ExpandedByMargin(-margin))
}

func triangleIntersectsRect(a, b, c r2.Point, rect r2.Rect) bool {
	if rect.ContainsPoint(a) || rect.ContainsPoint(b) || rect.ContainsPoint(c) {
		return true
	}

	corners := rect.Vertices()
	for _, q := range corners {
		if pointInTriangle(q, a, b, c) {
			return true
		}
	}

	tri := [3][2]r2.Point{{a, b}, {b, c}, {c, a}}
	for i := range corners {
		r0, r1 := corners[i], corners[(i+1)%4]
		for _, e := range tri {
			if segmentsIntersect(e[0], e[1], r0, r1) {
				return true
			}
		}
	}
	return false
}

// pointInTriangle accepts either winding and counts the boundary as inside.
func pointInTriangle(p, a, b, c r2.Point) bool {
	o1 := orient(a, b, p)
	o2 := orient(b, c, p)
	o3 := orient(c, a, p)
	return (o1 >= 0 && o2 >= 0 && o3 >= 0) || (o1 <= 0 && o2 <= 0 && o3 <= 0)
}

func segmentsIntersect(p1, p2, q1, q2 r2.Point) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(q1, q2, p1):
		return true
	case d2 == 0 && onSegment(q1, q2, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, q1):
		return true
	case d4 == 0 && onSegment(p1, p2, q2):
		return true
	}
	return false
}

// onSegment reports whether collinear point p lies within segment ab's box.
func onSegment(a, b, p r2.Point) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

func xy(v r3.Vector) r2.Point { return r2.Point{X: v.X, Y: v.Y} }
