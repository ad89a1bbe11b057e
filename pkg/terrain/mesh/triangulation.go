package mesh

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Triangulation is a planar triangulation in half-edge form. Half-edge e
// runs from Points[Triangles[e]] to Points[Triangles[NextHalfedge(e)]] and
// belongs to triangle e/3. Halfedges[e] is the opposite half-edge in the
// neighbouring triangle, or -1 on the hull.
type Triangulation struct {
	Points    []r2.Point
	Triangles []int
	Halfedges []int
}

// Edge is one undirected triangulation edge. Index is the id of the
// half-edge it was reported from and is stable for a fixed input order.
type Edge struct {
	Index int
	P, Q  r2.Point
}

// NextHalfedge returns the half-edge following e inside its triangle.
func NextHalfedge(e int) int {
	if e%3 == 2 {
		return e - 2
	}
	return e + 1
}

// PrevHalfedge returns the half-edge preceding e inside its triangle.
func PrevHalfedge(e int) int {
	if e%3 == 0 {
		return e + 2
	}
	return e - 1
}

// Len returns the number of triangles.
func (t *Triangulation) Len() int { return len(t.Triangles) / 3 }

// Empty reports whether no triangle was produced.
func (t *Triangulation) Empty() bool { return len(t.Triangles) == 0 }

// ForEachTriangle calls fn with every triangle's index and CCW corners.
func (t *Triangulation) ForEachTriangle(fn func(tri int, a, b, c r2.Point)) {
	for i := 0; i < len(t.Triangles); i += 3 {
		fn(i/3, t.Points[t.Triangles[i]], t.Points[t.Triangles[i+1]], t.Points[t.Triangles[i+2]])
	}
}

// ForEachTriangleEdge calls fn once per undirected edge: interior edges are
// reported from the higher-numbered of their two half-edges, hull edges
// from their only one.
func (t *Triangulation) ForEachTriangleEdge(fn func(Edge)) {
	for e := range t.Triangles {
		if e > t.Halfedges[e] {
			fn(Edge{
				Index: e,
				P:     t.Points[t.Triangles[e]],
				Q:     t.Points[t.Triangles[NextHalfedge(e)]],
			})
		}
	}
}

// Mesh returns the triangulation as a flat mesh in the z = 0 plane with
// face normals and bounds filled in. Every input point becomes a vertex at
// its original index.
func (t *Triangulation) Mesh() Mesh {
	if t.Empty() {
		return Mesh{}
	}
	m := Mesh{
		Vertices:  make([]r3.Vector, len(t.Points)),
		Triangles: append([]int(nil), t.Triangles...),
	}
	for i, p := range t.Points {
		if finite(p) {
			m.Vertices[i] = r3.Vector{X: p.X, Y: p.Y}
		}
	}
	m.Normals = FaceNormals(m.Vertices, m.Triangles)
	m.Bounds = ComputeBounds(m.Vertices)
	return m
}

// link fills Halfedges by pairing each directed edge u->v with v->u.
func (t *Triangulation) link() {
	t.Halfedges = make([]int, len(t.Triangles))
	open := make(map[edgeKey]int, len(t.Triangles))
	for e := range t.Triangles {
		t.Halfedges[e] = -1
		u, v := t.Triangles[e], t.Triangles[NextHalfedge(e)]
		if twin, ok := open[edgeKey{v, u}]; ok {
			t.Halfedges[e] = twin
			t.Halfedges[twin] = e
			delete(open, edgeKey{v, u})
			continue
		}
		open[edgeKey{u, v}] = e
	}
}
