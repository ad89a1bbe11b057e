// Package mesh holds the triangle mesh shared by the generation stages and
// the planar Delaunay triangulation that builds it.
package mesh

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Mesh is an indexed triangle mesh. Triangles holds three vertex indices per
// face; UV, when present, has one entry per vertex. Normals holds one face
// normal per triangle.
type Mesh struct {
	Vertices  []r3.Vector
	Triangles []int
	UV        []r2.Point
	Normals   []r3.Vector
	Bounds    Bounds
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min, Max r3.Vector
}

// Center returns the midpoint of b.
func (b Bounds) Center() r3.Vector { return b.Min.Add(b.Max).Mul(0.5) }

// Size returns the extent of b along each axis.
func (b Bounds) Size() r3.Vector { return b.Max.Sub(b.Min) }

// TriangleCount returns the number of faces.
func (m Mesh) TriangleCount() int { return len(m.Triangles) / 3 }

// Empty reports whether m has no faces.
func (m Mesh) Empty() bool { return len(m.Triangles) == 0 }

// Validate checks that every index references a vertex and that UVs, when
// present, match the vertex count.
func (m Mesh) Validate() error {
	if len(m.Triangles)%3 != 0 {
		return fmt.Errorf("triangle index count %d is not a multiple of 3", len(m.Triangles))
	}
	for i, idx := range m.Triangles {
		if idx < 0 || idx >= len(m.Vertices) {
			return fmt.Errorf("triangle %d references vertex %d, have %d vertices", i/3, idx, len(m.Vertices))
		}
	}
	if m.UV != nil && len(m.UV) != len(m.Vertices) {
		return fmt.Errorf("uv count %d does not match vertex count %d", len(m.UV), len(m.Vertices))
	}
	return nil
}

// Clone returns a deep copy of m.
func (m Mesh) Clone() Mesh {
	out := Mesh{Bounds: m.Bounds}
	if m.Vertices != nil {
		out.Vertices = append([]r3.Vector(nil), m.Vertices...)
	}
	if m.Triangles != nil {
		out.Triangles = append([]int(nil), m.Triangles...)
	}
	if m.UV != nil {
		out.UV = append([]r2.Point(nil), m.UV...)
	}
	if m.Normals != nil {
		out.Normals = append([]r3.Vector(nil), m.Normals...)
	}
	return out
}

// Recalculated returns a copy of m with face normals and bounds recomputed
// from the current vertex positions.
func (m Mesh) Recalculated() Mesh {
	out := m.Clone()
	out.Normals = FaceNormals(out.Vertices, out.Triangles)
	out.Bounds = ComputeBounds(out.Vertices)
	return out
}

// FaceNormals returns the unit normal of every triangle. Zero-area faces get
// the zero vector.
func FaceNormals(vertices []r3.Vector, triangles []int) []r3.Vector {
	normals := make([]r3.Vector, len(triangles)/3)
	for t := range normals {
		a := vertices[triangles[3*t]]
		b := vertices[triangles[3*t+1]]
		c := vertices[triangles[3*t+2]]
		normals[t] = unit(b.Sub(a).Cross(c.Sub(a)))
	}
	return normals
}

// ComputeBounds returns the bounding box of vertices, or the zero box when
// there are none.
func ComputeBounds(vertices []r3.Vector) Bounds {
	if len(vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		b.Min = r3.Vector{X: math.Min(b.Min.X, v.X), Y: math.Min(b.Min.Y, v.Y), Z: math.Min(b.Min.Z, v.Z)}
		b.Max = r3.Vector{X: math.Max(b.Max.X, v.X), Y: math.Max(b.Max.Y, v.Y), Z: math.Max(b.Max.Z, v.Z)}
	}
	return b
}

func unit(v r3.Vector) r3.Vector {
	n := v.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return r3.Vector{}
	}
	return v.Mul(1 / n)
}
