package compose

import (
	"math"

	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/mesh"
	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/noise"
)

// Displace returns a copy of m with every vertex's Z set from the field
// sample under its UV: z = -multiplier * curve(sample). Normals and bounds
// are recomputed. A mesh without one UV per vertex keeps its positions.
func Displace(m mesh.Mesh, field noise.Field, curve Curve, multiplier float64) mesh.Mesh {
	out := m.Clone()
	if len(out.UV) == len(out.Vertices) && field.Size > 0 {
		for i, uv := range out.UV {
			x := fieldIndex(uv.X, field.Size)
			y := fieldIndex(uv.Y, field.Size)
			out.Vertices[i].Z = -multiplier * curve.Evaluate(field.At(x, y))
		}
	}
	out.Normals = mesh.FaceNormals(out.Vertices, out.Triangles)
	out.Bounds = mesh.ComputeBounds(out.Vertices)
	return out
}

// Compose colors the field and displaces the mesh by it.
func Compose(m mesh.Mesh, field noise.Field, regions []Region, curve Curve, multiplier float64) (mesh.Mesh, ColorBuffer) {
	return Displace(m, field, curve, multiplier), Colorize(field, regions)
}

// fieldIndex maps a texture coordinate to a clamped cell index.
func fieldIndex(u float64, size int) int {
	f := math.Ceil(u * float64(size))
	switch {
	case f != f || f < 0:
		return 0
	case f > float64(size-1):
		return size - 1
	}
	return int(f)
}
