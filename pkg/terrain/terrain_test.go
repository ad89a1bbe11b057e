package terrain

import (
	"bytes"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/OCharnyshevich/terrain-mesh/pkg/terrain/noise"
)

func smallParams() Params {
	p := DefaultParams()
	p.Seed = 42
	p.Sampling.Radius = 0.5
	p.Noise.Resolution = 32
	p.UVScale = 10
	p.HeightMultiplier = 3
	return p
}

func TestGenerate(t *testing.T) {
	res := Generate(smallParams())

	if res.Points.Len() < 3 {
		t.Fatalf("points = %d, want at least 3", res.Points.Len())
	}
	if res.Mesh.Empty() {
		t.Fatal("mesh is empty")
	}
	if err := res.Mesh.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got, want := len(res.Mesh.UV), len(res.Mesh.Vertices); got != want {
		t.Errorf("len(UV) = %d, want %d", got, want)
	}
	if got, want := len(res.Mesh.Normals), res.Mesh.TriangleCount(); got != want {
		t.Errorf("len(Normals) = %d, want %d", got, want)
	}
	if res.Field.Size != 32 || len(res.Colors.Pix) != 32*32 {
		t.Errorf("field size %d, colors %d", res.Field.Size, len(res.Colors.Pix))
	}
	for i, v := range res.Mesh.Vertices {
		if v.Z > 0 || v.Z < -3 {
			t.Fatalf("vertex %d z = %v, want within [-3, 0]", i, v.Z)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(smallParams())
	b := Generate(smallParams())
	if !reflect.DeepEqual(a.Points.Points, b.Points.Points) {
		t.Fatal("point sets differ for the same seed")
	}
	if !reflect.DeepEqual(a.Mesh, b.Mesh) {
		t.Fatal("meshes differ for the same seed")
	}
	if !reflect.DeepEqual(a.Field, b.Field) {
		t.Fatal("fields differ for the same seed")
	}

	p := smallParams()
	p.Seed = 43
	c := Generate(p)
	if reflect.DeepEqual(a.Points.Points, c.Points.Points) {
		t.Error("different seeds produced identical points")
	}
}

func TestGenerateTooFewPoints(t *testing.T) {
	p := smallParams()
	p.Sampling.Width = 0.5
	p.Sampling.Height = 0.5
	p.Sampling.Radius = 0.5

	res := Generate(p)
	if res.Points.Len() >= 3 {
		t.Fatalf("points = %d, want fewer than 3", res.Points.Len())
	}
	if !res.Mesh.Empty() || len(res.Mesh.Vertices) != 0 {
		t.Errorf("mesh = %+v, want empty", res.Mesh)
	}
	if res.Field.Size != 32 || len(res.Colors.Pix) != 32*32 {
		t.Errorf("field and colors not produced: %d, %d", res.Field.Size, len(res.Colors.Pix))
	}
}

func TestGenerateCleanupMargin(t *testing.T) {
	p := smallParams()
	full := Generate(p)
	p.CleanupMargin = 2
	cropped := Generate(p)

	if got, all := cropped.Mesh.TriangleCount(), full.Mesh.TriangleCount(); got == 0 || got >= all {
		t.Errorf("cropped triangles = %d, full = %d", got, all)
	}
	if len(cropped.Mesh.Vertices) != len(full.Mesh.Vertices) {
		t.Error("cleanup changed the vertex list")
	}
}

func TestGenerateNoiseSources(t *testing.T) {
	p := smallParams()
	for _, kind := range []string{noise.KindSimplex, noise.KindPerlin, "unknown"} {
		p.NoiseSource = kind
		res := Generate(p)
		lo, hi := res.Field.MinMax()
		if lo < 0 || hi > 1 || math.IsNaN(lo) {
			t.Errorf("%s: field range [%v, %v] outside [0, 1]", kind, lo, hi)
		}
	}
}

func TestGenerateZeroParams(t *testing.T) {
	res := Generate(Params{})
	if res.Field.Size != 1 {
		t.Errorf("field size = %d, want 1", res.Field.Size)
	}
	if res.Points.Len() == 0 {
		t.Error("expected the center point at least")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Generate(smallParams(), WithLogger(log))

	out := buf.String()
	for _, msg := range []string{"points sampled", "points triangulated", "noise generated", "terrain composed"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log output missing %q", msg)
		}
	}
}

func TestSeedFromPhrase(t *testing.T) {
	if SeedFromPhrase("hello") != SeedFromPhrase("hello") {
		t.Fatal("SeedFromPhrase not stable")
	}
	if SeedFromPhrase("hello") == SeedFromPhrase("world") {
		t.Error("different phrases hash to the same seed")
	}
	// FNV-1a 64 offset basis.
	if got := uint64(SeedFromPhrase("")); got != 0xcbf29ce484222325 {
		t.Errorf("SeedFromPhrase(\"\") = %#x, want offset basis", got)
	}
}
