package noise

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

func defaultParams() Params {
	return Params{
		Resolution:  32,
		Scale:       8,
		Octaves:     4,
		Persistence: 0.5,
		Lacunarity:  2,
		Offset:      r2.Point{X: 3.25, Y: -1.5},
	}
}

func TestGenerateNormalized(t *testing.T) {
	for _, kind := range []string{KindSimplex, KindPerlin} {
		f := Generate(NewSource(kind, 99), defaultParams())

		if len(f.Values) != 32*32 {
			t.Fatalf("%s: len(Values) = %d, want %d", kind, len(f.Values), 32*32)
		}
		for i, v := range f.Values {
			if v < 0 || v > 1 {
				t.Fatalf("%s: cell %d = %f, out of [0,1]", kind, i, v)
			}
		}
		lo, hi := f.MinMax()
		if lo != 0 || hi != 1 {
			t.Errorf("%s: MinMax() = (%f, %f), want (0, 1)", kind, lo, hi)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(NewSimplex(5), defaultParams())
	b := Generate(NewSimplex(5), defaultParams())

	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			t.Fatalf("cell %d differs: %f vs %f", i, a.Values[i], b.Values[i])
		}
	}
}

func TestGenerateSmallScenario(t *testing.T) {
	p := Params{Resolution: 4, Scale: 1, Octaves: 1, Persistence: 0.5, Lacunarity: 2}

	a := Generate(NewSimplex(42), p)
	b := Generate(NewSimplex(42), p)

	if a.Size != 4 || len(a.Values) != 16 {
		t.Fatalf("field = %dx%d (%d values), want 4x4", a.Size, a.Size, len(a.Values))
	}
	for i, v := range a.Values {
		if v < 0 || v > 1 {
			t.Errorf("cell %d = %f, out of [0,1]", i, v)
		}
		if v != b.Values[i] {
			t.Errorf("cell %d not deterministic", i)
		}
	}
}

func TestGenerateZeroScale(t *testing.T) {
	p := defaultParams()
	p.Scale = 0

	f := Generate(NewSimplex(1), p)
	for i, v := range f.Values {
		if v < 0 || v > 1 {
			t.Fatalf("cell %d = %f, out of [0,1]", i, v)
		}
	}
}

func TestGenerateFlatFieldIsZero(t *testing.T) {
	p := defaultParams()
	p.Octaves = 0

	f := Generate(NewSimplex(1), p)
	for i, v := range f.Values {
		if v != 0 {
			t.Fatalf("cell %d = %f, want 0 for a field without variation", i, v)
		}
	}
}

type constSource float64

func (c constSource) Noise2D(float64, float64) float64 { return float64(c) }

func TestGenerateConstantSource(t *testing.T) {
	f := Generate(constSource(0.7), defaultParams())
	lo, hi := f.MinMax()
	if lo != 0 || hi != 0 {
		t.Errorf("MinMax() = (%f, %f), want (0, 0)", lo, hi)
	}
}

func TestParamsClamped(t *testing.T) {
	got := Params{Resolution: 0, Scale: -2, Octaves: -1, Persistence: 0.5, Lacunarity: 0.5}.Clamped()
	want := Params{Resolution: 1, Scale: MinScale, Octaves: 0, Persistence: 0.5, Lacunarity: 1}
	if got != want {
		t.Errorf("Clamped() = %+v, want %+v", got, want)
	}
}

func TestFieldAt(t *testing.T) {
	f := Field{Size: 2, Values: []float64{0, 0.25, 0.5, 1}}
	if got := f.At(1, 0); got != 0.25 {
		t.Errorf("At(1,0) = %f, want 0.25", got)
	}
	if got := f.At(0, 1); got != 0.5 {
		t.Errorf("At(0,1) = %f, want 0.5", got)
	}
}

func TestGenerateOverflowStaysNormalized(t *testing.T) {
	p := Params{Resolution: 4, Scale: 1, Octaves: 3, Persistence: 0.5, Lacunarity: 1e200}
	f := Generate(NewSimplex(1), p)
	for i, v := range f.Values {
		if math.IsNaN(v) || v < 0 || v > 1 {
			t.Fatalf("cell %d = %f, out of [0,1]", i, v)
		}
	}

	p = Params{Resolution: 4, Scale: 1, Octaves: 3, Persistence: 1e200, Lacunarity: 2}
	f = Generate(NewSimplex(1), p)
	for i, v := range f.Values {
		if math.IsNaN(v) || v < 0 || v > 1 {
			t.Fatalf("persistence overflow: cell %d = %f, out of [0,1]", i, v)
		}
	}
}

// gapSource returns NaN at the origin and x elsewhere.
type gapSource struct{}

func (gapSource) Noise2D(x, y float64) float64 {
	if x == 0 && y == 0 {
		return math.NaN()
	}
	return x
}

func TestGenerateIgnoresNonFiniteCells(t *testing.T) {
	f := Generate(gapSource{}, Params{Resolution: 4, Scale: 1, Octaves: 1, Persistence: 0.5, Lacunarity: 2})
	if got := f.At(0, 0); got != 0 {
		t.Errorf("NaN cell = %f, want 0", got)
	}
	if got := f.At(3, 0); got != 1 {
		t.Errorf("max cell = %f, want 1", got)
	}
	if got := f.At(0, 1); got != 0 {
		t.Errorf("min finite cell = %f, want 0", got)
	}
}

func TestInverseLerp(t *testing.T) {
	tests := []struct {
		a, b, v, want float64
	}{
		{0, 2, 1, 0.5},
		{0, 2, 3, 1},
		{1, 1, 1, 0},
		{0, 1, math.NaN(), 0},
		{0, 1, math.Inf(1), 1},
		{0, 1, math.Inf(-1), 0},
		{math.Inf(1), math.Inf(-1), 5, 0},
	}
	for _, tt := range tests {
		if got := inverseLerp(tt.a, tt.b, tt.v); got != tt.want {
			t.Errorf("inverseLerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.v, got, tt.want)
		}
	}
}
