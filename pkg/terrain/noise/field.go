package noise

import (
	"math"

	"github.com/golang/geo/r2"
)

// MinScale replaces non-positive scales.
const MinScale = 0.03

// Params configures a fractal field.
type Params struct {
	Resolution  int
	Scale       float64
	Octaves     int
	Persistence float64
	Lacunarity  float64
	Offset      r2.Point
}

// Clamped returns a copy of p with out-of-range values raised to safe floors.
func (p Params) Clamped() Params {
	if p.Resolution < 1 {
		p.Resolution = 1
	}
	if !(p.Scale > 0) {
		p.Scale = MinScale
	}
	if p.Octaves < 0 {
		p.Octaves = 0
	}
	if !(p.Lacunarity >= 1) {
		p.Lacunarity = 1
	}
	return p
}

// Field is a square height field in [0, 1], stored row-major.
type Field struct {
	Size   int
	Values []float64
}

// At returns the value at column x, row y.
func (f Field) At(x, y int) float64 {
	return f.Values[y*f.Size+x]
}

// MinMax returns the smallest and largest cell values.
func (f Field) MinMax() (lo, hi float64) {
	if len(f.Values) == 0 {
		return 0, 0
	}
	lo, hi = f.Values[0], f.Values[0]
	for _, v := range f.Values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Generate sums p.Octaves layers of src over a Resolution × Resolution grid
// and normalises the result into [0, 1] against the observed min and max.
// A field without variation normalises to zero. Cells whose sum overflowed
// are left out of the min and max and clamp to 0 (NaN, -Inf) or 1 (+Inf).
func Generate(src Source, p Params) Field {
	p = p.Clamped()
	n := p.Resolution
	f := Field{Size: n, Values: make([]float64, n*n)}

	lo, hi := math.Inf(1), math.Inf(-1)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			amplitude, frequency, height := 1.0, 1.0, 0.0
			for o := 0; o < p.Octaves; o++ {
				sx := float64(x)/p.Scale*frequency + p.Offset.X
				sy := float64(y)/p.Scale*frequency + p.Offset.Y
				height += src.Noise2D(sx, sy) * amplitude

				amplitude = math.Min(amplitude*p.Persistence, math.MaxFloat64)
				frequency = math.Min(frequency*p.Lacunarity, math.MaxFloat64)
			}
			if !math.IsNaN(height) && !math.IsInf(height, 0) {
				lo = math.Min(lo, height)
				hi = math.Max(hi, height)
			}
			f.Values[y*n+x] = height
		}
	}

	for i, v := range f.Values {
		f.Values[i] = inverseLerp(lo, hi, v)
	}
	return f
}

func inverseLerp(a, b, v float64) float64 {
	switch {
	case math.IsNaN(v) || math.IsInf(v, -1):
		return 0
	case math.IsInf(v, 1):
		return 1
	case !(a < b):
		return 0
	}
	t := (v - a) / (b - a)
	return math.Max(0, math.Min(1, t))
}
