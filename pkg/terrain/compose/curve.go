package compose

import (
	"cmp"
	"math"
	"slices"

	"github.com/golang/geo/r2"
)

// Key is a curve keyframe with Hermite tangents.
type Key struct {
	Time       float64 `json:"time" yaml:"time"`
	Value      float64 `json:"value" yaml:"value"`
	InTangent  float64 `json:"in_tangent" yaml:"in_tangent"`
	OutTangent float64 `json:"out_tangent" yaml:"out_tangent"`
}

// Curve remaps displacement samples. The zero Curve is the identity.
// Outside the keyed range the first and last values are held. A key may
// break its tangent: InTangent shapes the segment arriving at the key and
// OutTangent the segment leaving it.
type Curve struct {
	Keys []Key
}

// NewCurve returns a curve over keys sorted by Time.
func NewCurve(keys ...Key) Curve {
	ks := slices.Clone(keys)
	slices.SortStableFunc(ks, func(a, b Key) int { return cmp.Compare(a.Time, b.Time) })
	return Curve{Keys: ks}
}

// Identity returns the curve y = x over [0, 1].
func Identity() Curve {
	return Linear(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1})
}

// Linear returns a piecewise-linear curve through pts.
func Linear(pts ...r2.Point) Curve {
	c := NewCurve(keysOf(pts)...)
	ks := c.Keys
	for i := range ks {
		if i > 0 {
			ks[i].InTangent = slope(ks[i-1], ks[i])
		}
		if i+1 < len(ks) {
			ks[i].OutTangent = slope(ks[i], ks[i+1])
		}
	}
	return c
}

// EaseInOut returns a smooth step from (t0, v0) to (t1, v1) with flat ends.
func EaseInOut(t0, v0, t1, v1 float64) Curve {
	return NewCurve(Key{Time: t0, Value: v0}, Key{Time: t1, Value: v1})
}

// Evaluate returns the curve value at t.
func (c Curve) Evaluate(t float64) float64 {
	ks := c.Keys
	switch {
	case len(ks) == 0:
		return t
	case len(ks) == 1 || t <= ks[0].Time:
		return ks[0].Value
	case t >= ks[len(ks)-1].Time:
		return ks[len(ks)-1].Value
	}

	i, _ := slices.BinarySearchFunc(ks, t, func(k Key, t float64) int { return cmp.Compare(k.Time, t) })
	k0, k1 := ks[i-1], ks[i]
	dt := k1.Time - k0.Time
	if dt == 0 {
		return k1.Value
	}
	s := (t - k0.Time) / dt
	s2, s3 := s*s, s*s*s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2
	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}

func keysOf(pts []r2.Point) []Key {
	ks := make([]Key, 0, len(pts))
	for _, p := range pts {
		if math.IsNaN(p.X) {
			continue
		}
		ks = append(ks, Key{Time: p.X, Value: p.Y})
	}
	return ks
}

func slope(a, b Key) float64 {
	if b.Time == a.Time {
		return 0
	}
	return (b.Value - a.Value) / (b.Time - a.Time)
}
