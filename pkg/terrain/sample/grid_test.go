package sample

import (
	"testing"

	"github.com/golang/geo/r2"
)

func TestGridDimensions(t *testing.T) {
	g := NewGrid(10, 5, 2)
	if g.W != 5 || g.H != 3 {
		t.Errorf("grid = %dx%d, want 5x3", g.W, g.H)
	}

	g = NewGrid(0, -1, 0)
	if g.W != 1 || g.H != 1 {
		t.Errorf("degenerate grid = %dx%d, want 1x1", g.W, g.H)
	}
}

func TestGridCellClamps(t *testing.T) {
	g := NewGrid(4, 4, 1)

	tests := []struct {
		p      r2.Point
		cx, cy int
	}{
		{r2.Point{X: 0.5, Y: 0.5}, 0, 0},
		{r2.Point{X: 3.9, Y: 1.2}, 3, 1},
		{r2.Point{X: 4, Y: 4}, 3, 3},
		{r2.Point{X: -2, Y: 9}, 0, 3},
	}
	for _, tt := range tests {
		cx, cy := g.Cell(tt.p)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("Cell(%v) = (%d,%d), want (%d,%d)", tt.p, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestGridNeighbors(t *testing.T) {
	g := NewGrid(10, 10, 1)
	pts := []r2.Point{{X: 0.5, Y: 0.5}, {X: 2.5, Y: 2.5}, {X: 9.5, Y: 9.5}}
	for i, p := range pts {
		g.Insert(p, i)
	}

	found := map[int]bool{}
	g.Neighbors(r2.Point{X: 1.5, Y: 1.5}, 1, func(idx int) bool {
		found[idx] = true
		return true
	})
	if !found[0] || !found[1] || found[2] {
		t.Errorf("neighbors of (1.5,1.5) = %v, want {0,1}", found)
	}

	for i, p := range pts {
		seen := false
		g.Neighbors(p, 0, func(idx int) bool {
			seen = seen || idx == i
			return true
		})
		if !seen {
			t.Errorf("index %d not found in its own cell", i)
		}
	}
}

func TestGridNeighborsStopsEarly(t *testing.T) {
	g := NewGrid(3, 3, 1)
	for i := 0; i < 9; i++ {
		g.Insert(r2.Point{X: float64(i%3) + 0.5, Y: float64(i/3) + 0.5}, i)
	}

	calls := 0
	g.Neighbors(r2.Point{X: 1.5, Y: 1.5}, 1, func(int) bool {
		calls++
		return calls < 2
	})
	if calls != 2 {
		t.Errorf("callback ran %d times, want 2", calls)
	}
}

func TestGridBucketsHoldSeveralIndices(t *testing.T) {
	g := NewGrid(2, 2, 1)
	g.Insert(r2.Point{X: 0.1, Y: 0.1}, 0)
	g.Insert(r2.Point{X: 0.2, Y: 0.2}, 1)

	if got := g.At(0, 0); len(got) != 2 {
		t.Errorf("At(0,0) = %v, want two indices", got)
	}
	if got := g.At(5, 5); got != nil {
		t.Errorf("At(5,5) = %v, want nil", got)
	}
}
