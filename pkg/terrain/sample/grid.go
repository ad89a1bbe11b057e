package sample

import (
	"math"

	"github.com/golang/geo/r2"
)

// Grid is a dense bucket index over the rectangle [0, width) × [0, height).
// Each cell lists indices into a caller-owned arena of points.
type Grid struct {
	CellSize float64
	W, H     int

	cells [][]int
}

// NewGrid allocates a grid of ceil(width/cell) × ceil(height/cell) empty cells.
// Non-positive inputs produce a single-cell grid.
func NewGrid(width, height, cell float64) *Grid {
	if cell <= 0 || math.IsNaN(cell) {
		cell = 1
	}
	w := int(math.Ceil(width / cell))
	h := int(math.Ceil(height / cell))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Grid{
		CellSize: cell,
		W:        w,
		H:        h,
		cells:    make([][]int, w*h),
	}
}

// Cell returns the cell coordinates holding p, clamped to the grid.
func (g *Grid) Cell(p r2.Point) (int, int) {
	cx := int(p.X / g.CellSize)
	cy := int(p.Y / g.CellSize)
	return clampInt(cx, 0, g.W-1), clampInt(cy, 0, g.H-1)
}

// Insert stamps idx into the cell containing p.
func (g *Grid) Insert(p r2.Point, idx int) {
	cx, cy := g.Cell(p)
	i := cy*g.W + cx
	g.cells[i] = append(g.cells[i], idx)
}

// At returns the indices stored in cell (cx, cy), or nil when the cell is
// empty or out of range.
func (g *Grid) At(cx, cy int) []int {
	if cx < 0 || cx >= g.W || cy < 0 || cy >= g.H {
		return nil
	}
	return g.cells[cy*g.W+cx]
}

// Neighbors calls fn for every index stored within reach cells of p's cell.
// Iteration stops early when fn returns false.
func (g *Grid) Neighbors(p r2.Point, reach int, fn func(idx int) bool) {
	cx, cy := g.Cell(p)
	for y := max(0, cy-reach); y <= min(g.H-1, cy+reach); y++ {
		for x := max(0, cx-reach); x <= min(g.W-1, cx+reach); x++ {
			for _, idx := range g.cells[y*g.W+x] {
				if !fn(idx) {
					return
				}
			}
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
