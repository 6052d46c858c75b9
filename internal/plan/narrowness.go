package plan

import "github.com/pvoss/raceline/internal/track"

// NarrownessField is the precomputed local free-space density map: for
// every non-wall cell, the number of non-wall cells inside the (2r+1)²
// window centred on it, itself included. Out-of-bounds neighbours simply do
// not count, so cells near the boundary score lower. Wall cells are not
// meaningful centres and carry Unreachable. Larger counts mean more open
// space; the planner inverts the count into a penalty that steers the
// search away from tight corridors.
type NarrownessField struct {
	rows, cols int
	radius     int
	count      []int // row-major; Unreachable on wall cells
}

// NewNarrownessField builds the field for the given window radius.
func NewNarrownessField(g *track.Grid, radius int) *NarrownessField {
	f := &NarrownessField{
		rows:   g.Rows(),
		cols:   g.Cols(),
		radius: radius,
		count:  make([]int, g.Rows()*g.Cols()),
	}
	for r := 0; r < f.rows; r++ {
		for c := 0; c < f.cols; c++ {
			idx := r*f.cols + c
			if g.CellAt(track.Pos{Row: r, Col: c}).BlocksMovement() {
				f.count[idx] = Unreachable
				continue
			}
			open := 0
			for dr := -radius; dr <= radius; dr++ {
				for dc := -radius; dc <= radius; dc++ {
					p := track.Pos{Row: r + dr, Col: c + dc}
					if g.InBounds(p) && !g.CellAt(p).BlocksMovement() {
						open++
					}
				}
			}
			f.count[idx] = open
		}
	}
	return f
}

// Radius returns the window radius the field was built with.
func (f *NarrownessField) Radius() int { return f.radius }

// At returns the open-cell count around p, or Unreachable for wall cells
// and out-of-bounds positions.
func (f *NarrownessField) At(p track.Pos) int {
	if p.Row < 0 || p.Row >= f.rows || p.Col < 0 || p.Col >= f.cols {
		return Unreachable
	}
	return f.count[p.Row*f.cols+p.Col]
}

// narrowPenaltyMax is the penalty charged where no width measurement
// exists (wall centres, zero counts).
const narrowPenaltyMax = 1.0

// Penalty returns the inverted narrowness at p: 1/count, or
// narrowPenaltyMax when the count is zero or not applicable. Wider cells
// cost less.
func (f *NarrownessField) Penalty(p track.Pos) float64 {
	n := f.At(p)
	if n <= 0 {
		return narrowPenaltyMax
	}
	return 1.0 / float64(n)
}
