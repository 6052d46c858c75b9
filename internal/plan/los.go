package plan

import "github.com/pvoss/raceline/internal/track"

// LinePositions returns the ordered grid cells crossed by the straight
// segment from a to b, both endpoints included. Integer Bresenham, always
// rasterized from the row-major smaller endpoint so the cell set is
// identical whichever endpoint is the origin.
func LinePositions(a, b track.Pos) []track.Pos {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		cells := LinePositions(b, a)
		for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
			cells[i], cells[j] = cells[j], cells[i]
		}
		return cells
	}

	dr := intAbs(b.Row - a.Row)
	dc := intAbs(b.Col - a.Col)
	sr := 1
	if a.Row > b.Row {
		sr = -1
	}
	sc := 1
	if a.Col > b.Col {
		sc = -1
	}

	cells := make([]track.Pos, 0, dr+dc+1)
	r, c := a.Row, a.Col
	err := dr - dc
	for {
		cells = append(cells, track.Pos{Row: r, Col: c})
		if r == b.Row && c == b.Col {
			return cells
		}
		e2 := 2 * err
		if e2 > -dc {
			err -= dc
			r += sr
		}
		if e2 < dr {
			err += dr
			c += sc
		}
	}
}

// ClearLine returns true if no cell on the segment from a to b is out of
// bounds or a wall. A single kinematic step can span several cells when the
// velocity is large; this is what stops it tunnelling through a wall.
func ClearLine(g *track.Grid, a, b track.Pos) bool {
	for _, p := range LinePositions(a, b) {
		if !g.InBounds(p) || g.CellAt(p).BlocksMovement() {
			return false
		}
	}
	return true
}

func intAbs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
