package track

import "fmt"

// Cell identifies the terrain type of one grid cell.
type Cell uint8

const (
	CellWall  Cell = iota // impassable, blocks line of sight
	CellRoad              // open tarmac
	CellGrass             // passable, forbids acceleration
	CellStart             // the single launch cell
	CellGoal              // finish line cell
	cellCount             // sentinel
)

// cellRune returns the track-file character for a cell type.
func cellRune(c Cell) byte {
	switch c {
	case CellWall:
		return 'O'
	case CellGrass:
		return 'G'
	case CellStart:
		return 'S'
	case CellGoal:
		return 'F'
	default:
		return ' '
	}
}

// BlocksMovement returns true if the cell cannot be occupied or crossed.
func (c Cell) BlocksMovement() bool {
	return c == CellWall
}

// ForbidsAcceleration returns true if entering the cell with increased
// per-axis speed is illegal.
func (c Cell) ForbidsAcceleration() bool {
	return c == CellGrass
}

// Pos is a grid coordinate, row-major.
type Pos struct {
	Row, Col int
}

// Grid is the immutable per-cell track representation.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major: index = row*cols + col
}

// NewGrid builds a grid from pre-validated rows of cells. Every row must
// have the same length; the loader enforces that before calling here.
func NewGrid(rows [][]Cell) *Grid {
	if len(rows) == 0 {
		return &Grid{}
	}
	cols := len(rows[0])
	g := &Grid{
		rows:  len(rows),
		cols:  cols,
		cells: make([]Cell, 0, len(rows)*cols),
	}
	for _, r := range rows {
		g.cells = append(g.cells, r...)
	}
	return g
}

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// InBounds returns true if p lies within the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// CellAt returns the cell type at p. Out-of-bounds positions read as Wall,
// which keeps every caller's collision test uniform.
func (g *Grid) CellAt(p Pos) Cell {
	if !g.InBounds(p) {
		return CellWall
	}
	return g.cells[p.Row*g.cols+p.Col]
}

// IsOpen returns true if p is in bounds and not a wall.
func (g *Grid) IsOpen(p Pos) bool {
	return g.InBounds(p) && !g.CellAt(p).BlocksMovement()
}

// GoalPositions returns every goal cell in row-major order.
func (g *Grid) GoalPositions() []Pos {
	var goals []Pos
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == CellGoal {
				goals = append(goals, Pos{Row: r, Col: c})
			}
		}
	}
	return goals
}

// StartPosition returns the first start cell in row-major order. Planning
// cannot begin without one, so a grid with no start cell is an error.
func (g *Grid) StartPosition() (Pos, error) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] == CellStart {
				return Pos{Row: r, Col: c}, nil
			}
		}
	}
	return Pos{}, fmt.Errorf("track has no start cell")
}

// DisplayString renders the grid back to its track-file text form, one row
// per line. Used for terminal diagnostics.
func (g *Grid) DisplayString() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			buf = append(buf, cellRune(g.cells[r*g.cols+c]))
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
