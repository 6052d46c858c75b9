package plan

import "github.com/pvoss/raceline/internal/track"

// Unreachable marks cells no goal can be reached from: walls, and open
// cells sealed off from every goal.
const Unreachable = -1

// DistField is the precomputed distance-to-nearest-goal map: for every open
// cell, the minimum number of 4-connected open-cell hops to any goal cell.
// Built once per planning session from the static grid, read-only after.
type DistField struct {
	rows, cols int
	dist       []int // row-major; Unreachable where no goal is reachable
}

var neighbours4 = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// NewDistField runs a multi-source BFS seeded from every goal cell at
// distance 0, expanding through 4-connected non-wall neighbours. Uniform
// edge weight means a cell's distance is final the first time it is set.
func NewDistField(g *track.Grid) *DistField {
	f := &DistField{
		rows: g.Rows(),
		cols: g.Cols(),
		dist: make([]int, g.Rows()*g.Cols()),
	}
	for i := range f.dist {
		f.dist[i] = Unreachable
	}

	queue := make([]track.Pos, 0, 64)
	for _, goal := range g.GoalPositions() {
		f.dist[goal.Row*f.cols+goal.Col] = 0
		queue = append(queue, goal)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := f.dist[cur.Row*f.cols+cur.Col]
		for _, n := range neighbours4 {
			next := track.Pos{Row: cur.Row + n[0], Col: cur.Col + n[1]}
			if !g.IsOpen(next) {
				continue
			}
			idx := next.Row*f.cols + next.Col
			if f.dist[idx] != Unreachable && f.dist[idx] <= d+1 {
				continue
			}
			f.dist[idx] = d + 1
			queue = append(queue, next)
		}
	}
	return f
}

// At returns the hop distance from p to the nearest goal, or Unreachable
// for walls, sealed-off regions and out-of-bounds positions.
func (f *DistField) At(p track.Pos) int {
	if p.Row < 0 || p.Row >= f.rows || p.Col < 0 || p.Col >= f.cols {
		return Unreachable
	}
	return f.dist[p.Row*f.cols+p.Col]
}
