package plan

import "github.com/pvoss/raceline/internal/track"

// Graph is a bounded local horizon of reachable kinematic states: nodes are
// state values, edges are unit-weight valid transitions. Built fresh for
// each planning chunk and discarded afterwards. Nodes keeps discovery
// order, which gives every later enumeration a deterministic order.
type Graph struct {
	Nodes []State
	edges map[State][]State
	seen  map[State]bool
}

func newGraph() *Graph {
	return &Graph{
		edges: make(map[State][]State),
		seen:  make(map[State]bool),
	}
}

func (g *Graph) addNode(s State) {
	if g.seen[s] {
		return
	}
	g.seen[s] = true
	g.Nodes = append(g.Nodes, s)
}

func (g *Graph) addEdge(from, to State) {
	g.edges[from] = append(g.edges[from], to)
}

// Successors returns the valid transitions out of s, in discovery order.
func (g *Graph) Successors(s State) []State {
	return g.edges[s]
}

// Contains returns true if s is a node of the graph.
func (g *Graph) Contains(s State) bool {
	return g.seen[s]
}

// Len returns the node count.
func (g *Graph) Len() int { return len(g.Nodes) }

// accelerations is the fixed 9-way enumeration of per-step acceleration
// choices. The order is load-bearing: it fixes node discovery order and
// with it every tie-break downstream.
var accelerations = [9][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// successorIfValid applies one acceleration choice to cur and returns the
// resulting state if the transition is legal. The velocity update happens
// before the position update, so the step moves at the new speed.
//
// A transition is rejected when:
//   - the destination is out of bounds;
//   - the step has zero net displacement (idling in place is not a move);
//   - any cell on the straight line between the two positions is out of
//     bounds or a wall;
//   - the destination cell is a wall;
//   - the destination is grass and either velocity component's magnitude
//     grew (grass allows coasting and braking, never accelerating).
func successorIfValid(g *track.Grid, cur State, ar, ac int) (State, bool) {
	next := State{
		VRow: cur.VRow + ar,
		VCol: cur.VCol + ac,
	}
	next.Row = cur.Row + next.VRow
	next.Col = cur.Col + next.VCol

	dst := next.Position()
	if !g.InBounds(dst) {
		return State{}, false
	}
	if dst == cur.Position() {
		return State{}, false
	}
	if !ClearLine(g, cur.Position(), dst) {
		return State{}, false
	}
	cell := g.CellAt(dst)
	if cell.BlocksMovement() {
		return State{}, false
	}
	if cell.ForbidsAcceleration() {
		if intAbs(next.VRow) > intAbs(cur.VRow) || intAbs(next.VCol) > intAbs(cur.VCol) {
			return State{}, false
		}
	}
	return next, true
}

// BuildGraph expands the reachable kinematic states around root out to
// maxDepth transitions, breadth first. Each dequeued state proposes up to 9
// successors, one per acceleration pair in {-1,0,1}². Visited tracking is
// by state value: the first discovery of a state wins and it is never
// re-expanded. The root is always a node, even when it has no valid moves.
func BuildGraph(g *track.Grid, root State, maxDepth int) *Graph {
	graph := newGraph()
	graph.addNode(root)

	type item struct {
		s     State
		depth int
	}
	queue := []item{{s: root, depth: 0}}
	expanded := make(map[State]bool)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.depth >= maxDepth || expanded[cur.s] {
			continue
		}
		expanded[cur.s] = true

		for _, a := range accelerations {
			next, ok := successorIfValid(g, cur.s, a[0], a[1])
			if !ok {
				continue
			}
			graph.addNode(next)
			graph.addEdge(cur.s, next)
			queue = append(queue, item{s: next, depth: cur.depth + 1})
		}
	}
	return graph
}
