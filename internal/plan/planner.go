package plan

import (
	"container/heap"
	"fmt"

	"github.com/pvoss/raceline/internal/track"
)

// Heuristics configures the chunk search guidance. The weighted form
// combines the goal-distance field with the inverted narrowness penalty so
// the search prefers short routes through wide corridors. Constant switches
// to a flat heuristic that degrades the search to breadth-like exploration;
// it exists only for debugging search behaviour and is off by default.
type Heuristics struct {
	Alpha    float64 // weight on the goal-distance field
	Beta     float64 // weight on the narrowness penalty
	Constant bool    // ignore both fields, score every node the same
}

// DefaultHeuristics are the tuned production weights.
func DefaultHeuristics() Heuristics {
	return Heuristics{Alpha: 1.0, Beta: 1.2}
}

func (h Heuristics) score(s State, dist *DistField, narrow *NarrownessField) float64 {
	if h.Constant {
		return 1.0
	}
	d := dist.At(s.Position())
	if d == Unreachable {
		d = 0 // A* never selects such a node as target; keep the score finite
	}
	return h.Alpha*float64(d) + h.Beta*narrow.Penalty(s.Position())
}

// StopReason says why the planning loop ended.
type StopReason int

const (
	StopGoalReached   StopReason = iota // final position is a goal cell
	StopEmptyGraph                      // no valid transition out of the current state
	StopNoLocalTarget                   // no horizon node has a finite goal distance
	StopNoChunkPath                     // the local target was not reachable by search
	StopNoProgress                      // the best local target is the current state
)

func (r StopReason) String() string {
	switch r {
	case StopGoalReached:
		return "goal reached"
	case StopEmptyGraph:
		return "no further graph"
	case StopNoLocalTarget:
		return "no reachable local goal"
	case StopNoChunkPath:
		return "no path found in this chunk"
	case StopNoProgress:
		return "no further progress"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// Result is the outcome of a planning session. Path always starts at the
// initial state; when GoalReached is false it is the best partial
// trajectory found before the loop stalled, which callers are expected to
// treat as a normal outcome.
type Result struct {
	Path        []State
	Reason      StopReason
	GoalReached bool
	Chunks      int // planning iterations performed
}

// Planner stitches a full trajectory out of repeated bounded-horizon
// searches. All inputs are read-only during planning; the only mutable
// state is the loop's own cursor.
type Planner struct {
	grid      *track.Grid
	dist      *DistField
	narrow    *NarrownessField
	maxDepth  int
	heuristic Heuristics
}

// NewPlanner precomputes the static fields for grid. maxDepth bounds each
// horizon graph; narrowRadius sizes the narrowness window.
func NewPlanner(grid *track.Grid, maxDepth, narrowRadius int, h Heuristics) *Planner {
	return &Planner{
		grid:      grid,
		dist:      NewDistField(grid),
		narrow:    NewNarrownessField(grid, narrowRadius),
		maxDepth:  maxDepth,
		heuristic: h,
	}
}

// DistField exposes the precomputed goal-distance field (for diagnostics).
func (p *Planner) DistField() *DistField { return p.dist }

// NarrownessField exposes the precomputed narrowness field.
func (p *Planner) NarrownessField() *NarrownessField { return p.narrow }

// Plan runs the chunked loop from initial until a goal cell is reached or
// progress stalls. Each iteration builds a horizon graph around the current
// state, picks the reachable node closest to a goal, searches a path to it
// inside the graph and splices that segment onto the trajectory.
func (p *Planner) Plan(initial State) Result {
	current := initial
	path := []State{current}
	chunks := 0

	for {
		if p.grid.CellAt(current.Position()) == track.CellGoal {
			return Result{Path: path, Reason: StopGoalReached, GoalReached: true, Chunks: chunks}
		}

		graph := BuildGraph(p.grid, current, p.maxDepth)
		chunks++
		if graph.Len() <= 1 {
			return Result{Path: path, Reason: StopEmptyGraph, Chunks: chunks}
		}

		target, ok := p.selectLocalTarget(graph)
		if !ok {
			return Result{Path: path, Reason: StopNoLocalTarget, Chunks: chunks}
		}
		if target == current {
			return Result{Path: path, Reason: StopNoProgress, Chunks: chunks}
		}

		segment := p.searchChunk(graph, current, target)
		if segment == nil {
			return Result{Path: path, Reason: StopNoChunkPath, Chunks: chunks}
		}
		if len(segment) < 2 {
			return Result{Path: path, Reason: StopNoProgress, Chunks: chunks}
		}

		path = append(path, segment[1:]...)
		current = segment[len(segment)-1]
	}
}

// selectLocalTarget picks the horizon node with the smallest goal distance.
// Ties go to the first node in discovery order, which is deterministic.
func (p *Planner) selectLocalTarget(g *Graph) (State, bool) {
	var best State
	bestDist := Unreachable
	for _, s := range g.Nodes {
		d := p.dist.At(s.Position())
		if d == Unreachable {
			continue
		}
		if bestDist == Unreachable || d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best, bestDist != Unreachable
}

// --- chunk search: A* over the horizon graph ---

type searchNode struct {
	s      State
	g, h   float64
	parent *searchNode
	index  int // heap index
}

type searchQueue []*searchNode

func (q searchQueue) Len() int            { return len(q) }
func (q searchQueue) Less(i, j int) bool  { return (q[i].g + q[i].h) < (q[j].g + q[j].h) }
func (q searchQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *searchQueue) Push(x interface{}) { n := x.(*searchNode); n.index = len(*q); *q = append(*q, n) }
func (q *searchQueue) Pop() interface{} {
	old := *q
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*q = old[:len(old)-1]
	return n
}

// searchChunk finds a shortest path from start to goal inside the horizon
// graph. Edges are unit weight; node scoring comes from the configured
// heuristic. Returns the state sequence including both endpoints, or nil
// when the goal is unreachable within the graph.
func (p *Planner) searchChunk(graph *Graph, start, goal State) []State {
	startNode := &searchNode{s: start, h: p.heuristic.score(start, p.dist, p.narrow)}
	open := &searchQueue{startNode}
	heap.Init(open)

	closed := make(map[State]bool)
	best := make(map[State]*searchNode)
	best[start] = startNode

	for open.Len() > 0 {
		cur := heap.Pop(open).(*searchNode)
		if cur.s == goal {
			return buildSegment(cur)
		}
		if closed[cur.s] {
			continue
		}
		closed[cur.s] = true

		for _, next := range graph.Successors(cur.s) {
			if closed[next] {
				continue
			}
			g := cur.g + 1
			if prev, ok := best[next]; ok && g >= prev.g {
				continue
			}
			node := &searchNode{s: next, g: g, h: p.heuristic.score(next, p.dist, p.narrow), parent: cur}
			best[next] = node
			heap.Push(open, node)
		}
	}
	return nil
}

func buildSegment(end *searchNode) []State {
	var seg []State
	for n := end; n != nil; n = n.parent {
		seg = append(seg, n.s)
	}
	for i, j := 0, len(seg)-1; i < j; i, j = i+1, j-1 {
		seg[i], seg[j] = seg[j], seg[i]
	}
	return seg
}
