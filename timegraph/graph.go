package timegraph

import (
	"fmt"

	"github.com/katalvlaran/escaperoute/matrix"
)

// Graph is the immutable station model: n targets between Start and Exit.
type Graph struct {
	w *matrix.Dense // m×m transition times, never handed out directly
	m int           // node count, n+2
}

// New validates times and builds a Graph from a private copy of it.
//
// Validation order: row count (ErrTooFewNodes, ErrTooManyNodes), squareness
// (matrix.ErrNonSquare), entry range (ErrWeightOutOfRange).
// Complexity: O(m²).
func New(times [][]int) (*Graph, error) {
	m := len(times)
	if m < 2 {
		return nil, fmt.Errorf("timegraph: %d rows: %w", m, ErrTooFewNodes)
	}
	if m > MaxNodes {
		return nil, fmt.Errorf("timegraph: %d rows, max %d: %w", m, MaxNodes, ErrTooManyNodes)
	}

	w, err := matrix.NewSquare(times)
	if err != nil {
		return nil, fmt.Errorf("timegraph: %w", err)
	}

	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < m; j++ {
			if v := times[i][j]; v > MaxWeight || v < -MaxWeight {
				return nil, fmt.Errorf("timegraph: times[%d][%d]=%d: %w", i, j, v, ErrWeightOutOfRange)
			}
		}
	}

	return &Graph{w: w, m: m}, nil
}

// Nodes returns the node count m = n+2.
func (g *Graph) Nodes() int { return g.m }

// Targets returns the number of rescue targets n.
func (g *Graph) Targets() int { return g.m - 2 }

// Exit returns the exit node (n+1).
func (g *Graph) Exit() Node { return Node(g.m - 1) }

// Target returns the node of target i. It panics if i is outside [0, n),
// like an out-of-range slice index would.
func (g *Graph) Target(i int) Node {
	if i < 0 || i >= g.Targets() {
		panic(fmt.Sprintf("timegraph: target %d out of range [0,%d)", i, g.Targets()))
	}

	return Node(i + 1)
}

// TargetIndex maps a node back to its target index; ok is false for Start
// and Exit.
func (g *Graph) TargetIndex(v Node) (int, bool) {
	if v <= Start || v >= g.Exit() {
		return 0, false
	}

	return int(v) - 1, true
}

// Weight returns the direct transition time u→v.
func (g *Graph) Weight(u, v Node) int {
	w, err := g.w.At(int(u), int(v))
	if err != nil {
		panic(err) // programmer error: node outside the graph
	}

	return w
}

// Edges lists every directed edge, self-loops included, in row-major order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.m*g.m)
	var u, v Node
	for u = 0; int(u) < g.m; u++ {
		for v = 0; int(v) < g.m; v++ {
			edges = append(edges, Edge{From: u, To: v, Weight: g.Weight(u, v)})
		}
	}

	return edges
}

// Matrix returns a private copy of the transition-time matrix.
func (g *Graph) Matrix() *matrix.Dense { return g.w.Clone() }

// Rows returns a copy of the transition times as a jagged slice.
func (g *Graph) Rows() [][]int { return g.w.ToRows() }

// Label renders v for humans: "start", "target 2", "exit".
func (g *Graph) Label(v Node) string {
	switch {
	case v == Start:
		return "start"
	case v == g.Exit():
		return "exit"
	case v > Start && v < g.Exit():
		return fmt.Sprintf("target %d", int(v)-1)
	}

	return fmt.Sprintf("node %d", int(v))
}
