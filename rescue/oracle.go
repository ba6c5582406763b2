package rescue

import (
	"fmt"

	"github.com/katalvlaran/escaperoute/matrix"
	"github.com/katalvlaran/escaperoute/timegraph"
)

// Oracle answers cheapest-cost queries between any two nodes of a graph.
//
// It is built by Floyd–Warshall on a private copy of the times and is only
// meaningful when the graph has no negative cycle; Solve guarantees that by
// running the cycle check first.
type Oracle struct {
	g    *timegraph.Graph
	dist [][]int       // dist[u][v]: cheapest u→v cost
	next *matrix.Dense // successor table for route expansion
}

// NewOracle computes the all-pairs table for g.
// Precondition: g has no negative cycle.
func NewOracle(g *timegraph.Graph) (*Oracle, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	d := g.Matrix() // private copy; FloydWarshall works in place
	next, err := matrix.FloydWarshall(d)
	if err != nil {
		return nil, fmt.Errorf("rescue: oracle: %w", err)
	}

	return &Oracle{g: g, dist: d.ToRows(), next: next}, nil
}

// Targets returns the number of targets of the underlying graph.
func (o *Oracle) Targets() int { return o.g.Targets() }

// Cost returns the cheapest total time from u to v.
func (o *Oracle) Cost(u, v timegraph.Node) int {
	return o.dist[u][v]
}

// stops converts a visiting order of target indices into the node sequence
// Start, Target(t1), …, Target(tk), Exit.
func (o *Oracle) stops(order []int) []timegraph.Node {
	nodes := make([]timegraph.Node, 0, len(order)+2)
	nodes = append(nodes, timegraph.Start)
	for _, t := range order {
		nodes = append(nodes, o.g.Target(t))
	}

	return append(nodes, o.g.Exit())
}

// TripCost returns D[Start][t1] + Σ D[ti][ti+1] + D[tk][Exit] for a visiting
// order of target indices; the empty order costs D[Start][Exit].
func (o *Oracle) TripCost(order []int) int {
	prev := timegraph.Start
	total := 0
	for _, t := range order {
		v := o.g.Target(t)
		total += o.dist[prev][v]
		prev = v
	}

	return total + o.dist[prev][o.g.Exit()]
}

// Route expands a visiting order into the complete node walk, including every
// intermediate hop the cheapest legs pass through.
func (o *Oracle) Route(order []int) ([]timegraph.Node, error) {
	stops := o.stops(order)
	route := []timegraph.Node{timegraph.Start}
	for i := 0; i+1 < len(stops); i++ {
		leg, err := matrix.Walk(o.next, int(stops[i]), int(stops[i+1]))
		if err != nil {
			return nil, fmt.Errorf("rescue: route leg %d: %w", i, err)
		}
		for _, v := range leg[1:] {
			route = append(route, timegraph.Node(v))
		}
	}

	return route, nil
}
