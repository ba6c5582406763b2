package bellmanford

import "github.com/katalvlaran/escaperoute/timegraph"

// Unreached is the initial distance of every node except Start. It exceeds
// any feasible path cost: a path has at most timegraph.MaxNodes edges of
// magnitude at most timegraph.MaxWeight.
const Unreached = 1 << 30

// noPred marks a node that no relaxation has touched yet.
const noPred timegraph.Node = -1

// Distances runs the m−1 relaxation passes from Start and returns the
// converged distance and predecessor tables. A pass without any change ends
// the loop early. The graph is only read.
//
// When g has a negative cycle the tables are not converged; use
// HasNegativeCycle or NegativeCycle to tell.
func Distances(g *timegraph.Graph) ([]int, []timegraph.Node) {
	m := g.Nodes()
	dist := make([]int, m)
	prev := make([]timegraph.Node, m)
	for i := range dist {
		dist[i] = Unreached
		prev[i] = noPred
	}
	dist[timegraph.Start] = 0

	edges := g.Edges()
	var pass int
	for pass = 0; pass < m-1; pass++ {
		if !relaxAll(edges, dist, prev) {
			break
		}
	}

	return dist, prev
}

// relaxAll performs one pass over edges and reports whether anything changed.
func relaxAll(edges []timegraph.Edge, dist []int, prev []timegraph.Node) bool {
	changed := false
	for _, e := range edges {
		if cand := dist[e.From] + e.Weight; cand < dist[e.To] {
			dist[e.To] = cand
			prev[e.To] = e.From
			changed = true
		}
	}

	return changed
}

// HasNegativeCycle reports whether g contains a negative-weight cycle
// anywhere, reachable from Start or not.
func HasNegativeCycle(g *timegraph.Graph) bool {
	_, ok := NegativeCycle(g)

	return ok
}

// NegativeCycle returns one negative cycle of g as a closed walk whose first
// and last nodes coincide, e.g. [1 0 1]. ok is false when g has none.
func NegativeCycle(g *timegraph.Graph) (cycle []timegraph.Node, ok bool) {
	dist, prev := Distances(g)

	var witness timegraph.Node = noPred
	for _, e := range g.Edges() {
		if dist[e.From]+e.Weight < dist[e.To] {
			prev[e.To] = e.From
			witness = e.To
			break
		}
	}
	if witness == noPred {
		return nil, false
	}

	// Step back m times so the walk is guaranteed to sit on the cycle.
	v := witness
	for i := 0; i < g.Nodes(); i++ {
		if v = prev[v]; v == noPred {
			return nil, true
		}
	}

	cycle = []timegraph.Node{v}
	for u := prev[v]; u != v; u = prev[u] {
		cycle = append(cycle, u)
	}
	cycle = append(cycle, v)

	// The walk above follows predecessors; reverse it into travel order.
	for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
		cycle[i], cycle[j] = cycle[j], cycle[i]
	}

	return cycle, true
}
