// Package bellmanford detects negative-weight cycles in a timegraph.Graph.
//
// The relaxation is the textbook Bellman–Ford from Start: distances start at
// the finite sentinel Unreached (Start at 0) and every directed edge,
// self-loops included, is relaxed m−1 times. One more pass over all edges
// then looks for a strict improvement; any improvement proves a negative
// cycle.
//
// Because Unreached is finite, edges leaving nodes that Start cannot reach
// are relaxed as well. Detection is therefore global: a negative cycle
// anywhere in the matrix is reported, not only one lying on a Start→Exit
// walk. The escape planner relies on exactly this rule.
//
// Complexity:
//
//   - Time:   O(m³) (m−1 passes over m² edges)
//   - Memory: O(m)
package bellmanford
