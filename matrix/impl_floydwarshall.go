// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) over a complete integer matrix with
//     deterministic loop order. Negative entries are allowed.
//   - In-place on the distance matrix; a successor table is returned for route
//     reconstruction.
//
// Contract:
//   - Square matrix; every off-diagonal entry is a direct edge (the graph is complete).
//   - The caller guarantees there is no negative cycle; otherwise the result is meaningless.

package matrix

// Operation name constant for unified error wrapping.
const opFloydWarshall = "FloydWarshall"

// floydWarshallInPlace runs the APSP closure on d and records successors in next.
//
// Loop order is fixed (k → i → j) and only strict improvements are adopted,
// so equal-cost alternatives never replace an earlier choice.
// Time: O(n^3); no allocations inside the hot loops.
func floydWarshallInPlace(d, next *Dense) {
	n := d.r

	var (
		k, i, j      int
		baseK, baseI int
		ik, cand     int
	)

	data := d.data
	succ := next.data

	for k = 0; k < n; k++ { // intermediate vertex
		baseK = k * n

		for i = 0; i < n; i++ { // source vertex
			baseI = i * n
			ik = data[baseI+k]

			for j = 0; j < n; j++ { // destination vertex
				cand = ik + data[baseK+j]
				if cand < data[baseI+j] {
					data[baseI+j] = cand
					succ[baseI+j] = succ[baseI+k] // first hop toward k
				}
			}
		}
	}
}

// FloydWarshall computes all-pairs shortest paths in-place on d and returns the
// successor table: next[i][j] is the first node after i on a cheapest i→j walk.
//
// Determinism:
//   - Loop order is fixed (k → i → j), ensuring stable accumulation order.
//
// Complexity: Time O(n^3), extra space O(n^2) for the successor table.
func FloydWarshall(d *Dense) (*Dense, error) {
	if err := ValidateSquare(d); err != nil {
		return nil, matrixErrorf(opFloydWarshall, err)
	}

	n := d.r
	next := &Dense{r: n, c: n, data: make([]int, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			next.data[i*n+j] = j // every pair has a direct edge
		}
	}

	floydWarshallInPlace(d, next)

	return next, nil
}

// Walk expands the successor table into the node sequence from u to v,
// both endpoints included. For u == v it returns [u].
// It returns ErrOutOfRange when u or v is not a valid index.
func Walk(next *Dense, u, v int) ([]int, error) {
	if err := ValidateSquare(next); err != nil {
		return nil, matrixErrorf("Walk", err)
	}
	n := next.r
	if u < 0 || u >= n || v < 0 || v >= n {
		return nil, matrixErrorf("Walk", ErrOutOfRange)
	}

	walk := []int{u}
	// A shortest walk never repeats a vertex without a negative cycle; n steps
	// bound the loop even if the table is inconsistent.
	for steps := 0; u != v && steps < n; steps++ {
		u = next.data[u*n+v]
		walk = append(walk, u)
	}

	return walk, nil
}
