// Package rescue plans an escape through a timegraph.Graph: pick the largest
// set of targets that can be collected, in some order, while still reaching
// the exit within a time budget.
//
// Pipeline:
//
//  1. No targets (a 2×2 matrix) ⇒ empty result; nothing else runs.
//  2. bellmanford.NegativeCycle ⇒ if the matrix contains any negative cycle,
//     time can be manufactured without bound and every target is rescued.
//  3. NewOracle ⇒ all-pairs cheapest costs via matrix.FloydWarshall on a
//     private copy of the times.
//  4. Select ⇒ every subset of targets (combin.Subsets), every visiting order
//     of it (combin.Permutations); a subset is feasible when its cheapest
//     order costs at most the limit. Larger subsets win; among equal sizes
//     the lexicographically smallest ascending index list wins.
//
// Complexity: O(m³) for steps 2–3 and O(2ⁿ·n!·n) for step 4, with m ≤ 7 and
// n ≤ 5 this is a few thousand operations.
//
// Options:
//
//   - WithLogger(l):     structured logging of the branch taken (Debug level).
//   - WithRoute():       expand the winning order into the full node walk.
//   - WithMaxTargets(k): raise or lower the target bound (default 5).
//
// Errors (sentinel):
//
//   - ErrNilGraph          a nil *timegraph.Graph.
//   - ErrNegativeTimeLimit a time limit below zero.
//   - ErrTooManyTargets    more targets than the configured bound.
//   - ErrBadOption         an option with an invalid argument.
//
// Example:
//
//	targets, err := rescue.Plan([][]int{
//		{0, 1, 1, 1, 1},
//		{1, 0, 1, 1, 1},
//		{1, 1, 0, 1, 1},
//		{1, 1, 1, 0, 1},
//		{1, 1, 1, 1, 0},
//	}, 3)
//	// targets == []int{0, 1}
package rescue
