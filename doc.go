// Package escaperoute plans rescues through small stations of timed
// corridors and solves absorbing Markov chains exactly.
//
// 🚀 What is inside?
//
//	• timegraph/   – the station model: Start, n targets, Exit, integer times
//	• bellmanford/ – global negative-cycle detection with a witness cycle
//	• matrix/      – dense int and exact rational matrices, Floyd–Warshall, Gauss–Jordan
//	• combin/      – subsets as bit sets, lexicographic permutations
//	• rescue/      – the planner: largest rescuable set, smallest indices on ties
//	• absorb/      – exact absorption probabilities over one common denominator
//	• scenario/    – YAML / JSON / JSONC scenario files
//	• cmd/escape   – the command-line front end
//
// ✨ Quick start
//
//	targets, err := rescue.Plan([][]int{
//		{0, 1, 1, 1, 1},
//		{1, 0, 1, 1, 1},
//		{1, 1, 0, 1, 1},
//		{1, 1, 1, 0, 1},
//		{1, 1, 1, 1, 0},
//	}, 3)
//	// targets == [0 1]
//
//	out, err := absorb.Solution([][]int{
//		{0, 2, 1, 0, 0},
//		{0, 0, 0, 3, 4},
//		{0, 0, 0, 0, 0},
//		{0, 0, 0, 0, 0},
//		{0, 0, 0, 0, 0},
//	})
//	// out == [7 6 8 21]
//
// Everything is pure and deterministic: inputs are copied on entry, loop
// orders are fixed and no package keeps global mutable state.
package escaperoute
