// Package absorb computes exact absorption probabilities of an absorbing
// Markov chain given as a matrix of observed transition counts.
//
// Row i of the count matrix records how often state i was seen moving to
// every state j. A row of all zeros marks an absorbing (terminal) state;
// every other state is transient and its row is normalized into exact
// rational probabilities. The chain always starts in state 0.
//
// With Q the transient→transient block and R the transient→absorbing block,
// the absorption probabilities are row 0 of B = (I−Q)⁻¹·R. Everything is
// computed with math/big rationals through matrix.RatDense, so the answer is
// exact and reported as integer numerators over one common denominator:
//
//	counts := [][]int{
//		{0, 2, 1, 0, 0},
//		{0, 0, 0, 3, 4},
//		{0, 0, 0, 0, 0},
//		{0, 0, 0, 0, 0},
//		{0, 0, 0, 0, 0},
//	}
//	out, _ := absorb.Solution(counts) // [7 6 8 21]
//
// Special cases:
//   - state 0 absorbing: the chain never moves, so state 0 gets probability 1;
//   - a single absorbing state: it is reached with probability 1;
//   - a closed class of transient states makes I−Q singular (matrix.ErrSingular).
package absorb
