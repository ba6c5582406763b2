// Package matrix provides the small dense matrices the escape planner and the
// absorbing-chain calculator are built on.
//
// The matrix package provides:
//
//   - Dense: a row-major integer matrix used for transition times and the
//     all-pairs distance table. Constructors copy their input; Clone hands out
//     private copies so no stage ever mutates another stage's data.
//   - FloydWarshall: in-place all-pairs shortest paths over a complete Dense
//     (negative entries allowed), returning a successor table for route
//     reconstruction.
//   - RatDense: an exact rational matrix (math/big.Rat) with Sub, Mul and a
//     Gauss–Jordan Inverse, used wherever floating point would lose exactness.
//
// All matrices here are tiny (a handful of rows), so every routine favours a
// fixed, deterministic loop order over cleverness.
//
// Errors are package-level sentinels (see errors.go) wrapped with an
// operation tag; match them with errors.Is.
package matrix
