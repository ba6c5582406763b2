// Package timegraph models the escape station: a start, a handful of rescue
// targets and an exit, joined by a complete directed matrix of transition
// times.
//
// Node indexing is fixed and shared by every package in this module:
//
//	0        Start
//	1..n     Target(0)..Target(n-1)
//	n+1      Exit
//
// Times may be negative (a refund on the clock). The diagonal is 0 by
// convention but not required to be.
//
// A Graph is immutable once built: New copies the caller's rows, and every
// accessor that exposes a matrix returns a fresh copy, so analysis stages can
// work on private data without ever touching the input.
//
// Errors (sentinel):
//
//   - ErrTooFewNodes      fewer than two rows (Start and Exit are mandatory).
//   - ErrTooManyNodes     more than MaxNodes rows.
//   - ErrWeightOutOfRange an entry with |w| > MaxWeight.
//   - matrix.ErrNonSquare a row whose length differs from the row count.
package timegraph
