// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Exact linear algebra over rationals (math/big.Rat) for callers that must
//     report simplified fractions: element access, Sub, Mul and Inverse.
//   - Inputs are never mutated; every kernel allocates a fresh result.
//
// Determinism:
//   - Fixed loop orders; Inverse picks the first non-zero pivot at or below
//     the diagonal, so identical inputs yield identical arithmetic.

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Operation name constants for unified error wrapping.
const (
	opRatSub     = "RatSub"
	opRatMul     = "RatMul"
	opRatInverse = "RatInverse"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// RatDense is a row-major matrix of exact rationals.
// Every cell holds its own *big.Rat; At and Set copy, so callers never alias
// internal storage.
type RatDense struct {
	r, c int
	data []*big.Rat
}

// NewRatDense creates an r×c rational matrix initialized to zeros.
func NewRatDense(rows, cols int) (*RatDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewRatDense(%d,%d): %w", rows, cols, ErrBadShape)
	}
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}

	return &RatDense{r: rows, c: cols, data: data}, nil
}

// RatIdentity returns the n×n rational identity matrix.
func RatIdentity(n int) (*RatDense, error) {
	m, err := NewRatDense(n, n)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *RatDense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *RatDense) Cols() int { return m.c }

func (m *RatDense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("RatDense.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns a copy of the element at (row, col).
func (m *RatDense) At(row, col int) (*big.Rat, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return new(big.Rat).Set(m.data[idx]), nil
}

// Set stores a copy of v at (row, col).
func (m *RatDense) Set(row, col int, v *big.Rat) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx].Set(v)

	return nil
}

// Clone returns a deep copy of the matrix.
func (m *RatDense) Clone() *RatDense {
	data := make([]*big.Rat, len(m.data))
	for i, v := range m.data {
		data[i] = new(big.Rat).Set(v)
	}

	return &RatDense{r: m.r, c: m.c, data: data}
}

// String renders the matrix with reduced fractions, one row per line.
func (m *RatDense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.data[i*m.c+j].RatString())
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// RatSub returns a − b elementwise. Shapes must match.
// Complexity: O(r*c) big.Rat operations.
func RatSub(a, b *RatDense) (*RatDense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opRatSub, err)
	}
	out, err := NewRatDense(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opRatSub, err)
	}
	for i := range a.data {
		out.data[i].Sub(a.data[i], b.data[i])
	}

	return out, nil
}

// RatMul returns the product a·b. Requires a.Cols()==b.Rows().
// Complexity: O(r·k·c) big.Rat operations.
func RatMul(a, b *RatDense) (*RatDense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opRatMul, err)
	}
	out, err := NewRatDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opRatMul, err)
	}

	var (
		i, j, k int
		term    = new(big.Rat)
		acc     *big.Rat
	)
	for i = 0; i < a.r; i++ {
		for j = 0; j < b.c; j++ {
			acc = out.data[i*out.c+j]
			for k = 0; k < a.c; k++ {
				term.Mul(a.data[i*a.c+k], b.data[k*b.c+j])
				acc.Add(acc, term)
			}
		}
	}

	return out, nil
}

// RatInverse computes m⁻¹ by Gauss–Jordan elimination on [m | I].
// A zero diagonal entry is replaced by swapping in the first row below it
// with a non-zero entry in that column; if none exists, ErrSingular is returned.
// The input is not mutated.
//
// Complexity: O(n³) big.Rat operations.
func RatInverse(m *RatDense) (*RatDense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opRatInverse, err)
	}
	n := m.r
	work := m.Clone()
	inv, err := RatIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opRatInverse, err)
	}

	var (
		col, row, pivotRow int
		factor             = new(big.Rat)
		scaled             = new(big.Rat)
	)
	for col = 0; col < n; col++ {
		// Stage 1: pick the pivot row.
		pivotRow = -1
		for row = col; row < n; row++ {
			if work.data[row*n+col].Sign() != 0 {
				pivotRow = row
				break
			}
		}
		if pivotRow < 0 {
			return nil, matrixErrorf(opRatInverse, ErrSingular)
		}
		if pivotRow != col {
			work.swapRows(pivotRow, col)
			inv.swapRows(pivotRow, col)
		}

		// Stage 2: scale the pivot row so the pivot becomes 1.
		factor.Inv(work.data[col*n+col])
		work.scaleRow(col, factor)
		inv.scaleRow(col, factor)

		// Stage 3: eliminate the column from every other row.
		for row = 0; row < n; row++ {
			if row == col || work.data[row*n+col].Sign() == 0 {
				continue
			}
			scaled.Neg(work.data[row*n+col])
			work.addScaledRow(col, row, scaled)
			inv.addScaledRow(col, row, scaled)
		}
	}

	return inv, nil
}

// swapRows exchanges rows a and b in place.
func (m *RatDense) swapRows(a, b int) {
	var j int
	for j = 0; j < m.c; j++ {
		m.data[a*m.c+j], m.data[b*m.c+j] = m.data[b*m.c+j], m.data[a*m.c+j]
	}
}

// scaleRow multiplies row r by k in place.
func (m *RatDense) scaleRow(r int, k *big.Rat) {
	var j int
	for j = 0; j < m.c; j++ {
		m.data[r*m.c+j].Mul(m.data[r*m.c+j], k)
	}
}

// addScaledRow adds k·row(src) to row(dst) in place.
func (m *RatDense) addScaledRow(src, dst int, k *big.Rat) {
	term := new(big.Rat)
	var j int
	for j = 0; j < m.c; j++ {
		term.Mul(m.data[src*m.c+j], k)
		m.data[dst*m.c+j].Add(m.data[dst*m.c+j], term)
	}
}
