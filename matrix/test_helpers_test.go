// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the integer and rational kernels.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/escaperoute/matrix"
)

// MustSquare builds an n×n *Dense from rows or fails the test.
func MustSquare(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewSquare(rows)
	if err != nil {
		t.Fatalf("NewSquare(%v): %v", rows, err)
	}

	return d
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *matrix.Dense, i, j int) int {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts strict equality between m and a 2D literal.
func CompareExact(t *testing.T, want [][]int, m *matrix.Dense) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("CompareExact: Rows = %d; want %d", m.Rows(), len(want))
	}
	var i, j, v int
	for i = 0; i < m.Rows(); i++ {
		if len(want[i]) != m.Cols() {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, m.Cols(), len(want[i]))
		}
		for j = 0; j < m.Cols(); j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%d; want %d", i, j, v, want[i][j])
			}
		}
	}
}

// MustRat builds a rational matrix from "a/b" strings or fails the test.
func MustRat(t *testing.T, rows [][]string) *matrix.RatDense {
	t.Helper()
	m, err := matrix.NewRatDense(len(rows), len(rows[0]))
	if err != nil {
		t.Fatalf("NewRatDense: %v", err)
	}
	for i, row := range rows {
		for j, s := range row {
			v, ok := new(big.Rat).SetString(s)
			if !ok {
				t.Fatalf("bad rational literal %q", s)
			}
			if err = m.Set(i, j, v); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// RatStrings exports m as reduced fraction strings.
func RatStrings(t *testing.T, m *matrix.RatDense) [][]string {
	t.Helper()
	out := make([][]string, m.Rows())
	for i := range out {
		out[i] = make([]string, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v.RatString()
		}
	}

	return out
}
