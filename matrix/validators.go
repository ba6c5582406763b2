// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape/nil checks shared by
//    Dense and RatDense kernels.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.

package matrix

import "fmt"

// Shaped is the minimal surface the validators need; both Dense and RatDense
// implement it.
type Shaped interface {
	Rows() int
	Cols() int
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is a nil interface or a typed nil pointer.
func isNil(m Shaped) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *Dense:
		return v == nil
	case *RatDense:
		return v == nil
	}

	return false
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m Shaped) error {
	if isNil(m) {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSquare checks m for nil, then for Rows()==Cols().
func ValidateSquare(m Shaped) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape checks both operands for nil, then for equal shapes.
func ValidateSameShape(a, b Shaped) error {
	if isNil(a) || isNil(b) {
		return ErrNilMatrix
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible checks both operands for nil, then a.Cols()==b.Rows().
func ValidateMulCompatible(a, b Shaped) error {
	if isNil(a) || isNil(b) {
		return ErrNilMatrix
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
