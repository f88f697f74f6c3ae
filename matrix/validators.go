// SPDX-License-Identifier: MIT

// Package matrix - shape and index validators shared by the kernels here and
// by the engines built on top (gauss, simplex, batch).
//
// Each validator returns a sentinel wrapped with its own name so a failing
// check reads as "ValidateSquare: matrix: dimension mismatch".

package matrix

import "fmt"

// validatorErrorf tags err with the validator name.
func validatorErrorf(name string, err error) error {
	return fmt.Errorf("%s: %w", name, err)
}

// isNil reports a nil interface or a typed nil *Dense inside the interface.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil returns ErrNilMatrix for a nil matrix.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape checks both operands are non-nil with identical shapes.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if isNil(a) || isNil(b) {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape",
			fmt.Errorf("%dx%d vs %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare checks m is non-nil and square. 0×0 is square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare",
			fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows with both inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if isNil(a) || isNil(b) {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible",
			fmt.Errorf("%dx%d · %dx%d: %w", a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateVecLen ensures m is non-nil and len(v) == m.Rows() (the
// right-hand-side rule for a linear system).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateVecLen(m Matrix, v Vector) error {
	if isNil(m) {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(v) != m.Rows() {
		return validatorErrorf("ValidateVecLen",
			fmt.Errorf("len %d vs %d rows: %w", len(v), m.Rows(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateIndexSet checks every index lies in [0, limit).
// Duplicates are allowed.
//
// Errors: ErrOutOfRange.
func ValidateIndexSet(idx []int, limit int) error {
	for k, i := range idx {
		if i < 0 || i >= limit {
			return validatorErrorf("ValidateIndexSet",
				fmt.Errorf("idx[%d]=%d not in [0,%d): %w", k, i, limit, ErrOutOfRange))
		}
	}

	return nil
}
