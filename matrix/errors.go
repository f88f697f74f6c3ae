// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (possibly wrapped with an operation tag)
// and tests check them via errors.Is. No kernel panics on user input.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so it greps well in logs.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape -> index -> dimension mismatch.
var (
	// ErrBadShape is returned when a requested shape is invalid (r<0, c<0 or
	// more than MaxEntries entries).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// a ragged row set, or a non-square input where a square one is required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation tags used in error wrapping.
const (
	opNewDense    = "NewDense"
	opFromRows    = "NewFromRows"
	opFromInts    = "NewFromInts"
	opFromStrings = "NewFromStrings"
	opIdentity    = "Identity"
	opAdd         = "Add"
	opSub         = "Sub"
	opScale       = "Scale"
	opMul         = "Mul"
	opMatVec      = "MatVec"
	opTranspose   = "Transpose"
	opSubmatrix   = "Submatrix"
	opAugment     = "Augment"
	opSplitCols   = "SplitCols"
	opIsIdentity  = "IsIdentity"
	opFromRecord  = "FromRecord"
	opJSON        = "UnmarshalJSON"
)

// matrixErrorf wraps err with a stable operation tag: "<tag>: <err>".
// The sentinel stays reachable through errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf attaches a method name and coordinates to err.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
