// SPDX-License-Identifier: MIT

package gauss

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlexact/matrix"
)

// Sentinel errors for elimination-derived operations.
var (
	// ErrSingular is returned by Inverse when rank < dimension.
	ErrSingular = errors.New("gauss: singular matrix")

	// ErrNoSolution is returned when the augmented system has a pivot in a
	// constant column (0 = c with c ≠ 0).
	ErrNoSolution = errors.New("gauss: inconsistent system has no solution")

	// ErrUnderdetermined is returned when a consistent system has free
	// variables and the caller did not opt into a solution policy.
	ErrUnderdetermined = errors.New("gauss: underdetermined system")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gauss: invalid option supplied")

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported so
	// callers of this package can match it without importing matrix.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// Operation tags used in error wrapping.
const (
	opReduce       = "Reduce"
	opDeterminant  = "Determinant"
	opInverse      = "Inverse"
	opSolve        = "Solve"
	opSolveGeneral = "SolveGeneral"
	opSolveMatrix  = "SolveMatrix"
	opRowReduce    = "RowReduce"
	opRank         = "Rank"
	opNullSpace    = "NullSpace"
)

// gaussErrorf wraps err with a stable operation tag: "<tag>: <err>".
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
