// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlexact/matrix"
)

// Sentinel errors for linear and integer programs.
var (
	// ErrUnbounded is returned when the objective can improve without limit:
	// an entering column has no positive entry.
	ErrUnbounded = errors.New("simplex: objective is unbounded")

	// ErrInfeasible is returned when no point satisfies every constraint:
	// an artificial variable stays basic at a positive level.
	ErrInfeasible = errors.New("simplex: problem is infeasible")

	// ErrIterationLimit is returned when WithMaxIterations is exceeded.
	ErrIterationLimit = errors.New("simplex: iteration limit reached")

	// ErrNodeLimit is returned when WithMaxNodes is exceeded during
	// branch-and-bound.
	ErrNodeLimit = errors.New("simplex: branch-and-bound node limit reached")

	// ErrBadProblem is returned for a problem with no variables, an unknown
	// sense or an unknown constraint sign.
	ErrBadProblem = errors.New("simplex: malformed problem")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("simplex: invalid option supplied")

	// ErrDimensionMismatch is matrix.ErrDimensionMismatch, re-exported for
	// AssignFleet shape checks.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)

// Operation tags used in error wrapping.
const (
	opSolve        = "Solve"
	opSolveInteger = "SolveInteger"
	opAssignFleet  = "AssignFleet"
)

// simplexErrorf wraps err with a stable operation tag: "<tag>: <err>".
func simplexErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
