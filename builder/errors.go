// SPDX-License-Identifier: MIT
// Package: lvlexact/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooSmall indicates that a size parameter is negative.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor was called
// without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidPermutation indicates that a permutation slice is not a
// rearrangement of 0..n-1.
var ErrInvalidPermutation = errors.New("builder: invalid permutation")

// Method tags for error context.
const (
	methodZeros            = "Zeros"
	methodIdentity         = "Identity"
	methodHilbert          = "Hilbert"
	methodVandermonde      = "Vandermonde"
	methodPermutation      = "Permutation"
	methodRandomInt        = "RandomInt"
	methodRandomInvertible = "RandomInvertible"
)

// builderErrorf formats "builder: <method>: <detail>: <sentinel>".
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("builder: %s: "+format, append([]interface{}{method}, args...)...)
}
