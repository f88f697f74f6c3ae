// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvlexact/rational"

// Matrix is a read-only two-dimensional view of exact rational values.
//
// Kernels accept any Matrix and return a fresh *Dense. Implementations other
// than *Dense go through the generic At-based path.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At returns the element at (i, j), or ErrOutOfRange for a bad index.
	At(i, j int) (rational.Rat, error)

	// Clone returns an independent deep copy.
	Clone() Matrix
}
