// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlexact/rational"
)

// Vector is an ordered sequence of exact rationals. It is a plain slice, so
// the usual len/index/range/append all apply; the methods add bounds-checked
// access and exact comparison.
type Vector []rational.Rat

// NewVector returns a zero vector of length n (n < 0 is treated as 0).
func NewVector(n int) Vector {
	if n < 0 {
		n = 0
	}

	return make(Vector, n)
}

// VectorFromInts builds a vector of integer entries.
func VectorFromInts(xs ...int64) Vector {
	out := make(Vector, len(xs))
	for i, x := range xs {
		out[i] = rational.FromInt(x)
	}

	return out
}

// VectorFromStrings builds a vector from text entries (see rational.Parse).
func VectorFromStrings(xs ...string) (Vector, error) {
	out := make(Vector, len(xs))
	for i, s := range xs {
		v, err := rational.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("VectorFromStrings[%d]: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// Len returns the number of entries.
func (v Vector) Len() int { return len(v) }

// At returns entry i, or ErrOutOfRange.
func (v Vector) At(i int) (rational.Rat, error) {
	if i < 0 || i >= len(v) {
		return rational.Rat{}, fmt.Errorf("Vector.At(%d): %w", i, ErrOutOfRange)
	}

	return v[i], nil
}

// Equal reports whether both vectors have the same length and exactly equal
// entries.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if !v[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Dot returns Σ v[i]·o[i] over the common prefix.
func (v Vector) Dot(o Vector) rational.Rat {
	return rational.Dot(v, o)
}

// String renders the vector as "[a, b, c]".
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, x := range v {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		sb.WriteString(x.String())
	}
	sb.WriteString("]")

	return sb.String()
}

// AsColumn returns v as an n×1 matrix.
func (v Vector) AsColumn() *Dense {
	out := &Dense{r: len(v), c: 1, data: make([]rational.Rat, len(v))}
	copy(out.data, v)

	return out
}
