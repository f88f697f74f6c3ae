// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernels.
//   - Force the generic (non-*Dense) path through the hide wrapper.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// so kernels take their At-based fallback path.
type hide struct{ matrix.Matrix }

// MustFromInts builds a *Dense from integer rows or fails the test.
func MustFromInts(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromInts(rows)
	require.NoError(t, err)

	return m
}

// MustFromStrings builds a *Dense from text rows or fails the test.
func MustFromStrings(t *testing.T, rows [][]string) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromStrings(rows)
	require.NoError(t, err)

	return m
}

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// RequireMatrixEqual asserts exact equality and prints both sides on failure.
func RequireMatrixEqual(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	wd, ok := want.(*matrix.Dense)
	require.True(t, ok, "want must be *Dense")
	require.True(t, wd.Equal(got), "want:\n%v\ngot:\n%v", want, got)
}

// r is shorthand for rational.MustParse in table literals.
func r(s string) rational.Rat { return rational.MustParse(s) }
