// SPDX-License-Identifier: MIT

package gauss_test

import (
	"testing"

	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks *Dense so the engine sees a plain Matrix.
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

// MustMul returns a·b or fails the test.
func MustMul(t *testing.T, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return c
}

// RequireIdentity asserts m is exactly the identity.
func RequireIdentity(t *testing.T, m matrix.Matrix) {
	t.Helper()
	ok, err := matrix.IsIdentity(m)
	require.NoError(t, err)
	require.True(t, ok, "not identity:\n%v", m)
}

// RequireSolves asserts A·x == b exactly.
func RequireSolves(t *testing.T, a matrix.Matrix, x, b matrix.Vector) {
	t.Helper()
	got, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	require.True(t, got.Equal(b), "A·x = %v, want %v", got, b)
}
