// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlexact/builder"
	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
	"github.com/stretchr/testify/require"
)

func TestDeterministicFixtures(t *testing.T) {
	t.Parallel()

	z, err := builder.Zeros(2, 3)
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n", z.String())

	id, err := builder.Identity(2)
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0, 1]\n", id.String())

	h, err := builder.Hilbert(3)
	require.NoError(t, err)
	require.Equal(t, "[1, 1/2, 1/3]\n[1/2, 1/3, 1/4]\n[1/3, 1/4, 1/5]\n", h.String())

	v, err := builder.Vandermonde([]rational.Rat{rational.FromInt(1), rational.FromInt(2), rational.FromInt(3)})
	require.NoError(t, err)
	require.Equal(t, "[1, 1, 1]\n[1, 2, 4]\n[1, 3, 9]\n", v.String())

	p, err := builder.Permutation([]int{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 1]\n[1, 0, 0]\n[0, 1, 0]\n", p.String())
}

func TestFixtureErrors(t *testing.T) {
	t.Parallel()

	_, err := builder.Zeros(-1, 1)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Identity(-1)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Hilbert(-2)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Permutation([]int{0, 0})
	require.ErrorIs(t, err, builder.ErrInvalidPermutation)
	_, err = builder.Permutation([]int{1, 2})
	require.ErrorIs(t, err, builder.ErrInvalidPermutation)
	_, err = builder.HilbertDeterminant(-1)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestHilbertDeterminantClosedForm(t *testing.T) {
	t.Parallel()

	cases := map[int]string{0: "1", 1: "1", 2: "1/12", 3: "1/2160", 4: "1/6048000"}
	for n, want := range cases {
		d, err := builder.HilbertDeterminant(n)
		require.NoError(t, err)
		require.Equal(t, want, d.String(), "n=%d", n)
	}
}

func TestRandomInt_SeededAndBounded(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomInt(4, 5, builder.WithSeed(7), builder.WithRange(-2, 3))
	require.NoError(t, err)
	b, err := builder.RandomInt(4, 5, builder.WithSeed(7), builder.WithRange(-2, 3))
	require.NoError(t, err)
	require.True(t, a.Equal(b), "same seed must give the same matrix")

	for _, row := range a.ToRows() {
		for _, v := range row {
			require.True(t, v.IsInt())
			require.False(t, v.Less(rational.FromInt(-2)))
			require.False(t, rational.FromInt(3).Less(v))
		}
	}

	_, err = builder.RandomInt(2, 2)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.RandomInt(-1, 2, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestRandomInvertible_IntegerAndUnimodularShape(t *testing.T) {
	t.Parallel()

	m, err := builder.RandomInvertible(5, builder.WithRand(rand.New(rand.NewSource(42))), builder.WithMixSteps(4))
	require.NoError(t, err)
	require.Equal(t, 5, m.Rows())
	for _, row := range m.ToRows() {
		for _, v := range row {
			require.True(t, v.IsInt())
		}
	}

	one, err := builder.RandomInvertible(1, builder.WithSeed(1))
	require.NoError(t, err)
	ok, err := matrix.IsIdentity(one)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = builder.RandomInvertible(3)
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithRange(3, 2) })
	require.Panics(t, func() { builder.WithMixSteps(0) })
}
