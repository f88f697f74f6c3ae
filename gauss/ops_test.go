// SPDX-License-Identifier: MIT

package gauss_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlexact/builder"
	"github.com/katalvlaran/lvlexact/gauss"
	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
	"github.com/stretchr/testify/require"
)

func TestSolve_TwoByTwoScenario(t *testing.T) {
	t.Parallel()

	a := MustFromInts(t, [][]int64{{1, 1}, {1, -1}})
	b := matrix.VectorFromInts(4, 2)
	x, err := gauss.Solve(a, b)
	require.NoError(t, err)
	require.True(t, x.Equal(matrix.VectorFromInts(3, 1)), "x = %v", x)

	a = MustFromInts(t, [][]int64{{2, 4}, {1, 3}})
	b = matrix.VectorFromInts(10, 7)
	x, err = gauss.Solve(a, b)
	require.NoError(t, err)
	RequireSolves(t, a, x, b)
	require.Equal(t, "[1, 2]", x.String())
}

func TestSingularScenario(t *testing.T) {
	t.Parallel()

	a := MustFromInts(t, [][]int64{{1, 2}, {2, 4}})
	det, err := gauss.Determinant(a)
	require.NoError(t, err)
	require.True(t, det.IsZero())
	require.Equal(t, "0", det.String())

	_, err = gauss.Inverse(a)
	require.ErrorIs(t, err, gauss.ErrSingular)
}

func TestDeterminant_Basics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rows [][]string
		want string
	}{
		{[][]string{{"0", "1"}, {"1", "0"}}, "-1"},
		{[][]string{{"0", "2"}, {"3", "4"}}, "-6"},
		{[][]string{{"1/2", "1/3"}, {"1/4", "1/5"}}, "1/60"},
		{[][]string{{"7"}}, "7"},
		{[][]string{{"2", "0", "0"}, {"0", "3", "0"}, {"0", "0", "1/6"}}, "1"},
	}
	for _, tc := range cases {
		det, err := gauss.Determinant(MustFromStrings(t, tc.rows))
		require.NoError(t, err)
		require.Equal(t, tc.want, det.String(), "%v", tc.rows)
	}

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	det, err := gauss.Determinant(empty)
	require.NoError(t, err)
	require.True(t, det.IsOne(), "det of 0×0 is 1")

	_, err = gauss.Determinant(MustFromInts(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, gauss.ErrDimensionMismatch)
	_, err = gauss.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant_Multiplicative(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 8; seed++ {
		a, err := builder.RandomInt(4, 4, builder.WithSeed(seed))
		require.NoError(t, err)
		b, err := builder.RandomInt(4, 4, builder.WithSeed(seed+100), builder.WithRange(-3, 3))
		require.NoError(t, err)

		detA, err := gauss.Determinant(a)
		require.NoError(t, err)
		detB, err := gauss.Determinant(b)
		require.NoError(t, err)
		detAB, err := gauss.Determinant(MustMul(t, a, b))
		require.NoError(t, err)
		require.True(t, detAB.Equal(detA.Mul(detB)), "seed %d: %s != %s·%s", seed, detAB, detA, detB)
	}
}

func TestInverse_IffDeterminantNonZero(t *testing.T) {
	t.Parallel()

	singular, invertible := 0, 0
	for seed := int64(1); seed <= 40; seed++ {
		a, err := builder.RandomInt(3, 3, builder.WithSeed(seed), builder.WithRange(-1, 1))
		require.NoError(t, err)

		det, err := gauss.Determinant(a)
		require.NoError(t, err)
		inv, err := gauss.Inverse(a)
		if det.IsZero() {
			singular++
			require.ErrorIs(t, err, gauss.ErrSingular, "seed %d", seed)
			continue
		}
		invertible++
		require.NoError(t, err, "seed %d", seed)
		RequireIdentity(t, MustMul(t, a, inv))
		RequireIdentity(t, MustMul(t, inv, a))
	}
	require.Positive(t, invertible)
	require.Positive(t, singular, "entries in {-1,0,1} should hit singular 3×3 matrices")
}

func TestInverse_Hilbert(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 7; n++ {
		h, err := builder.Hilbert(n)
		require.NoError(t, err)

		inv, err := gauss.Inverse(h)
		require.NoError(t, err)
		RequireIdentity(t, MustMul(t, h, inv))

		// The inverse of a Hilbert matrix has integer entries.
		for _, row := range inv.ToRows() {
			for _, v := range row {
				require.True(t, v.IsInt(), "n=%d entry %s", n, v)
			}
		}

		det, err := gauss.Determinant(h)
		require.NoError(t, err)
		want, err := builder.HilbertDeterminant(n)
		require.NoError(t, err)
		require.True(t, det.Equal(want), "n=%d det %s want %s", n, det, want)
	}
}

func TestInverse_UnimodularStaysInteger(t *testing.T) {
	t.Parallel()

	a, err := builder.RandomInvertible(6, builder.WithSeed(11))
	require.NoError(t, err)

	det, err := gauss.Determinant(a)
	require.NoError(t, err)
	require.True(t, det.Abs().IsOne(), "det = %s", det)

	inv, err := gauss.Inverse(a)
	require.NoError(t, err)
	RequireIdentity(t, MustMul(t, a, inv))
	for _, row := range inv.ToRows() {
		for _, v := range row {
			require.True(t, v.IsInt())
		}
	}
}

func TestInverse_ShapesAndEmpty(t *testing.T) {
	t.Parallel()

	_, err := gauss.Inverse(MustFromInts(t, [][]int64{{1, 2}}))
	require.ErrorIs(t, err, gauss.ErrDimensionMismatch)

	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	inv, err := gauss.Inverse(empty)
	require.NoError(t, err)
	require.Equal(t, 0, inv.Rows())
}

func TestRowReduce_Idempotent(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		a, err := builder.RandomInt(4, 6, builder.WithSeed(seed), builder.WithRange(-4, 4))
		require.NoError(t, err)
		once, err := gauss.RowReduce(a)
		require.NoError(t, err)
		twice, err := gauss.RowReduce(once)
		require.NoError(t, err)
		require.True(t, once.Equal(twice), "seed %d:\n%v\n%v", seed, once, twice)
	}
}

func TestRowReduce_AlwaysReducedForm(t *testing.T) {
	t.Parallel()

	a := MustFromInts(t, [][]int64{{2, 4}, {1, 3}})
	for _, opt := range []gauss.Option{
		gauss.WithMode(gauss.Echelon),
		gauss.WithPivotColumns(1),
	} {
		var pivots int
		rref, err := gauss.RowReduce(a, opt, gauss.WithOnPivot(func(int, int, int, rational.Rat) { pivots++ }))
		require.NoError(t, err)
		RequireIdentity(t, rref)
		require.Equal(t, 2, pivots)
	}

	_, err := gauss.RowReduce(a, gauss.WithPivotColumns(-1))
	require.ErrorIs(t, err, gauss.ErrOptionViolation)
}

func TestRank_InvariantUnderRowPermutationAndScaling(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 10; seed++ {
		// A 5×6 product of 5×2 and 2×6 factors has rank at most 2.
		left, err := builder.RandomInt(5, 2, builder.WithSeed(seed))
		require.NoError(t, err)
		right, err := builder.RandomInt(2, 6, builder.WithSeed(seed+50))
		require.NoError(t, err)
		a := MustMul(t, left, right)

		base, err := gauss.Rank(a)
		require.NoError(t, err)
		require.LessOrEqual(t, base, 2)

		p, err := builder.Permutation([]int{3, 0, 4, 1, 2})
		require.NoError(t, err)
		permuted := MustMul(t, p, a)
		got, err := gauss.Rank(permuted)
		require.NoError(t, err)
		require.Equal(t, base, got, "seed %d: row permutation", seed)

		scaled := a.CloneDense()
		for i := 0; i < scaled.Rows(); i++ {
			require.NoError(t, scaled.ScaleRow(i, rational.MustNew(int64(-2*i-1), int64(i+3))))
		}
		got, err = gauss.Rank(scaled)
		require.NoError(t, err)
		require.Equal(t, base, got, "seed %d: row scaling", seed)
	}
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	a := MustFromInts(t, [][]int64{{1, 1}, {1, 1}})

	_, err := gauss.Solve(a, matrix.VectorFromInts(1))
	require.ErrorIs(t, err, gauss.ErrDimensionMismatch)

	_, err = gauss.Solve(a, matrix.VectorFromInts(1, 2))
	require.ErrorIs(t, err, gauss.ErrNoSolution)

	_, err = gauss.Solve(a, matrix.VectorFromInts(2, 2))
	require.ErrorIs(t, err, gauss.ErrUnderdetermined)

	_, err = gauss.Solve(nil, matrix.VectorFromInts(1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolve_FreeVariablesZero(t *testing.T) {
	t.Parallel()

	a := MustFromInts(t, [][]int64{{1, 1, 1}, {0, 1, 2}})
	b := matrix.VectorFromInts(6, 5)
	x, err := gauss.Solve(a, b, gauss.WithUnderdetermined(gauss.FreeVariablesZero))
	require.NoError(t, err)
	require.Equal(t, "[1, 5, 0]", x.String())
	RequireSolves(t, a, x, b)

	// The policy does not hide inconsistency.
	_, err = gauss.Solve(MustFromInts(t, [][]int64{{0, 0}}), matrix.VectorFromInts(1),
		gauss.WithUnderdetermined(gauss.FreeVariablesZero))
	require.ErrorIs(t, err, gauss.ErrNoSolution)
}

func TestSolve_OverdeterminedConsistent(t *testing.T) {
	t.Parallel()

	a := MustFromInts(t, [][]int64{{1, 0}, {0, 1}, {1, 1}})
	b := matrix.VectorFromInts(2, 3, 5)
	x, err := gauss.Solve(a, b)
	require.NoError(t, err)
	require.True(t, x.Equal(matrix.VectorFromInts(2, 3)))
}

func TestSolve_EmptySystems(t *testing.T) {
	t.Parallel()

	// No equations, no unknowns: the empty vector solves it.
	empty, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	x, err := gauss.Solve(empty, matrix.NewVector(0))
	require.NoError(t, err)
	require.Equal(t, 0, x.Len())

	// Two equations, no unknowns: 0 = b must hold.
	noVars, err := matrix.NewDense(2, 0)
	require.NoError(t, err)
	_, err = gauss.Solve(noVars, matrix.VectorFromInts(0, 0))
	require.NoError(t, err)
	_, err = gauss.Solve(noVars, matrix.VectorFromInts(0, 3))
	require.ErrorIs(t, err, gauss.ErrNoSolution)
}

func TestSolveGeneral_Parametrization(t *testing.T) {
	t.Parallel()

	a := MustFromInts(t, [][]int64{{1, 2, 0, 3}, {0, 0, 1, 4}})
	b := matrix.VectorFromInts(5, 6)
	sol, err := gauss.SolveGeneral(a, b)
	require.NoError(t, err)
	require.False(t, sol.Unique())
	require.Equal(t, []int{1, 3}, sol.Free)
	require.Len(t, sol.Basis, 2)
	RequireSolves(t, a, sol.Particular, b)

	zero := matrix.NewVector(a.Rows())
	for _, v := range sol.Basis {
		RequireSolves(t, a, v, zero)
	}

	for _, params := range [][]rational.Rat{
		{rational.FromInt(1), rational.FromInt(-1)},
		{rational.MustNew(7, 3), rational.MustNew(-1, 2)},
	} {
		x, err := sol.At(params...)
		require.NoError(t, err)
		RequireSolves(t, a, x, b)
	}

	_, err = sol.At(rational.One())
	require.ErrorIs(t, err, gauss.ErrDimensionMismatch)

	unique, err := gauss.SolveGeneral(MustFromInts(t, [][]int64{{1, 1}, {1, -1}}), matrix.VectorFromInts(4, 2))
	require.NoError(t, err)
	require.True(t, unique.Unique())
	require.Equal(t, "[3, 1]", unique.Particular.String())

	_, err = gauss.SolveGeneral(MustFromInts(t, [][]int64{{1}, {1}}), matrix.VectorFromInts(1, 2))
	require.ErrorIs(t, err, gauss.ErrNoSolution)
}

func TestSolveMatrix(t *testing.T) {
	t.Parallel()

	a := MustFromInts(t, [][]int64{{2, 0}, {0, 4}})
	b := MustFromInts(t, [][]int64{{2, 4}, {8, 4}})
	x, err := gauss.SolveMatrix(a, b)
	require.NoError(t, err)
	require.True(t, MustFromInts(t, [][]int64{{1, 2}, {2, 1}}).Equal(x), "got\n%v", x)

	// Columns of B solved together match column-by-column Solve.
	m, err := builder.RandomInvertible(4, builder.WithSeed(3))
	require.NoError(t, err)
	rhs, err := builder.RandomInt(4, 3, builder.WithSeed(4))
	require.NoError(t, err)
	x, err = gauss.SolveMatrix(m, rhs)
	require.NoError(t, err)
	for j := 0; j < 3; j++ {
		col, err := rhs.Col(j)
		require.NoError(t, err)
		xj, err := gauss.Solve(m, col)
		require.NoError(t, err)
		got, err := x.Col(j)
		require.NoError(t, err)
		require.True(t, xj.Equal(got), "column %d", j)
	}

	sing := MustFromInts(t, [][]int64{{1, 1}, {1, 1}})
	_, err = gauss.SolveMatrix(sing, MustFromInts(t, [][]int64{{1}, {2}}))
	require.ErrorIs(t, err, gauss.ErrNoSolution)
	_, err = gauss.SolveMatrix(sing, MustFromInts(t, [][]int64{{1}, {1}}))
	require.ErrorIs(t, err, gauss.ErrUnderdetermined)
	x, err = gauss.SolveMatrix(sing, MustFromInts(t, [][]int64{{1}, {1}}),
		gauss.WithUnderdetermined(gauss.FreeVariablesZero))
	require.NoError(t, err)
	require.Equal(t, "[1]\n[0]\n", x.String())
	_, err = gauss.SolveMatrix(a, MustFromInts(t, [][]int64{{1}}))
	require.ErrorIs(t, err, gauss.ErrDimensionMismatch)
}

func TestNullSpace(t *testing.T) {
	t.Parallel()

	a := MustFromInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	basis, err := gauss.NullSpace(a)
	require.NoError(t, err)
	require.Len(t, basis, 1)
	require.Equal(t, "[1, -2, 1]", basis[0].String())
	RequireSolves(t, a, basis[0], matrix.NewVector(3))

	id, err := matrix.Identity(3)
	require.NoError(t, err)
	basis, err = gauss.NullSpace(id)
	require.NoError(t, err)
	require.Empty(t, basis)

	_, err = gauss.NullSpace(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRank_Values(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rows [][]int64
		want int
	}{
		{[][]int64{{1, 2}, {2, 4}}, 1},
		{[][]int64{{0, 0}, {0, 0}}, 0},
		{[][]int64{{1, 0, 0}, {0, 1, 0}}, 2},
		{[][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 2},
	}
	for i, tc := range cases {
		tc := tc
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			t.Parallel()
			got, err := gauss.Rank(MustFromInts(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
