// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
)

// Solution is the parametrized solution set of a consistent system:
// every x = Particular + Σ tᵢ·Basis[i] solves A·x = b for arbitrary tᵢ.
type Solution struct {
	// Particular is the solution with every free variable set to zero.
	Particular matrix.Vector

	// Basis spans the null space of A, one vector per free variable.
	Basis []matrix.Vector

	// Free lists the free-variable (non-pivot) column indices, aligned with
	// Basis.
	Free []int
}

// Unique reports whether the system has exactly one solution.
func (s *Solution) Unique() bool { return len(s.Free) == 0 }

// At evaluates Particular + Σ params[i]·Basis[i].
//
// Errors:
//   - ErrDimensionMismatch if len(params) != len(Basis).
func (s *Solution) At(params ...rational.Rat) (matrix.Vector, error) {
	if len(params) != len(s.Basis) {
		return nil, fmt.Errorf("Solution.At: %d params for %d free variables: %w",
			len(params), len(s.Basis), ErrDimensionMismatch)
	}
	x := s.Particular.Clone()
	for k, t := range params {
		if t.IsZero() {
			continue
		}
		for i, v := range s.Basis[k] {
			x[i] = x[i].Add(t.Mul(v))
		}
	}

	return x, nil
}

// Determinant returns det(A) exactly. det of the 0×0 matrix is 1.
//
// Errors:
//   - ErrDimensionMismatch if A is not square.
//   - matrix.ErrNilMatrix for a nil input.
func Determinant(a matrix.Matrix, opts ...Option) (rational.Rat, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return rational.Rat{}, gaussErrorf(opDeterminant, err)
	}
	res, err := reduceWith(a, Echelon, opts)
	if err != nil {
		return rational.Rat{}, gaussErrorf(opDeterminant, err)
	}

	return res.Determinant()
}

// Inverse returns A⁻¹ by reducing [A | I] with pivots restricted to A's
// columns and splitting off the right half.
//
// Errors:
//   - ErrDimensionMismatch if A is not square.
//   - ErrSingular if rank(A) < n.
//   - matrix.ErrNilMatrix for a nil input.
func Inverse(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, gaussErrorf(opInverse, err)
	}
	n := a.Rows()
	id, err := matrix.Identity(n)
	if err != nil {
		return nil, gaussErrorf(opInverse, err)
	}
	aug, err := matrix.Augment(a, id)
	if err != nil {
		return nil, gaussErrorf(opInverse, err)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, gaussErrorf(opInverse, err)
	}
	o.Mode = Reduced
	o.PivotColumns = n
	if n == 0 {
		return id, nil
	}
	res := eliminate(aug, o)
	if res.Rank() < n {
		return nil, gaussErrorf(opInverse, fmt.Errorf("rank %d < %d: %w", res.Rank(), n, ErrSingular))
	}
	_, inv, err := matrix.SplitCols(res.form, n)
	if err != nil {
		return nil, gaussErrorf(opInverse, err)
	}

	return inv, nil
}

// RowReduce returns the reduced row-echelon form of A. It is idempotent:
// RowReduce(RowReduce(A)) equals RowReduce(A). WithMode and WithPivotColumns
// are overridden; only the pivot hook is honoured.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - ErrOptionViolation for an invalid option.
func RowReduce(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	res, err := reduceWith(a, Reduced, opts)
	if err != nil {
		return nil, gaussErrorf(opRowReduce, err)
	}

	return res.form, nil
}

// Rank returns the number of pivots of A.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
func Rank(a matrix.Matrix, opts ...Option) (int, error) {
	res, err := reduceWith(a, Echelon, opts)
	if err != nil {
		return 0, gaussErrorf(opRank, err)
	}

	return res.Rank(), nil
}

// Solve returns x with A·x = b.
//
// The system is reduced as [A | b] over every column; a pivot landing in the
// constant column means 0 = c with c ≠ 0.
//
// Errors:
//   - ErrDimensionMismatch if len(b) != A.Rows().
//   - ErrNoSolution for an inconsistent system.
//   - ErrUnderdetermined if rank < A.Cols() under the default policy.
//   - matrix.ErrNilMatrix for a nil A.
func Solve(a matrix.Matrix, b matrix.Vector, opts ...Option) (matrix.Vector, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, gaussErrorf(opSolve, err)
	}
	res, n, err := reduceSystem(a, b, o)
	if err != nil {
		return nil, gaussErrorf(opSolve, err)
	}
	if res.Rank() < n && o.Underdetermined == RejectUnderdetermined {
		return nil, gaussErrorf(opSolve,
			fmt.Errorf("rank %d < %d unknowns: %w", res.Rank(), n, ErrUnderdetermined))
	}

	return particular(res, n), nil
}

// SolveGeneral returns the full solution set of A·x = b.
//
// Errors:
//   - ErrDimensionMismatch if len(b) != A.Rows().
//   - ErrNoSolution for an inconsistent system.
//   - matrix.ErrNilMatrix for a nil A.
func SolveGeneral(a matrix.Matrix, b matrix.Vector, opts ...Option) (*Solution, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, gaussErrorf(opSolveGeneral, err)
	}
	res, n, err := reduceSystem(a, b, o)
	if err != nil {
		return nil, gaussErrorf(opSolveGeneral, err)
	}
	basis, free := nullBasis(res, n)

	return &Solution{Particular: particular(res, n), Basis: basis, Free: free}, nil
}

// SolveMatrix solves A·X = B for every column of B at once.
//
// Errors:
//   - ErrDimensionMismatch if B.Rows() != A.Rows().
//   - ErrNoSolution if any column is inconsistent.
//   - ErrUnderdetermined if rank < A.Cols() under the default policy.
//   - matrix.ErrNilMatrix for a nil input.
func SolveMatrix(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, gaussErrorf(opSolveMatrix, err)
	}
	aug, err := matrix.Augment(a, b)
	if err != nil {
		return nil, gaussErrorf(opSolveMatrix, err)
	}
	n, k := a.Cols(), b.Cols()
	o.Mode = Reduced
	o.PivotColumns = n
	res := &Result{form: aug}
	if n > 0 {
		res = eliminate(aug, o)
	}
	rank := res.Rank()

	// Rows past the rank must read 0 = 0 in every right-hand column.
	for i := rank; i < aug.Rows(); i++ {
		for j := n; j < n+k; j++ {
			if v, _ := res.form.At(i, j); !v.IsZero() {
				return nil, gaussErrorf(opSolveMatrix, fmt.Errorf("column %d: %w", j-n, ErrNoSolution))
			}
		}
	}
	if rank < n && o.Underdetermined == RejectUnderdetermined {
		return nil, gaussErrorf(opSolveMatrix,
			fmt.Errorf("rank %d < %d unknowns: %w", rank, n, ErrUnderdetermined))
	}

	x, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, gaussErrorf(opSolveMatrix, err)
	}
	for i, pc := range res.pivots[:rank] {
		for j := 0; j < k; j++ {
			v, _ := res.form.At(i, n+j)
			_ = x.Set(pc, j, v)
		}
	}

	return x, nil
}

// NullSpace returns a basis of {x : A·x = 0}, one vector per free column,
// each with a 1 in its own free position. A full-column-rank A yields an
// empty basis.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
func NullSpace(a matrix.Matrix, opts ...Option) ([]matrix.Vector, error) {
	res, err := reduceWith(a, Reduced, opts)
	if err != nil {
		return nil, gaussErrorf(opNullSpace, err)
	}
	basis, _ := nullBasis(res, a.Cols())

	return basis, nil
}

// reduceWith eliminates a private copy of a over every column in the given
// mode, keeping only the hook from opts.
func reduceWith(a matrix.Matrix, mode Mode, opts []Option) (*Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, err
	}
	src, err := matrix.AsDense(a)
	if err != nil {
		return nil, err
	}
	o.Mode = mode
	o.PivotColumns = 0

	return eliminate(src.CloneDense(), o), nil
}

// reduceSystem validates and reduces [A | b] over every column. It returns
// the result and the number of unknowns.
func reduceSystem(a matrix.Matrix, b matrix.Vector, o Options) (*Result, int, error) {
	aug, err := matrix.AugmentVec(a, b)
	if err != nil {
		return nil, 0, err
	}
	n := a.Cols()
	o.Mode = Reduced
	o.PivotColumns = 0
	res := eliminate(aug, o)
	if k := res.Rank(); k > 0 && res.pivots[k-1] == n {
		return nil, 0, ErrNoSolution
	}

	return res, n, nil
}

// particular reads x[pivot col] from the constant column n, free variables 0.
func particular(res *Result, n int) matrix.Vector {
	x := matrix.NewVector(n)
	for i, pc := range res.pivots {
		if pc >= n {
			break
		}
		x[pc], _ = res.form.At(i, n)
	}

	return x
}

// nullBasis builds one null-space vector per non-pivot column among the first
// n columns of a reduced form.
func nullBasis(res *Result, n int) ([]matrix.Vector, []int) {
	isPivot := make([]bool, n)
	for _, pc := range res.pivots {
		if pc < n {
			isPivot[pc] = true
		}
	}
	var (
		basis []matrix.Vector
		free  []int
	)
	for f := 0; f < n; f++ {
		if isPivot[f] {
			continue
		}
		v := matrix.NewVector(n)
		v[f] = rational.One()
		for i, pc := range res.pivots {
			if pc >= n {
				break
			}
			e, _ := res.form.At(i, f)
			v[pc] = e.Neg()
		}
		basis = append(basis, v)
		free = append(free, f)
	}

	return basis, free
}
