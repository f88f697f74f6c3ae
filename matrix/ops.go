// SPDX-License-Identifier: MIT

// Package matrix - exact linear-algebra kernels.
//
// Contract shared by every kernel in this file:
//   - Operands are validated first (nil, then shape); failures are wrapped
//     with the kernel's op tag and keep their sentinel for errors.Is.
//   - A fresh *Dense is returned; operands are never mutated.
//   - *Dense operands take a flat-slice fast path; any other Matrix goes
//     through At with the same i→j loop order, so both paths agree exactly.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvlexact/rational"
)

// readAll materializes any Matrix as a flat row-major slice. *Dense returns
// its own buffer (callers must treat it as read-only).
func readAll(m Matrix, tag string) ([]rational.Rat, error) {
	if d, ok := m.(*Dense); ok {
		return d.data, nil
	}
	r, c := m.Rows(), m.Cols()
	out := make([]rational.Rat, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[i*c+j] = v
		}
	}

	return out, nil
}

// AsDense returns m itself when it is a *Dense, otherwise a *Dense copy.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - Any error reported by m.At.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	data, err := readAll(m, "AsDense")
	if err != nil {
		return nil, err
	}

	return &Dense{r: m.Rows(), c: m.Cols(), data: data}, nil
}

// addSub computes elementwise out = a + b (neg=false) or a − b (neg=true).
// Internal helper for Add/Sub to share validation, allocation and fast path.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub(a, b Matrix, neg bool, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	ad, err := readAll(a, opTag)
	if err != nil {
		return nil, err
	}
	bd, err := readAll(b, opTag)
	if err != nil {
		return nil, err
	}

	res := &Dense{r: a.Rows(), c: a.Cols(), data: make([]rational.Rat, len(ad))}
	for idx := range ad { // deterministic 0..n-1
		if neg {
			res.data[idx] = ad[idx].Sub(bd[idx])
		} else {
			res.data[idx] = ad[idx].Add(bd[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A − B.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, true, opSub) }

// Scale returns alpha·M. It fails only on a nil input.
//
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha rational.Rat) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	md, err := readAll(m, opScale)
	if err != nil {
		return nil, err
	}
	res := &Dense{r: m.Rows(), c: m.Cols(), data: make([]rational.Rat, len(md))}
	if alpha.IsZero() {
		return res, nil
	}
	for idx, v := range md {
		res.data[idx] = v.Mul(alpha)
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: Walk i→k→j over row-major buffers, skipping zero A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loop; one allocation for C.
//   - An (r×0)·(0×c) product is the r×c zero matrix.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c) rational multiply-adds, Space O(r*c).
//
// Notes:
//   - Exact arithmetic makes the cost of each multiply-add grow with the
//     operands' bit length; zero-skipping pays off on sparse inputs.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := readAll(a, opMul)
	if err != nil {
		return nil, err
	}
	bd, err := readAll(b, opMul)
	if err != nil {
		return nil, err
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res := &Dense{r: aRows, c: bCols, data: make([]rational.Rat, aRows*bCols)}
	var (
		i, j, k                            int
		av                                 rational.Rat
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = ad[rowOffsetA+k]
			if av.IsZero() {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				if bd[rowOffsetB+j].IsZero() {
					continue
				}
				res.data[rowOffsetR+j] = res.data[rowOffsetR+j].Add(av.Mul(bd[rowOffsetB+j]))
			}
		}
	}

	return res, nil
}

// MatVec computes y = M·x.
//
// Errors:
//   - ErrNilMatrix (nil M), ErrDimensionMismatch (len(x) != M.Cols()).
//
// Complexity: Time O(r*c), Space O(r).
func MatVec(m Matrix, x Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec,
			fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.Cols(), ErrDimensionMismatch))
	}
	md, err := readAll(m, opMatVec)
	if err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	y := make(Vector, r)
	for i := 0; i < r; i++ {
		y[i] = rational.Dot(md[i*c:(i+1)*c], x)
	}

	return y, nil
}

// Transpose returns Mᵀ.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := readAll(m, opTranspose)
	if err != nil {
		return nil, err
	}
	r, c := m.Rows(), m.Cols()
	res := &Dense{r: c, c: r, data: make([]rational.Rat, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			res.data[j*r+i] = md[i*c+j]
		}
	}

	return res, nil
}

// Submatrix copies the entries at the given row and column indices, in the
// order given. Repeated indices repeat rows/columns; empty index sets give a
// zero-sized result.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrOutOfRange for any index outside the matrix.
//
// Complexity: Time O(len(rows)*len(cols)).
func Submatrix(m Matrix, rows, cols []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndexSet(rows, m.Rows()); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndexSet(cols, m.Cols()); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	res := &Dense{r: len(rows), c: len(cols), data: make([]rational.Rat, len(rows)*len(cols))}
	for i, ri := range rows {
		for j, cj := range cols {
			v, err := m.At(ri, cj)
			if err != nil {
				return nil, matrixErrorf(opSubmatrix, err)
			}
			res.data[i*res.c+j] = v
		}
	}

	return res, nil
}

// Augment returns the horizontal concatenation [A | B].
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrDimensionMismatch if the row counts differ.
//
// Complexity: Time O(r*(ca+cb)).
func Augment(a, b Matrix) (*Dense, error) {
	if isNil(a) || isNil(b) {
		return nil, matrixErrorf(opAugment, ErrNilMatrix)
	}
	if a.Rows() != b.Rows() {
		return nil, matrixErrorf(opAugment,
			fmt.Errorf("rows %d vs %d: %w", a.Rows(), b.Rows(), ErrDimensionMismatch))
	}
	ad, err := readAll(a, opAugment)
	if err != nil {
		return nil, err
	}
	bd, err := readAll(b, opAugment)
	if err != nil {
		return nil, err
	}
	r, ca, cb := a.Rows(), a.Cols(), b.Cols()
	res := &Dense{r: r, c: ca + cb, data: make([]rational.Rat, r*(ca+cb))}
	for i := 0; i < r; i++ {
		copy(res.data[i*res.c:], ad[i*ca:(i+1)*ca])
		copy(res.data[i*res.c+ca:], bd[i*cb:(i+1)*cb])
	}

	return res, nil
}

// AugmentVec returns [A | b] with b as an extra column.
//
// Errors:
//   - ErrNilMatrix for a nil A.
//   - ErrDimensionMismatch if len(b) != A.Rows().
func AugmentVec(a Matrix, b Vector) (*Dense, error) {
	if err := ValidateVecLen(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	return Augment(a, b.AsColumn())
}

// SplitCols splits M into its first k columns and the rest: M = [L | R].
//
// Errors:
//   - ErrNilMatrix for a nil input.
//   - ErrOutOfRange unless 0 ≤ k ≤ M.Cols().
func SplitCols(m Matrix, k int) (*Dense, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opSplitCols, err)
	}
	r, c := m.Rows(), m.Cols()
	if k < 0 || k > c {
		return nil, nil, matrixErrorf(opSplitCols, fmt.Errorf("k=%d, cols=%d: %w", k, c, ErrOutOfRange))
	}
	md, err := readAll(m, opSplitCols)
	if err != nil {
		return nil, nil, err
	}
	left := &Dense{r: r, c: k, data: make([]rational.Rat, r*k)}
	right := &Dense{r: r, c: c - k, data: make([]rational.Rat, r*(c-k))}
	for i := 0; i < r; i++ {
		copy(left.data[i*k:(i+1)*k], md[i*c:i*c+k])
		copy(right.data[i*(c-k):(i+1)*(c-k)], md[i*c+k:(i+1)*c])
	}

	return left, right, nil
}

// IsIdentity reports whether M is square with ones on the diagonal and exact
// zeros elsewhere. The 0×0 matrix is the identity.
//
// Errors:
//   - ErrNilMatrix for a nil input.
func IsIdentity(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIsIdentity, err)
	}
	if m.Rows() != m.Cols() {
		return false, nil
	}
	md, err := readAll(m, opIsIdentity)
	if err != nil {
		return false, err
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := md[i*n+j]
			if i == j && !v.IsOne() || i != j && !v.IsZero() {
				return false, nil
			}
		}
	}

	return true, nil
}
