// SPDX-License-Identifier: MIT

// Package matrix provides exact rational matrices and vectors for lvlexact.
//
// 🚀 What is it?
//
//	A row-major Dense container of rational.Rat values plus a small kernel
//	set (Add, Sub, Scale, Mul, MatVec, Transpose, Submatrix, Augment,
//	SplitCols) that never rounds. Every entry is an exact fraction, so
//	1/3 + 1/3 + 1/3 is exactly 1 and a matrix times its inverse is exactly I.
//
// ✨ Key properties
//
//   - Safe surface: At/Set/row operations return ErrOutOfRange instead of
//     panicking; kernels validate shapes first (ErrDimensionMismatch).
//   - Zero-sized shapes are legal: a 0×0 matrix and an r×0 matrix are valid
//     values, which keeps the elimination engine free of special cases.
//   - Kernels allocate a fresh result and never mutate operands.
//   - *Dense operands take a flat-slice fast path; any other Matrix goes
//     through the At-based fallback with the same deterministic loop order.
//   - JSON travels as {"rows","cols","data"} with every entry encoded as a
//     {"num","den"} record, so large values survive intact.
//
// ⚙️ Usage
//
//	a, _ := matrix.NewFromInts([][]int64{{2, 1}, {1, 3}})
//	b, _ := matrix.NewFromStrings([][]string{{"1/2", "0"}, {"0", "1/3"}})
//	c, _ := matrix.Mul(a, b)
//	fmt.Print(c) // [1, 1/3]
//	             // [1/2, 1]
//
// 📚 Errors
//
//	ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNilMatrix. Kernels
//	wrap them with an operation tag ("Mul: matrix: dimension mismatch"); match
//	with errors.Is.
package matrix
