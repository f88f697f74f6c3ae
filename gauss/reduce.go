// SPDX-License-Identifier: MIT

package gauss

import (
	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
)

// Result is the read-only outcome of one elimination pass.
type Result struct {
	form        *matrix.Dense
	pivots      []int
	pivotValues []rational.Rat
	swaps       int
	searched    int // number of columns the pivot search covered
}

// Form returns a copy of the eliminated matrix.
func (r *Result) Form() *matrix.Dense { return r.form.CloneDense() }

// Pivots returns the pivot column indices in row order.
func (r *Result) Pivots() []int {
	out := make([]int, len(r.pivots))
	copy(out, r.pivots)

	return out
}

// Rank returns the number of pivots found.
func (r *Result) Rank() int { return len(r.pivots) }

// Swaps returns the number of row exchanges performed.
func (r *Result) Swaps() int { return r.swaps }

// Determinant returns the determinant of the block the pivot search covered:
// the product of the un-normalized pivots times (−1)^swaps, or exactly 0 when
// that block is rank-deficient.
//
// Errors:
//   - ErrDimensionMismatch if the searched block is not square.
func (r *Result) Determinant() (rational.Rat, error) {
	if r.form.Rows() != r.searched {
		return rational.Rat{}, gaussErrorf(opDeterminant, ErrDimensionMismatch)
	}
	if len(r.pivots) < r.searched {
		return rational.Zero(), nil
	}
	det := rational.Product(r.pivotValues...)
	if r.swaps%2 == 1 {
		det = det.Neg()
	}

	return det, nil
}

// Reduce runs Gauss–Jordan elimination on a private copy of m.
//
// Implementation:
//   - Stage 1: Gather options, validate m, clone it into a *Dense work copy.
//   - Stage 2: For each column left to right (within the pivot limit), find
//     the first row at or below the pivot row with a non-zero entry. No such
//     row: the column has no pivot; move on without advancing the pivot row.
//   - Stage 3: Swap it into place (counting swaps), record the raw pivot,
//     divide the row by it, and clear the column from every other row
//     (Reduced) or from the rows below (Echelon).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - ErrOptionViolation for an invalid option.
//
// Complexity:
//   - O(r·c·min(r,c)) rational operations.
func Reduce(m matrix.Matrix, opts ...Option) (*Result, error) {
	o, err := gatherOptions(opts...)
	if err != nil {
		return nil, gaussErrorf(opReduce, err)
	}
	src, err := matrix.AsDense(m)
	if err != nil {
		return nil, gaussErrorf(opReduce, err)
	}

	return eliminate(src.CloneDense(), o), nil
}

// eliminate reduces work in place. Indices are always in range, so the row
// operations cannot fail.
func eliminate(work *matrix.Dense, o Options) *Result {
	rows, cols := work.Rows(), work.Cols()
	limit := cols
	if o.PivotColumns > 0 && o.PivotColumns < cols {
		limit = o.PivotColumns
	}
	res := &Result{form: work, searched: limit}

	pr := 0 // current pivot row
	for col := 0; col < limit && pr < rows; col++ {
		sel := -1
		for i := pr; i < rows; i++ {
			if v, _ := work.At(i, col); !v.IsZero() {
				sel = i
				break
			}
		}
		if sel < 0 {
			continue
		}
		if sel != pr {
			_ = work.SwapRows(sel, pr)
			res.swaps++
		}

		pivot, _ := work.At(pr, col)
		o.OnPivot(len(res.pivots), pr, col, pivot)
		res.pivots = append(res.pivots, col)
		res.pivotValues = append(res.pivotValues, pivot)

		inv, _ := pivot.Inv() // pivot is non-zero
		_ = work.ScaleRow(pr, inv)

		start := 0
		if o.Mode == Echelon {
			start = pr + 1
		}
		for i := start; i < rows; i++ {
			if i == pr {
				continue
			}
			f, _ := work.At(i, col)
			if f.IsZero() {
				continue
			}
			_ = work.AddScaledRow(i, pr, f.Neg())
		}
		pr++
	}

	return res
}
