// SPDX-License-Identifier: MIT

// Package matrix - in-place elementary row operations.
//
// These are the three operations elimination engines are built from. They
// mutate the receiver, so engines call them on a private clone. Zero entries
// are skipped, which matters once a matrix is mostly eliminated.

package matrix

import "github.com/katalvlaran/lvlexact/rational"

// SwapRows exchanges rows i and k. Swapping a row with itself is a no-op.
//
// Errors:
//   - ErrOutOfRange if either index is not a valid row.
func (m *Dense) SwapRows(i, k int) error {
	if i < 0 || i >= m.r || k < 0 || k >= m.r {
		return denseErrorf(ctxSwap, i, k, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	ri := m.data[i*m.c : (i+1)*m.c]
	rk := m.data[k*m.c : (k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}

	return nil
}

// ScaleRow multiplies row i by alpha.
//
// Errors:
//   - ErrOutOfRange if i is not a valid row.
func (m *Dense) ScaleRow(i int, alpha rational.Rat) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScal, i, 0, ErrOutOfRange)
	}
	if alpha.IsOne() {
		return nil
	}
	row := m.data[i*m.c : (i+1)*m.c]
	for j := range row {
		if !row[j].IsZero() {
			row[j] = row[j].Mul(alpha)
		}
	}

	return nil
}

// AddScaledRow performs row[dst] += alpha * row[src].
//
// Errors:
//   - ErrOutOfRange if either index is not a valid row.
func (m *Dense) AddScaledRow(dst, src int, alpha rational.Rat) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return denseErrorf(ctxAxpy, dst, src, ErrOutOfRange)
	}
	if alpha.IsZero() {
		return nil
	}
	rd := m.data[dst*m.c : (dst+1)*m.c]
	rs := m.data[src*m.c : (src+1)*m.c]
	for j := range rd {
		if rs[j].IsZero() {
			continue
		}
		rd[j] = rd[j].Add(alpha.Mul(rs[j]))
	}

	return nil
}
