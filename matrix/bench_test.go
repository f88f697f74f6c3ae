// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
)

// benchMatrix fills an n×n matrix with (i+1)/(j+2), a dense mix of fractions.
func benchMatrix(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, rational.MustNew(int64(i+1), int64(j+2)))
		}
	}

	return m
}

func BenchmarkMul16(b *testing.B) {
	a := benchMatrix(b, 16)
	c := benchMatrix(b, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Mul(a, c)
	}
}

func BenchmarkMul16Fallback(b *testing.B) {
	a := benchMatrix(b, 16)
	c := benchMatrix(b, 16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Mul(hide{a}, hide{c})
	}
}

func BenchmarkTranspose64(b *testing.B) {
	a := benchMatrix(b, 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Transpose(a)
	}
}
