// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
)

// Zeros returns the r×c zero matrix.
func Zeros(r, c int) (*matrix.Dense, error) {
	if r < 0 || c < 0 {
		return nil, builderErrorf(methodZeros, "%dx%d: %w", r, c, ErrTooSmall)
	}

	return matrix.NewDense(r, c)
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*matrix.Dense, error) {
	if n < 0 {
		return nil, builderErrorf(methodIdentity, "n=%d: %w", n, ErrTooSmall)
	}

	return matrix.Identity(n)
}

// Hilbert returns the n×n Hilbert matrix H[i][j] = 1/(i+j+1).
// det(H) is the reciprocal of an integer and H⁻¹ has integer entries.
func Hilbert(n int) (*matrix.Dense, error) {
	if n < 0 {
		return nil, builderErrorf(methodHilbert, "n=%d: %w", n, ErrTooSmall)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, rational.MustNew(1, int64(i+j+1)))
		}
	}

	return m, nil
}

// Vandermonde returns V with V[i][j] = xs[i]^j, a len(xs)×len(xs) matrix.
// det(V) = Π_{i<j} (xs[j] − xs[i]).
func Vandermonde(xs []rational.Rat) (*matrix.Dense, error) {
	n := len(xs)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(methodVandermonde, "%w", err)
	}
	for i, x := range xs {
		p := rational.One()
		for j := 0; j < n; j++ {
			_ = m.Set(i, j, p)
			p = p.Mul(x)
		}
	}

	return m, nil
}

// Permutation returns the permutation matrix P with P[i][perm[i]] = 1.
func Permutation(perm []int) (*matrix.Dense, error) {
	n := len(perm)
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, builderErrorf(methodPermutation, "perm[%d]=%d: %w", i, p, ErrInvalidPermutation)
		}
		seen[p] = true
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	one := rational.One()
	for i, p := range perm {
		_ = m.Set(i, p, one)
	}

	return m, nil
}

// HilbertDeterminant returns det of the n×n Hilbert matrix from the closed
// form c_n⁴ / c_{2n}, where c_n = Π_{k<n} k!.
func HilbertDeterminant(n int) (rational.Rat, error) {
	if n < 0 {
		return rational.Rat{}, fmt.Errorf("builder: HilbertDeterminant: n=%d: %w", n, ErrTooSmall)
	}
	cn := superFactorial(n)
	c2n := superFactorial(2 * n)
	num := new(big.Int).Exp(cn, big.NewInt(4), nil)

	return rational.FromBig(num, c2n)
}

// superFactorial returns Π_{k=0}^{n-1} k!.
func superFactorial(n int) *big.Int {
	out := big.NewInt(1)
	fact := big.NewInt(1)
	for k := 1; k < n; k++ {
		fact.Mul(fact, big.NewInt(int64(k)))
		out.Mul(out, fact)
	}

	return out
}
