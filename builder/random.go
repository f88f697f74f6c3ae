// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/lvlexact/matrix"
	"github.com/katalvlaran/lvlexact/rational"
)

// RandomInt returns an r×c matrix of integers drawn uniformly from the
// configured range (default [DefaultLo, DefaultHi]).
//
// Errors:
//   - ErrTooSmall for a negative dimension.
//   - ErrNeedRandSource without WithSeed/WithRand.
func RandomInt(r, c int, opts ...BuilderOption) (*matrix.Dense, error) {
	if r < 0 || c < 0 {
		return nil, builderErrorf(methodRandomInt, "%dx%d: %w", r, c, ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomInt, "%w", ErrNeedRandSource)
	}
	m, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ { // fixed i→j order keeps draws reproducible
		for j := 0; j < c; j++ {
			_ = m.Set(i, j, rational.FromInt(cfg.draw()))
		}
	}

	return m, nil
}

// RandomInvertible returns an n×n unimodular integer matrix: the identity
// mixed by mixSteps·n random elementary operations (row += k·other row with
// k drawn from the range, and row swaps). det is ±1, so the inverse has
// integer entries too.
//
// Errors:
//   - ErrTooSmall for n < 0.
//   - ErrNeedRandSource without WithSeed/WithRand.
func RandomInvertible(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	if n < 0 {
		return nil, builderErrorf(methodRandomInvertible, "n=%d: %w", n, ErrTooSmall)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomInvertible, "%w", ErrNeedRandSource)
	}
	m, err := matrix.Identity(n)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return m, nil
	}
	for step := 0; step < cfg.mixSteps*n; step++ {
		dst := cfg.rng.Intn(n)
		src := cfg.rng.Intn(n - 1)
		if src >= dst {
			src++ // src != dst
		}
		if cfg.rng.Intn(4) == 0 {
			_ = m.SwapRows(dst, src)
			continue
		}
		_ = m.AddScaledRow(dst, src, rational.FromInt(cfg.draw()))
	}

	return m, nil
}
