// SPDX-License-Identifier: MIT
// Package builder generates exact rational matrix fixtures for tests,
// benchmarks and examples.
//
// Deterministic constructors:
//   - Zeros(r, c), Identity(n)
//   - Hilbert(n): H[i][j] = 1/(i+j+1), the classic ill-conditioned matrix
//     that floating point cannot invert but exact arithmetic can.
//   - Vandermonde(xs): V[i][j] = xs[i]^j; singular iff xs has a repeat.
//   - Permutation(perm): row i has its 1 in column perm[i].
//
// Stochastic constructors (require WithSeed or WithRand):
//   - RandomInt(r, c): integer entries drawn uniformly from [lo, hi].
//   - RandomInvertible(n): a unimodular integer matrix built as a product of
//     elementary matrices; det is ±1 and the inverse is again integer.
//
// Contract:
//   - Option constructors panic on meaningless input (nil RNG, lo > hi);
//     constructors themselves return sentinel errors and never panic.
//   - The same seed always yields the same matrix.
package builder
