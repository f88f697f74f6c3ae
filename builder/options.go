// SPDX-License-Identifier: MIT
// Package: lvlexact/builder
//
// options.go: functional options and the internal config they fill.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Deterministic defaults.
const (
	// DefaultLo is the default lower bound for random integer entries.
	DefaultLo = -9
	// DefaultHi is the default upper bound for random integer entries.
	DefaultHi = 9
	// DefaultMixSteps is the number of elementary operations per row used by
	// RandomInvertible.
	DefaultMixSteps = 3
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means "no randomness"
	lo, hi   int64      // inclusive entry range
	mixSteps int        // elementary operations per row
}

// BuilderOption customizes a constructor.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies opts over deterministic defaults, last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		lo:       DefaultLo,
		hi:       DefaultHi,
		mixSteps: DefaultMixSteps,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithRange sets the inclusive range [lo, hi] for random integer entries.
// Panics if lo > hi.
func WithRange(lo, hi int64) BuilderOption {
	if lo > hi {
		panic("builder: WithRange(lo > hi)")
	}
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
	}
}

// WithMixSteps sets how many elementary row operations per row
// RandomInvertible applies. Panics if k < 1.
func WithMixSteps(k int) BuilderOption {
	if k < 1 {
		panic("builder: WithMixSteps(k<1)")
	}
	return func(c *builderConfig) {
		c.mixSteps = k
	}
}

// draw returns a uniform integer in [lo, hi].
func (c builderConfig) draw() int64 {
	return c.lo + c.rng.Int63n(c.hi-c.lo+1)
}
