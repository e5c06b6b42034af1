// SPDX-License-Identifier: MIT
// Package: amidakuji/ladder
//
// options.go - functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package ladder

import (
	"fmt"
	"math"
	"math/rand"
)

// Option customizes Generate by mutating a genConfig before sampling.
type Option func(*genConfig)

// WithRand provides an explicit RNG. The caller owns seeding policy.
// *rand.Rand is not goroutine-safe; do not share it across goroutines.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("ladder: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed.
// seed==0 maps to a fixed default seed (see rngFromSeed).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithProbability overrides the per-cell rung probability.
// Panics if p is outside [0,1].
func WithProbability(p float64) Option {
	if math.IsNaN(p) || p < minProbability || p > maxProbability {
		panic(fmt.Sprintf("ladder: WithProbability(%g) not in [0,1]", p))
	}
	return func(c *genConfig) {
		c.probability = p
	}
}

// WithExclusiveRungs forbids two rungs on adjacent columns of the same row,
// so every lane has at most one rung touching it per row. A cell whose left
// neighbour already holds a rung is left empty without consuming a trial.
func WithExclusiveRungs() Option {
	return func(c *genConfig) {
		c.exclusive = true
	}
}
