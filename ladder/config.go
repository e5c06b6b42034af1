package ladder

import "math/rand"

// genConfig aggregates the knobs used by Generate. It is resolved once per
// call and passed by value.
type genConfig struct {
	// RNG for Bernoulli trials; nil means no randomness available.
	rng *rand.Rand
	// Per-cell rung probability in [0,1].
	probability float64
	// Forbid adjacent rungs within a row.
	exclusive bool
}

// newGenConfig applies opts over the defaults in order; later options win.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:         nil,
		probability: DefaultProbability,
		exclusive:   false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
