// SPDX-License-Identifier: MIT
// Package: forest/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • labelFn   = DefaultLabelFn ("0","1","2",...)
//   • rng       = nil            (pure/deterministic unless seeded)
//   • scoreFn   = DefaultScoreFn (log score 0, probability 1)
//   • featureFn = nil            (no edge features)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/forest/semiring"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node label strategy: index -> label.
	labelFn LabelFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Log-domain score generator for edges.
	scoreFn ScoreFn
	// Feature generator: (edgeID, rng) -> sparse vector. nil means none.
	featureFn func(edgeID int, rng *rand.Rand) semiring.Vector
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies opts in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn: DefaultLabelFn,
		rng:     nil,
		scoreFn: DefaultScoreFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
