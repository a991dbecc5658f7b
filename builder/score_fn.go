// Package builder provides internal helper functions and types
// for configuring edge-score distributions in forest constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeScore is the log score assigned to each edge when no custom
// ScoreFn is provided. exp(0) = 1, so default forests count derivations.
const DefaultEdgeScore float64 = 0

// ScoreFn produces a log-domain edge score given an optional *rand.Rand.
// It must be deterministic for a given RNG seed. Scores may be negative.
type ScoreFn func(rng *rand.Rand) float64

// DefaultScoreFn always returns DefaultEdgeScore.
// Complexity: O(1) time, O(1) space. Never panics.
func DefaultScoreFn(_ *rand.Rand) float64 {
	return DefaultEdgeScore
}

// ConstantScoreFn returns a ScoreFn that always yields value.
func ConstantScoreFn(value float64) ScoreFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformScoreFn returns a ScoreFn sampling uniformly in [min, max).
// Panics if max < min.
// If rng is nil, yields DefaultEdgeScore to maintain deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformScoreFn(min, max float64) ScoreFn {
	if max < min {
		panic(fmt.Sprintf("UniformScoreFn: require min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeScore
		}
		if max == min {
			// Degenerate interval: constant
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// NormalScoreFn returns a ScoreFn sampling from N(mean, stddev).
// Panics if stddev < 0.
// If rng is nil, yields DefaultEdgeScore.
func NormalScoreFn(mean, stddev float64) ScoreFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalScoreFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeScore
		}

		return rng.NormFloat64()*stddev + mean
	}
}
