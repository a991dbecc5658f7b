// SPDX-License-Identifier: MIT
// Package: forest/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/forest/semiring"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithLabelScheme sets the node label generator used by Chain and Random.
// Panics on nil.
func WithLabelScheme(fn LabelFn) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}
	return func(c *builderConfig) {
		c.labelFn = fn
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

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScoreFn overrides the per-edge log score generator. Panics on nil.
func WithScoreFn(fn ScoreFn) BuilderOption {
	if fn == nil {
		panic("builder: WithScoreFn(nil)")
	}
	return func(c *builderConfig) {
		c.scoreFn = fn
	}
}

// WithFeatureCount makes every edge fire feature (edgeID mod k) with value 1.
// Panics if k < 1.
func WithFeatureCount(k int) BuilderOption {
	if k < 1 {
		panic(fmt.Sprintf("builder: WithFeatureCount(%d): need k ≥ 1", k))
	}
	return func(c *builderConfig) {
		c.featureFn = moduloFeatures(k)
	}
}

// WithFeatureFn installs a custom feature generator. Panics on nil.
func WithFeatureFn(fn func(edgeID int, rng *rand.Rand) semiring.Vector) BuilderOption {
	if fn == nil {
		panic("builder: WithFeatureFn(nil)")
	}
	return func(c *builderConfig) {
		c.featureFn = fn
	}
}
