// SPDX-License-Identifier: MIT
// Package: forest/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildForest(opts, cons...). Creates the forest,
//     resolves cfg, runs cons in order, validates.
//   - Constructors append nodes and edges; the node added last is the root.
//   - Determinism: same options/seed and constructor order ⇒ identical forests.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/semiring"
)

// Constructor appends a topology to h using the resolved builderConfig.
// Constructors MUST validate parameters before mutating h and return
// sentinel errors (no panics).
type Constructor func(h *hypergraph.Hypergraph, cfg builderConfig) error

// BuildForest creates a new forest, resolves the builder configuration from
// opts, applies all constructors in order and validates the result.
// Constructor errors are wrapped as "BuildForest: %w".
//
// Complexity: O(len(opts)) plus the cost of each constructor plus one Validate.
func BuildForest(opts []BuilderOption, cons ...Constructor) (*hypergraph.Hypergraph, error) {
	h := hypergraph.New()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildForest: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(h, cfg); err != nil {
			return nil, fmt.Errorf("BuildForest: %w", err)
		}
	}
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("BuildForest: %w: %w", ErrConstructFailed, err)
	}

	return h, nil
}

// addEdge appends one edge with the configured score and features.
func addEdge(h *hypergraph.Hypergraph, cfg builderConfig, head int, tails []int, rule string) error {
	id := h.NumEdges()
	opts := []hypergraph.EdgeOption{
		hypergraph.WithRule(rule),
		hypergraph.WithScore(cfg.scoreFn(cfg.rng)),
	}
	if cfg.featureFn != nil {
		opts = append(opts, hypergraph.WithFeatures(cfg.featureFn(id, cfg.rng)))
	}
	_, err := h.AddEdge(head, tails, opts...)

	return err
}

// moduloFeatures fires feature (edgeID mod k) with value 1.
func moduloFeatures(k int) func(int, *rand.Rand) semiring.Vector {
	return func(edgeID int, _ *rand.Rand) semiring.Vector {
		return semiring.Vector{edgeID % k: 1}
	}
}
