// SPDX-License-Identifier: MIT
// Package: forest/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - Adds nodes via cfg.labelFn in ascending index order (0..n-1).
//   - Node 0 gets one leaf edge; node i gets one unary edge from node i-1.
//   - Exactly one derivation; its score is the sum of all n edge scores.
//
// Complexity:
//   - Time: O(n) nodes + O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/forest/hypergraph"
)

const (
	methodChain   = "Chain"
	minChainNodes = 1
)

// Chain returns a Constructor that appends a unary chain of n nodes.
func Chain(n int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewNodes)
		}

		base := h.NumNodes()
		for i := 0; i < n; i++ {
			id := h.AddNode(cfg.labelFn(i))
			var tails []int
			if i > 0 {
				tails = []int{id - 1}
			}
			if err := addEdge(h, cfg, id, tails, fmt.Sprintf("c%d", i)); err != nil {
				return fmt.Errorf("%s: AddEdge(%d): %w", methodChain, id-base, err)
			}
		}

		return nil
	}
}
