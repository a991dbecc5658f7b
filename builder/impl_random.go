// SPDX-License-Identifier: MIT
// Package: forest/builder
//
// impl_random.go - implementation of Random(n, maxArity) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes); maxArity ≥ 0 (else ErrInvalidArity).
//   - Requires cfg.rng (else ErrNeedRandSource).
//   - Node 0 gets one leaf edge. Every node i ≥ 1 gets between 1 and
//     maxInEdges in-edges; each edge has arity drawn from [0, maxArity]
//     with tails drawn uniformly from [0, i).
//   - Tails may repeat within one edge.
//   - Deterministic for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/forest/hypergraph"
)

const (
	methodRandom   = "Random"
	minRandomNodes = 1
	maxInEdges     = 3
)

// Random returns a Constructor for a random forest of n nodes.
func Random(n, maxArity int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandom, n, minRandomNodes, ErrTooFewNodes)
		}
		if maxArity < 0 {
			return fmt.Errorf("%s: maxArity=%d: %w", methodRandom, maxArity, ErrInvalidArity)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		base := h.NumNodes()
		var (
			i, k, a, arity, id int
			tails              []int
		)
		for i = 0; i < n; i++ {
			id = h.AddNode(cfg.labelFn(i))
			if i == 0 {
				if err := addEdge(h, cfg, id, nil, "r0"); err != nil {
					return fmt.Errorf("%s: leaf: %w", methodRandom, err)
				}
				continue
			}
			edges := 1 + cfg.rng.Intn(maxInEdges)
			for k = 0; k < edges; k++ {
				arity = cfg.rng.Intn(maxArity + 1)
				tails = make([]int, arity)
				for a = 0; a < arity; a++ {
					tails[a] = base + cfg.rng.Intn(i)
				}
				if err := addEdge(h, cfg, id, tails, fmt.Sprintf("r%d.%d", i, k)); err != nil {
					return fmt.Errorf("%s: node %d: %w", methodRandom, i, err)
				}
			}
		}

		return nil
	}
}
