package insideoutside

import (
	"fmt"

	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/semiring"
)

// Outside computes outside scores from an inside vector produced by Inside
// over the same forest. outside[root] is One, or the value given with
// WithScale; every other node starts at Zero.
//
// Panics with ErrInsideLength when len(inside) != hg.NumNodes().
//
// Complexity: O(N + Σ|tails|²) time, O(N) memory.
func Outside[K semiring.Value[K]](
	hg *hypergraph.Hypergraph,
	inside []K,
	w WeightFunc[K],
	opts ...OutsideOption[K],
) []K {
	cfg := outsideConfig[K]{}
	for _, opt := range opts {
		opt(&cfg)
	}
	scale := semiring.One[K]()
	if cfg.hasScale {
		scale = cfg.scale
	}

	return outsideInto(hg, inside, w, scale, nil)
}

// outsideInto fills buf (reusing its capacity) with outside scores.
func outsideInto[K semiring.Value[K]](
	hg *hypergraph.Hypergraph,
	inside []K,
	w WeightFunc[K],
	scale K,
	buf []K,
) []K {
	n := hg.NumNodes()
	if len(inside) != n {
		panic(fmt.Errorf("Outside: %d inside scores for %d nodes: %w", len(inside), n, ErrInsideLength))
	}
	outside := resize(buf, n, semiring.Zero[K]())
	if n == 0 {
		return outside
	}
	outside[n-1] = scale

	// Reverse topological order: a head is final before its tails are updated.
	for i := n - 1; i >= 0; i-- {
		for _, eid := range hg.Nodes[i].InEdges {
			e := &hg.Edges[eid]
			// Leaf edges have no tails and update nothing.
			head := w(e).Mul(outside[i])
			for k, t := range e.Tails {
				contrib := head
				for l, sib := range e.Tails {
					if l != k {
						contrib = contrib.Mul(inside[sib])
					}
				}
				outside[t] = outside[t].Add(contrib)
			}
		}
	}

	return outside
}
