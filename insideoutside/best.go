package insideoutside

import (
	"math"

	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/semiring"
)

// BestDerivation returns the score of the highest-scoring derivation of the
// root and its edges in bottom-up order (every edge after the edges that
// derive its tails, tails left to right). A node used twice in the
// derivation contributes its sub-derivation twice, so the scores of the
// returned edges always sum to the returned score.
//
// Ties keep the first in-edge in InEdges order. A forest whose root has no
// derivation yields Zero and nil.
//
// Complexity: O(N + Σ|tails|) for the scores plus the size of the derivation.
func BestDerivation(hg *hypergraph.Hypergraph, w WeightFunc[semiring.Tropical]) (semiring.Tropical, []int) {
	n := hg.NumNodes()
	if n == 0 {
		return semiring.Tropical(0).Zero(), nil
	}

	// 1. Max-plus inside scores with one backpointer per node.
	best := resize[semiring.Tropical](nil, n, semiring.Tropical(0).Zero())
	back := resize[int](nil, n, -1)
	for i := 0; i < n; i++ {
		for _, eid := range hg.Nodes[i].InEdges {
			e := &hg.Edges[eid]
			s := w(e)
			for _, t := range e.Tails {
				s = s.Mul(best[t])
			}
			// An underivable tail (or a -Inf weight) leaves s at Zero.
			if math.IsInf(float64(s), -1) {
				continue
			}
			if back[i] == -1 || s > best[i] {
				best[i] = s
				back[i] = eid
			}
		}
	}

	root := n - 1
	if back[root] == -1 {
		return best[root], nil
	}

	// 2. Unfold the backpointers from the root.
	var edges []int
	var unfold func(v int)
	unfold = func(v int) {
		e := &hg.Edges[back[v]]
		for _, t := range e.Tails {
			unfold(t)
		}
		edges = append(edges, e.ID)
	}
	unfold(root)

	return best[root], edges
}
