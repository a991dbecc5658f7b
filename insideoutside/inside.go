package insideoutside

import (
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/semiring"
)

// Inside computes the inside score of every node and returns the root's
// score together with the full vector (one entry per node).
//
// Nodes without in-edges keep Zero. An empty or nil forest yields Zero and
// an empty vector.
//
// Complexity: O(N + Σ|tails|) time, O(N) memory.
func Inside[K semiring.Value[K]](hg *hypergraph.Hypergraph, w WeightFunc[K]) (K, []K) {
	inside := insideInto(hg, w, nil)

	return rootOf(inside), inside
}

// insideInto fills buf (reusing its capacity) with inside scores.
func insideInto[K semiring.Value[K]](hg *hypergraph.Hypergraph, w WeightFunc[K], buf []K) []K {
	n := hg.NumNodes()
	zero := semiring.Zero[K]()
	inside := resize(buf, n, zero)

	for i := 0; i < n; i++ {
		acc := zero
		for _, eid := range hg.Nodes[i].InEdges {
			e := &hg.Edges[eid]
			score := w(e)
			for _, t := range e.Tails {
				score = score.Mul(inside[t])
			}
			acc = acc.Add(score)
		}
		inside[i] = acc
	}

	return inside
}

// rootOf returns the last entry of v, or Zero when v is empty.
func rootOf[K semiring.Value[K]](v []K) K {
	if len(v) == 0 {
		return semiring.Zero[K]()
	}

	return v[len(v)-1]
}

// resize returns buf truncated or grown to n entries, all set to fill.
func resize[K any](buf []K, n int, fill K) []K {
	if cap(buf) < n {
		buf = make([]K, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = fill
	}

	return buf
}
