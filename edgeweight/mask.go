package edgeweight

import (
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
	"github.com/katalvlaran/forest/semiring"
)

// Mask returns w(e) for edges with keep[e.ID] set and Zero for all others,
// including IDs beyond len(keep). Masking is how a reference forest is
// scored inside the full one without building a pruned copy.
func Mask[K semiring.Value[K]](w insideoutside.WeightFunc[K], keep []bool) insideoutside.WeightFunc[K] {
	zero := semiring.Zero[K]()
	return func(e *hypergraph.Edge) K {
		if e.ID < 0 || e.ID >= len(keep) || !keep[e.ID] {
			return zero
		}
		return w(e)
	}
}

// Select is Mask over the given edge IDs. Negative IDs are ignored.
func Select[K semiring.Value[K]](w insideoutside.WeightFunc[K], ids ...int) insideoutside.WeightFunc[K] {
	n := 0
	for _, id := range ids {
		if id+1 > n {
			n = id + 1
		}
	}
	keep := make([]bool, n)
	for _, id := range ids {
		if id >= 0 {
			keep[id] = true
		}
	}

	return Mask(w, keep)
}
