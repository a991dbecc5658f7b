package insideoutside

import (
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/semiring"
)

// Expect accumulates a second, "extended" value type X over the forest
// using the tables of io:
//
//	Σ_e xw(e) · (outside[head] · Π inside[tail])
//
// X only needs to be a Module over K. Returns X's Zero for an empty forest.
// Panics with ErrNotComputed / ErrInsideLength if io was not computed for hg.
//
// Expect is a function rather than a method because Go methods cannot
// introduce the extra type parameter X.
//
// Complexity: O(M + Σ|tails|) K-products plus M X-scalings and additions.
func Expect[K semiring.Value[K], X semiring.Module[X, K]](
	io *InsideOutsides[K],
	hg *hypergraph.Hypergraph,
	xw WeightFunc[X],
) X {
	io.mustMatch("Expect", hg)

	var acc X
	acc = acc.Zero()
	for i := 0; i < hg.NumNodes(); i++ {
		for _, eid := range hg.Nodes[i].InEdges {
			e := &hg.Edges[eid]
			k := io.outside[i]
			for _, t := range e.Tails {
				k = k.Mul(io.inside[t])
			}
			acc = acc.Add(xw(e).Scale(k))
		}
	}

	return acc
}

// InsideOutside is the Li & Eisner (2009) driver: it computes inside and
// outside tables in the driving semiring K with kw, then the expectation of
// xw in X from those tables. It returns the root inside score in K and the
// (unnormalized) expectation in X. It is exactly
//
//	io := New[K]()
//	k := io.Compute(hg, kw)
//	x := Expect(io, hg, xw)
func InsideOutside[K semiring.Value[K], X semiring.Module[X, K]](
	hg *hypergraph.Hypergraph,
	kw WeightFunc[K],
	xw WeightFunc[X],
) (K, X) {
	io := New[K]()
	k := io.Compute(hg, kw)

	return k, Expect(io, hg, xw)
}

// ConvertScores maps a table computed in one semiring into another, e.g.
// LogProb inside scores into Prob for a consumer that works in Prob.
// The conversion is explicit; tables are never reinterpreted in place.
func ConvertScores[K, K2 any](src []K, conv func(K) K2) []K2 {
	if src == nil {
		return nil
	}
	out := make([]K2, len(src))
	for i, v := range src {
		out[i] = conv(v)
	}

	return out
}
