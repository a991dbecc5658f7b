package insideoutside

import (
	"fmt"

	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/semiring"
)

// InsideOutsides runs Inside and Outside for one semiring and keeps both
// tables for the derived queries (Expect, EdgeMarginals, NodeMarginals).
//
// Lifecycle: create per forest (or reuse across forests on one goroutine);
// Compute clears and resizes the tables; queries read them afterwards.
type InsideOutsides[K semiring.Value[K]] struct {
	policy   NormalizationPolicy
	inverse  func(K) K // set only for InverseRoot
	inside   []K
	outside  []K
	computed bool
}

// New returns an InsideOutsides that leaves outside scores unnormalized.
func New[K semiring.Value[K]]() *InsideOutsides[K] {
	return &InsideOutsides[K]{policy: NoNormalization}
}

// NewNormalized returns an InsideOutsides that seeds outside[root] with
// 1/inside[root]. The Field constraint rejects semirings without inverses
// at compile time.
//
// A root with inside Zero has no inverse; the scale then stays One, so
// outside scores and marginals come out Zero rather than NaN.
func NewNormalized[K interface {
	semiring.Field[K]
	comparable
}]() *InsideOutsides[K] {
	return &InsideOutsides[K]{
		policy: InverseRoot,
		inverse: func(k K) K {
			if k == k.Zero() {
				return k.One()
			}
			return k.Inverse()
		},
	}
}

// Policy reports the normalization policy.
func (io *InsideOutsides[K]) Policy() NormalizationPolicy { return io.policy }

// Compute runs Inside with w, derives the root scale from the policy, runs
// Outside with the same w, and returns the unnormalized root inside score.
// Complexity: that of Inside plus Outside.
func (io *InsideOutsides[K]) Compute(hg *hypergraph.Hypergraph, w WeightFunc[K]) K {
	// 1. Inside pass, reusing the previous buffer
	io.inside = insideInto(hg, w, io.inside)
	root := rootOf(io.inside)

	// 2. Root scale from the policy
	scale := semiring.One[K]()
	if io.policy == InverseRoot && len(io.inside) > 0 {
		scale = io.inverse(root)
	}

	// 3. Outside pass; inside is final and never touched again here
	io.outside = outsideInto(hg, io.inside, w, scale, io.outside)
	io.computed = true

	return root
}

// RootInside returns the root's inside score from the last Compute, Zero
// for an empty forest. Panics with ErrNotComputed before Compute.
func (io *InsideOutsides[K]) RootInside() K {
	io.mustBeComputed("RootInside")

	return rootOf(io.inside)
}

// Inside returns a copy of the inside table.
func (io *InsideOutsides[K]) Inside() []K {
	io.mustBeComputed("Inside")

	return append([]K(nil), io.inside...)
}

// Outside returns a copy of the outside table.
func (io *InsideOutsides[K]) Outside() []K {
	io.mustBeComputed("Outside")

	return append([]K(nil), io.outside...)
}

// EdgeMarginals returns, per edge ID, w(e) · outside[head] · Π inside[tail].
// Under InverseRoot and the same w used by Compute these are edge
// posteriors. Complexity: O(M + Σ|tails|).
func (io *InsideOutsides[K]) EdgeMarginals(hg *hypergraph.Hypergraph, w WeightFunc[K]) []K {
	io.mustMatch("EdgeMarginals", hg)

	result := resize[K](nil, hg.NumEdges(), semiring.Zero[K]())
	for i := 0; i < hg.NumNodes(); i++ {
		for _, eid := range hg.Nodes[i].InEdges {
			e := &hg.Edges[eid]
			x := w(e).Mul(io.outside[i])
			for _, t := range e.Tails {
				x = x.Mul(io.inside[t])
			}
			result[eid] = x
		}
	}

	return result
}

// NodeMarginals returns inside[v] · outside[v] for every node, the total
// weight of derivations passing through v.
func (io *InsideOutsides[K]) NodeMarginals() []K {
	io.mustBeComputed("NodeMarginals")

	out := make([]K, len(io.inside))
	for v := range io.inside {
		out[v] = io.inside[v].Mul(io.outside[v])
	}

	return out
}

// mustBeComputed panics with ErrNotComputed before the first Compute.
func (io *InsideOutsides[K]) mustBeComputed(method string) {
	if !io.computed {
		panic(fmt.Errorf("%s: %w", method, ErrNotComputed))
	}
}

// mustMatch additionally panics with ErrInsideLength when hg is not the
// forest the tables were computed for (by node count).
func (io *InsideOutsides[K]) mustMatch(method string, hg *hypergraph.Hypergraph) {
	io.mustBeComputed(method)
	if n := hg.NumNodes(); n != len(io.inside) {
		panic(fmt.Errorf("%s: tables hold %d nodes, forest has %d: %w", method, len(io.inside), n, ErrInsideLength))
	}
}
