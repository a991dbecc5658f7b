// Package insideoutside computes inside and outside scores over a derivation
// forest, generically over any semiring, and derives edge marginals and
// feature expectations from them.
//
// 🚀 What does it compute?
//
//	inside[v]  — total weight of all ways to derive node v from the leaves
//	outside[v] — total weight of all ways to complete a derivation of the
//	             root around v, excluding v's own inside weight
//
//	For an edge e with head h:
//	  marginal(e) = w(e) · outside[h] · Π inside[tail]
//	and the expectation of an edge quantity x under the forest is
//	  E[x] = Σ_e x(e) · outside[h] · Π inside[tail]
//
// Algorithm Outline:
//  1. Inside: visit nodes in increasing index (topological) order;
//     inside[v] = Σ_{e ∈ in(v)} w(e) · Π_{t ∈ tails(e)} inside[t].
//  2. Outside: outside[root] = scale (One unless normalizing); visit nodes
//     in decreasing order; for each in-edge e of v and each tail t:
//     outside[t] += w(e) · outside[v] · Π_{t' ≠ t} inside[t'].
//  3. Derived queries (Expect, EdgeMarginals) combine both tables.
//
// Driver (Li & Eisner, 2009):
//
//	InsideOutside[K, X] runs steps 1–2 in a cheap semiring K (e.g. Prob) and
//	uses the tables to accumulate an expensive quantity X (e.g. a sparse
//	feature vector) in one extra pass, never running the recursion in X:
//
//	  z, fx := insideoutside.InsideOutside(hg, edgeweight.Prob, edgeweight.FeaturesTimesProb)
//	  // fx/z is the expected feature vector, log(z) the log partition function.
//
// Best derivation:
//
//	BestDerivation runs the Tropical (max, +) recursion with backpointers
//	and returns the 1-best derivation's edges, the hypergraph analogue of
//	a shortest-path predecessor map.
//
// Normalization:
//
//	New[K] leaves outside scores unnormalized (outside[root] = One).
//	NewNormalized[K] requires K to be a semiring.Field and seeds
//	outside[root] with 1/inside[root], turning marginals into posteriors.
//	An underivable root keeps scale One: its marginals are all Zero.
//
// Preconditions:
//
//	Forests must satisfy the topological invariant of package hypergraph
//	(tails below heads, root last). Weight functions must be pure.
//
// Errors:
//
//	Contract violations panic with an error wrapping ErrInsideLength or
//	ErrNotComputed; there are no recoverable error returns.
//
// Complexity:
//
//	Inside / Expect / EdgeMarginals: O(N + Σ|tails|)
//	Outside: O(N + Σ|tails|²), hyperedge arity is small in practice
//
// Concurrency:
//
//	Functions hold no shared state. An InsideOutsides value belongs to one
//	goroutine; independent forests may be processed concurrently.
package insideoutside
