package insideoutside_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/forest/builder"
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/semiring"
)

const tol = 1e-9

// diamond builds the two-derivation forest
//
//	e0: L ← ()   e1: A ← (L) p1   e2: B ← (L) p2   e3: R ← (A)   e4: R ← (B)
//
// so the root inside score in Prob is p1 + p2.
func diamond(t testing.TB, p1, p2 float64) *hypergraph.Hypergraph {
	t.Helper()
	h := hypergraph.New()
	l, a, b, r := h.AddNode("L"), h.AddNode("A"), h.AddNode("B"), h.AddNode("R")
	mustEdge(t, h, l, nil)
	mustEdge(t, h, a, []int{l}, hypergraph.WithScore(math.Log(p1)), hypergraph.WithFeatures(semiring.Vector{0: 1}))
	mustEdge(t, h, b, []int{l}, hypergraph.WithScore(math.Log(p2)), hypergraph.WithFeatures(semiring.Vector{1: 1}))
	mustEdge(t, h, r, []int{a})
	mustEdge(t, h, r, []int{b})

	return h
}

// binary builds X ← () a, Y ← () b, S ← (X Y) c.
func binary(t testing.TB, a, b, c float64) *hypergraph.Hypergraph {
	t.Helper()
	h := hypergraph.New()
	x, y, s := h.AddNode("X"), h.AddNode("Y"), h.AddNode("S")
	mustEdge(t, h, x, nil, hypergraph.WithScore(math.Log(a)))
	mustEdge(t, h, y, nil, hypergraph.WithScore(math.Log(b)))
	mustEdge(t, h, s, []int{x, y}, hypergraph.WithScore(math.Log(c)))

	return h
}

// randomForest builds a seeded random forest with scores in [-3, -2),
// arity at most 2 and four features. With at most three in-edges per node
// every inside score stays below one.
func randomForest(t testing.TB, seed int64, n int) *hypergraph.Hypergraph {
	t.Helper()
	h, err := builder.BuildForest(
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithScoreFn(builder.UniformScoreFn(-3, -2)),
			builder.WithFeatureCount(4),
		},
		builder.Random(n, 2),
	)
	require.NoError(t, err)

	return h
}

func mustEdge(t testing.TB, h *hypergraph.Hypergraph, head int, tails []int, opts ...hypergraph.EdgeOption) int {
	t.Helper()
	id, err := h.AddEdge(head, tails, opts...)
	require.NoError(t, err)

	return id
}

// approx asserts equality within tol, absolute or relative.
func approx(t testing.TB, want, got float64, msgAndArgs ...interface{}) {
	t.Helper()
	if !scalar.EqualWithinAbsOrRel(want, got, tol, tol) {
		require.Failf(t, "values differ", "want %g, got %g %v", want, got, msgAndArgs)
	}
}

// recoverErr runs fn and returns the error it panicked with, if any.
func recoverErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()

	return nil
}
