package edgeweight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forest/builder"
	"github.com/katalvlaran/forest/edgeweight"
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
	"github.com/katalvlaran/forest/semiring"
)

const tol = 1e-12

func sampleEdge() *hypergraph.Edge {
	return &hypergraph.Edge{
		ID:       2,
		Score:    math.Log(0.25),
		Features: semiring.Vector{0: 1, 3: 2},
	}
}

func TestScalarWeights(t *testing.T) {
	t.Parallel()
	e := sampleEdge()

	assert.Equal(t, semiring.Bool(true), edgeweight.Bool(e))
	assert.Equal(t, semiring.Count(1), edgeweight.Count(e))
	assert.InDelta(t, 0.25, float64(edgeweight.Prob(e)), tol)
	assert.InDelta(t, 0.25, float64(edgeweight.Viterbi(e)), tol)
	assert.Equal(t, semiring.LogProb(e.Score), edgeweight.LogProb(e))
	assert.Equal(t, semiring.Tropical(e.Score), edgeweight.Tropical(e))
	assert.Equal(t, semiring.Prob(1), edgeweight.Unit[semiring.Prob]()(e))
	assert.Equal(t, semiring.LogProb(0), edgeweight.Unit[semiring.LogProb]()(e))

	// Annealing: α=0 is uniform, α=2 squares the probability.
	assert.Equal(t, semiring.Prob(1), edgeweight.ScaledProb(0)(e))
	assert.InDelta(t, 0.0625, float64(edgeweight.ScaledProb(2)(e)), tol)
}

func TestLinearWeights(t *testing.T) {
	t.Parallel()
	e := sampleEdge()
	w := []float64{0.5, 9, 9, -1}

	// Features·w = 1·0.5 + 2·(-1) = -1.5
	assert.InDelta(t, -1.5, float64(edgeweight.LinearLog(w)(e)), tol)
	assert.InDelta(t, math.Exp(-1.5), float64(edgeweight.Linear(w)(e)), tol)
	// Short weight vectors drop unknown features.
	assert.InDelta(t, 0.5, float64(edgeweight.LinearLog(w[:1])(e)), tol)
	// Score is ignored.
	assert.Equal(t, math.Log(0.25), e.Score)
}

func TestExtendedWeights(t *testing.T) {
	t.Parallel()
	e := sampleEdge()

	assert.Equal(t, e.Features, edgeweight.Features(e))
	assert.True(t, semiring.Vector{0: 0.25, 3: 0.5}.ApproxEqual(edgeweight.FeaturesTimesProb(e), tol))

	x := edgeweight.Expectation(e)
	assert.InDelta(t, 0.25, float64(x.P), tol)
	assert.True(t, semiring.Vector{0: 0.25, 3: 0.5}.ApproxEqual(x.R, tol))

	w := []float64{0, 0, 0, math.Log(2)}
	// p = exp(2·log 2) = 4
	assert.True(t, semiring.Vector{0: 4, 3: 8}.ApproxEqual(edgeweight.LinearFeaturesTimesProb(w)(e), tol))
	lx := edgeweight.LinearExpectation(w)(e)
	assert.InDelta(t, 4, float64(lx.P), tol)

	// Log-domain counterparts carry the same mass in Log.
	lf := edgeweight.LogFeatures(e)
	assert.Equal(t, semiring.LogProb(e.Score), lf.Log)
	assert.True(t, semiring.Vector{0: 0.25, 3: 0.5}.ApproxEqual(lf.Vector(), tol))
	llf := edgeweight.LinearLogFeatures(w)(e)
	assert.InDelta(t, 2*math.Log(2), float64(llf.Log), tol)
	assert.True(t, semiring.Vector{0: 4, 3: 8}.ApproxEqual(llf.Vector(), tol))

	// Features are not mutated by scaling.
	assert.Equal(t, semiring.Vector{0: 1, 3: 2}, e.Features)
}

func TestMaskAndSelect(t *testing.T) {
	t.Parallel()

	h, err := builder.BuildForest(nil, builder.Diamond())
	require.NoError(t, err)

	// Keep only the derivation through A: edges L, A->L, R->A.
	keep := []bool{true, true, false, true, false}
	masked := edgeweight.Mask[semiring.Count](edgeweight.Count, keep)
	root, _ := insideoutside.Inside(h, masked)
	assert.Equal(t, semiring.Count(1), root)

	sel := edgeweight.Select[semiring.Count](edgeweight.Count, 0, 1, 2, 3, 4)
	root, _ = insideoutside.Inside(h, sel)
	assert.Equal(t, semiring.Count(2), root)

	// Short masks zero the remaining edges.
	short := edgeweight.Mask[semiring.Count](edgeweight.Count, keep[:2])
	root, _ = insideoutside.Inside(h, short)
	assert.Equal(t, semiring.Count(0), root)

	// Negative IDs are ignored.
	neg := edgeweight.Select[semiring.Count](edgeweight.Count, -1)
	assert.Equal(t, semiring.Count(0), neg(&h.Edges[0]))
}
