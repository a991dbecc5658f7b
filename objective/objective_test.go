package objective_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/forest/builder"
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/objective"
)

const numFeatures = 3

// bracketingInstance pairs Bracketing(n) with the reference forest that
// keeps every edge except the last split of the root, which removes at
// least one derivation.
func bracketingInstance(t *testing.T, name string, n int) objective.Instance {
	t.Helper()
	full, err := builder.BuildForest(
		[]builder.BuilderOption{builder.WithFeatureCount(numFeatures)},
		builder.Bracketing(n),
	)
	require.NoError(t, err)

	keep := make([]bool, full.NumEdges())
	for i := range keep {
		keep[i] = true
	}
	root, _ := full.Root()
	in := full.Nodes[root].InEdges
	keep[in[len(in)-1]] = false
	ref, err := full.Prune(keep)
	require.NoError(t, err)

	return objective.Instance{Name: name, Full: full, Reference: ref}
}

func corpus(t *testing.T) []objective.Instance {
	return []objective.Instance{
		bracketingInstance(t, "three", 3),
		bracketingInstance(t, "four", 4),
		bracketingInstance(t, "five", 5),
	}
}

func TestEvaluate_NonNegative(t *testing.T) {
	t.Parallel()

	obj := objective.New()
	res, err := obj.Evaluate(context.Background(), []float64{0.2, -0.3, 0.1}, corpus(t))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Instances)
	assert.Len(t, res.Gradient, numFeatures)
	assert.Greater(t, res.NegLogLikelihood, 0.0)
}

func TestEvaluate_ZeroWeightsCountDerivations(t *testing.T) {
	t.Parallel()

	// With w = 0 every derivation has weight 1: Z_full = Catalan(2) = 2 and
	// the reference keeps one derivation.
	res, err := objective.New().Evaluate(context.Background(), make([]float64, numFeatures),
		[]objective.Instance{bracketingInstance(t, "three", 3)})
	require.NoError(t, err)
	assert.InDelta(t, math.Log(2), res.NegLogLikelihood, 1e-12)
}

func TestEvaluate_LongDerivation(t *testing.T) {
	t.Parallel()

	// One derivation of 400 edges at weight -2: exp(-800) is below the
	// smallest float64, but log Z = -800 and the loss is exactly zero.
	chain, err := builder.BuildForest(
		[]builder.BuilderOption{builder.WithFeatureCount(1)},
		builder.Chain(400),
	)
	require.NoError(t, err)

	res, err := objective.New().Evaluate(context.Background(), []float64{-2},
		[]objective.Instance{{Name: "chain", Full: chain, Reference: chain.Clone()}})
	require.NoError(t, err)
	assert.InDelta(t, 0, res.NegLogLikelihood, 1e-9)
	assert.InDelta(t, 0, res.Gradient[0], 1e-9)
}

func TestEvaluate_GradientMatchesFiniteDifferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	data := corpus(t)
	obj := objective.New(objective.WithWorkers(2), objective.WithL2(0.1))
	w := []float64{0.2, -0.3, 0.1}

	res, err := obj.Evaluate(ctx, w, data)
	require.NoError(t, err)

	const h = 1e-5
	for k := range w {
		plus := append([]float64(nil), w...)
		minus := append([]float64(nil), w...)
		plus[k] += h
		minus[k] -= h
		rp, err := obj.Evaluate(ctx, plus, data)
		require.NoError(t, err)
		rm, err := obj.Evaluate(ctx, minus, data)
		require.NoError(t, err)

		fd := (rp.NegLogLikelihood - rm.NegLogLikelihood) / (2 * h)
		assert.InDelta(t, fd, res.Gradient[k], 1e-6, "feature %d", k)
	}
}

func TestEvaluate_L2(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := []float64{1, -2, 0.5}
	plain, err := objective.New().Evaluate(ctx, w, nil)
	require.NoError(t, err)
	assert.Zero(t, plain.NegLogLikelihood)
	assert.Equal(t, []float64{0, 0, 0}, plain.Gradient)

	reg, err := objective.New(objective.WithL2(2)).Evaluate(ctx, w, nil)
	require.NoError(t, err)
	assert.InDelta(t, 5.25, reg.NegLogLikelihood, 1e-12) // ½·2·(1+4+0.25)
	assert.Equal(t, []float64{2, -4, 1}, reg.Gradient)
}

func TestEvaluate_DeterministicAcrossWorkers(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	data := corpus(t)
	w := []float64{0.3, 0.1, -0.2}

	a, err := objective.New(objective.WithWorkers(1)).Evaluate(ctx, w, data)
	require.NoError(t, err)
	b, err := objective.New(objective.WithWorkers(8)).Evaluate(ctx, w, data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEvaluate_Errors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := make([]float64, numFeatures)
	good := bracketingInstance(t, "ok", 3)

	_, err := objective.New().Evaluate(ctx, w, []objective.Instance{good, {Name: "nil", Full: good.Full}})
	assert.ErrorIs(t, err, objective.ErrNilForest)

	empty := objective.Instance{Name: "empty", Full: good.Full, Reference: hypergraph.New()}
	_, err = objective.New().Evaluate(ctx, w, []objective.Instance{empty})
	assert.ErrorIs(t, err, objective.ErrZeroPartition)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = objective.New().Evaluate(cancelled, w, []objective.Instance{good})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluate_Logs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	obj := objective.New(objective.WithLogger(zap.New(core)))
	_, err := obj.Evaluate(context.Background(), make([]float64, numFeatures), corpus(t))
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("instance evaluated").Len())
	summary := logs.FilterMessage("objective evaluated").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(3), summary[0].ContextMap()["instances"])
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { objective.WithWorkers(0) })
	assert.Panics(t, func() { objective.WithL2(-1) })
	assert.NotPanics(t, func() { objective.New(objective.WithLogger(nil)) })
}
