// Package builder_test contains unit tests for the ScoreFn and LabelFn
// implementations, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/forest/builder"
)

// TestScoreFnConstructors verifies that ScoreFn constructors panic
// on invalid parameters according to their documented contracts.
func TestScoreFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.ScoreFn
	}{
		{"UniformScoreFn_maxLessThanMin", func() builder.ScoreFn { return builder.UniformScoreFn(5, 4) }},
		{"NormalScoreFn_stddevNegative", func() builder.ScoreFn { return builder.NormalScoreFn(0, -0.1) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, func() { tc.constructor() }, tc.name)
		})
	}
}

// TestScoreFnBehavior covers the runtime behavior of each ScoreFn:
//   - DefaultScoreFn always returns DefaultEdgeScore.
//   - ConstantScoreFn returns the fixed value, negative values included.
//   - UniformScoreFn returns DefaultEdgeScore on nil RNG, and values in [min,max).
//   - NormalScoreFn returns DefaultEdgeScore on nil RNG.
func TestScoreFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeScore, builder.DefaultScoreFn(nil))
	assert.Equal(t, builder.DefaultEdgeScore, builder.DefaultScoreFn(rng))

	assert.Equal(t, -3.0, builder.ConstantScoreFn(-3)(rng))

	uni := builder.UniformScoreFn(-2, -1)
	assert.Equal(t, builder.DefaultEdgeScore, uni(nil))
	for i := 0; i < 100; i++ {
		s := uni(rng)
		assert.GreaterOrEqual(t, s, -2.0)
		assert.Less(t, s, -1.0)
	}
	assert.Equal(t, 4.0, builder.UniformScoreFn(4, 4)(rng))

	norm := builder.NormalScoreFn(-1, 0)
	assert.Equal(t, builder.DefaultEdgeScore, norm(nil))
	assert.Equal(t, -1.0, norm(rng))
}

// TestLabelFns checks the label schemes on boundary indices.
func TestLabelFns(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0", builder.DefaultLabelFn(0))
	assert.Equal(t, "42", builder.DefaultLabelFn(42))
	assert.Equal(t, "A", builder.SymbolLabelFn(0))
	assert.Equal(t, "Z", builder.SymbolLabelFn(25))
	assert.Equal(t, "AA", builder.SymbolLabelFn(26))
	assert.Equal(t, "X3", builder.PrefixLabelFn("X")(3))
	assert.Panics(t, func() { builder.SymbolLabelFn(-1) })
}
