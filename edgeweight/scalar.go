package edgeweight

import (
	"math"

	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
	"github.com/katalvlaran/forest/semiring"
)

// Unit returns a WeightFunc yielding One for every edge.
func Unit[K semiring.Value[K]]() insideoutside.WeightFunc[K] {
	one := semiring.One[K]()
	return func(*hypergraph.Edge) K { return one }
}

// Bool weighs every edge true; inside scores mark derivable nodes.
func Bool(*hypergraph.Edge) semiring.Bool { return true }

// Count weighs every edge 1; inside scores count derivations.
func Count(*hypergraph.Edge) semiring.Count { return 1 }

// Prob returns exp(e.Score).
func Prob(e *hypergraph.Edge) semiring.Prob { return semiring.Prob(math.Exp(e.Score)) }

// LogProb returns e.Score.
func LogProb(e *hypergraph.Edge) semiring.LogProb { return semiring.LogProb(e.Score) }

// Viterbi returns exp(e.Score).
func Viterbi(e *hypergraph.Edge) semiring.Viterbi { return semiring.Viterbi(math.Exp(e.Score)) }

// Tropical returns e.Score.
func Tropical(e *hypergraph.Edge) semiring.Tropical { return semiring.Tropical(e.Score) }

// ScaledProb returns exp(alpha·e.Score). alpha = 0 flattens the distribution,
// large alpha approaches Viterbi.
func ScaledProb(alpha float64) insideoutside.WeightFunc[semiring.Prob] {
	return func(e *hypergraph.Edge) semiring.Prob {
		return semiring.Prob(math.Exp(alpha * e.Score))
	}
}

// Linear returns exp(Features·weights), ignoring e.Score. Feature IDs outside
// weights contribute nothing.
func Linear(weights []float64) insideoutside.WeightFunc[semiring.Prob] {
	return func(e *hypergraph.Edge) semiring.Prob {
		return semiring.Prob(math.Exp(e.Features.Dot(weights)))
	}
}

// LinearLog returns Features·weights as a log probability.
func LinearLog(weights []float64) insideoutside.WeightFunc[semiring.LogProb] {
	return func(e *hypergraph.Edge) semiring.LogProb {
		return semiring.LogProb(e.Features.Dot(weights))
	}
}
