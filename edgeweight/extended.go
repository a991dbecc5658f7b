package edgeweight

import (
	"math"

	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
	"github.com/katalvlaran/forest/semiring"
)

// Features returns the edge's feature vector. The vector is shared with the
// edge; semiring.Vector operations never mutate their receiver.
func Features(e *hypergraph.Edge) semiring.Vector { return e.Features }

// FeaturesTimesProb returns exp(e.Score)·f(e). Paired with Prob as the
// driving weight, Expect yields Z·E[f].
func FeaturesTimesProb(e *hypergraph.Edge) semiring.Vector {
	return e.Features.Scale(semiring.Prob(math.Exp(e.Score)))
}

// LinearFeaturesTimesProb returns exp(Features·weights)·f(e), the extended
// weight matching Linear(weights).
func LinearFeaturesTimesProb(weights []float64) insideoutside.WeightFunc[semiring.Vector] {
	return func(e *hypergraph.Edge) semiring.Vector {
		return e.Features.Scale(semiring.Prob(math.Exp(e.Features.Dot(weights))))
	}
}

// Expectation returns ⟨p, p·f(e)⟩ with p = exp(e.Score). Inside in the
// expectation semiring yields ⟨Z, Z·E[f]⟩ at the root.
func Expectation(e *hypergraph.Edge) semiring.Expectation {
	p := semiring.Prob(math.Exp(e.Score))
	return semiring.Expectation{P: p, R: e.Features.Scale(p)}
}

// LinearExpectation is Expectation with p = exp(Features·weights).
func LinearExpectation(weights []float64) insideoutside.WeightFunc[semiring.Expectation] {
	return func(e *hypergraph.Edge) semiring.Expectation {
		p := semiring.Prob(math.Exp(e.Features.Dot(weights)))
		return semiring.Expectation{P: p, R: e.Features.Scale(p)}
	}
}

// LogFeatures returns ⟨e.Score, f(e)⟩, the log-domain counterpart of
// FeaturesTimesProb. Paired with LogProb as the driving weight, Expect
// yields Z·E[f] with its magnitude in the log domain.
func LogFeatures(e *hypergraph.Edge) semiring.LogVector {
	return semiring.LogVector{Log: semiring.LogProb(e.Score), V: e.Features}
}

// LinearLogFeatures returns ⟨Features·weights, f(e)⟩, the extended weight
// matching LinearLog(weights).
func LinearLogFeatures(weights []float64) insideoutside.WeightFunc[semiring.LogVector] {
	return func(e *hypergraph.Edge) semiring.LogVector {
		return semiring.LogVector{Log: semiring.LogProb(e.Features.Dot(weights)), V: e.Features}
	}
}
