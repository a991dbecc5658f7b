package insideoutside_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/forest/builder"
	"github.com/katalvlaran/forest/edgeweight"
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
	"github.com/katalvlaran/forest/semiring"
)

func benchForest(b *testing.B, n int) *hypergraph.Hypergraph {
	b.Helper()
	h, err := builder.BuildForest(
		[]builder.BuilderOption{
			builder.WithSeed(1),
			builder.WithScoreFn(builder.UniformScoreFn(-1, 0)),
			builder.WithFeatureCount(16),
		},
		builder.Bracketing(n),
	)
	if err != nil {
		b.Fatal(err)
	}

	return h
}

func BenchmarkCompute_LogProb(b *testing.B) {
	for _, n := range []int{10, 20, 40} {
		h := benchForest(b, n)
		b.Run(fmt.Sprintf("words=%d", n), func(b *testing.B) {
			io := insideoutside.NewNormalized[semiring.LogProb]()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				io.Compute(h, edgeweight.LogProb)
			}
		})
	}
}

func BenchmarkInsideOutside_Features(b *testing.B) {
	h := benchForest(b, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		insideoutside.InsideOutside(h, edgeweight.Prob, edgeweight.FeaturesTimesProb)
	}
}

func BenchmarkInside_Expectation(b *testing.B) {
	h := benchForest(b, 20)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		insideoutside.Inside(h, edgeweight.Expectation)
	}
}
