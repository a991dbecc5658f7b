// Package forest is an algebraic toolkit for derivation forests: the
// packed hypergraphs a parser or statistical MT decoder produces, where
// each node is a partial result and each hyperedge is one rule
// application combining several sub-results.
//
// 🚀 What is forest?
//
//	A small, generic library that brings together:
//		• Semirings: Bool, Count, Prob, LogProb, Viterbi, Tropical, the
//		  sparse Vector module and the Li & Eisner expectation semiring
//		• Forests: validated hypergraphs, topological sort, pruning,
//		  a feature dictionary and a YAML codec
//		• Inside/Outside over any semiring, edge and node marginals,
//		  feature expectations and the 1-best derivation
//		• A CRF objective (log-likelihood + gradient) over a corpus
//		• Synthetic forest builders for tests and benchmarks
//
// ✨ Why choose forest?
//
//   - One recursion, any semiring – counts, probabilities, max scores and
//     reachability all run through the same Inside/Outside code
//   - Cheap expectations – InsideOutside[K, X] runs the recursion in K and
//     accumulates X in one extra pass
//   - Type-checked normalization – only semirings with inverses can build
//     a normalized InsideOutsides
//
// Under the hood, everything is organized under these subpackages:
//
//	semiring/      — the Value/Field/Module contract and stock semirings
//	hypergraph/    — forest data model, validation, pruning, YAML codec
//	insideoutside/ — Inside, Outside, marginals, Expect, driver, best derivation
//	edgeweight/    — stock weight functions from edge scores and features
//	builder/       — deterministic synthetic forests (Chain, Diamond, Bracketing, Random)
//	objective/     — concurrent CRF loss and gradient over (full, reference) forests
//	cmd/forest     — command-line front end
//
// Quick example:
//
//	h, _ := builder.BuildForest(nil, builder.Bracketing(5))
//	n, _ := insideoutside.Inside(h, edgeweight.Count)   // 14 derivations
//	z, ef := insideoutside.InsideOutside(h, edgeweight.Prob, edgeweight.FeaturesTimesProb)
//
// See the examples/ directory for runnable scenarios.
package forest
