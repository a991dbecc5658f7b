// Package builder provides deterministic constructors for synthetic
// derivation forests, used by tests, benchmarks, examples and the CLI's
// generate command.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildForest(opts, cons...): resolves options, runs constructors in
//     order, validates the resulting forest.
//   - Topologies (Constructor implementations):
//     – Chain(n):          unary chain, exactly one derivation.
//     – Diamond():         L → {A, B} → R, two derivations.
//     – Bracketing(n):     all binary bracketings of n words (CKY-style),
//     Catalan(n-1) derivations.
//     – Random(n, arity):  random forest over n nodes (requires RNG).
//   - Edge scores (ScoreFn implementations):
//     – DefaultScoreFn, ConstantScoreFn, UniformScoreFn, NormalScoreFn.
//   - Node labels (LabelFn implementations):
//     – DefaultLabelFn ("0","1",…), SymbolLabelFn ("A","B",…).
//   - Edge features: WithFeatureCount(k) fires feature (edgeID mod k) on
//     every edge, WithFeatureFn installs a custom generator.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical forests.
//   - Every forest returned by BuildForest passes hypergraph.Validate.
//   - Constructors return sentinel errors; only option constructors panic,
//     on meaningless input such as nil functions.
package builder
