// Package edgeweight provides stock weight functions that map a hyperedge
// to a semiring value for insideoutside.
//
// All functions read only the edge (its Score and Features) and never
// mutate it; the forest stays read-only while inside and outside run.
//
// Scalar weights:
//
//   - Unit[K]       One for every edge (derivation structure only).
//   - Bool, Count   reachability and derivation counting.
//   - Prob, Viterbi exp(Score).
//   - LogProb, Tropical  Score itself.
//   - ScaledProb(α) exp(α·Score), the annealed distribution.
//   - Linear(w), LinearLog(w)  exp(Features·w) and Features·w, scoring
//     edges against a weight vector without Reweight.
//
// Extended weights for insideoutside.Expect:
//
//   - Features                  f(e).
//   - FeaturesTimesProb         p(e)·f(e), with p(e) = exp(Score).
//   - LinearFeaturesTimesProb(w) p(e)·f(e), with p(e) = exp(Features·w).
//   - LogFeatures, LinearLogFeatures(w)  the same as LogVector ⟨log p(e), f(e)⟩,
//     for Expect over LogProb tables.
//   - Expectation, LinearExpectation  ⟨p(e), p(e)·f(e)⟩.
//
// Combinators:
//
//   - Mask(w, keep)   w(e) for kept edges, Zero otherwise.
//   - Select(w, ids...) Mask over an explicit set of edge IDs.
package edgeweight
