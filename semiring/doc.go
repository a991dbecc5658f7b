// Package semiring defines the algebraic value contract shared by every
// forest algorithm, together with the stock semirings used by training and
// decoding code.
//
// 🚀 What is a semiring here?
//
//	A value type K with two combination operators:
//	  • Add: combine alternatives (two derivations of the same item)
//	  • Mul: combine in sequence (an edge and its antecedents)
//	and their identities Zero (no derivation) and One (empty derivation).
//	Mul distributes over Add, Add is commutative. Multiplicative inverses
//	are NOT assumed; types that have them implement Field.
//
// Contract shape:
//
//	Operations are methods on value receivers, so the identities of K are
//	reachable from its zero value:
//
//	  var k K
//	  z, o := k.Zero(), k.One()
//
//	Methods never mutate their receiver or argument. This matters for
//	reference-backed values such as Vector: a weight function may hand out
//	the same map for many calls.
//
// Stock types:
//
//	Bool       : or / and; derivability
//	Count      : + / ×; number of derivations
//	Prob       : + / × over probabilities; Field
//	LogProb    : log-sum-exp / + over log probabilities; Field
//	Viterbi    : max / × over probabilities; Field
//	Tropical   : max / + over log scores; Field
//	Vector     : sparse feature vector; Module over Prob
//	LogVector  : exp(Log)·V; Module over LogProb
//	Expectation: ⟨p, r⟩ first-order expectation semiring (Li & Eisner, 2009)
//
// Modules:
//
//	Module[X, K] describes the "extended" values accumulated by
//	insideoutside.Expect: X only needs Zero, Add and scaling by a K.
//	Every scalar semiring above is a Module over itself.
package semiring
