package semiring

import "math"

// Viterbi is the max-times semiring over probabilities. Inside under
// Viterbi yields the probability of the single best derivation.
type Viterbi float64

// Zero returns 0.
func (Viterbi) Zero() Viterbi { return 0 }

// One returns 1.
func (Viterbi) One() Viterbi { return 1 }

// Add returns max(a, b).
func (a Viterbi) Add(b Viterbi) Viterbi {
	if b > a {
		return b
	}

	return a
}

// Mul returns a * b.
func (a Viterbi) Mul(b Viterbi) Viterbi { return a * b }

// Scale is Mul.
func (a Viterbi) Scale(b Viterbi) Viterbi { return a * b }

// Inverse returns 1/a.
func (a Viterbi) Inverse() Viterbi { return 1 / a }

// Tropical is the max-plus semiring over log scores, the log-domain
// counterpart of Viterbi.
type Tropical float64

// Zero returns -Inf.
func (Tropical) Zero() Tropical { return Tropical(math.Inf(-1)) }

// One returns 0.
func (Tropical) One() Tropical { return 0 }

// Add returns max(a, b).
func (a Tropical) Add(b Tropical) Tropical {
	if b > a {
		return b
	}

	return a
}

// Mul returns a + b.
func (a Tropical) Mul(b Tropical) Tropical { return a + b }

// Scale is Mul.
func (a Tropical) Scale(b Tropical) Tropical { return a + b }

// Inverse returns -a.
func (a Tropical) Inverse() Tropical { return -a }
