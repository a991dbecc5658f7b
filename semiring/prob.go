package semiring

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Prob is the real (probability) semiring: ordinary + and ×.
// Values are expected to be non-negative; nothing enforces it.
type Prob float64

// Zero returns 0.
func (Prob) Zero() Prob { return 0 }

// One returns 1.
func (Prob) One() Prob { return 1 }

// Add returns a + b.
func (a Prob) Add(b Prob) Prob { return a + b }

// Mul returns a * b.
func (a Prob) Mul(b Prob) Prob { return a * b }

// Scale is Mul.
func (a Prob) Scale(b Prob) Prob { return a * b }

// Inverse returns 1/a (+Inf for 0).
func (a Prob) Inverse() Prob { return 1 / a }

// Log converts a to the log domain.
func (a Prob) Log() LogProb { return LogProb(math.Log(float64(a))) }

// LogProb is the log semiring: values are natural logs of probabilities,
// Add is log(e^a + e^b) and Mul is a + b. It has the same algebra as Prob
// but does not underflow on large forests.
type LogProb float64

// Zero returns log(0) = -Inf.
func (LogProb) Zero() LogProb { return LogProb(math.Inf(-1)) }

// One returns log(1) = 0.
func (LogProb) One() LogProb { return 0 }

// Add returns log(e^a + e^b) computed around the larger operand.
func (a LogProb) Add(b LogProb) LogProb {
	x, y := float64(a), float64(b)
	if math.IsInf(x, -1) {
		return b
	}
	if math.IsInf(y, -1) {
		return a
	}
	if x < y {
		x, y = y, x
	}

	return LogProb(x + math.Log1p(math.Exp(y-x)))
}

// Mul returns a + b.
func (a LogProb) Mul(b LogProb) LogProb { return a + b }

// Scale is Mul.
func (a LogProb) Scale(b LogProb) LogProb { return a + b }

// Inverse returns -a, the log of 1/e^a.
func (a LogProb) Inverse() LogProb { return -a }

// Prob converts a back to the probability domain.
func (a LogProb) Prob() Prob { return Prob(math.Exp(float64(a))) }

// SumLog adds many log-domain values at once. It returns Zero for no input.
func SumLog(vals ...LogProb) LogProb {
	if len(vals) == 0 {
		return LogProb(0).Zero()
	}
	raw := make([]float64, len(vals))
	for i, v := range vals {
		raw[i] = float64(v)
	}

	return LogProb(floats.LogSumExp(raw))
}
