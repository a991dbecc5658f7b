package semiring

import "math"

// LogVector is a feature vector with its magnitude kept in the log domain:
// the value is exp(Log)·V. It is a Module over LogProb, so Expect can run
// on LogProb tables without leaving the log domain. Scaling only shifts
// Log; V is rescaled when two vectors are added, relative to the larger
// magnitude, so no intermediate exp over- or underflows.
//
// A LogVector with an empty V or Log = -Inf is the zero vector.
// Operations never mutate their operands, but results may share V.
type LogVector struct {
	Log LogProb
	V   Vector
}

// Zero returns ⟨-Inf, nil⟩.
func (LogVector) Zero() LogVector { return LogVector{Log: LogProb(math.Inf(-1))} }

// IsZero reports whether a is the zero vector.
func (a LogVector) IsZero() bool {
	return len(a.V) == 0 || math.IsInf(float64(a.Log), -1)
}

// Add returns a + b.
func (a LogVector) Add(b LogVector) LogVector {
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	m := a.Log
	if b.Log > m {
		m = b.Log
	}

	return LogVector{
		Log: m,
		V:   a.V.Scale(Prob(math.Exp(float64(a.Log - m)))).Add(b.V.Scale(Prob(math.Exp(float64(b.Log - m))))),
	}
}

// Scale returns exp(k)·a.
func (a LogVector) Scale(k LogProb) LogVector {
	if a.IsZero() || math.IsInf(float64(k), -1) {
		return a.Zero()
	}

	return LogVector{Log: a.Log + k, V: a.V}
}

// Vector materializes exp(Log)·V. The zero vector yields nil.
func (a LogVector) Vector() Vector {
	if a.IsZero() {
		return nil
	}

	return a.V.Scale(a.Log.Prob())
}
