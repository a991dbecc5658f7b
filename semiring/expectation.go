package semiring

// Expectation is the first-order expectation semiring of Li & Eisner (2009).
// A value ⟨P, R⟩ carries a probability mass P and the P-weighted sum R of a
// vector-valued quantity. With edge weights ⟨p_e, p_e·f_e⟩ the root inside
// value is ⟨Z, Σ_d p(d)·f(d)⟩, so R/Z is the expected feature vector.
//
// Running the full inside/outside recursion in Expectation is what the
// insideoutside driver avoids; the type is kept for reference computations
// and for forests small enough that the cost does not matter.
type Expectation struct {
	P Prob
	R Vector
}

// Zero returns ⟨0, 0⟩.
func (Expectation) Zero() Expectation { return Expectation{} }

// One returns ⟨1, 0⟩.
func (Expectation) One() Expectation { return Expectation{P: 1} }

// Add returns ⟨P1+P2, R1+R2⟩.
func (a Expectation) Add(b Expectation) Expectation {
	return Expectation{P: a.P + b.P, R: a.R.Add(b.R)}
}

// Mul returns ⟨P1·P2, P1·R2 + P2·R1⟩.
func (a Expectation) Mul(b Expectation) Expectation {
	return Expectation{
		P: a.P * b.P,
		R: b.R.Scale(a.P).Add(a.R.Scale(b.P)),
	}
}

// Scale returns ⟨k·P, k·R⟩, making Expectation a Module over Prob.
func (a Expectation) Scale(k Prob) Expectation {
	return Expectation{P: a.P * k, R: a.R.Scale(k)}
}

// Mean returns R/P, the expectation proper. A zero mass yields nil.
func (a Expectation) Mean() Vector {
	if a.P == 0 {
		return nil
	}

	return a.R.Scale(a.P.Inverse())
}
