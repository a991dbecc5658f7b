package semiring

import (
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector is a sparse real-valued feature vector keyed by feature ID.
// It is a Module over Prob: expectations of feature vectors are
// accumulated by scaling each edge's vector with a probability mass.
//
// Operations return fresh maps and never mutate their operands.
// A nil Vector is the zero vector.
type Vector map[int]float64

// Zero returns the nil (empty) vector.
func (Vector) Zero() Vector { return nil }

// Add returns a + b.
func (a Vector) Add(b Vector) Vector {
	if len(a) == 0 {
		return b.Clone()
	}
	if len(b) == 0 {
		return a.Clone()
	}
	out := make(Vector, len(a)+len(b))
	for id, v := range a {
		out[id] = v
	}
	for id, v := range b {
		out[id] += v
	}

	return out
}

// Scale returns k·a. Scaling by zero yields the zero vector.
func (a Vector) Scale(k Prob) Vector {
	if len(a) == 0 || k == 0 {
		return nil
	}
	out := make(Vector, len(a))
	for id, v := range a {
		out[id] = v * float64(k)
	}

	return out
}

// Clone returns a copy of a (nil for an empty vector).
func (a Vector) Clone() Vector {
	if len(a) == 0 {
		return nil
	}
	out := make(Vector, len(a))
	for id, v := range a {
		out[id] = v
	}

	return out
}

// Get returns the value of feature id (0 if absent).
func (a Vector) Get(id int) float64 { return a[id] }

// Keys returns the feature IDs of a in ascending order.
func (a Vector) Keys() []int {
	keys := make([]int, 0, len(a))
	for id := range a {
		keys = append(keys, id)
	}
	sort.Ints(keys)

	return keys
}

// Dot returns Σ a[id]·w[id]. IDs outside w (or negative) contribute nothing.
func (a Vector) Dot(w []float64) float64 {
	var s float64
	for id, v := range a {
		if id >= 0 && id < len(w) {
			s += v * w[id]
		}
	}

	return s
}

// Dense expands a into a slice of length n, dropping IDs outside [0,n).
func (a Vector) Dense(n int) []float64 {
	out := make([]float64, n)
	for id, v := range a {
		if id >= 0 && id < n {
			out[id] = v
		}
	}

	return out
}

// ApproxEqual reports whether a and b agree on every feature within tol,
// absolute or relative. Missing entries count as 0.
func (a Vector) ApproxEqual(b Vector, tol float64) bool {
	for id, v := range a {
		if !scalar.EqualWithinAbsOrRel(v, b[id], tol, tol) {
			return false
		}
	}
	for id, v := range b {
		if _, ok := a[id]; ok {
			continue
		}
		if !scalar.EqualWithinAbsOrRel(0, v, tol, tol) {
			return false
		}
	}

	return true
}
