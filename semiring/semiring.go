package semiring

// Value is the semiring contract. Implementations must use value receivers
// so that Zero and One can be reached from the zero value of K.
type Value[K any] interface {
	// Zero returns the additive identity (annihilates Mul).
	Zero() K
	// One returns the multiplicative identity.
	One() K
	// Add combines alternatives.
	Add(K) K
	// Mul combines in sequence.
	Mul(K) K
}

// Field is a semiring whose non-zero values have multiplicative inverses.
// Normalizing outside scores by the root inside score requires it.
type Field[K any] interface {
	Value[K]
	// Inverse returns 1/k. The inverse of Zero is implementation defined
	// (usually +Inf).
	Inverse() K
}

// Module is a value accumulated under a driving semiring K: it can be
// summed and scaled by K, but need not be multiplied by itself.
type Module[X, K any] interface {
	Zero() X
	Add(X) X
	Scale(K) X
}

// Zero returns the additive identity of K.
func Zero[K Value[K]]() K {
	var k K
	return k.Zero()
}

// One returns the multiplicative identity of K.
func One[K Value[K]]() K {
	var k K
	return k.One()
}

// Sum folds vals with Add, starting from Zero.
func Sum[K Value[K]](vals ...K) K {
	acc := Zero[K]()
	for _, v := range vals {
		acc = acc.Add(v)
	}

	return acc
}

// Product folds vals with Mul in order, starting from One.
func Product[K Value[K]](vals ...K) K {
	acc := One[K]()
	for _, v := range vals {
		acc = acc.Mul(v)
	}

	return acc
}
