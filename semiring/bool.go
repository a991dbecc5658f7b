package semiring

// Bool is the boolean semiring (or, and). Inside under Bool answers
// "does the root have at least one complete derivation?".
type Bool bool

// Zero returns false.
func (Bool) Zero() Bool { return false }

// One returns true.
func (Bool) One() Bool { return true }

// Add returns a || b.
func (a Bool) Add(b Bool) Bool { return a || b }

// Mul returns a && b.
func (a Bool) Mul(b Bool) Bool { return a && b }

// Scale is Mul; Bool is a module over itself.
func (a Bool) Scale(b Bool) Bool { return a && b }

// Count is the counting semiring over non-negative integers. With a unit
// weight per edge, the root inside score is the number of derivations.
// Overflow wraps silently.
type Count uint64

// Zero returns 0.
func (Count) Zero() Count { return 0 }

// One returns 1.
func (Count) One() Count { return 1 }

// Add returns a + b.
func (a Count) Add(b Count) Count { return a + b }

// Mul returns a * b.
func (a Count) Mul(b Count) Count { return a * b }

// Scale is Mul.
func (a Count) Scale(b Count) Count { return a * b }
