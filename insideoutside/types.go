package insideoutside

import (
	"errors"

	"github.com/katalvlaran/forest/hypergraph"
)

var (
	// ErrInsideLength indicates an inside vector computed for another forest.
	ErrInsideLength = errors.New("insideoutside: inside vector length does not match node count")

	// ErrNotComputed indicates a derived query before Compute.
	ErrNotComputed = errors.New("insideoutside: Compute has not been called")
)

// WeightFunc maps a hyperedge to a semiring value. It must be pure and
// deterministic; it is called once per edge per pass.
type WeightFunc[K any] func(e *hypergraph.Edge) K

// NormalizationPolicy selects the scale placed on the root's outside score.
type NormalizationPolicy int

const (
	// NoNormalization seeds outside[root] with One.
	NoNormalization NormalizationPolicy = iota

	// InverseRoot seeds outside[root] with 1/inside[root], so edge marginals
	// are posteriors summing to One over the root's in-edges.
	InverseRoot
)

// String implements fmt.Stringer.
func (p NormalizationPolicy) String() string {
	switch p {
	case NoNormalization:
		return "none"
	case InverseRoot:
		return "inverse-root"
	default:
		return "unknown"
	}
}

// outsideConfig holds Outside settings.
type outsideConfig[K any] struct {
	scale    K
	hasScale bool
}

// OutsideOption configures Outside.
type OutsideOption[K any] func(*outsideConfig[K])

// WithScale seeds outside[root] with k instead of One.
func WithScale[K any](k K) OutsideOption[K] {
	return func(c *outsideConfig[K]) {
		c.scale = k
		c.hasScale = true
	}
}
