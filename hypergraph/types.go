package hypergraph

import (
	"errors"

	"github.com/katalvlaran/forest/semiring"
)

// Sentinel errors for hypergraph operations.
var (
	// ErrNodeNotFound indicates an index that does not name a node.
	ErrNodeNotFound = errors.New("hypergraph: node not found")

	// ErrEdgeNotFound indicates an index that does not name an edge.
	ErrEdgeNotFound = errors.New("hypergraph: edge not found")

	// ErrSelfLoop indicates an edge listing its own head among its tails.
	ErrSelfLoop = errors.New("hypergraph: edge tail equals its head")

	// ErrNotTopological indicates a tail index that is not below its head index.
	ErrNotTopological = errors.New("hypergraph: nodes are not in topological order")

	// ErrBadEdgeHead indicates a node listing an in-edge whose Head is another node.
	ErrBadEdgeHead = errors.New("hypergraph: in-edge head mismatch")

	// ErrCycleDetected indicates the tail relation contains a cycle.
	ErrCycleDetected = errors.New("hypergraph: cycle detected")

	// ErrMaskLength indicates an edge mask whose length differs from NumEdges.
	ErrMaskLength = errors.New("hypergraph: edge mask length mismatch")

	// ErrNilDict indicates named features were read or written without a Dict.
	ErrNilDict = errors.New("hypergraph: feature dictionary is nil")

	// ErrUnknownFeature indicates a feature ID with no name in the Dict.
	ErrUnknownFeature = errors.New("hypergraph: unknown feature id")

	// ErrDecode wraps malformed YAML documents.
	ErrDecode = errors.New("hypergraph: decode failed")
)

// Node is an item of the forest.
type Node struct {
	// ID equals the node's index in Hypergraph.Nodes.
	ID int

	// Label is a free-form category/span description (e.g. "NP[2,5]").
	Label string

	// InEdges lists the IDs of edges whose head is this node.
	InEdges []int
}

// Edge is a hyperedge: one rule application building Head from Tails.
type Edge struct {
	// ID equals the edge's index in Hypergraph.Edges.
	ID int

	// Head is the index of the node this edge builds.
	Head int

	// Tails are the antecedent node indices, in rule order. Empty for leaves.
	Tails []int

	// Rule is a free-form rule description.
	Rule string

	// Score is the edge's log-domain model score, usually Features·weights.
	Score float64

	// Features is the sparse feature vector fired by this edge.
	Features semiring.Vector
}

// Arity returns the number of tails.
func (e *Edge) Arity() int { return len(e.Tails) }

// Hypergraph is a derivation forest. Fields are exported for read access by
// algorithms; mutate only through the methods.
type Hypergraph struct {
	Nodes []Node
	Edges []Edge
}

// Option configures a Hypergraph at construction.
type Option func(*Hypergraph)

// WithCapacity preallocates room for nodes and edges.
func WithCapacity(nodes, edges int) Option {
	return func(h *Hypergraph) {
		if nodes > 0 {
			h.Nodes = make([]Node, 0, nodes)
		}
		if edges > 0 {
			h.Edges = make([]Edge, 0, edges)
		}
	}
}

// EdgeOption configures an edge when it is added.
type EdgeOption func(*Edge)

// WithRule sets the edge's rule description.
func WithRule(rule string) EdgeOption {
	return func(e *Edge) { e.Rule = rule }
}

// WithScore sets the edge's log-domain score.
func WithScore(score float64) EdgeOption {
	return func(e *Edge) { e.Score = score }
}

// WithFeatures attaches a feature vector. The vector is copied.
func WithFeatures(f semiring.Vector) EdgeOption {
	return func(e *Edge) { e.Features = f.Clone() }
}

// New creates an empty Hypergraph.
// Complexity: O(1) unless WithCapacity preallocates.
func New(opts ...Option) *Hypergraph {
	h := &Hypergraph{}
	for _, opt := range opts {
		opt(h)
	}

	return h
}
