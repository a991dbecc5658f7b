package hypergraph

import (
	"fmt"

	"github.com/katalvlaran/forest/semiring"
)

// AddNode appends a node and returns its index.
// Complexity: O(1) amortized.
func (h *Hypergraph) AddNode(label string) int {
	id := len(h.Nodes)
	h.Nodes = append(h.Nodes, Node{ID: id, Label: label})

	return id
}

// AddEdge appends an edge building head from tails and registers it in the
// head's in-edge list. The tail slice is copied.
//
// Tails need not precede head yet; call TopologicalSort afterwards when the
// forest is assembled out of order. Errors: ErrNodeNotFound, ErrSelfLoop.
// Complexity: O(len(tails)).
func (h *Hypergraph) AddEdge(head int, tails []int, opts ...EdgeOption) (int, error) {
	if !h.hasNode(head) {
		return -1, fmt.Errorf("AddEdge: head %d: %w", head, ErrNodeNotFound)
	}
	for _, t := range tails {
		if !h.hasNode(t) {
			return -1, fmt.Errorf("AddEdge: tail %d: %w", t, ErrNodeNotFound)
		}
		if t == head {
			return -1, fmt.Errorf("AddEdge: node %d: %w", t, ErrSelfLoop)
		}
	}

	id := len(h.Edges)
	e := Edge{ID: id, Head: head, Tails: append([]int(nil), tails...)}
	for _, opt := range opts {
		opt(&e)
	}
	h.Edges = append(h.Edges, e)
	h.Nodes[head].InEdges = append(h.Nodes[head].InEdges, id)

	return id, nil
}

// NumNodes returns the number of nodes.
func (h *Hypergraph) NumNodes() int {
	if h == nil {
		return 0
	}

	return len(h.Nodes)
}

// NumEdges returns the number of edges.
func (h *Hypergraph) NumEdges() int {
	if h == nil {
		return 0
	}

	return len(h.Edges)
}

// IsEmpty reports whether h has no nodes. A nil Hypergraph is empty.
func (h *Hypergraph) IsEmpty() bool { return h.NumNodes() == 0 }

// Root returns the index of the root (the last node), false when empty.
func (h *Hypergraph) Root() (int, bool) {
	if h.IsEmpty() {
		return -1, false
	}

	return len(h.Nodes) - 1, true
}

// Node returns the node at index i.
func (h *Hypergraph) Node(i int) (*Node, error) {
	if !h.hasNode(i) {
		return nil, fmt.Errorf("Node(%d): %w", i, ErrNodeNotFound)
	}

	return &h.Nodes[i], nil
}

// Edge returns the edge at index i.
func (h *Hypergraph) Edge(i int) (*Edge, error) {
	if i < 0 || i >= h.NumEdges() {
		return nil, fmt.Errorf("Edge(%d): %w", i, ErrEdgeNotFound)
	}

	return &h.Edges[i], nil
}

// Clone returns a deep copy of h.
// Complexity: O(N + M + Σ|tails| + Σ|features|).
func (h *Hypergraph) Clone() *Hypergraph {
	if h == nil {
		return nil
	}
	c := &Hypergraph{
		Nodes: make([]Node, len(h.Nodes)),
		Edges: make([]Edge, len(h.Edges)),
	}
	for i, n := range h.Nodes {
		c.Nodes[i] = Node{ID: n.ID, Label: n.Label, InEdges: append([]int(nil), n.InEdges...)}
	}
	for i, e := range h.Edges {
		c.Edges[i] = Edge{
			ID:       e.ID,
			Head:     e.Head,
			Tails:    append([]int(nil), e.Tails...),
			Rule:     e.Rule,
			Score:    e.Score,
			Features: e.Features.Clone(),
		}
	}

	return c
}

// Validate checks the structural invariants the semiring algorithms rely on:
// IDs match indices, every in-edge is headed by the node listing it, and
// every tail index lies in [0, head).
// Complexity: O(N + M + Σ|tails|).
func (h *Hypergraph) Validate() error {
	if h == nil {
		return nil
	}
	// 1. Edge records must be self-consistent and listed by their head.
	listed := make([]int, len(h.Edges))
	for i := range h.Nodes {
		n := &h.Nodes[i]
		if n.ID != i {
			return fmt.Errorf("Validate: node at %d has ID %d: %w", i, n.ID, ErrNodeNotFound)
		}
		for _, eid := range n.InEdges {
			if eid < 0 || eid >= len(h.Edges) {
				return fmt.Errorf("Validate: node %d lists edge %d: %w", i, eid, ErrEdgeNotFound)
			}
			if h.Edges[eid].Head != i {
				return fmt.Errorf("Validate: node %d lists edge %d headed by %d: %w",
					i, eid, h.Edges[eid].Head, ErrBadEdgeHead)
			}
			listed[eid]++
		}
	}
	// 2. Every edge listed exactly once, tails strictly below the head.
	for i := range h.Edges {
		e := &h.Edges[i]
		if e.ID != i {
			return fmt.Errorf("Validate: edge at %d has ID %d: %w", i, e.ID, ErrEdgeNotFound)
		}
		if listed[i] != 1 {
			return fmt.Errorf("Validate: edge %d listed %d times by head %d: %w",
				i, listed[i], e.Head, ErrBadEdgeHead)
		}
		for _, t := range e.Tails {
			if t < 0 {
				return fmt.Errorf("Validate: edge %d tail %d: %w", i, t, ErrNodeNotFound)
			}
			if t >= e.Head {
				return fmt.Errorf("Validate: edge %d tail %d ≥ head %d: %w", i, t, e.Head, ErrNotTopological)
			}
		}
	}

	return nil
}

// Reweight sets every edge's Score to Features·weights. Feature IDs beyond
// len(weights) contribute nothing.
// Complexity: O(Σ|features|).
func (h *Hypergraph) Reweight(weights []float64) {
	for i := range h.Edges {
		h.Edges[i].Score = h.Edges[i].Features.Dot(weights)
	}
}

// FeatureSum returns the sum of the feature vectors of the given edges,
// e.g. the feature vector of one derivation.
func (h *Hypergraph) FeatureSum(edges []int) (semiring.Vector, error) {
	var acc semiring.Vector
	for _, eid := range edges {
		e, err := h.Edge(eid)
		if err != nil {
			return nil, fmt.Errorf("FeatureSum: %w", err)
		}
		acc = acc.Add(e.Features)
	}

	return acc, nil
}

func (h *Hypergraph) hasNode(i int) bool {
	return i >= 0 && i < h.NumNodes()
}
