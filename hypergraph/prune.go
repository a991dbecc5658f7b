package hypergraph

import "fmt"

// Reachable reports, per node, whether the node occurs in some top-down
// expansion of the root: the root itself, and every tail of every in-edge of
// a reachable node. Requires topological order.
// Complexity: O(N + M + Σ|tails|).
func (h *Hypergraph) Reachable() []bool {
	return h.reachable(nil)
}

// reachable is Reachable restricted to edges with keep[e] (all when nil).
// A single descending sweep suffices because heads precede their tails in
// reverse index order.
func (h *Hypergraph) reachable(keep []bool) []bool {
	n := h.NumNodes()
	seen := make([]bool, n)
	if n == 0 {
		return seen
	}
	seen[n-1] = true
	for v := n - 1; v >= 0; v-- {
		if !seen[v] {
			continue
		}
		for _, eid := range h.Nodes[v].InEdges {
			if keep != nil && !keep[eid] {
				continue
			}
			for _, t := range h.Edges[eid].Tails {
				seen[t] = true
			}
		}
	}

	return seen
}

// derivable reports, per node, whether it has at least one complete
// derivation using only kept edges (bottom-up boolean inside pass).
func (h *Hypergraph) derivable(keep []bool) []bool {
	ok := make([]bool, h.NumNodes())
	for v := range h.Nodes {
		for _, eid := range h.Nodes[v].InEdges {
			if !keep[eid] {
				continue
			}
			all := true
			for _, t := range h.Edges[eid].Tails {
				if !ok[t] {
					all = false
					break
				}
			}
			if all {
				ok[v] = true
				break
			}
		}
	}

	return ok
}

// Prune returns a copy of h that keeps only edges with keepEdge[e] == true
// and that still take part in a complete derivation of the root. Nodes left
// without such edges are removed. Surviving nodes and edges keep their
// relative order and are renumbered densely, so the topological invariant
// carries over. If the root loses every derivation the result is empty.
//
// Errors: ErrMaskLength when len(keepEdge) != NumEdges.
// Complexity: O(N + M + Σ|tails|).
func (h *Hypergraph) Prune(keepEdge []bool) (*Hypergraph, error) {
	if len(keepEdge) != h.NumEdges() {
		return nil, fmt.Errorf("Prune: mask has %d entries for %d edges: %w",
			len(keepEdge), h.NumEdges(), ErrMaskLength)
	}
	if h.IsEmpty() {
		return New(), nil
	}

	// 1. Bottom-up: drop edges with an underivable tail
	keep := append([]bool(nil), keepEdge...)
	ok := h.derivable(keep)
	for i := range h.Edges {
		if !keep[i] {
			continue
		}
		for _, t := range h.Edges[i].Tails {
			if !ok[t] {
				keep[i] = false
				break
			}
		}
	}
	root := len(h.Nodes) - 1
	if !ok[root] {
		return New(), nil
	}

	// 2. Top-down: keep nodes the root still reaches
	live := h.reachable(keep)
	nodeMap := make([]int, len(h.Nodes))
	out := New(WithCapacity(len(h.Nodes), len(h.Edges)))
	for v := range h.Nodes {
		nodeMap[v] = -1
		if live[v] && ok[v] {
			nodeMap[v] = out.AddNode(h.Nodes[v].Label)
		}
	}

	// 3. Re-add surviving edges in original order
	for i := range h.Edges {
		e := &h.Edges[i]
		if !keep[i] || nodeMap[e.Head] < 0 {
			continue
		}
		tails := make([]int, len(e.Tails))
		for k, t := range e.Tails {
			tails[k] = nodeMap[t]
		}
		if _, err := out.AddEdge(nodeMap[e.Head], tails,
			WithRule(e.Rule), WithScore(e.Score), WithFeatures(e.Features)); err != nil {
			return nil, fmt.Errorf("Prune: %w", err)
		}
	}

	return out, nil
}
