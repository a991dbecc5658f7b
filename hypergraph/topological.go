package hypergraph

import "fmt"

// Visitation states for the depth-first topological sort.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // node and all its antecedents placed
)

// topoSorter encapsulates state for one topological sort.
type topoSorter struct {
	graph *Hypergraph
	state []int // white/gray/black per node
	order []int // post-order: antecedents before consumers
}

// TopologicalSort returns a renumbered copy of h in which every tail index is
// below its head index, so the result passes Validate. Edge IDs are kept;
// node IDs, Edge.Head and Edge.Tails are remapped.
//
// The last node of h stays last whenever no edge uses it as a tail, so the
// root is preserved for forests whose root is a sink. Ties keep the input
// order, making the output deterministic.
//
// Errors: ErrCycleDetected if the tail relation has a cycle.
// Complexity: O(N + M + Σ|tails|) time, O(N) extra memory.
func (h *Hypergraph) TopologicalSort() (*Hypergraph, error) {
	n := h.NumNodes()
	if n == 0 {
		return New(), nil
	}
	// 1. Initialize sorter state
	sorter := &topoSorter{
		graph: h,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	// 2. Drive DFS from every node except the old root, which goes last
	root := n - 1
	for v := 0; v < root; v++ {
		if sorter.state[v] == white {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	if err := sorter.visit(root); err != nil {
		return nil, err
	}

	// 3. Renumber: post-order already lists antecedents first
	newIndex := make([]int, n)
	for pos, old := range sorter.order {
		newIndex[old] = pos
	}
	out := h.Clone()
	for pos, old := range sorter.order {
		src := h.Nodes[old]
		out.Nodes[pos] = Node{ID: pos, Label: src.Label, InEdges: append([]int(nil), src.InEdges...)}
	}
	for i := range out.Edges {
		e := &out.Edges[i]
		e.Head = newIndex[e.Head]
		for k, t := range e.Tails {
			e.Tails[k] = newIndex[t]
		}
	}

	return out, nil
}

// visit places id after all of its antecedents, detecting cycles on the way.
func (t *topoSorter) visit(id int) error {
	// 1. Gray means we came back along a tail chain: a cycle
	if t.state[id] == gray {
		return fmt.Errorf("TopologicalSort: node %d: %w", id, ErrCycleDetected)
	}
	// 2. Already placed
	if t.state[id] == black {
		return nil
	}
	// 3. Mark in-progress and recurse into every tail of every in-edge
	t.state[id] = gray
	for _, eid := range t.graph.Nodes[id].InEdges {
		for _, tail := range t.graph.Edges[eid].Tails {
			if err := t.visit(tail); err != nil {
				return err
			}
		}
	}
	// 4. Mark done and record in post-order
	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
