// Package: forest/builder
//
// impl_diamond.go - the four-node diamond forest.
//
//	    R
//	   / \
//	  A   B
//	   \ /
//	    L
//
// Edges in emission order: L←(), A←(L), B←(L), R←(A), R←(B).
// Two derivations of R, one through A and one through B.

package builder

import (
	"fmt"

	"github.com/katalvlaran/forest/hypergraph"
)

const methodDiamond = "Diamond"

// Diamond returns a Constructor that appends the diamond forest.
// Labels are fixed ("L", "A", "B", "R") and ignore cfg.labelFn.
func Diamond() Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		l := h.AddNode("L")
		a := h.AddNode("A")
		b := h.AddNode("B")
		r := h.AddNode("R")

		steps := []struct {
			head  int
			tails []int
			rule  string
		}{
			{l, nil, "L"},
			{a, []int{l}, "A->L"},
			{b, []int{l}, "B->L"},
			{r, []int{a}, "R->A"},
			{r, []int{b}, "R->B"},
		}
		for _, s := range steps {
			if err := addEdge(h, cfg, s.head, s.tails, s.rule); err != nil {
				return fmt.Errorf("%s: %s: %w", methodDiamond, s.rule, err)
			}
		}

		return nil
	}
}
