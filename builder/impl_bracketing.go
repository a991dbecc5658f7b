// SPDX-License-Identifier: MIT
// Package: forest/builder
//
// impl_bracketing.go - implementation of Bracketing(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - One node per span [i,j) with 0 ≤ i < j ≤ n, added by increasing width
//     and then by increasing i. The full span [0,n) is added last (root).
//   - Width-1 spans get a leaf edge "w<i>".
//   - Every wider span [i,j) gets one binary edge per split point k with
//     i < k < j: [i,j) ← ([i,k), [k,j)).
//   - The root has Catalan(n-1) derivations.
//
// Complexity:
//   - Time: O(n³) edges.
//   - Space: O(n²) for the span index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/forest/hypergraph"
)

const (
	methodBracketing   = "Bracketing"
	minBracketingWords = 1
)

// Bracketing returns a Constructor for the forest of all binary bracketings
// of an n-word sentence. Node labels are span strings like "[0,3)".
func Bracketing(n int) Constructor {
	return func(h *hypergraph.Hypergraph, cfg builderConfig) error {
		if n < minBracketingWords {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodBracketing, n, minBracketingWords, ErrTooFewNodes)
		}

		// span[i][j-i-1] holds the node ID of [i,j).
		span := make([][]int, n)
		for i := range span {
			span[i] = make([]int, n-i)
		}

		var (
			width, i, k, id int
			err             error
		)
		for width = 1; width <= n; width++ {
			for i = 0; i+width <= n; i++ {
				j := i + width
				id = h.AddNode(fmt.Sprintf("[%d,%d)", i, j))
				span[i][width-1] = id

				if width == 1 {
					if err = addEdge(h, cfg, id, nil, fmt.Sprintf("w%d", i)); err != nil {
						return fmt.Errorf("%s: leaf %d: %w", methodBracketing, i, err)
					}
					continue
				}
				for k = i + 1; k < j; k++ {
					left := span[i][k-i-1]
					right := span[k][j-k-1]
					if err = addEdge(h, cfg, id, []int{left, right}, fmt.Sprintf("split%d", k)); err != nil {
						return fmt.Errorf("%s: [%d,%d) at %d: %w", methodBracketing, i, j, k, err)
					}
				}
			}
		}

		return nil
	}
}
