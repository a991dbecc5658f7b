package hypergraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forest/hypergraph"
)

func TestReachable(t *testing.T) {
	h := diamond(t)
	orphan := h.AddNode("orphan") // becomes the root, consumes nothing
	mustEdge(t, h, orphan, nil)
	assert.Equal(t, []bool{false, false, false, false, true}, h.Reachable())

	assert.Equal(t, []bool{true, true, true, true}, diamond(t).Reachable())
	assert.Empty(t, hypergraph.New().Reachable())
}

func TestPrune_KeepAll(t *testing.T) {
	h := diamond(t)
	out, err := h.Prune([]bool{true, true, true, true})
	require.NoError(t, err)
	assert.Equal(t, h, out)
}

func TestPrune_DropsUnderivable(t *testing.T) {
	h := diamond(t)
	// Dropping B's only edge kills R's only derivation.
	out, err := h.Prune([]bool{true, true, false, true})
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}

func TestPrune_DropsUnreachable(t *testing.T) {
	// L ← (); A ← (L); B ← (L); R ← (A) | (B)
	h := hypergraph.New()
	l, a, b, r := h.AddNode("L"), h.AddNode("A"), h.AddNode("B"), h.AddNode("R")
	mustEdge(t, h, l, nil)
	mustEdge(t, h, a, []int{l})
	mustEdge(t, h, b, []int{l})
	mustEdge(t, h, r, []int{a}, hypergraph.WithRule("via A"))
	mustEdge(t, h, r, []int{b}, hypergraph.WithRule("via B"))

	out, err := h.Prune([]bool{true, true, true, false, true})
	require.NoError(t, err)
	require.NoError(t, out.Validate())

	require.Equal(t, 3, out.NumNodes(), "A is no longer used")
	assert.Equal(t, "L", out.Nodes[0].Label)
	assert.Equal(t, "B", out.Nodes[1].Label)
	assert.Equal(t, "R", out.Nodes[2].Label)
	require.Equal(t, 3, out.NumEdges())
	assert.Equal(t, "via B", out.Edges[2].Rule)
	assert.Equal(t, []int{1}, out.Edges[2].Tails)
}

func TestPrune_MaskLength(t *testing.T) {
	_, err := diamond(t).Prune([]bool{true})
	assert.ErrorIs(t, err, hypergraph.ErrMaskLength)

	out, err := hypergraph.New().Prune(nil)
	require.NoError(t, err)
	assert.True(t, out.IsEmpty())
}
