package hypergraph_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/semiring"
)

const diamondYAML = `
nodes:
  - label: L
  - label: A
  - label: B
  - label: R
edges:
  - head: 0
  - head: 1
    tails: [0]
    score: -1
    features: {tm: 1}
  - head: 2
    tails: [0]
    score: -2
    features: {lm: 1}
  - head: 3
    tails: [1, 2]
`

func TestDecode(t *testing.T) {
	dict := hypergraph.NewDict()
	h, err := hypergraph.Decode(strings.NewReader(diamondYAML), dict)
	require.NoError(t, err)

	assert.Equal(t, 4, h.NumNodes())
	assert.Equal(t, 4, h.NumEdges())
	assert.Equal(t, []int{1, 2}, h.Edges[3].Tails)
	tm, _ := dict.ID("tm")
	lm, _ := dict.ID("lm")
	assert.Equal(t, semiring.Vector{tm: 1}, h.Edges[1].Features)
	assert.Equal(t, semiring.Vector{lm: 1}, h.Edges[2].Features)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	dict := hypergraph.NewDict()
	h, err := hypergraph.Decode(strings.NewReader(diamondYAML), dict)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, hypergraph.Encode(&buf, h, dict))
	back, err := hypergraph.Decode(&buf, dict)
	require.NoError(t, err)
	assert.Equal(t, h, back)
}

func TestDecode_Errors(t *testing.T) {
	_, err := hypergraph.Decode(strings.NewReader("nodes: [oops"), hypergraph.NewDict())
	assert.ErrorIs(t, err, hypergraph.ErrDecode)

	_, err = hypergraph.Decode(strings.NewReader(diamondYAML), nil)
	assert.ErrorIs(t, err, hypergraph.ErrNilDict)

	badOrder := "nodes: [{label: a}, {label: b}]\nedges: [{head: 0, tails: [1]}]\n"
	_, err = hypergraph.Decode(strings.NewReader(badOrder), nil)
	assert.ErrorIs(t, err, hypergraph.ErrNotTopological)

	badNode := "nodes: [{label: a}]\nedges: [{head: 3}]\n"
	_, err = hypergraph.Decode(strings.NewReader(badNode), nil)
	assert.ErrorIs(t, err, hypergraph.ErrNodeNotFound)
}

func TestEncode_Errors(t *testing.T) {
	h := hypergraph.New()
	n := h.AddNode("n")
	_, err := h.AddEdge(n, nil, hypergraph.WithFeatures(semiring.Vector{7: 1}))
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.ErrorIs(t, hypergraph.Encode(&buf, h, nil), hypergraph.ErrNilDict)
	assert.ErrorIs(t, hypergraph.Encode(&buf, h, hypergraph.NewDict()), hypergraph.ErrUnknownFeature)
}

func TestDecodeWeights(t *testing.T) {
	dict := hypergraph.NewDict()
	dict.Add("tm")
	w, err := hypergraph.DecodeWeights(strings.NewReader("lm: 0.5\ntm: -1\n"), dict)
	require.NoError(t, err)
	require.Len(t, w, 2)
	lm, _ := dict.ID("lm")
	assert.Equal(t, -1.0, w[0])
	assert.Equal(t, 0.5, w[lm])

	_, err = hypergraph.DecodeWeights(strings.NewReader("x: 1"), nil)
	assert.ErrorIs(t, err, hypergraph.ErrNilDict)
	_, err = hypergraph.DecodeWeights(strings.NewReader("[1, 2"), dict)
	assert.ErrorIs(t, err, hypergraph.ErrDecode)
}
