package hypergraph

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/forest/semiring"
)

// document is the YAML form of a forest:
//
//	nodes:
//	  - label: L
//	  - label: A
//	edges:
//	  - head: 1
//	    tails: [0]
//	    rule: "A -> L"
//	    score: -0.5
//	    features: {lm: -1.2, tm: 0.3}
type document struct {
	Nodes []nodeDoc `yaml:"nodes"`
	Edges []edgeDoc `yaml:"edges"`
}

type nodeDoc struct {
	Label string `yaml:"label,omitempty"`
}

type edgeDoc struct {
	Head     int                `yaml:"head"`
	Tails    []int              `yaml:"tails,flow,omitempty"`
	Rule     string             `yaml:"rule,omitempty"`
	Score    float64            `yaml:"score,omitempty"`
	Features map[string]float64 `yaml:"features,omitempty"`
}

// Encode writes h as YAML. Feature IDs are written by name, so dict is
// required when any edge has features.
// Errors: ErrNilDict, ErrUnknownFeature, or the writer's error.
func Encode(w io.Writer, h *Hypergraph, dict *Dict) error {
	doc := document{
		Nodes: make([]nodeDoc, h.NumNodes()),
		Edges: make([]edgeDoc, h.NumEdges()),
	}
	for i := 0; i < h.NumNodes(); i++ {
		doc.Nodes[i] = nodeDoc{Label: h.Nodes[i].Label}
	}
	for i := 0; i < h.NumEdges(); i++ {
		e := &h.Edges[i]
		ed := edgeDoc{Head: e.Head, Tails: e.Tails, Rule: e.Rule, Score: e.Score}
		if len(e.Features) > 0 {
			if dict == nil {
				return fmt.Errorf("Encode: edge %d: %w", i, ErrNilDict)
			}
			ed.Features = make(map[string]float64, len(e.Features))
			for id, v := range e.Features {
				name, ok := dict.Name(id)
				if !ok {
					return fmt.Errorf("Encode: edge %d feature %d: %w", i, id, ErrUnknownFeature)
				}
				ed.Features[name] = v
			}
		}
		doc.Edges[i] = ed
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return enc.Close()
}

// Decode reads a YAML forest, registering feature names in dict, and
// validates the result. Edges may appear in any order; nodes must already
// be topologically ordered.
// Errors: ErrDecode for malformed YAML, ErrNilDict, ErrNodeNotFound,
// ErrSelfLoop, or any Validate error.
func Decode(r io.Reader, dict *Dict) (*Hypergraph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	h := New(WithCapacity(len(doc.Nodes), len(doc.Edges)))
	for _, nd := range doc.Nodes {
		h.AddNode(nd.Label)
	}
	for i, ed := range doc.Edges {
		var feats semiring.Vector
		if len(ed.Features) > 0 {
			if dict == nil {
				return nil, fmt.Errorf("Decode: edge %d: %w", i, ErrNilDict)
			}
			feats = make(semiring.Vector, len(ed.Features))
			for _, name := range sortedNames(ed.Features) {
				feats[dict.Add(name)] = ed.Features[name]
			}
		}
		if _, err := h.AddEdge(ed.Head, ed.Tails,
			WithRule(ed.Rule), WithScore(ed.Score), WithFeatures(feats)); err != nil {
			return nil, fmt.Errorf("Decode: edge %d: %w", i, err)
		}
	}
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return h, nil
}

// DecodeWeights reads a YAML map of feature name to weight and returns a
// dense weight vector indexed by dict IDs. Names not yet in dict are added.
func DecodeWeights(r io.Reader, dict *Dict) ([]float64, error) {
	if dict == nil {
		return nil, fmt.Errorf("DecodeWeights: %w", ErrNilDict)
	}
	var raw map[string]float64
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	for _, name := range sortedNames(raw) {
		dict.Add(name)
	}
	weights := make([]float64, dict.Len())
	for name, v := range raw {
		id, _ := dict.ID(name)
		weights[id] = v
	}

	return weights, nil
}

// sortedNames returns the keys of m in lexical order, so IDs assigned while
// decoding do not depend on map iteration order.
func sortedNames(m map[string]float64) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
