package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/forest/hypergraph"
)

// loadForest decodes the YAML forest at path, registering its feature
// names in dict.
func loadForest(path string, dict *hypergraph.Dict) (*hypergraph.Hypergraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	h, err := hypergraph.Decode(f, dict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return h, nil
}

// loadWeights decodes a YAML weight map into a dense vector over dict.
// An empty path yields zero weights for every known feature.
func loadWeights(path string, dict *hypergraph.Dict) ([]float64, error) {
	if path == "" {
		return make([]float64, dict.Len()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w, err := hypergraph.DecodeWeights(f, dict)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// writeForest encodes h to path, or to out when path is "" or "-".
func writeForest(out io.Writer, path string, h *hypergraph.Hypergraph, dict *hypergraph.Dict) error {
	if path == "" || path == "-" {
		return hypergraph.Encode(out, h, dict)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := hypergraph.Encode(f, h, dict); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// featureName returns the dict name of id, or "#id" for unknown IDs.
func featureName(dict *hypergraph.Dict, id int) string {
	if name, ok := dict.Name(id); ok {
		return name
	}
	return fmt.Sprintf("#%d", id)
}
