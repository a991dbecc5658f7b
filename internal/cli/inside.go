package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/forest/edgeweight"
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
	"github.com/katalvlaran/forest/semiring"
)

var semiringNames = []string{"prob", "log", "viterbi", "tropical", "count", "bool"}

func (c *CLI) newInsideCommand() *cobra.Command {
	var sr, weightsPath string

	cmd := &cobra.Command{
		Use:   "inside <forest.yaml>",
		Short: "Print the root score and per-node inside/outside scores",
		Args:  cobra.ExactArgs(1),
		Example: `  forest inside forest.yaml
  forest inside forest.yaml --semiring viterbi --weights weights.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict := hypergraph.NewDict()
			h, err := loadForest(args[0], dict)
			if err != nil {
				return err
			}
			if weightsPath != "" {
				w, err := loadWeights(weightsPath, dict)
				if err != nil {
					return err
				}
				h.Reweight(w)
			}
			c.logger.Debug("forest loaded",
				zap.String("path", args[0]),
				zap.Int("nodes", h.NumNodes()),
				zap.Int("edges", h.NumEdges()),
				zap.String("semiring", sr),
			)

			out := cmd.OutOrStdout()
			switch sr {
			case "prob":
				printTables(out, h, edgeweight.Prob)
			case "log":
				printTables(out, h, edgeweight.LogProb)
			case "viterbi":
				printTables(out, h, edgeweight.Viterbi)
			case "tropical":
				printTables(out, h, edgeweight.Tropical)
			case "count":
				printTables(out, h, edgeweight.Count)
			case "bool":
				printTables(out, h, edgeweight.Bool)
			default:
				return fmt.Errorf("unknown semiring %q (want one of %s)", sr, strings.Join(semiringNames, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sr, "semiring", "prob", "Semiring: "+strings.Join(semiringNames, "|"))
	cmd.Flags().StringVar(&weightsPath, "weights", "", "YAML feature weights; rescores edges as features·weights")
	return cmd
}

// printTables computes inside and outside in K and prints one row per node.
func printTables[K semiring.Value[K]](out io.Writer, h *hypergraph.Hypergraph, w insideoutside.WeightFunc[K]) {
	tables := insideoutside.New[K]()
	root := tables.Compute(h, w)
	inside, outside := tables.Inside(), tables.Outside()

	fmt.Fprintf(out, "root\t%v\n", root)
	fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", "node", "label", "inside", "outside")
	for i := range inside {
		fmt.Fprintf(out, "%d\t%s\t%v\t%v\n", i, h.Nodes[i].Label, inside[i], outside[i])
	}
}
