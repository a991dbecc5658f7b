package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/forest/edgeweight"
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
)

func (c *CLI) newBestCommand() *cobra.Command {
	var weightsPath string

	cmd := &cobra.Command{
		Use:     "best <forest.yaml>",
		Short:   "Print the highest-scoring derivation",
		Args:    cobra.ExactArgs(1),
		Example: `  forest best forest.yaml --weights weights.yaml`,
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

			score, edges := insideoutside.BestDerivation(h, edgeweight.Tropical)
			if edges == nil {
				return fmt.Errorf("%s: forest has no derivation", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "score\t%g\n", float64(score))
			for _, eid := range edges {
				e := &h.Edges[eid]
				fmt.Fprintf(out, "%d\t%s\t%s\t%g\n", eid, h.Nodes[e.Head].Label, e.Rule, e.Score)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&weightsPath, "weights", "", "YAML feature weights; rescores edges as features·weights")
	return cmd
}
