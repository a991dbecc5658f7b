package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/forest/edgeweight"
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
	"github.com/katalvlaran/forest/semiring"
)

func (c *CLI) newExpectCommand() *cobra.Command {
	var weightsPath string

	cmd := &cobra.Command{
		Use:   "expect <forest.yaml>",
		Short: "Print log Z and the expected feature vector",
		Args:  cobra.ExactArgs(1),
		Example: `  forest expect forest.yaml
  forest expect forest.yaml --weights weights.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict := hypergraph.NewDict()
			h, err := loadForest(args[0], dict)
			if err != nil {
				return err
			}

			var (
				kw insideoutside.WeightFunc[semiring.LogProb]   = edgeweight.LogProb
				xw insideoutside.WeightFunc[semiring.LogVector] = edgeweight.LogFeatures
			)
			if weightsPath != "" {
				w, err := loadWeights(weightsPath, dict)
				if err != nil {
					return err
				}
				kw, xw = edgeweight.LinearLog(w), edgeweight.LinearLogFeatures(w)
			}
			logZ, r := insideoutside.InsideOutside(h, kw, xw)
			if math.IsInf(float64(logZ), -1) {
				return fmt.Errorf("%s: forest has no derivation", args[0])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "logZ\t%g\n", float64(logZ))
			mean := r.Scale(logZ.Inverse()).Vector()
			for _, id := range mean.Keys() {
				fmt.Fprintf(out, "%s\t%.6g\n", featureName(dict, id), mean[id])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&weightsPath, "weights", "", "YAML feature weights; scores edges as features·weights (log domain)")
	return cmd
}
