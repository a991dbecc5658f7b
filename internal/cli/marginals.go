package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/forest/edgeweight"
	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/insideoutside"
	"github.com/katalvlaran/forest/semiring"
)

func (c *CLI) newMarginalsCommand() *cobra.Command {
	var (
		normalize   bool
		threshold   float64
		weightsPath string
		pruneOut    string
	)

	cmd := &cobra.Command{
		Use:   "marginals <forest.yaml>",
		Short: "Print edge marginals and optionally prune low-posterior edges",
		Args:  cobra.ExactArgs(1),
		Example: `  forest marginals forest.yaml
  forest marginals forest.yaml --threshold 0.01 --prune-out pruned.yaml`,
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

			// Log domain keeps long derivations from underflowing.
			tables := insideoutside.New[semiring.LogProb]()
			if normalize {
				tables = insideoutside.NewNormalized[semiring.LogProb]()
			}
			logZ := tables.Compute(h, edgeweight.LogProb)
			marg := insideoutside.ConvertScores(tables.EdgeMarginals(h, edgeweight.LogProb), semiring.LogProb.Prob)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "logZ\t%g\n", float64(logZ))
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", "edge", "head", "rule", "marginal")
			keep := make([]bool, len(marg))
			kept := 0
			for id, p := range marg {
				e := &h.Edges[id]
				fmt.Fprintf(out, "%d\t%s\t%s\t%g\n", id, h.Nodes[e.Head].Label, e.Rule, float64(p))
				if float64(p) >= threshold {
					keep[id] = true
					kept++
				}
			}

			if pruneOut == "" {
				return nil
			}
			pruned, err := h.Prune(keep)
			if err != nil {
				return err
			}
			c.logger.Info("forest pruned",
				zap.Float64("threshold", threshold),
				zap.Int("edges_kept", kept),
				zap.Int("edges_before", h.NumEdges()),
				zap.Int("edges_after", pruned.NumEdges()),
				zap.Int("nodes_after", pruned.NumNodes()),
			)
			return writeForest(out, pruneOut, pruned, dict)
		},
	}

	cmd.Flags().BoolVar(&normalize, "normalize", true, "Divide marginals by Z (edge posteriors)")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Keep edges whose marginal is at least this value")
	cmd.Flags().StringVar(&weightsPath, "weights", "", "YAML feature weights; rescores edges as features·weights")
	cmd.Flags().StringVar(&pruneOut, "prune-out", "", "Write the pruned forest to this file (- for stdout)")
	return cmd
}
