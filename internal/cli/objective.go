package cli

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/forest/hypergraph"
	"github.com/katalvlaran/forest/objective"
)

func (c *CLI) newObjectiveCommand() *cobra.Command {
	var (
		fullPaths, refPaths []string
		weightsPath         string
		metricsPath         string
		workers             int
		l2                  float64
	)

	cmd := &cobra.Command{
		Use:   "objective",
		Short: "Evaluate the CRF negative log-likelihood and gradient of a corpus",
		Args:  cobra.NoArgs,
		Example: `  forest objective --full a.yaml,b.yaml --ref a.ref.yaml,b.ref.yaml --weights w.yaml
  forest objective --full a.yaml --ref a.ref.yaml --workers 4 --l2 0.1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fullPaths) != len(refPaths) {
				return fmt.Errorf("--full lists %d forests, --ref lists %d", len(fullPaths), len(refPaths))
			}
			if l2 < 0 {
				return fmt.Errorf("--l2 must be ≥ 0, got %g", l2)
			}

			// One dict for the whole corpus so feature IDs agree.
			dict := hypergraph.NewDict()
			corpus := make([]objective.Instance, len(fullPaths))
			for i := range fullPaths {
				full, err := loadForest(fullPaths[i], dict)
				if err != nil {
					return err
				}
				ref, err := loadForest(refPaths[i], dict)
				if err != nil {
					return err
				}
				corpus[i] = objective.Instance{Name: fullPaths[i], Full: full, Reference: ref}
			}
			weights, err := loadWeights(weightsPath, dict)
			if err != nil {
				return err
			}
			c.logger.Debug("corpus loaded", zap.Int("instances", len(corpus)), zap.Int("features", dict.Len()))

			opts := []objective.Option{objective.WithLogger(c.logger), objective.WithL2(l2)}
			if workers > 0 {
				opts = append(opts, objective.WithWorkers(workers))
			}
			var reg *prometheus.Registry
			if metricsPath != "" {
				reg = prometheus.NewRegistry()
				opts = append(opts, objective.WithMetrics(objective.NewMetrics(reg)))
			}
			res, err := objective.New(opts...).Evaluate(cmd.Context(), weights, corpus)
			if reg != nil {
				// Written on failure too, so the error counter is visible.
				if werr := prometheus.WriteToTextfile(metricsPath, reg); werr != nil {
					c.logger.Warn("metrics not written", zap.String("path", metricsPath), zap.Error(werr))
				}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nll\t%g\n", res.NegLogLikelihood)
			for id, g := range res.Gradient {
				fmt.Fprintf(out, "%s\t%g\n", featureName(dict, id), g)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&fullPaths, "full", nil, "Full forests, comma separated")
	cmd.Flags().StringSliceVar(&refPaths, "ref", nil, "Reference forests, in the same order as --full")
	cmd.Flags().StringVar(&weightsPath, "weights", "", "YAML feature weights (default all zero)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent instances (default GOMAXPROCS)")
	cmd.Flags().Float64Var(&l2, "l2", 0, "L2 regularization strength")
	cmd.Flags().StringVar(&metricsPath, "metrics-file", "", "Write Prometheus metrics in text format to this file")
	_ = cmd.MarkFlagRequired("full")
	_ = cmd.MarkFlagRequired("ref")
	return cmd
}
