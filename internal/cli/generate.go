package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/forest/builder"
	"github.com/katalvlaran/forest/hypergraph"
)

func (c *CLI) newGenerateCommand() *cobra.Command {
	var (
		kind, scores, outPath string
		size, arity, features int
		seed                  int64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic forest as YAML",
		Args:  cobra.NoArgs,
		Example: `  forest generate --kind bracketing --size 5
  forest generate --kind random --size 50 --seed 7 --scores uniform --features 8 --out random.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ctor builder.Constructor
			switch kind {
			case "chain":
				ctor = builder.Chain(size)
			case "diamond":
				ctor = builder.Diamond()
			case "bracketing":
				ctor = builder.Bracketing(size)
			case "random":
				ctor = builder.Random(size, arity)
			default:
				return fmt.Errorf("unknown kind %q (want chain, diamond, bracketing or random)", kind)
			}

			opts := []builder.BuilderOption{builder.WithSeed(seed)}
			switch scores {
			case "zero":
			case "uniform":
				opts = append(opts, builder.WithScoreFn(builder.UniformScoreFn(-1, 0)))
			case "normal":
				opts = append(opts, builder.WithScoreFn(builder.NormalScoreFn(-0.5, 0.25)))
			default:
				return fmt.Errorf("unknown scores %q (want zero, uniform or normal)", scores)
			}

			dict := hypergraph.NewDict()
			if features > 0 {
				opts = append(opts, builder.WithFeatureCount(features))
				for i := 0; i < features; i++ {
					dict.Add("f" + strconv.Itoa(i))
				}
			}

			h, err := builder.BuildForest(opts, ctor)
			if err != nil {
				return err
			}
			c.logger.Debug("forest generated",
				zap.String("kind", kind),
				zap.Int("nodes", h.NumNodes()),
				zap.Int("edges", h.NumEdges()),
			)
			return writeForest(cmd.OutOrStdout(), outPath, h, dict)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "bracketing", "Topology: chain|diamond|bracketing|random")
	cmd.Flags().IntVar(&size, "size", 4, "Number of nodes (chain, random) or words (bracketing)")
	cmd.Flags().IntVar(&arity, "arity", 2, "Maximum edge arity (random)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed")
	cmd.Flags().StringVar(&scores, "scores", "zero", "Edge log scores: zero|uniform|normal")
	cmd.Flags().IntVar(&features, "features", 0, "Fire feature f<edge mod k> on every edge (0 disables)")
	cmd.Flags().StringVar(&outPath, "out", "-", "Output file (- for stdout)")
	return cmd
}
