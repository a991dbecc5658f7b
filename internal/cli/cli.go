package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// CLI encapsulates the command-line interface with its dependencies.
type CLI struct {
	version     string
	verbose     bool
	silent      bool
	initialized bool
	logger      *zap.Logger
	rootCmd     *cobra.Command
}

// New creates a new CLI instance with the given version string.
func New(version string) *CLI {
	c := &CLI{version: version, logger: zap.NewNop()}
	c.setupCommands()
	return c
}

// setupCommands initializes all CLI commands and their configurations.
func (c *CLI) setupCommands() {
	c.rootCmd = &cobra.Command{
		Use:           "forest",
		Short:         "Inside/outside computations over derivation forests",
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initApp()
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	c.rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose/debug output")
	c.rootCmd.PersistentFlags().BoolVarP(&c.silent, "silent", "s", false, "Suppress all logging")

	c.rootCmd.AddCommand(c.newInsideCommand())
	c.rootCmd.AddCommand(c.newMarginalsCommand())
	c.rootCmd.AddCommand(c.newExpectCommand())
	c.rootCmd.AddCommand(c.newObjectiveCommand())
	c.rootCmd.AddCommand(c.newGenerateCommand())
	c.rootCmd.AddCommand(c.newBestCommand())
}

// Run executes the CLI and returns any error.
func (c *CLI) Run() error {
	err := c.rootCmd.Execute()
	if err != nil {
		c.rootCmd.PrintErrln("Error:", err)
	}
	_ = c.logger.Sync()
	return err
}

// initApp builds the logger from the --verbose/--silent flags.
func (c *CLI) initApp() error {
	if c.initialized {
		return nil
	}
	c.initialized = true

	if c.silent {
		c.logger = zap.NewNop()
		return nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.DisableStacktrace = true
	if c.verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}
