package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ks2maths",
	Short: "KS2 maths practice questions",
	Long: `ks2maths generates UK Key Stage 2 maths practice questions for money,
unit conversion, perimeter and area, volume and order of operations.

Run without a subcommand to start the practice TUI.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

// ExecuteContext runs the root command. Commands see ctx through
// cmd.Context().
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides KS2MATHS_DB)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (overrides KS2MATHS_LOG_LEVEL)")
	pf.String("log-format", "", "Log format: console or json (overrides KS2MATHS_LOG_FORMAT)")
	pf.Uint64("seed", 0, "Random seed for reproducible questions (overrides KS2MATHS_SEED)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}
