package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheesania/prattle/pkg/markov"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <input file>",
		Short: "Summarize the model built from a corpus",
		Long: `stats builds the same n-gram model a generation run would and prints a
summary instead of generated text: key and transition counts plus the
busiest keys in the corpus.`,
		Args:          cobra.ArbitraryArgs,
		RunE:          runStats,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().IntP("group-size", "n", defaultGroupSize,
		"Units per model key (the n-gram order)")
	cmd.Flags().BoolP("word-mode", "w", false,
		"Model whole words instead of characters")
	cmd.Flags().BoolP("markdown", "m", false,
		"Render the summary as Markdown")
	cmd.Flags().StringP("output", "o", "",
		"Write the summary to this file instead of stdout")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: $XDG_CONFIG_HOME/prattle/config.json)")

	return cmd
}

// runStats executes a stats run.
func runStats(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := setupLogger(slog.LevelWarn)
	if verbose {
		logger = setupLogger(slog.LevelDebug)
	}

	if len(args) != 1 {
		return usageError(cmd)
	}

	run, cfg, err := buildRunConfig(cmd, logger)
	if err != nil {
		return err
	}
	if run.groupSize < 1 {
		return usageError(cmd)
	}
	if !verbose {
		logger = setupLogger(parseLogLevel(cfg.LogLevel))
	}

	asMarkdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	corpus, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read input file: %w", err)
	}

	builder, err := markov.NewBuilder(run.groupSize, run.mode)
	if err != nil {
		return err
	}
	builder.SetLogger(logger)

	model, err := builder.Build(string(corpus))
	if err != nil {
		return fmt.Errorf("could not model %s: %w", args[0], err)
	}

	return writeStatsReport(cmd, run.output, model.Stats(), asMarkdown)
}
