package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/sheesania/prattle/pkg/markov"
)

// defaultGroupSize is the model order used when neither a flag nor the
// config file supplies one.
const defaultGroupSize = 1

// errUsage marks invocations already answered with usage text. Execute
// exits non-zero for them without printing a second error line.
var errUsage = errors.New("usage shown")

// NewRootCmd creates the root command for prattle.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prattle <input file> <word count>",
		Short: "Markov chain text generator",
		Long: `prattle builds an n-gram frequency model from the input file and prints
newly generated text that imitates the corpus. By default the corpus is
modeled one character at a time; --word-mode treats space-separated words
as units instead.

The word count is the number of completed words to generate. Output is
random on every run unless --seed pins the walk.`,
		Version:       getVersion(),
		Args:          cobra.ArbitraryArgs,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().IntP("group-size", "n", defaultGroupSize,
		"Units per model key (the n-gram order)")
	cmd.Flags().BoolP("word-mode", "w", false,
		"Model whole words instead of characters")
	cmd.Flags().StringP("output", "o", "",
		"Write the generated text to this file instead of stdout")
	cmd.Flags().Uint64("seed", 0,
		"Seed the random walk for reproducible output")
	cmd.Flags().String("start", "",
		"Start the walk from this key instead of a random one")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: $XDG_CONFIG_HOME/prattle/config.json)")

	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// runGenerate executes a generation run.
func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := setupLogger(slog.LevelWarn)
	if verbose {
		logger = setupLogger(slog.LevelDebug)
	}

	if len(args) != 2 {
		return usageError(cmd)
	}
	wordCount, err := strconv.Atoi(args[1])
	if err != nil || wordCount < 1 {
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

	return generate(cmd, run, args[0], wordCount, logger)
}

// runConfig carries the merged flag and config-file settings for one run.
type runConfig struct {
	groupSize int
	mode      markov.Mode
	seed      uint64
	seeded    bool
	startKey  string
	output    string
}

// buildRunConfig loads the config file and overlays any flags the user
// changed, so explicit flags always win over file values.
func buildRunConfig(cmd *cobra.Command, logger *slog.Logger) (*runConfig, *Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	if configPath == "" {
		configPath = DefaultConfigPath()
	}

	cfg, err := LoadConfig(configPath, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}

	run := &runConfig{groupSize: cfg.GroupSize}

	run.mode, err = markov.ParseMode(cfg.Mode)
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("group-size") {
		if run.groupSize, err = cmd.Flags().GetInt("group-size"); err != nil {
			return nil, nil, err
		}
	}
	if cmd.Flags().Changed("word-mode") {
		wordMode, err := cmd.Flags().GetBool("word-mode")
		if err != nil {
			return nil, nil, err
		}
		run.mode = markov.ModeCharacter
		if wordMode {
			run.mode = markov.ModeWord
		}
	}
	if cmd.Flags().Changed("seed") {
		if run.seed, err = cmd.Flags().GetUint64("seed"); err != nil {
			return nil, nil, err
		}
		run.seeded = true
	}
	if cmd.Flags().Changed("start") {
		if run.startKey, err = cmd.Flags().GetString("start"); err != nil {
			return nil, nil, err
		}
	}
	if run.output, err = cmd.Flags().GetString("output"); err != nil {
		return nil, nil, err
	}

	return run, cfg, nil
}

// generate reads the corpus, builds the model, walks it, and delivers the
// result. Nothing is written when any step fails.
func generate(cmd *cobra.Command, run *runConfig, path string, wordCount int, logger *slog.Logger) error {
	corpus, err := os.ReadFile(path)
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
		return fmt.Errorf("could not model %s: %w", path, err)
	}

	var src markov.Sampler
	if run.seeded {
		src = markov.NewSampler(run.seed)
	}
	generator := markov.NewGenerator(model, src)
	generator.SetLogger(logger)

	var opts []markov.GenerateOption
	if run.startKey != "" {
		opts = append(opts, markov.WithStartKey(run.startKey))
	}

	text, err := generator.Generate(wordCount, opts...)
	if err != nil {
		return err
	}

	if run.output != "" {
		if err := atomic.WriteFile(run.output, strings.NewReader(text)); err != nil {
			return fmt.Errorf("could not write %s: %w", run.output, err)
		}
		logger.Info("generated text written", "path", run.output, "bytes", len(text))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// usageError answers a malformed invocation: usage goes to stdout and the
// run still fails.
func usageError(cmd *cobra.Command) error {
	fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
	return errUsage
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger on stderr, keeping stdout
// reserved for generated text.
func setupLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseLogLevel maps a config string to a slog level, defaulting to warn.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
