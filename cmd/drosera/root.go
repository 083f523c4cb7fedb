package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	cfgPath string
	cfg     *Config

	flagDotOut    string
	flagMinTokens int

	rootCmd = &cobra.Command{
		Use:   "drosera",
		Short: "Drosera: a word-graph babbler",
		Long: `Drosera builds a weighted word-transition graph from text files, JSON chat
exports and SQLite chat logs, exports the graph as Graphviz text, and walks it
to generate new pseudo-random sentences.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig(cfgPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cmd.Flags().Changed("dot-out") {
				cfg.DotPath = flagDotOut
			}
			if cmd.Flags().Changed("min-tokens") {
				cfg.MinTokens = flagMinTokens
			}
			return nil
		},
	}
)

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "./config.json", "path to the config file")
	rootCmd.PersistentFlags().StringVar(&flagDotOut, "dot-out", "", "path for the Graphviz export")
	rootCmd.PersistentFlags().IntVar(&flagMinTokens, "min-tokens", 0, "minimum tokens per ingested chain")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(exportCmd)
}

// setupLogger builds the process logger from the configured level.
func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}
