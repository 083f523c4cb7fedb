package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strings"
	"syscall"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/CTAG07/Drosera/pkg/markov"
	"github.com/CTAG07/Drosera/pkg/source"
)

var (
	flagCount       int
	flagMaxLength   int
	flagTemperature float64
	flagTopK        int
	flagStream      bool

	runCmd = &cobra.Command{
		Use:   "run [sources...]",
		Short: "Ingest sources, export the graph, and generate until interrupted",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRun,
	}
)

func init() {
	runCmd.Flags().IntVar(&flagCount, "count", 0, "number of sequences to generate (0 = until interrupted)")
	runCmd.Flags().IntVar(&flagMaxLength, "max-length", 0, "token cap per sequence (0 = walk until the end marker)")
	runCmd.Flags().Float64Var(&flagTemperature, "temperature", 1.0, "sampling temperature")
	runCmd.Flags().IntVar(&flagTopK, "top-k", 0, "restrict sampling to the k most frequent successors")
	runCmd.Flags().BoolVar(&flagStream, "stream", false, "print tokens as they are sampled")
}

func runRun(cmd *cobra.Command, args []string) error {
	gen := *cfg.Generation
	if cmd.Flags().Changed("count") {
		gen.Count = flagCount
	}
	if cmd.Flags().Changed("max-length") {
		gen.MaxLength = flagMaxLength
	}
	if cmd.Flags().Changed("temperature") {
		gen.Temperature = flagTemperature
	}
	if cmd.Flags().Changed("top-k") {
		gen.TopK = flagTopK
	}

	logger := setupLogger(cfg.LogLevel)

	graph, err := buildGraph(logger, args)
	if err != nil {
		return err
	}

	if err := exportGraph(graph, cfg.DotPath); err != nil {
		return fmt.Errorf("failed to export graph: %w", err)
	}
	logger.Info("Graph exported", "path", cfg.DotPath)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []markov.GenerateOption{
		markov.WithMaxLength(gen.MaxLength),
		markov.WithTemperature(gen.Temperature),
		markov.WithTopK(gen.TopK),
	}

	for n := 0; gen.Count == 0 || n < gen.Count; n++ {
		if ctx.Err() != nil {
			break
		}
		if flagStream {
			err = printStream(ctx, graph, opts)
		} else {
			err = printSequence(graph, opts)
		}
		if err != nil {
			return err
		}
	}

	logger.Info("Drosera has shut down.")
	return nil
}

// buildGraph ingests every source into a fresh graph and logs the result.
func buildGraph(logger *slog.Logger, paths []string) (*markov.Graph, error) {
	graph := markov.NewGraph()
	graph.SetLogger(logger)

	loader := source.NewLoader(graph, source.NewTokenizer(),
		source.WithMinTokens(cfg.MinTokens),
		source.WithRowQuery(cfg.RowQuery),
		source.WithLogger(logger),
	)

	if loader.LoadAll(paths) == 0 {
		return nil, fmt.Errorf("no sources could be ingested")
	}

	stats := graph.Stats()
	logger.Info("Ingestion complete",
		"nodes", stats.Nodes,
		"edges", stats.Edges,
		"transitions", stats.Transitions,
		"starting_tokens", stats.StartingTokens)

	return graph, nil
}

// exportGraph renders the graph as DOT and writes it out atomically.
func exportGraph(g *markov.Graph, path string) error {
	var buf bytes.Buffer
	if err := g.ExportDOT(&buf); err != nil {
		return err
	}
	return atomic.WriteFile(path, &buf)
}

func printSequence(g *markov.Graph, opts []markov.GenerateOption) error {
	seq, err := g.Generate(opts...)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	fmt.Println(strings.Join(seq, " "))
	fmt.Println("-------------------")
	return nil
}

func printStream(ctx context.Context, g *markov.Graph, opts []markov.GenerateOption) error {
	tokens, err := g.GenerateStream(ctx, opts...)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	first := true
	for token := range tokens {
		if !first {
			fmt.Print(" ")
		}
		fmt.Print(token)
		first = false
	}
	fmt.Println()
	fmt.Println("-------------------")
	return nil
}
