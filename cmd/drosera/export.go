package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [sources...]",
	Short: "Ingest sources and write the Graphviz export only",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger(cfg.LogLevel)

		graph, err := buildGraph(logger, args)
		if err != nil {
			return err
		}
		if err := exportGraph(graph, cfg.DotPath); err != nil {
			return fmt.Errorf("failed to export graph: %w", err)
		}
		logger.Info("Graph exported", "path", cfg.DotPath)
		return nil
	},
}
