// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: transform, validate, load, analytics",
	Long: `Run executes the pipeline stages in order, mirroring progress to stdout
and appending it with timestamps to the run log. The first stage that
fails stops the pipeline; later stages are not attempted.`,
	RunE: runPipeline,
}

func runPipeline(cmd *cobra.Command, args []string) error {
	logPath := stringSetting(cmd, "log", "runner.log_path")

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log %s: %w", logPath, err)
	}
	defer logFile.Close()

	w := io.MultiWriter(os.Stdout, logFile)
	ctx := cmd.Context()

	transformCfg := transformConfig(cmd)
	validationCfg := validationConfig(cmd)
	warehouseCfg := warehouseConfig(cmd)
	analyticsCfg := analyticsConfig(cmd)
	format, _ := cmd.Flags().GetString("format")

	stages := []struct {
		name string
		fn   func(context.Context, io.Writer) error
	}{
		{"transform", func(ctx context.Context, w io.Writer) error {
			return runTransform(ctx, transformCfg, w)
		}},
		{"validate", func(ctx context.Context, w io.Writer) error {
			return runValidate(ctx, validationCfg, format, w)
		}},
		{"load", func(ctx context.Context, w io.Writer) error {
			return runLoad(ctx, validationCfg.TablesDir, warehouseCfg, w)
		}},
		{"analytics", func(ctx context.Context, w io.Writer) error {
			return runAnalytics(ctx, warehouseCfg, analyticsCfg, w)
		}},
	}

	logf(w, "pipeline started")
	for _, stage := range stages {
		logf(w, "running: %s", stage.name)
		if err := stage.fn(ctx, w); err != nil {
			logf(w, "failed: %s: %v", stage.name, err)
			return fmt.Errorf("stage %s: %w", stage.name, err)
		}
		logf(w, "completed: %s", stage.name)
	}
	logf(w, "pipeline completed")
	return nil
}

func logf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", time.Now().Format(time.RFC3339), fmt.Sprintf(format, args...))
}

func init() {
	runCmd.Flags().String("recipes", "data/recipes.json", "JSON batch of recipe documents")
	runCmd.Flags().String("interactions", "", "optional flat JSON batch of interaction documents")
	runCmd.Flags().String("tables-dir", "tables", "directory for the four CSV tables")
	runCmd.Flags().String("report", "report/validation_report.json", "output path for the validation report")
	runCmd.Flags().String("format", "json", "report format: json or yaml")
	runCmd.Flags().String("warehouse-dir", "warehouse", "directory containing the warehouse database")
	runCmd.Flags().String("analytics-dir", "analytics", "output directory for analytics files")
	runCmd.Flags().Int("top-n", 20, "bound for ranked analytics lists")
	runCmd.Flags().String("log", "pipeline.log", "run log file")

	rootCmd.AddCommand(runCmd)
}
