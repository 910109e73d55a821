// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mealdesk/recipe-etl/internal/analytics"
	"github.com/mealdesk/recipe-etl/internal/warehouse"
	"github.com/mealdesk/recipe-etl/pkg/types"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Derive descriptive statistics from the warehouse",
	Long: `Analytics queries the warehouse for ingredient frequencies, average
prep and cook times, the difficulty distribution, interaction rankings,
the prep-time/rating correlation, and step-count statistics, and writes
a JSON summary plus CSV extracts of the ranked lists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalytics(cmd.Context(), warehouseConfig(cmd), analyticsConfig(cmd), os.Stdout)
	},
}

func runAnalytics(ctx context.Context, whCfg types.WarehouseConfig, cfg types.AnalyticsConfig, w io.Writer) error {
	store, err := warehouse.NewStore(whCfg)
	if err != nil {
		return err
	}
	defer store.Close()

	insights, err := analytics.Compute(ctx, store.DB(), cfg.TopN)
	if err != nil {
		return err
	}
	if err := analytics.WriteOutputs(insights, cfg.OutDir); err != nil {
		return err
	}

	fmt.Fprintf(w, "analytics written to %s\n", cfg.OutDir)
	return nil
}

func init() {
	analyticsCmd.Flags().String("warehouse-dir", "warehouse", "directory containing the warehouse database")
	analyticsCmd.Flags().String("analytics-dir", "analytics", "output directory for analytics files")
	analyticsCmd.Flags().Int("top-n", 20, "bound for ranked lists")

	rootCmd.AddCommand(analyticsCmd)
}
