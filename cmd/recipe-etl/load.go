// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mealdesk/recipe-etl/internal/transform"
	"github.com/mealdesk/recipe-etl/internal/warehouse"
	"github.com/mealdesk/recipe-etl/pkg/types"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the normalized tables into the SQLite warehouse",
	Long: `Load reads the four CSV tables and replaces the warehouse contents with
them in a single transaction. The warehouse is re-derived on every run;
it never accumulates rows across runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoad(cmd.Context(), tablesDirSetting(cmd), warehouseConfig(cmd), os.Stdout)
	},
}

func runLoad(ctx context.Context, tablesDir string, cfg types.WarehouseConfig, w io.Writer) error {
	tables, err := transform.ReadTables(tablesDir)
	if err != nil {
		return err
	}

	store, err := warehouse.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Load(ctx, tables)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "loaded %d rows: %d recipes, %d ingredients, %d steps, %d interactions\n",
		summary.Total(), summary.Recipes, summary.Ingredients, summary.Steps, summary.Interactions)
	return nil
}

func init() {
	loadCmd.Flags().String("tables-dir", "tables", "directory containing the four CSV tables")
	loadCmd.Flags().String("warehouse-dir", "warehouse", "directory containing the warehouse database")

	rootCmd.AddCommand(loadCmd)
}
