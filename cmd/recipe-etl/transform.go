// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mealdesk/recipe-etl/internal/source"
	"github.com/mealdesk/recipe-etl/internal/transform"
	"github.com/mealdesk/recipe-etl/pkg/types"
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "Normalize recipe documents into the four CSV tables",
	Long: `Transform reads a JSON batch of recipe documents (and optionally a flat
JSON batch of interaction documents keyed by recipe id), flattens them
into recipe, ingredient, step, and interaction records, parses step
durations into canonical seconds, and writes the four tables as CSV.

Interactions embedded on a recipe document and supplied as a flat
collection are both accepted, in the same batch if need be.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTransform(cmd.Context(), transformConfig(cmd), os.Stdout)
	},
}

func runTransform(ctx context.Context, cfg types.TransformConfig, w io.Writer) error {
	src := source.NewFileSource(cfg.SourceConfig)

	docs, err := src.Recipes(ctx)
	if err != nil {
		return err
	}
	flat, err := src.Interactions(ctx)
	if err != nil {
		return err
	}

	tables, summary := transform.NormalizeBatch(docs, flat)
	if err := transform.WriteTables(tables, cfg.TablesDir); err != nil {
		return err
	}

	fmt.Fprintf(w, "normalized %d recipes: %d ingredients, %d steps, %d interactions\n",
		summary.Recipes, summary.Ingredients, summary.Steps, summary.Interactions)
	fmt.Fprintf(w, "tables written to %s\n", cfg.TablesDir)
	return nil
}

func init() {
	transformCmd.Flags().String("recipes", "data/recipes.json", "JSON batch of recipe documents")
	transformCmd.Flags().String("interactions", "", "optional flat JSON batch of interaction documents")
	transformCmd.Flags().String("tables-dir", "tables", "output directory for the four CSV tables")

	rootCmd.AddCommand(transformCmd)
}
