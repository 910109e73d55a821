// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mealdesk/recipe-etl/internal/transform"
	"github.com/mealdesk/recipe-etl/internal/validate"
	"github.com/mealdesk/recipe-etl/pkg/types"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check business invariants over the normalized tables",
	Long: `Validate loads the four CSV tables, evaluates the full invariant set per
recipe, and writes a report listing every valid recipe id and every
invalid recipe with its complete violation list.

Validation is advisory: invalid recipes are reported, not repaired, and
do not fail the command. Only an unreadable input or unwritable report
is an error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return runValidate(cmd.Context(), validationConfig(cmd), format, os.Stdout)
	},
}

func runValidate(ctx context.Context, cfg types.ValidationConfig, format string, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tables, err := transform.ReadTables(cfg.TablesDir)
	if err != nil {
		return err
	}

	outcomes := validate.ValidateTables(tables)
	report := validate.BuildReport(outcomes)

	switch format {
	case "json", "":
		err = validate.WriteReportJSON(cfg.ReportPath, report)
	case "yaml":
		err = validate.WriteReportYAML(cfg.ReportPath, report)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "validated %d recipes: %d valid, %d invalid\n",
		report.Summary.TotalRecipes, report.Summary.ValidRecipes, report.Summary.InvalidRecipes)
	fmt.Fprintf(w, "report written to %s\n", cfg.ReportPath)
	return nil
}

func init() {
	validateCmd.Flags().String("tables-dir", "tables", "directory containing the four CSV tables")
	validateCmd.Flags().String("report", "report/validation_report.json", "output path for the validation report")
	validateCmd.Flags().String("format", "json", "report format: json or yaml")

	rootCmd.AddCommand(validateCmd)
}
