// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

// BuildReport aggregates per-recipe outcomes into the persisted report
// shape. List order follows outcome order, which ValidateTables pins to
// recipe input order. The summary counts are derived from the lists, so
// valid + invalid == total holds for any input including the empty batch.
func BuildReport(outcomes []Outcome) types.ValidationReport {
	report := types.ValidationReport{
		ValidRecords:   []string{},
		InvalidRecords: []types.InvalidRecord{},
	}
	for _, o := range outcomes {
		if o.Valid() {
			report.ValidRecords = append(report.ValidRecords, o.RecipeID)
			continue
		}
		report.InvalidRecords = append(report.InvalidRecords, types.InvalidRecord{
			RecipeID: o.RecipeID,
			Errors:   o.Errors,
		})
	}
	report.Summary = types.ReportSummary{
		TotalRecipes:   len(outcomes),
		ValidRecipes:   len(report.ValidRecords),
		InvalidRecipes: len(report.InvalidRecords),
	}
	return report
}

// WriteReportJSON persists a report as indented JSON.
func WriteReportJSON(path string, report types.ValidationReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return writeReportFile(path, data)
}

// WriteReportYAML persists a report as YAML.
func WriteReportYAML(path string, report types.ValidationReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}
	return writeReportFile(path, data)
}

func writeReportFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
