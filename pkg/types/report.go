// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReportSummary gives the headline counts of a validation run. The
// counts always satisfy ValidRecipes + InvalidRecipes == TotalRecipes.
type ReportSummary struct {
	TotalRecipes   int `json:"total_recipes" yaml:"total_recipes"`
	ValidRecipes   int `json:"valid_recipes" yaml:"valid_recipes"`
	InvalidRecipes int `json:"invalid_recipes" yaml:"invalid_recipes"`
}

// InvalidRecord pairs a recipe with its ordered violation list. Errors
// is never empty: a recipe with no violations is listed in
// ValidRecords instead.
type InvalidRecord struct {
	RecipeID string   `json:"recipe_id" yaml:"recipe_id"`
	Errors   []string `json:"errors" yaml:"errors"`
}

// ValidationReport is the persisted output of a validation run. Both
// record lists preserve input iteration order and marshal as empty
// lists, never null, so downstream consumers can index them blindly.
type ValidationReport struct {
	Summary        ReportSummary   `json:"summary" yaml:"summary"`
	ValidRecords   []string        `json:"valid_records" yaml:"valid_records"`
	InvalidRecords []InvalidRecord `json:"invalid_records" yaml:"invalid_records"`
}
