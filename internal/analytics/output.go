// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analytics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Output file names inside the analytics directory.
const (
	SummaryFile         = "analytics_summary.json"
	IngredientsFile     = "most_common_ingredients.csv"
	TopRatedRecipesFile = "top_rated_recipes.csv"
)

// WriteOutputs persists the insights: the full summary as JSON plus the
// two ranked lists as standalone CSVs for spreadsheet consumers.
func WriteOutputs(insights Insights, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating analytics directory: %w", err)
	}

	data, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, SummaryFile), data, 0o644); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	ingredientRows := make([][]string, 0, len(insights.MostCommonIngredients))
	for _, lc := range insights.MostCommonIngredients {
		ingredientRows = append(ingredientRows, []string{lc.Label, strconv.Itoa(lc.Count)})
	}
	if err := writeCSV(filepath.Join(outDir, IngredientsFile),
		[]string{"name", "count"}, ingredientRows); err != nil {
		return err
	}

	ratedRows := make([][]string, 0, len(insights.TopRatedRecipes))
	for _, r := range insights.TopRatedRecipes {
		ratedRows = append(ratedRows, []string{
			r.RecipeID, r.Title, strconv.FormatFloat(r.AvgRating, 'f', -1, 64),
		})
	}
	return writeCSV(filepath.Join(outDir, TopRatedRecipesFile),
		[]string{"recipe_id", "title", "avg_rating"}, ratedRows)
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("writing rows to %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}
