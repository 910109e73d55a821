// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

// File names of the four normalized tables inside a tables directory.
const (
	RecipeFile       = "recipe.csv"
	IngredientsFile  = "ingredients.csv"
	StepsFile        = "steps.csv"
	InteractionsFile = "interactions.csv"
)

// Header rows are part of the external contract; changing them breaks
// downstream consumers of the tables.
var (
	recipeHeader      = []string{"recipe_id", "title", "description", "prep_time", "cook_time", "total_time", "difficulty", "author_id", "author_name", "view_count", "like_count", "rating_count", "created_at"}
	ingredientHeader  = []string{"ingredient_id", "recipe_id", "name", "quantity", "unit", "optional"}
	stepHeader        = []string{"step_id", "recipe_id", "step_number", "instruction", "duration_seconds", "duration_raw"}
	interactionHeader = []string{"interaction_id", "recipe_id", "user_id", "username", "type", "rating", "cooknote", "recipe_title", "created_at"}
)

// WriteTables serializes the four tables as CSV with header rows into
// dir, creating it if needed. Null numerics render as empty fields.
func WriteTables(tables types.Tables, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating tables directory: %w", err)
	}

	recipeRows := make([][]string, 0, len(tables.Recipes))
	for _, r := range tables.Recipes {
		recipeRows = append(recipeRows, []string{
			r.RecipeID, r.Title, r.Description,
			floatField(r.PrepTime), floatField(r.CookTime), floatField(r.TotalTime),
			r.Difficulty, r.AuthorID, r.AuthorName,
			intField(r.ViewCount), intField(r.LikeCount), intField(r.RatingCount),
			r.CreatedAt,
		})
	}

	ingredientRows := make([][]string, 0, len(tables.Ingredients))
	for _, ing := range tables.Ingredients {
		ingredientRows = append(ingredientRows, []string{
			ing.IngredientID, ing.RecipeID, ing.Name,
			coerceString(ing.Quantity), ing.Unit, strconv.FormatBool(ing.Optional),
		})
	}

	stepRows := make([][]string, 0, len(tables.Steps))
	for _, st := range tables.Steps {
		stepRows = append(stepRows, []string{
			st.StepID, st.RecipeID, intField(st.StepNumber),
			st.Instruction, intField(st.DurationSeconds), st.DurationRaw,
		})
	}

	interactionRows := make([][]string, 0, len(tables.Interactions))
	for _, inter := range tables.Interactions {
		interactionRows = append(interactionRows, []string{
			inter.InteractionID, inter.RecipeID, inter.UserID, inter.Username,
			inter.Type, coerceString(inter.Rating), inter.Cooknote,
			inter.RecipeTitle, inter.CreatedAt,
		})
	}

	files := []struct {
		name   string
		header []string
		rows   [][]string
	}{
		{RecipeFile, recipeHeader, recipeRows},
		{IngredientsFile, ingredientHeader, ingredientRows},
		{StepsFile, stepHeader, stepRows},
		{InteractionsFile, interactionHeader, interactionRows},
	}
	for _, f := range files {
		if err := writeCSV(filepath.Join(dir, f.name), f.header, f.rows); err != nil {
			return err
		}
	}
	return nil
}

// ReadTables loads the four CSV tables back into memory. Header rows
// are checked against the contract; numeric fields parse leniently,
// with empty or malformed cells becoming nil.
func ReadTables(dir string) (types.Tables, error) {
	var tables types.Tables

	rows, err := readCSV(filepath.Join(dir, RecipeFile), recipeHeader)
	if err != nil {
		return tables, err
	}
	for _, row := range rows {
		tables.Recipes = append(tables.Recipes, types.Recipe{
			RecipeID: row[0], Title: row[1], Description: row[2],
			PrepTime: parseFloatField(row[3]), CookTime: parseFloatField(row[4]), TotalTime: parseFloatField(row[5]),
			Difficulty: row[6], AuthorID: row[7], AuthorName: row[8],
			ViewCount: parseIntField(row[9]), LikeCount: parseIntField(row[10]), RatingCount: parseIntField(row[11]),
			CreatedAt: row[12],
		})
	}

	rows, err = readCSV(filepath.Join(dir, IngredientsFile), ingredientHeader)
	if err != nil {
		return tables, err
	}
	for _, row := range rows {
		optional, _ := strconv.ParseBool(row[5])
		tables.Ingredients = append(tables.Ingredients, types.Ingredient{
			IngredientID: row[0], RecipeID: row[1], Name: row[2],
			Quantity: row[3], Unit: row[4], Optional: optional,
		})
	}

	rows, err = readCSV(filepath.Join(dir, StepsFile), stepHeader)
	if err != nil {
		return tables, err
	}
	for _, row := range rows {
		tables.Steps = append(tables.Steps, types.Step{
			StepID: row[0], RecipeID: row[1], StepNumber: parseIntField(row[2]),
			Instruction: row[3], DurationSeconds: parseIntField(row[4]), DurationRaw: row[5],
		})
	}

	rows, err = readCSV(filepath.Join(dir, InteractionsFile), interactionHeader)
	if err != nil {
		return tables, err
	}
	for _, row := range rows {
		tables.Interactions = append(tables.Interactions, types.Interaction{
			InteractionID: row[0], RecipeID: row[1], UserID: row[2], Username: row[3],
			Type: row[4], Rating: row[5], Cooknote: row[6],
			RecipeTitle: row[7], CreatedAt: row[8],
		})
	}

	return tables, nil
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

func readCSV(path string, wantHeader []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := records[0]
	if len(header) != len(wantHeader) {
		return nil, fmt.Errorf("%s: header has %d columns, want %d", path, len(header), len(wantHeader))
	}
	for i, col := range wantHeader {
		if header[i] != col {
			return nil, fmt.Errorf("%s: column %d is %q, want %q", path, i, header[i], col)
		}
	}
	return records[1:], nil
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intField(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func parseFloatField(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseIntField(s string) *int64 {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
