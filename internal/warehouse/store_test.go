// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package warehouse

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

func testTables() types.Tables {
	prep, cook, total := 15.0, 45.0, 60.0
	views := int64(120)
	stepNo := int64(1)
	dur := int64(900)

	return types.Tables{
		Recipes: []types.Recipe{
			{
				RecipeID: "r1", Title: "Chicken Curry",
				PrepTime: &prep, CookTime: &cook, TotalTime: &total,
				Difficulty: "Medium", AuthorID: "u1", ViewCount: &views,
			},
			{RecipeID: "r2", Title: "Sparse Recipe"},
		},
		Ingredients: []types.Ingredient{
			{IngredientID: "i1", RecipeID: "r1", Name: "Chicken", Quantity: "500", Unit: "grams"},
			{IngredientID: "i2", RecipeID: "r1", Name: "Coriander", Quantity: "a pinch", Optional: true},
		},
		Steps: []types.Step{
			{StepID: "s1", RecipeID: "r1", StepNumber: &stepNo, Instruction: "Cook", DurationSeconds: &dur, DurationRaw: "15 min"},
		},
		Interactions: []types.Interaction{
			{InteractionID: "n1", RecipeID: "r1", Rating: "5", Type: "rating"},
			// Orphan row; the warehouse keeps it since recipe_id is a
			// weak reference.
			{InteractionID: "n2", RecipeID: "ghost", Rating: 4.0, Type: "rating"},
		},
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.WarehouseConfig{WarehouseDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func rowCount(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatal(err)
	}
	return n
}

func TestNewStoreCreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStore(types.WarehouseConfig{WarehouseDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(dir, dbFile)); err != nil {
		t.Errorf("database file not created: %v", err)
	}
}

func TestLoadCounts(t *testing.T) {
	s := newTestStore(t)
	tables := testTables()

	summary, err := s.Load(context.Background(), tables)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Recipes != 2 || summary.Ingredients != 2 || summary.Steps != 1 || summary.Interactions != 2 {
		t.Errorf("summary = %+v", summary)
	}
	if summary.Total() != 7 {
		t.Errorf("Total() = %d, want 7", summary.Total())
	}

	for table, want := range map[string]int{"recipe": 2, "ingredient": 2, "step": 1, "interaction": 2} {
		if got := rowCount(t, s.DB(), table); got != want {
			t.Errorf("%s has %d rows, want %d", table, got, want)
		}
	}
}

func TestLoadReplacesPreviousRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Load(ctx, testTables()); err != nil {
		t.Fatal(err)
	}

	smaller := types.Tables{Recipes: []types.Recipe{{RecipeID: "r9", Title: "Only One"}}}
	if _, err := s.Load(ctx, smaller); err != nil {
		t.Fatal(err)
	}

	if got := rowCount(t, s.DB(), "recipe"); got != 1 {
		t.Errorf("recipe has %d rows after reload, want 1", got)
	}
	if got := rowCount(t, s.DB(), "ingredient"); got != 0 {
		t.Errorf("ingredient has %d rows after reload, want 0", got)
	}

	var title string
	if err := s.DB().QueryRow(`SELECT title FROM recipe WHERE recipe_id = 'r9'`).Scan(&title); err != nil {
		t.Fatal(err)
	}
	if title != "Only One" {
		t.Errorf("title = %q", title)
	}
}

func TestLoadStoresNullNumerics(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Load(context.Background(), testTables()); err != nil {
		t.Fatal(err)
	}

	var prep sql.NullFloat64
	if err := s.DB().QueryRow(`SELECT prep_time FROM recipe WHERE recipe_id = 'r2'`).Scan(&prep); err != nil {
		t.Fatal(err)
	}
	if prep.Valid {
		t.Errorf("prep_time for sparse recipe = %v, want NULL", prep.Float64)
	}

	var total sql.NullFloat64
	if err := s.DB().QueryRow(`SELECT total_time FROM recipe WHERE recipe_id = 'r1'`).Scan(&total); err != nil {
		t.Fatal(err)
	}
	if !total.Valid || total.Float64 != 60 {
		t.Errorf("total_time for r1 = %+v, want 60", total)
	}
}

func TestLoadRendersVerbatimColumnsAsText(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Load(context.Background(), testTables()); err != nil {
		t.Fatal(err)
	}

	var quantity string
	if err := s.DB().QueryRow(`SELECT quantity FROM ingredient WHERE ingredient_id = 'i2'`).Scan(&quantity); err != nil {
		t.Fatal(err)
	}
	if quantity != "a pinch" {
		t.Errorf("quantity = %q", quantity)
	}

	// Numeric ratings are stored in their text form without a decimal
	// point.
	var rating string
	if err := s.DB().QueryRow(`SELECT rating FROM interaction WHERE interaction_id = 'n2'`).Scan(&rating); err != nil {
		t.Fatal(err)
	}
	if rating != "4" {
		t.Errorf("rating = %q, want %q", rating, "4")
	}
}

func TestLoadKeepsOrphanRows(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Load(context.Background(), testTables()); err != nil {
		t.Fatal(err)
	}

	var n int
	if err := s.DB().QueryRow(`SELECT COUNT(*) FROM interaction WHERE recipe_id = 'ghost'`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("orphan interaction count = %d, want 1", n)
	}
}
