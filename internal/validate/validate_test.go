// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package validate

import (
	"reflect"
	"testing"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

func fp(v float64) *float64 { return &v }

// passingRecords returns a record set that satisfies every rule, for
// tests that break one invariant at a time.
func passingRecords() RecipeRecords {
	return RecipeRecords{
		Recipe: types.Recipe{
			RecipeID: "r1", Title: "Chicken Curry",
			PrepTime: fp(15), CookTime: fp(45), TotalTime: fp(60),
			Difficulty: "Medium",
		},
		Ingredients: []types.Ingredient{
			{IngredientID: "i1", RecipeID: "r1", Name: "Chicken", Quantity: "500"},
		},
		Steps: []types.Step{
			{StepID: "s1", RecipeID: "r1", Instruction: "Cook it"},
		},
		Interactions: []types.Interaction{
			{InteractionID: "n1", RecipeID: "r1", Rating: "5"},
		},
	}
}

func TestValidateRecipePasses(t *testing.T) {
	out := ValidateRecipe(passingRecords())
	if !out.Valid() {
		t.Fatalf("expected pass, got %v", out.Errors)
	}
	if out.RecipeID != "r1" {
		t.Errorf("RecipeID = %q, want %q", out.RecipeID, "r1")
	}
}

func TestValidateRecipeSingleViolations(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RecipeRecords)
		want   string
	}{
		{"missing title", func(rr *RecipeRecords) { rr.Recipe.Title = "" }, "Missing Title"},
		{"nil prep time", func(rr *RecipeRecords) { rr.Recipe.PrepTime = nil }, "PrepTime must be > 0"},
		{"zero prep time", func(rr *RecipeRecords) { rr.Recipe.PrepTime = fp(0) }, "PrepTime must be > 0"},
		{"negative prep time", func(rr *RecipeRecords) { rr.Recipe.PrepTime = fp(-5) }, "PrepTime must be > 0"},
		{"nil cook time", func(rr *RecipeRecords) { rr.Recipe.CookTime = nil }, "CookTime must be >= 0"},
		{"negative cook time", func(rr *RecipeRecords) { rr.Recipe.CookTime = fp(-1) }, "CookTime must be >= 0"},
		{"nil total time", func(rr *RecipeRecords) { rr.Recipe.TotalTime = nil }, "TotalTime missing"},
		{"short total time", func(rr *RecipeRecords) { rr.Recipe.TotalTime = fp(50) }, "TotalTime less than PrepTime + CookTime"},
		{"empty difficulty", func(rr *RecipeRecords) { rr.Recipe.Difficulty = "" }, "Invalid difficulty: "},
		{"lowercase difficulty", func(rr *RecipeRecords) { rr.Recipe.Difficulty = "medium" }, "Invalid difficulty: medium"},
		{"unknown difficulty", func(rr *RecipeRecords) { rr.Recipe.Difficulty = "Expert" }, "Invalid difficulty: Expert"},
		{"no ingredients", func(rr *RecipeRecords) { rr.Ingredients = nil }, "No ingredients"},
		{"zero quantity", func(rr *RecipeRecords) { rr.Ingredients[0].Quantity = "0" }, "Ingredient Chicken has non-positive quantity"},
		{"zero float quantity", func(rr *RecipeRecords) { rr.Ingredients[0].Quantity = 0.0 }, "Ingredient Chicken has non-positive quantity"},
		{"free-text quantity", func(rr *RecipeRecords) { rr.Ingredients[0].Quantity = "a pinch" }, `Ingredient Chicken has invalid quantity "a pinch"`},
		{"empty quantity", func(rr *RecipeRecords) { rr.Ingredients[0].Quantity = "" }, `Ingredient Chicken has invalid quantity ""`},
		{"negative quantity", func(rr *RecipeRecords) { rr.Ingredients[0].Quantity = "-1" }, `Ingredient Chicken has invalid quantity "-1"`},
		{"no steps", func(rr *RecipeRecords) { rr.Steps = nil }, "No steps"},
		{"rating too high", func(rr *RecipeRecords) { rr.Interactions[0].Rating = "7" }, "Interaction rating 7 out of range (0-5)"},
		{"rating not numeric", func(rr *RecipeRecords) { rr.Interactions[0].Rating = "abc" }, "Interaction rating abc not numeric"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := passingRecords()
			tt.mutate(&rr)
			out := ValidateRecipe(rr)
			if len(out.Errors) != 1 || out.Errors[0] != tt.want {
				t.Errorf("Errors = %v, want exactly [%q]", out.Errors, tt.want)
			}
		})
	}
}

func TestValidateRecipeBoundaries(t *testing.T) {
	rr := passingRecords()
	rr.Recipe.TotalTime = fp(60) // exactly prep + cook
	rr.Interactions = []types.Interaction{
		{Rating: "0"},
		{Rating: "5"},
		{Rating: ""},  // absent ratings are skipped
		{Rating: nil}, // so are nil ones
	}
	rr.Ingredients[0].Quantity = "0.5"

	out := ValidateRecipe(rr)
	if !out.Valid() {
		t.Fatalf("expected pass, got %v", out.Errors)
	}
}

func TestValidateRecipeAccumulatesInRuleOrder(t *testing.T) {
	rr := RecipeRecords{Recipe: types.Recipe{RecipeID: "r-bad"}}
	out := ValidateRecipe(rr)

	want := []string{
		"Missing Title",
		"PrepTime must be > 0",
		"CookTime must be >= 0",
		"TotalTime missing",
		"Invalid difficulty: ",
		"No ingredients",
		"No steps",
	}
	if !reflect.DeepEqual(out.Errors, want) {
		t.Errorf("Errors = %v\nwant %v", out.Errors, want)
	}
}

func TestValidateRecipePerItemViolations(t *testing.T) {
	rr := passingRecords()
	rr.Ingredients = []types.Ingredient{
		{Name: "Chicken", Quantity: "500"},
		{Name: "Salt", Quantity: "0"},
		{Name: "Coriander", Quantity: "a small handful"},
	}
	rr.Interactions = []types.Interaction{
		{Rating: "7"},
		{Rating: "abc"},
		{Rating: "4"},
	}

	out := ValidateRecipe(rr)
	want := []string{
		"Ingredient Salt has non-positive quantity",
		`Ingredient Coriander has invalid quantity "a small handful"`,
		"Interaction rating 7 out of range (0-5)",
		"Interaction rating abc not numeric",
	}
	if !reflect.DeepEqual(out.Errors, want) {
		t.Errorf("Errors = %v\nwant %v", out.Errors, want)
	}
}

func TestValidateTablesGroupsAndPreservesOrder(t *testing.T) {
	good := passingRecords()
	tables := types.Tables{
		Recipes: []types.Recipe{
			{RecipeID: "r2"}, // fails most rules
			good.Recipe,
		},
		Ingredients:  good.Ingredients,
		Steps:        good.Steps,
		Interactions: good.Interactions,
	}

	outcomes := ValidateTables(tables)
	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	if outcomes[0].RecipeID != "r2" || outcomes[1].RecipeID != "r1" {
		t.Errorf("outcome order = %q, %q; want r2, r1", outcomes[0].RecipeID, outcomes[1].RecipeID)
	}
	if outcomes[0].Valid() {
		t.Error("empty recipe r2 should fail")
	}
	if !outcomes[1].Valid() {
		t.Errorf("r1 should pass, got %v", outcomes[1].Errors)
	}
}

func TestValidateTablesIgnoresOrphanRows(t *testing.T) {
	good := passingRecords()
	tables := types.Tables{
		Recipes:     []types.Recipe{good.Recipe},
		Ingredients: good.Ingredients,
		Steps:       good.Steps,
		Interactions: append(good.Interactions,
			// References a recipe that is not in the batch; the rating
			// would be a violation if it were ever evaluated.
			types.Interaction{InteractionID: "n-orphan", RecipeID: "ghost", Rating: "99"},
		),
	}

	outcomes := ValidateTables(tables)
	if len(outcomes) != 1 {
		t.Fatalf("got %d outcomes, want 1", len(outcomes))
	}
	if !outcomes[0].Valid() {
		t.Errorf("r1 should pass, got %v", outcomes[0].Errors)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      any
		wantOK  bool
		wantVal float64
		wantRaw string
	}{
		{"500", true, 500, "500"},
		{"0.5", true, 0.5, "0.5"},
		{" 4 ", true, 4, " 4 "},
		{500.0, true, 500, "500"},
		{"a pinch", false, 0, "a pinch"},
		{"", false, 0, ""},
		{nil, false, 0, ""},
	}
	for _, tt := range tests {
		p := ParseNumber(tt.in)
		if p.OK != tt.wantOK || p.Value != tt.wantVal || p.Raw != tt.wantRaw {
			t.Errorf("ParseNumber(%v) = %+v, want OK=%v Value=%v Raw=%q", tt.in, p, tt.wantOK, tt.wantVal, tt.wantRaw)
		}
	}
}

func TestNumericShaped(t *testing.T) {
	shaped := []string{"5", "0", "0.5", "12.75", " 3 "}
	for _, s := range shaped {
		if !NumericShaped(s) {
			t.Errorf("NumericShaped(%q) = false, want true", s)
		}
	}
	unshaped := []string{"", "-1", "+2", "1/2", "1e3", ".5", "5.", "a pinch"}
	for _, s := range unshaped {
		if NumericShaped(s) {
			t.Errorf("NumericShaped(%q) = true, want false", s)
		}
	}
}
