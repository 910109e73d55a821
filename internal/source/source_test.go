// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFileSourceRecipes(t *testing.T) {
	path := writeFixture(t, "recipes.json", `[
		{"id": "r1", "title": "Chicken Curry", "difficulty": "Medium"},
		{"id": "r2", "Title": "Caps In Keys"}
	]`)

	src := NewFileSource(types.SourceConfig{RecipesPath: path})
	docs, err := src.Recipes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if docs[0].ID != "r1" || docs[0].Title != "Chicken Curry" {
		t.Errorf("docs[0] = %+v", docs[0])
	}
	// Key matching is case-insensitive, so "Title" still lands.
	if docs[1].Title != "Caps In Keys" {
		t.Errorf("docs[1].Title = %v", docs[1].Title)
	}
}

func TestFileSourceToleratesMistypedLeaves(t *testing.T) {
	// prepTime as text and difficulty as a number must not abort the
	// batch; the leaves stay loosely typed until normalization.
	path := writeFixture(t, "recipes.json", `[
		{"id": "r1", "title": "Odd Types",
		 "timeRequired": {"prepTime": "fifteen", "cookTime": 45},
		 "difficulty": 3}
	]`)

	src := NewFileSource(types.SourceConfig{RecipesPath: path})
	docs, err := src.Recipes(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d docs, want 1", len(docs))
	}
	if docs[0].TimeRequired.PrepTime != "fifteen" {
		t.Errorf("PrepTime = %v", docs[0].TimeRequired.PrepTime)
	}
	if docs[0].TimeRequired.CookTime != 45.0 {
		t.Errorf("CookTime = %v", docs[0].TimeRequired.CookTime)
	}
	if docs[0].Difficulty != 3.0 {
		t.Errorf("Difficulty = %v", docs[0].Difficulty)
	}
}

func TestFileSourceMissingFileIsFatal(t *testing.T) {
	src := NewFileSource(types.SourceConfig{
		RecipesPath: filepath.Join(t.TempDir(), "absent.json"),
	})
	if _, err := src.Recipes(context.Background()); err == nil {
		t.Fatal("expected error for missing recipes file")
	}
}

func TestFileSourceMalformedJSONIsFatal(t *testing.T) {
	path := writeFixture(t, "recipes.json", `{"not": "a list"`)
	src := NewFileSource(types.SourceConfig{RecipesPath: path})
	if _, err := src.Recipes(context.Background()); err == nil {
		t.Fatal("expected error for malformed batch file")
	}
}

func TestFileSourceInteractions(t *testing.T) {
	path := writeFixture(t, "interactions.json", `[
		{"id": "n1", "recipeId": "r1", "rating": 5},
		{"id": "n2", "recipe_id": "r2", "recipename": "Quick Salad"}
	]`)

	src := NewFileSource(types.SourceConfig{InteractionsPath: path})
	docs, err := src.Interactions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if docs[0].RecipeID != "r1" || docs[0].Rating != 5.0 {
		t.Errorf("docs[0] = %+v", docs[0])
	}
	// Both historical spellings of the recipe reference decode.
	if docs[1].RecipeIDSnake != "r2" || docs[1].RecipeName != "Quick Salad" {
		t.Errorf("docs[1] = %+v", docs[1])
	}
}

func TestFileSourceEmptyInteractionsPath(t *testing.T) {
	src := NewFileSource(types.SourceConfig{})
	docs, err := src.Interactions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if docs != nil {
		t.Errorf("got %v, want nil batch", docs)
	}
}
