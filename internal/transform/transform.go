// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform flattens nested recipe documents into the four
// normalized relational tables and derives canonical durations for
// steps. It is a pure transform: no file or network access, and a
// malformed field degrades to a null value rather than failing the
// document that carries it.
package transform

import (
	"strings"

	"github.com/google/uuid"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

// Summary counts the records produced by one normalization pass.
type Summary struct {
	Recipes      int
	Ingredients  int
	Steps        int
	Interactions int
}

// NormalizeBatch flattens a batch of recipe documents plus an optional
// flat collection of interaction documents. Flat interactions are
// joined to their recipe by id; interactions embedded on a recipe
// document are accepted as well, and both shapes may appear in one
// batch. Flat interactions whose recipe id matches no recipe in the
// batch are still kept as orphan rows, since the relation is a weak
// reference. Output order follows input iteration order.
func NormalizeBatch(docs []types.RecipeDoc, flat []types.InteractionDoc) (types.Tables, Summary) {
	byRecipe := make(map[string][]types.InteractionDoc)
	var order []string
	for _, inter := range flat {
		key := interactionRecipeKey(inter)
		if _, seen := byRecipe[key]; !seen {
			order = append(order, key)
		}
		byRecipe[key] = append(byRecipe[key], inter)
	}

	var tables types.Tables
	claimed := make(map[string]bool)
	for _, doc := range docs {
		recipeID := coerceString(doc.ID)
		if recipeID == "" {
			recipeID = uuid.NewString()
		}
		joined := byRecipe[recipeID]
		claimed[recipeID] = true

		recipe, ingredients, steps, interactions := NormalizeRecipe(recipeID, doc, joined)
		tables.Recipes = append(tables.Recipes, recipe)
		tables.Ingredients = append(tables.Ingredients, ingredients...)
		tables.Steps = append(tables.Steps, steps...)
		tables.Interactions = append(tables.Interactions, interactions...)
	}

	// Orphan flat interactions, in their own input order.
	for _, key := range order {
		if claimed[key] {
			continue
		}
		for _, inter := range byRecipe[key] {
			tables.Interactions = append(tables.Interactions, NormalizeInteraction(inter, key))
		}
	}

	summary := Summary{
		Recipes:      len(tables.Recipes),
		Ingredients:  len(tables.Ingredients),
		Steps:        len(tables.Steps),
		Interactions: len(tables.Interactions),
	}
	return tables, summary
}

// NormalizeRecipe flattens one recipe document into its Recipe row and
// the owned ingredient, step, and interaction rows. joined holds the
// externally-supplied interactions for this recipe; embedded ones are
// taken from the document itself and come first.
func NormalizeRecipe(recipeID string, doc types.RecipeDoc, joined []types.InteractionDoc) (types.Recipe, []types.Ingredient, []types.Step, []types.Interaction) {
	recipe := types.Recipe{
		RecipeID:    recipeID,
		Title:       coerceString(doc.Title),
		Description: coerceString(doc.Description),
		Difficulty:  coerceString(doc.Difficulty),
		AuthorID:    coerceString(doc.AuthorID),
		AuthorName:  coerceString(doc.AuthorName),
		CreatedAt:   coerceString(doc.CreatedAt),
	}
	if tr := doc.TimeRequired; tr != nil {
		recipe.PrepTime = coerceFloat(tr.PrepTime)
		recipe.CookTime = coerceFloat(tr.CookTime)
		recipe.TotalTime = coerceFloat(tr.TotalTime)
	}
	if st := doc.Statistics; st != nil {
		recipe.ViewCount = coerceInt(st.ViewCount)
		recipe.LikeCount = coerceInt(st.LikeCount)
		recipe.RatingCount = coerceInt(st.RatingCount)
	}

	var ingredients []types.Ingredient
	for _, ing := range doc.Ingredients {
		// Source ingredient ids are never reused: differently-shaped
		// source records can collide, so every row gets a fresh id.
		ingredients = append(ingredients, types.Ingredient{
			IngredientID: uuid.NewString(),
			RecipeID:     recipeID,
			Name:         coerceString(ing.Name),
			Quantity:     ing.Quantity,
			Unit:         coerceString(ing.Unit),
			Optional:     coerceBool(ing.Optional),
		})
	}

	var steps []types.Step
	for _, st := range doc.Steps {
		stepID := coerceString(st.ID)
		if stepID == "" {
			stepID = uuid.NewString()
		}
		raw := coerceString(st.Duration)
		steps = append(steps, types.Step{
			StepID:          stepID,
			RecipeID:        recipeID,
			StepNumber:      coerceInt(st.StepNumber),
			Instruction:     coerceString(st.Instruction),
			DurationSeconds: ParseDurationSeconds(raw),
			DurationRaw:     raw,
		})
	}

	var interactions []types.Interaction
	for _, inter := range doc.Interactions {
		interactions = append(interactions, NormalizeInteraction(inter, recipeID))
	}
	for _, inter := range joined {
		interactions = append(interactions, NormalizeInteraction(inter, recipeID))
	}

	return recipe, ingredients, steps, interactions
}

// NormalizeInteraction flattens one interaction document. recipeID is
// the owning recipe when known; the document's own key wins only when
// recipeID is empty. Rating is copied verbatim, no coercion here.
func NormalizeInteraction(doc types.InteractionDoc, recipeID string) types.Interaction {
	id := coerceString(doc.ID)
	if id == "" {
		id = uuid.NewString()
	}
	if recipeID == "" {
		recipeID = interactionRecipeKey(doc)
	}
	title := coerceString(doc.RecipeTitle)
	if title == "" {
		title = coerceString(doc.RecipeName)
	}
	return types.Interaction{
		InteractionID: id,
		RecipeID:      recipeID,
		UserID:        coerceString(doc.UserID),
		Username:      coerceString(doc.Username),
		Type:          coerceString(doc.Type),
		Rating:        doc.Rating,
		Cooknote:      coerceString(doc.Cooknote),
		RecipeTitle:   title,
		CreatedAt:     coerceString(doc.CreatedAt),
	}
}

// interactionRecipeKey picks the populated recipe-key spelling.
func interactionRecipeKey(doc types.InteractionDoc) string {
	if key := strings.TrimSpace(coerceString(doc.RecipeID)); key != "" {
		return key
	}
	return strings.TrimSpace(coerceString(doc.RecipeIDSnake))
}
