// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate evaluates business invariants over the normalized
// tables, one recipe at a time. Validation is read-only and advisory:
// every failure becomes a violation string in the report, never an
// aborted run, and one recipe's failures cannot affect another's
// evaluation.
package validate

import (
	"fmt"
	"strings"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

// totalTimeEpsilon absorbs floating-point error when comparing
// total_time against prep_time + cook_time.
const totalTimeEpsilon = 1e-6

var validDifficulties = map[string]bool{
	"Easy":   true,
	"Medium": true,
	"Hard":   true,
}

// RecipeRecords is one recipe's full record set: the recipe row plus
// every ingredient, step, and interaction row referencing it.
type RecipeRecords struct {
	Recipe       types.Recipe
	Ingredients  []types.Ingredient
	Steps        []types.Step
	Interactions []types.Interaction
}

// Outcome is the validation result for one recipe: a pass when Errors
// is empty, otherwise the ordered violation list.
type Outcome struct {
	RecipeID string
	Errors   []string
}

// Valid reports whether the recipe passed every rule.
func (o Outcome) Valid() bool {
	return len(o.Errors) == 0
}

// rule evaluates one invariant over a recipe's record set and returns
// zero or more violation messages.
type rule func(RecipeRecords) []string

// rules is the fixed, ordered invariant set. Every rule runs even after
// earlier ones fail; the engine accumulates, it never short-circuits.
var rules = []rule{
	ruleTitle,
	rulePrepTime,
	ruleCookTime,
	ruleTotalTime,
	ruleDifficulty,
	ruleIngredients,
	ruleSteps,
	ruleInteractionRatings,
}

// ValidateRecipe runs the full rule set over one recipe's record set.
func ValidateRecipe(rr RecipeRecords) Outcome {
	out := Outcome{RecipeID: rr.Recipe.RecipeID}
	for _, r := range rules {
		out.Errors = append(out.Errors, r(rr)...)
	}
	return out
}

// ValidateTables groups the child tables by recipe id and validates
// every recipe, preserving recipe input order. Child rows referencing
// an unknown recipe id are never flagged; the relation is a weak
// reference and orphans are tolerated.
func ValidateTables(t types.Tables) []Outcome {
	ingredients := make(map[string][]types.Ingredient)
	for _, ing := range t.Ingredients {
		ingredients[ing.RecipeID] = append(ingredients[ing.RecipeID], ing)
	}
	steps := make(map[string][]types.Step)
	for _, st := range t.Steps {
		steps[st.RecipeID] = append(steps[st.RecipeID], st)
	}
	interactions := make(map[string][]types.Interaction)
	for _, inter := range t.Interactions {
		interactions[inter.RecipeID] = append(interactions[inter.RecipeID], inter)
	}

	outcomes := make([]Outcome, 0, len(t.Recipes))
	for _, rec := range t.Recipes {
		outcomes = append(outcomes, ValidateRecipe(RecipeRecords{
			Recipe:       rec,
			Ingredients:  ingredients[rec.RecipeID],
			Steps:        steps[rec.RecipeID],
			Interactions: interactions[rec.RecipeID],
		}))
	}
	return outcomes
}

func ruleTitle(rr RecipeRecords) []string {
	if rr.Recipe.Title == "" {
		return []string{"Missing Title"}
	}
	return nil
}

func rulePrepTime(rr RecipeRecords) []string {
	prep := rr.Recipe.PrepTime
	if prep == nil || *prep <= 0 {
		return []string{"PrepTime must be > 0"}
	}
	return nil
}

func ruleCookTime(rr RecipeRecords) []string {
	cook := rr.Recipe.CookTime
	if cook == nil || *cook < 0 {
		return []string{"CookTime must be >= 0"}
	}
	return nil
}

func ruleTotalTime(rr RecipeRecords) []string {
	prep, cook, total := rr.Recipe.PrepTime, rr.Recipe.CookTime, rr.Recipe.TotalTime
	if total == nil {
		return []string{"TotalTime missing"}
	}
	if prep != nil && cook != nil && *total < *prep+*cook-totalTimeEpsilon {
		return []string{"TotalTime less than PrepTime + CookTime"}
	}
	return nil
}

func ruleDifficulty(rr RecipeRecords) []string {
	if !validDifficulties[strings.TrimSpace(rr.Recipe.Difficulty)] {
		return []string{fmt.Sprintf("Invalid difficulty: %s", rr.Recipe.Difficulty)}
	}
	return nil
}

func ruleIngredients(rr RecipeRecords) []string {
	if len(rr.Ingredients) == 0 {
		return []string{"No ingredients"}
	}
	var errs []string
	for _, ing := range rr.Ingredients {
		p := ParseNumber(ing.Quantity)
		if !NumericShaped(p.Raw) {
			// A free-text quantity such as "a pinch" is an error, not
			// something to skip silently.
			errs = append(errs, fmt.Sprintf("Ingredient %s has invalid quantity %q", ing.Name, p.Raw))
			continue
		}
		if p.OK && p.Value <= 0 {
			errs = append(errs, fmt.Sprintf("Ingredient %s has non-positive quantity", ing.Name))
		}
	}
	return errs
}

func ruleSteps(rr RecipeRecords) []string {
	if len(rr.Steps) == 0 {
		return []string{"No steps"}
	}
	return nil
}

func ruleInteractionRatings(rr RecipeRecords) []string {
	var errs []string
	for _, inter := range rr.Interactions {
		p := ParseNumber(inter.Rating)
		if p.Empty() {
			continue
		}
		if !p.OK {
			errs = append(errs, fmt.Sprintf("Interaction rating %s not numeric", p.Raw))
			continue
		}
		if p.Value < 0 || p.Value > 5 {
			errs = append(errs, fmt.Sprintf("Interaction rating %s out of range (0-5)", p.Raw))
		}
	}
	return errs
}
