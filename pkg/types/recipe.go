// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the document shapes accepted from the upstream
// store and the normalized relational records produced from them.
package types

// Recipe is one normalized recipe row. Time fields and statistics
// counters are coerced to numerics at normalization; a value that does
// not coerce is nil. CreatedAt is an opaque pass-through.
type Recipe struct {
	RecipeID    string   `json:"recipe_id" yaml:"recipe_id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	PrepTime    *float64 `json:"prep_time" yaml:"prep_time"`
	CookTime    *float64 `json:"cook_time" yaml:"cook_time"`
	TotalTime   *float64 `json:"total_time" yaml:"total_time"`
	Difficulty  string   `json:"difficulty" yaml:"difficulty"`
	AuthorID    string   `json:"author_id" yaml:"author_id"`
	AuthorName  string   `json:"author_name" yaml:"author_name"`
	ViewCount   *int64   `json:"view_count" yaml:"view_count"`
	LikeCount   *int64   `json:"like_count" yaml:"like_count"`
	RatingCount *int64   `json:"rating_count" yaml:"rating_count"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
}

// Ingredient is one normalized ingredient row. Quantity is carried
// verbatim in whatever shape the source supplied; validation, not
// normalization, judges it.
type Ingredient struct {
	IngredientID string `json:"ingredient_id" yaml:"ingredient_id"`
	RecipeID     string `json:"recipe_id" yaml:"recipe_id"`
	Name         string `json:"name" yaml:"name"`
	Quantity     any    `json:"quantity" yaml:"quantity"`
	Unit         string `json:"unit" yaml:"unit"`
	Optional     bool   `json:"optional" yaml:"optional"`
}

// Step is one normalized step row. DurationRaw preserves the source
// text; DurationSeconds is derived from it and is nil when the text
// does not parse.
type Step struct {
	StepID          string `json:"step_id" yaml:"step_id"`
	RecipeID        string `json:"recipe_id" yaml:"recipe_id"`
	StepNumber      *int64 `json:"step_number" yaml:"step_number"`
	Instruction     string `json:"instruction" yaml:"instruction"`
	DurationSeconds *int64 `json:"duration_seconds" yaml:"duration_seconds"`
	DurationRaw     string `json:"duration_raw" yaml:"duration_raw"`
}

// Interaction is one normalized interaction row. RecipeID is a weak
// reference: it is not guaranteed to resolve to a known recipe. Rating
// is carried verbatim, uncoerced.
type Interaction struct {
	InteractionID string `json:"interaction_id" yaml:"interaction_id"`
	RecipeID      string `json:"recipe_id" yaml:"recipe_id"`
	UserID        string `json:"user_id" yaml:"user_id"`
	Username      string `json:"username" yaml:"username"`
	Type          string `json:"type" yaml:"type"`
	Rating        any    `json:"rating" yaml:"rating"`
	Cooknote      string `json:"cooknote" yaml:"cooknote"`
	RecipeTitle   string `json:"recipe_title" yaml:"recipe_title"`
	CreatedAt     string `json:"created_at" yaml:"created_at"`
}

// Tables groups the four normalized collections produced by one
// normalization pass. Records are immutable once built; validation and
// analytics consume them read-only.
type Tables struct {
	Recipes      []Recipe
	Ingredients  []Ingredient
	Steps        []Step
	Interactions []Interaction
}
