// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Upstream documents are loosely typed: scalar leaves may arrive as
// strings, numbers, booleans, or be absent entirely, and field
// capitalization varies between document variants. The structs below
// fix the nesting while leaving every scalar leaf as `any`, so decoding
// a batch never fails on one mistyped field; the normalizer coerces
// leaves individually. encoding/json matches keys case-insensitively,
// which absorbs the Title/title and UserId/userID spellings; only
// recipe_id needs an explicit second field.

// RecipeDoc is one nested recipe document as exported by the upstream
// store. Interactions covers the embedded-subcollection input shape;
// the flat-collection shape supplies InteractionDocs separately.
type RecipeDoc struct {
	ID           any              `json:"id"`
	Title        any              `json:"title"`
	Description  any              `json:"description"`
	Ingredients  []IngredientDoc  `json:"ingredients"`
	Steps        []StepDoc        `json:"steps"`
	TimeRequired *TimeRequiredDoc `json:"timeRequired"`
	Statistics   *StatisticsDoc   `json:"statistics"`
	Difficulty   any              `json:"difficulty"`
	AuthorID     any              `json:"authorId"`
	AuthorName   any              `json:"authorName"`
	CreatedAt    any              `json:"createdAt"`
	Interactions []InteractionDoc `json:"interaction"`
}

// TimeRequiredDoc holds the nested time block, minutes expected.
type TimeRequiredDoc struct {
	PrepTime  any `json:"prepTime"`
	CookTime  any `json:"cookTime"`
	TotalTime any `json:"totalTime"`
}

// StatisticsDoc holds the aggregate counters block.
type StatisticsDoc struct {
	ViewCount   any `json:"viewCount"`
	LikeCount   any `json:"likeCount"`
	RatingCount any `json:"ratingCount"`
}

// IngredientDoc is one embedded ingredient entry. Source ids, when
// present, are ignored: ingredient rows always get fresh identifiers.
type IngredientDoc struct {
	ID       any `json:"id"`
	Name     any `json:"name"`
	Quantity any `json:"quantity"`
	Unit     any `json:"unit"`
	Optional any `json:"optional"`
}

// StepDoc is one embedded step entry.
type StepDoc struct {
	ID          any `json:"id"`
	StepNumber  any `json:"stepNumber"`
	Instruction any `json:"instruction"`
	Duration    any `json:"duration"`
}

// InteractionDoc is one interaction document, either embedded on a
// recipe or delivered as a flat collection keyed by recipe id. The two
// recipe-key spellings in the wild differ by more than case, so both
// are decoded and the normalizer picks whichever is populated.
type InteractionDoc struct {
	ID            any `json:"id"`
	RecipeID      any `json:"recipeId"`
	RecipeIDSnake any `json:"recipe_id"`
	UserID        any `json:"userId"`
	Username      any `json:"username"`
	Type          any `json:"type"`
	Rating        any `json:"rating"`
	Cooknote      any `json:"cooknote"`
	RecipeTitle   any `json:"recipeTitle"`
	RecipeName    any `json:"recipename"`
	CreatedAt     any `json:"createdAt"`
}
