// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analytics computes descriptive statistics over the warehouse
// tables: ingredient frequencies, time averages, rating rankings, and
// the prep-time/rating correlation.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// LabelCount is one entry of a ranked frequency list.
type LabelCount struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// LabelValue is one entry of a ranked mean list.
type LabelValue struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// RatedRecipe is a recipe with its mean interaction rating.
type RatedRecipe struct {
	RecipeID  string  `json:"recipe_id" yaml:"recipe_id"`
	Title     string  `json:"title" yaml:"title"`
	AvgRating float64 `json:"avg_rating" yaml:"avg_rating"`
}

// RecipeTotalTime is a recipe with its total time in minutes.
type RecipeTotalTime struct {
	RecipeID  string  `json:"recipe_id" yaml:"recipe_id"`
	Title     string  `json:"title" yaml:"title"`
	TotalTime float64 `json:"total_time" yaml:"total_time"`
}

// StepsCountStats describes the distribution of step counts per recipe.
// Std is the sample standard deviation, nil with fewer than two recipes.
type StepsCountStats struct {
	Recipes int      `json:"recipes" yaml:"recipes"`
	Mean    float64  `json:"mean" yaml:"mean"`
	Std     *float64 `json:"std" yaml:"std"`
	Min     int      `json:"min" yaml:"min"`
	Max     int      `json:"max" yaml:"max"`
}

// Insights is the full analytics output for one warehouse snapshot.
type Insights struct {
	MostCommonIngredients  []LabelCount      `json:"most_common_ingredients"`
	IngredientsHighRating  []LabelValue      `json:"ingredients_high_rating"`
	AvgPrepTime            *float64          `json:"avg_prep_time"`
	AvgCookTime            *float64          `json:"avg_cook_time"`
	DifficultyDistribution []LabelCount      `json:"difficulty_distribution"`
	MostInteracted         []LabelCount      `json:"most_interacted"`
	PrepVsRatingCorr       *float64          `json:"prep_vs_rating_corr"`
	TopRatedRecipes        []RatedRecipe     `json:"top_rated_recipes"`
	StepsCountDistribution StepsCountStats   `json:"steps_count_distribution"`
	RecipesMostComments    []LabelCount      `json:"recipes_most_comments"`
	LongestTotalTime       []RecipeTotalTime `json:"longest_total_time"`
}

// Compute derives all insights from the warehouse. Ranked lists are
// bounded by topN. Ratings stored as verbatim text are parsed here;
// non-numeric ratings simply drop out of the averages.
func Compute(ctx context.Context, db *sql.DB, topN int) (Insights, error) {
	if topN <= 0 {
		topN = 20
	}
	var insights Insights
	var err error

	insights.MostCommonIngredients, err = countQuery(ctx, db,
		`SELECT name, COUNT(*) AS c FROM ingredient WHERE name <> ''
		 GROUP BY name ORDER BY c DESC, name LIMIT ?`, topN)
	if err != nil {
		return insights, fmt.Errorf("counting ingredients: %w", err)
	}

	insights.IngredientsHighRating, err = ingredientRatings(ctx, db, topN)
	if err != nil {
		return insights, fmt.Errorf("ranking ingredient ratings: %w", err)
	}

	insights.AvgPrepTime, err = avgQuery(ctx, db, `SELECT AVG(prep_time) FROM recipe`)
	if err != nil {
		return insights, fmt.Errorf("averaging prep_time: %w", err)
	}
	insights.AvgCookTime, err = avgQuery(ctx, db, `SELECT AVG(cook_time) FROM recipe`)
	if err != nil {
		return insights, fmt.Errorf("averaging cook_time: %w", err)
	}

	insights.DifficultyDistribution, err = countQuery(ctx, db,
		`SELECT difficulty, COUNT(*) AS c FROM recipe
		 GROUP BY difficulty ORDER BY c DESC, difficulty LIMIT ?`, topN)
	if err != nil {
		return insights, fmt.Errorf("counting difficulties: %w", err)
	}

	insights.MostInteracted, err = countQuery(ctx, db,
		`SELECT recipe_id, COUNT(*) AS c FROM interaction
		 GROUP BY recipe_id ORDER BY c DESC, recipe_id LIMIT ?`, topN)
	if err != nil {
		return insights, fmt.Errorf("counting interactions: %w", err)
	}

	insights.RecipesMostComments, err = countQuery(ctx, db,
		`SELECT recipe_id, COUNT(*) AS c FROM interaction
		 WHERE TRIM(cooknote) <> '' GROUP BY recipe_id
		 ORDER BY c DESC, recipe_id LIMIT ?`, topN)
	if err != nil {
		return insights, fmt.Errorf("counting cooknotes: %w", err)
	}

	if err := ratingInsights(ctx, db, topN, &insights); err != nil {
		return insights, err
	}

	insights.StepsCountDistribution, err = stepsStats(ctx, db)
	if err != nil {
		return insights, fmt.Errorf("describing step counts: %w", err)
	}

	insights.LongestTotalTime, err = longestTotalTime(ctx, db, topN)
	if err != nil {
		return insights, fmt.Errorf("ranking total_time: %w", err)
	}

	return insights, nil
}

// ratingInsights parses verbatim rating text per interaction, averages
// it per recipe, and fills the rating-derived insight fields.
func ratingInsights(ctx context.Context, db *sql.DB, topN int, insights *Insights) error {
	rows, err := db.QueryContext(ctx, `SELECT recipe_id, rating FROM interaction`)
	if err != nil {
		return fmt.Errorf("querying ratings: %w", err)
	}
	defer rows.Close()

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for rows.Next() {
		var recipeID, rating string
		if err := rows.Scan(&recipeID, &rating); err != nil {
			return fmt.Errorf("scanning rating row: %w", err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rating), 64)
		if err != nil {
			continue
		}
		sums[recipeID] += v
		counts[recipeID]++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	type recipeRow struct {
		id    string
		title string
		prep  *float64
	}
	rrows, err := db.QueryContext(ctx, `SELECT recipe_id, title, prep_time FROM recipe`)
	if err != nil {
		return fmt.Errorf("querying recipes: %w", err)
	}
	defer rrows.Close()

	var recipes []recipeRow
	for rrows.Next() {
		var r recipeRow
		var prep sql.NullFloat64
		if err := rrows.Scan(&r.id, &r.title, &prep); err != nil {
			return fmt.Errorf("scanning recipe row: %w", err)
		}
		if prep.Valid {
			r.prep = &prep.Float64
		}
		recipes = append(recipes, r)
	}
	if err := rrows.Err(); err != nil {
		return err
	}

	var rated []RatedRecipe
	var xs, ys []float64
	for _, r := range recipes {
		n := counts[r.id]
		if n == 0 {
			continue
		}
		avg := sums[r.id] / float64(n)
		rated = append(rated, RatedRecipe{RecipeID: r.id, Title: r.title, AvgRating: avg})
		if r.prep != nil {
			xs = append(xs, *r.prep)
			ys = append(ys, avg)
		}
	}

	sort.Slice(rated, func(i, j int) bool {
		if rated[i].AvgRating != rated[j].AvgRating {
			return rated[i].AvgRating > rated[j].AvgRating
		}
		return rated[i].RecipeID < rated[j].RecipeID
	})
	if len(rated) > topN {
		rated = rated[:topN]
	}
	insights.TopRatedRecipes = rated
	insights.PrepVsRatingCorr = pearson(xs, ys)
	return nil
}

// ingredientRatings ranks ingredient names by the mean rating of the
// interactions on recipes they appear in. Ingredients whose recipes
// carry no numeric ratings drop out of the list entirely.
func ingredientRatings(ctx context.Context, db *sql.DB, topN int) ([]LabelValue, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT i.name, x.rating FROM ingredient i
		 JOIN interaction x ON x.recipe_id = i.recipe_id
		 WHERE i.name <> ''`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for rows.Next() {
		var name, rating string
		if err := rows.Scan(&name, &rating); err != nil {
			return nil, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(rating), 64)
		if err != nil {
			continue
		}
		sums[name] += v
		counts[name]++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]LabelValue, 0, len(counts))
	for name, n := range counts {
		out = append(out, LabelValue{Label: name, Value: sums[name] / float64(n)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Label < out[j].Label
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out, nil
}

func stepsStats(ctx context.Context, db *sql.DB) (StepsCountStats, error) {
	rows, err := db.QueryContext(ctx, `SELECT COUNT(*) AS c FROM step GROUP BY recipe_id`)
	if err != nil {
		return StepsCountStats{}, err
	}
	defer rows.Close()

	var counts []int
	for rows.Next() {
		var c int
		if err := rows.Scan(&c); err != nil {
			return StepsCountStats{}, err
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return StepsCountStats{}, err
	}

	stats := StepsCountStats{Recipes: len(counts)}
	if len(counts) == 0 {
		return stats, nil
	}

	sum := 0
	stats.Min, stats.Max = counts[0], counts[0]
	for _, c := range counts {
		sum += c
		if c < stats.Min {
			stats.Min = c
		}
		if c > stats.Max {
			stats.Max = c
		}
	}
	stats.Mean = float64(sum) / float64(len(counts))

	if len(counts) > 1 {
		var ss float64
		for _, c := range counts {
			d := float64(c) - stats.Mean
			ss += d * d
		}
		std := math.Sqrt(ss / float64(len(counts)-1))
		stats.Std = &std
	}
	return stats, nil
}

func longestTotalTime(ctx context.Context, db *sql.DB, topN int) ([]RecipeTotalTime, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT recipe_id, title, total_time FROM recipe WHERE total_time IS NOT NULL
		 ORDER BY total_time DESC, recipe_id LIMIT ?`, topN)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecipeTotalTime
	for rows.Next() {
		var r RecipeTotalTime
		if err := rows.Scan(&r.RecipeID, &r.Title, &r.TotalTime); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func countQuery(ctx context.Context, db *sql.DB, query string, topN int) ([]LabelCount, error) {
	rows, err := db.QueryContext(ctx, query, topN)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LabelCount
	for rows.Next() {
		var lc LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, err
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

func avgQuery(ctx context.Context, db *sql.DB, query string) (*float64, error) {
	var avg sql.NullFloat64
	if err := db.QueryRowContext(ctx, query).Scan(&avg); err != nil {
		return nil, err
	}
	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

// pearson computes the correlation coefficient of two equal-length
// series, or nil when fewer than two pairs exist or a series is
// constant.
func pearson(xs, ys []float64) *float64 {
	n := float64(len(xs))
	if len(xs) < 2 || len(xs) != len(ys) {
		return nil
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return nil
	}
	r := cov / math.Sqrt(varX*varY)
	return &r
}
