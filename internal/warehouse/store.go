// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package warehouse persists the normalized tables in a local SQLite
// database so analytics can query them relationally.
package warehouse

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

const dbFile = "warehouse.db"

// Store manages the warehouse SQLite database.
type Store struct {
	db           *sql.DB
	warehouseDir string
}

// NewStore opens or creates the warehouse database at
// warehouseDir/warehouse.db, creating the schema if it does not exist.
func NewStore(cfg types.WarehouseConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.WarehouseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating warehouse directory: %w", err)
	}

	dbPath := filepath.Join(cfg.WarehouseDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, warehouseDir: cfg.WarehouseDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for read-only analytics queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) createSchema() error {
	// Child tables carry recipe_id without a REFERENCES clause: the
	// relation is a weak reference and orphan rows are legal.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS recipe (
			recipe_id TEXT PRIMARY KEY,
			title TEXT,
			description TEXT,
			prep_time REAL,
			cook_time REAL,
			total_time REAL,
			difficulty TEXT,
			author_id TEXT,
			author_name TEXT,
			view_count INTEGER,
			like_count INTEGER,
			rating_count INTEGER,
			created_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS ingredient (
			ingredient_id TEXT PRIMARY KEY,
			recipe_id TEXT NOT NULL,
			name TEXT,
			quantity TEXT,
			unit TEXT,
			optional INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ingredient_recipe_id ON ingredient(recipe_id)`,
		`CREATE TABLE IF NOT EXISTS step (
			step_id TEXT PRIMARY KEY,
			recipe_id TEXT NOT NULL,
			step_number INTEGER,
			instruction TEXT,
			duration_seconds INTEGER,
			duration_raw TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_step_recipe_id ON step(recipe_id)`,
		`CREATE TABLE IF NOT EXISTS interaction (
			interaction_id TEXT PRIMARY KEY,
			recipe_id TEXT,
			user_id TEXT,
			username TEXT,
			type TEXT,
			rating TEXT,
			cooknote TEXT,
			recipe_title TEXT,
			created_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_interaction_recipe_id ON interaction(recipe_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// LoadSummary holds row counts from a warehouse load.
type LoadSummary struct {
	Recipes      int
	Ingredients  int
	Steps        int
	Interactions int
}

// Total returns the number of rows loaded.
func (s LoadSummary) Total() int {
	return s.Recipes + s.Ingredients + s.Steps + s.Interactions
}

// Load replaces the warehouse contents with the given tables in one
// transaction. Every pipeline run re-derives the tables from source
// documents, so the previous run's rows are dropped first.
func (s *Store) Load(ctx context.Context, t types.Tables) (LoadSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LoadSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"recipe", "ingredient", "step", "interaction"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return LoadSummary{}, fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	if err := insertRecipes(ctx, tx, t.Recipes); err != nil {
		return LoadSummary{}, err
	}
	if err := insertIngredients(ctx, tx, t.Ingredients); err != nil {
		return LoadSummary{}, err
	}
	if err := insertSteps(ctx, tx, t.Steps); err != nil {
		return LoadSummary{}, err
	}
	if err := insertInteractions(ctx, tx, t.Interactions); err != nil {
		return LoadSummary{}, err
	}

	if err := tx.Commit(); err != nil {
		return LoadSummary{}, fmt.Errorf("committing load: %w", err)
	}
	return LoadSummary{
		Recipes:      len(t.Recipes),
		Ingredients:  len(t.Ingredients),
		Steps:        len(t.Steps),
		Interactions: len(t.Interactions),
	}, nil
}

func insertRecipes(ctx context.Context, tx *sql.Tx, recipes []types.Recipe) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO recipe (recipe_id, title, description, prep_time, cook_time, total_time,
			difficulty, author_id, author_name, view_count, like_count, rating_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing recipe insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range recipes {
		_, err := stmt.ExecContext(ctx,
			r.RecipeID, r.Title, r.Description, r.PrepTime, r.CookTime, r.TotalTime,
			r.Difficulty, r.AuthorID, r.AuthorName, r.ViewCount, r.LikeCount, r.RatingCount, r.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting recipe %s: %w", r.RecipeID, err)
		}
	}
	return nil
}

func insertIngredients(ctx context.Context, tx *sql.Tx, ingredients []types.Ingredient) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO ingredient (ingredient_id, recipe_id, name, quantity, unit, optional)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing ingredient insert: %w", err)
	}
	defer stmt.Close()

	for _, ing := range ingredients {
		_, err := stmt.ExecContext(ctx,
			ing.IngredientID, ing.RecipeID, ing.Name, text(ing.Quantity), ing.Unit, ing.Optional,
		)
		if err != nil {
			return fmt.Errorf("inserting ingredient %s: %w", ing.IngredientID, err)
		}
	}
	return nil
}

func insertSteps(ctx context.Context, tx *sql.Tx, steps []types.Step) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO step (step_id, recipe_id, step_number, instruction, duration_seconds, duration_raw)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing step insert: %w", err)
	}
	defer stmt.Close()

	for _, st := range steps {
		_, err := stmt.ExecContext(ctx,
			st.StepID, st.RecipeID, st.StepNumber, st.Instruction, st.DurationSeconds, st.DurationRaw,
		)
		if err != nil {
			return fmt.Errorf("inserting step %s: %w", st.StepID, err)
		}
	}
	return nil
}

func insertInteractions(ctx context.Context, tx *sql.Tx, interactions []types.Interaction) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO interaction (interaction_id, recipe_id, user_id, username, type, rating,
			cooknote, recipe_title, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing interaction insert: %w", err)
	}
	defer stmt.Close()

	for _, inter := range interactions {
		_, err := stmt.ExecContext(ctx,
			inter.InteractionID, inter.RecipeID, inter.UserID, inter.Username, inter.Type,
			text(inter.Rating), inter.Cooknote, inter.RecipeTitle, inter.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting interaction %s: %w", inter.InteractionID, err)
		}
	}
	return nil
}

// text renders a verbatim loosely-typed column value the same way the
// CSV serialization does, keeping the two representations aligned.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
