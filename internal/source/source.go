// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source is the boundary to the upstream document store. The
// pipeline core only ever sees an already-materialized batch of
// documents; where that batch comes from (a store export on disk, a
// remote collection dump) is this package's concern. Read failures here
// are fatal to the run.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

// Source yields the document batches for one pipeline run.
type Source interface {
	// Recipes returns the full recipe document batch.
	Recipes(ctx context.Context) ([]types.RecipeDoc, error)

	// Interactions returns the flat interaction document batch, which
	// may be empty when interactions are embedded in the recipes.
	Interactions(ctx context.Context) ([]types.InteractionDoc, error)
}

// FileSource reads document batches from the JSON export files the
// upstream store produces.
type FileSource struct {
	cfg types.SourceConfig
}

// NewFileSource returns a FileSource over the configured export files.
func NewFileSource(cfg types.SourceConfig) *FileSource {
	return &FileSource{cfg: cfg}
}

// Recipes loads and decodes the recipe batch.
func (s *FileSource) Recipes(ctx context.Context) ([]types.RecipeDoc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var docs []types.RecipeDoc
	if err := readJSON(s.cfg.RecipesPath, &docs); err != nil {
		return nil, fmt.Errorf("loading recipe batch: %w", err)
	}
	return docs, nil
}

// Interactions loads and decodes the flat interaction batch. An
// unconfigured path means the batch is embedded and yields no documents.
func (s *FileSource) Interactions(ctx context.Context) ([]types.InteractionDoc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.cfg.InteractionsPath == "" {
		return nil, nil
	}
	var docs []types.InteractionDoc
	if err := readJSON(s.cfg.InteractionsPath, &docs); err != nil {
		return nil, fmt.Errorf("loading interaction batch: %w", err)
	}
	return docs, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
