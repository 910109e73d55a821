// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the recipe-etl CLI. Each pipeline
// stage is a subcommand: transform, validate, load, and analytics; run
// executes the full sequence with a run log.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the recipe-etl CLI.
var rootCmd = &cobra.Command{
	Use:   "recipe-etl",
	Short: "ETL and validation pipeline for recipe documents",
	Long: `recipe-etl flattens nested, loosely-typed recipe documents into four
normalized relational tables, validates business invariants over them,
loads the tables into a local SQLite warehouse, and derives descriptive
analytics.

Each stage is a subcommand: transform, validate, load, and analytics.
The run subcommand executes all stages in order and appends to a run
log. Stages communicate only through their output files, so any stage
can be re-run in isolation.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./recipe-etl.yaml or ~/.config/recipe-etl/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("recipe-etl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "recipe-etl"))
		}
	}

	viper.SetEnvPrefix("RECIPE_ETL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
