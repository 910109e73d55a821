package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mealdesk/recipe-etl/pkg/types"
)

// Precedence for every setting: explicit flag, then config file /
// environment via viper, then the flag's default.

func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

// tablesDirSetting resolves the tables directory shared by the
// transform, validate, and load stages. One key configures all three;
// stages must not disagree on where the tables live.
func tablesDirSetting(cmd *cobra.Command) string {
	return stringSetting(cmd, "tables-dir", "tables_dir")
}

func transformConfig(cmd *cobra.Command) types.TransformConfig {
	return types.TransformConfig{
		SourceConfig: types.SourceConfig{
			RecipesPath:      stringSetting(cmd, "recipes", "transform.recipes_path"),
			InteractionsPath: stringSetting(cmd, "interactions", "transform.interactions_path"),
		},
		TablesDir: tablesDirSetting(cmd),
	}
}

func validationConfig(cmd *cobra.Command) types.ValidationConfig {
	return types.ValidationConfig{
		TablesDir:  tablesDirSetting(cmd),
		ReportPath: stringSetting(cmd, "report", "validation.report_path"),
	}
}

func warehouseConfig(cmd *cobra.Command) types.WarehouseConfig {
	return types.WarehouseConfig{
		WarehouseDir: stringSetting(cmd, "warehouse-dir", "warehouse.warehouse_dir"),
	}
}

func analyticsConfig(cmd *cobra.Command) types.AnalyticsConfig {
	return types.AnalyticsConfig{
		OutDir: stringSetting(cmd, "analytics-dir", "analytics.out_dir"),
		TopN:   intSetting(cmd, "top-n", "analytics.top_n"),
	}
}
