package types

// SourceConfig holds settings for the document source boundary.
type SourceConfig struct {
	// RecipesPath is the JSON batch of recipe documents exported from
	// the upstream store (e.g. "data/recipes.json").
	RecipesPath string `json:"recipes_path" yaml:"recipes_path"`

	// InteractionsPath is the optional flat JSON batch of interaction
	// documents. Empty means interactions are embedded in the recipes.
	InteractionsPath string `json:"interactions_path,omitempty" yaml:"interactions_path,omitempty"`
}

// TransformConfig holds settings for the normalization stage.
type TransformConfig struct {
	SourceConfig `yaml:",inline"`

	// TablesDir is the directory receiving the four normalized CSV
	// tables (recipe.csv, ingredients.csv, steps.csv, interactions.csv).
	TablesDir string `json:"tables_dir" yaml:"tables_dir"`
}

// ValidationConfig holds settings for the validation stage.
type ValidationConfig struct {
	// TablesDir is the directory containing the four normalized CSV tables.
	TablesDir string `json:"tables_dir" yaml:"tables_dir"`

	// ReportPath is where the validation report JSON is written.
	ReportPath string `json:"report_path" yaml:"report_path"`
}

// WarehouseConfig holds settings for the SQLite warehouse.
type WarehouseConfig struct {
	// WarehouseDir is the directory containing the warehouse database file.
	WarehouseDir string `json:"warehouse_dir" yaml:"warehouse_dir"`
}

// AnalyticsConfig holds settings for the analytics stage.
type AnalyticsConfig struct {
	// OutDir is the directory receiving analytics output files.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// TopN bounds ranked lists such as most common ingredients (default 20).
	TopN int `json:"top_n" yaml:"top_n"`
}

// RunnerConfig holds settings for the sequential pipeline runner.
type RunnerConfig struct {
	// LogPath is the run log file appended to by each pipeline run.
	LogPath string `json:"log_path" yaml:"log_path"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	// TablesDir is the tables directory shared by the transform,
	// validate, and load stages. It is a top-level setting so the
	// stages cannot be configured to disagree on where the tables live.
	TablesDir string `json:"tables_dir" yaml:"tables_dir"`

	Transform  TransformConfig  `json:"transform" yaml:"transform"`
	Validation ValidationConfig `json:"validation" yaml:"validation"`
	Warehouse  WarehouseConfig  `json:"warehouse" yaml:"warehouse"`
	Analytics  AnalyticsConfig  `json:"analytics" yaml:"analytics"`
	Runner     RunnerConfig     `json:"runner" yaml:"runner"`
}
