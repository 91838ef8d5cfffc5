package config

// ImportConfig holds bulk-import configuration
type ImportConfig struct {
	// Rows per second the importer feeds to the database; keeps bulk
	// loads from starving interactive use of the same database file
	RateLimit float64 `mapstructure:"rate_limit" validate:"min=0"`

	// Burst size for the importer's rate limiter
	Burst int `mapstructure:"burst" validate:"min=0"`

	// Abort the run on the first row that fails validation instead of
	// accumulating errors and continuing
	StopOnError bool `mapstructure:"stop_on_error"`
}

// ExportConfig holds station-package export configuration
type ExportConfig struct {
	// Directory export files are written to
	OutputDir string `mapstructure:"output_dir"`

	// Export file format: yaml or json
	Format string `mapstructure:"format" validate:"required,oneof=yaml json"`
}
