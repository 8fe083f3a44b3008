// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// HistoryConfig holds settings for the solve history store.
type HistoryConfig struct {
	// Dir is the directory holding history.db (default ".computor").
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// Enabled controls whether solves are recorded (default true).
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// MaxResults is the default number of entries returned by List (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// OutputConfig holds presentation settings for the CLI.
type OutputConfig struct {
	// JSON prints results as JSON instead of the text report.
	JSON bool `json:"json" yaml:"json" mapstructure:"json"`
}

// BatchConfig holds settings for batch solving.
type BatchConfig struct {
	// Output is the path of the YAML results file. Empty means
	// "<input>-results.yaml" next to the input file.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// FailFast stops the batch at the first equation that fails to parse.
	FailFast bool `json:"fail_fast" yaml:"fail_fast" mapstructure:"fail_fast"`
}

// Config groups all computor settings loaded from computor.yaml.
type Config struct {
	History HistoryConfig `json:"history" yaml:"history" mapstructure:"history"`
	Output  OutputConfig  `json:"output" yaml:"output" mapstructure:"output"`
	Batch   BatchConfig   `json:"batch" yaml:"batch" mapstructure:"batch"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		History: HistoryConfig{
			Dir:        ".computor",
			Enabled:    true,
			MaxResults: 20,
		},
	}
}
