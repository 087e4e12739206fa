// Package config loads the optional solidcheck configuration file.
package config

// Config represents a solidcheck configuration file. Pointer fields
// distinguish "not set" from an explicit zero.
type Config struct {
	Tool           string            `json:"tool,omitempty"`
	Script         string            `json:"script,omitempty"`
	InputDir       string            `json:"input_dir,omitempty"`
	BaselineDir    string            `json:"baseline_dir,omitempty"`
	Pattern        string            `json:"pattern,omitempty"`
	Recursive      bool              `json:"recursive,omitempty"`
	TimeoutSeconds *float64          `json:"timeout_seconds,omitempty"`
	Comparison     *ComparisonConfig `json:"comparison,omitempty"`
}

// ComparisonConfig configures the volume tolerance.
type ComparisonConfig struct {
	MatchPercent      *float64 `json:"match_percent,omitempty"`
	AbsoluteTolerance *float64 `json:"absolute_tolerance_mm3,omitempty"`
}
