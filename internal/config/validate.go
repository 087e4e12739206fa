package config

import (
	"fmt"
	"math"

	"github.com/AndreyAkinshin/solidcheck/internal/tolerance"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the values the schema cannot express.
func Validate(cfg *Config) error {
	if cfg.TimeoutSeconds != nil {
		if t := *cfg.TimeoutSeconds; t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return &ValidationError{Field: "timeout_seconds", Message: "must be a finite number >= 0"}
		}
	}

	if cfg.Comparison != nil && cfg.Comparison.MatchPercent != nil {
		if _, err := tolerance.RequiredRelativeTolerance(*cfg.Comparison.MatchPercent); err != nil {
			return &ValidationError{Field: "comparison.match_percent", Message: "must be in (0, 100]"}
		}
	}

	if cfg.Comparison != nil && cfg.Comparison.AbsoluteTolerance != nil {
		if a := *cfg.Comparison.AbsoluteTolerance; a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
			return &ValidationError{Field: "comparison.absolute_tolerance_mm3", Message: "must be a finite number >= 0"}
		}
	}

	return nil
}

// RequirePaths reports the first required path that is unset.
func RequirePaths(cfg *Config) error {
	required := []struct {
		field string
		value string
	}{
		{"tool", cfg.Tool},
		{"script", cfg.Script},
		{"input_dir", cfg.InputDir},
		{"baseline_dir", cfg.BaselineDir},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}
	return nil
}
