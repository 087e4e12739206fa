package config

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		cfg       *Config
		wantField string
	}{
		{"empty", &Config{}, ""},
		{"defaults", Default(), ""},
		{"negative timeout", &Config{TimeoutSeconds: float64Ptr(-1)}, "timeout_seconds"},
		{"infinite timeout", &Config{TimeoutSeconds: float64Ptr(math.Inf(1))}, "timeout_seconds"},
		{"zero match percent", &Config{Comparison: &ComparisonConfig{MatchPercent: float64Ptr(0)}}, "comparison.match_percent"},
		{"match percent above 100", &Config{Comparison: &ComparisonConfig{MatchPercent: float64Ptr(101)}}, "comparison.match_percent"},
		{"NaN match percent", &Config{Comparison: &ComparisonConfig{MatchPercent: float64Ptr(math.NaN())}}, "comparison.match_percent"},
		{"negative absolute tolerance", &Config{Comparison: &ComparisonConfig{AbsoluteTolerance: float64Ptr(-1)}}, "comparison.absolute_tolerance_mm3"},
		{"zero absolute tolerance", &Config{Comparison: &ComparisonConfig{AbsoluteTolerance: float64Ptr(0)}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestRequirePaths(t *testing.T) {
	t.Parallel()

	full := Config{Tool: "t", Script: "s", InputDir: "i", BaselineDir: "b"}
	if err := RequirePaths(&full); err != nil {
		t.Fatalf("RequirePaths() = %v, want nil", err)
	}

	missing := full
	missing.InputDir = ""
	err := RequirePaths(&missing)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "input_dir" {
		t.Errorf("RequirePaths() = %v, want input_dir is required", err)
	}
	if err.Error() != "input_dir: is required" {
		t.Errorf("Error() = %q", err.Error())
	}
}
