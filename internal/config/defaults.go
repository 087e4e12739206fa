package config

import (
	"time"

	"github.com/AndreyAkinshin/solidcheck/internal/discover"
	"github.com/AndreyAkinshin/solidcheck/internal/tolerance"
)

// DefaultTimeoutSeconds is the per-file tool timeout.
const DefaultTimeoutSeconds = 300

// Default returns a configuration with every defaultable field set.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
// Paths have no defaults.
func applyDefaults(cfg *Config) {
	if cfg.Pattern == "" {
		cfg.Pattern = discover.DefaultPattern
	}
	if cfg.TimeoutSeconds == nil {
		cfg.TimeoutSeconds = float64Ptr(DefaultTimeoutSeconds)
	}
	if cfg.Comparison == nil {
		cfg.Comparison = &ComparisonConfig{}
	}
	if cfg.Comparison.MatchPercent == nil {
		cfg.Comparison.MatchPercent = float64Ptr(tolerance.DefaultMatchPercent)
	}
	if cfg.Comparison.AbsoluteTolerance == nil {
		cfg.Comparison.AbsoluteTolerance = float64Ptr(tolerance.DefaultAbsoluteTolerance)
	}
}

// Timeout returns the per-file timeout. Zero means no limit.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds == nil {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(*c.TimeoutSeconds * float64(time.Second))
}

// Tolerance builds the validated tolerance model.
func (c *Config) Tolerance() (tolerance.Config, error) {
	pct, abs := tolerance.DefaultMatchPercent, tolerance.DefaultAbsoluteTolerance
	if c.Comparison != nil {
		if c.Comparison.MatchPercent != nil {
			pct = *c.Comparison.MatchPercent
		}
		if c.Comparison.AbsoluteTolerance != nil {
			abs = *c.Comparison.AbsoluteTolerance
		}
	}
	return tolerance.New(pct, abs)
}

func float64Ptr(v float64) *float64 {
	return &v
}
