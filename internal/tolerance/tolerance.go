// Package tolerance converts the user-facing match percentage into the
// relative and absolute bounds applied to every volume comparison.
package tolerance

import (
	"math"

	"github.com/AndreyAkinshin/solidcheck/internal/errors"
)

// Default tolerance values.
const (
	DefaultMatchPercent      = 99.999
	DefaultAbsoluteTolerance = 1e-9 // mm^3
)

// Config holds the tolerance parameters for a run. It is immutable once built
// with New; the zero value is not valid.
type Config struct {
	MatchPercent      float64 `json:"match_percent"`
	AbsoluteTolerance float64 `json:"absolute_tolerance_mm3"`
}

// Default returns the default tolerance configuration.
func Default() Config {
	return Config{
		MatchPercent:      DefaultMatchPercent,
		AbsoluteTolerance: DefaultAbsoluteTolerance,
	}
}

// RequiredRelativeTolerance converts a match percentage to a relative tolerance
// fraction: 99.999 -> 1e-5, 100 -> 0.
func RequiredRelativeTolerance(matchPercent float64) (float64, error) {
	// NaN fails both comparisons, so it is rejected here too.
	if !(matchPercent > 0 && matchPercent <= 100) {
		return 0, errors.Configf("match percentage must be in (0, 100], got %v", matchPercent)
	}
	return 1 - matchPercent/100, nil
}

// New validates the parameters and returns a Config.
func New(matchPercent, absoluteTolerance float64) (Config, error) {
	if _, err := RequiredRelativeTolerance(matchPercent); err != nil {
		return Config{}, err
	}
	if math.IsNaN(absoluteTolerance) || math.IsInf(absoluteTolerance, 0) || absoluteTolerance < 0 {
		return Config{}, errors.Configf("absolute tolerance must be a finite non-negative number, got %v", absoluteTolerance)
	}
	return Config{
		MatchPercent:      matchPercent,
		AbsoluteTolerance: absoluteTolerance,
	}, nil
}

// Validate reports whether c could have been produced by New.
func (c Config) Validate() error {
	_, err := New(c.MatchPercent, c.AbsoluteTolerance)
	return err
}

// RelativeTolerance returns 1 - MatchPercent/100. Used both for display and
// for enforcement.
func (c Config) RelativeTolerance() float64 {
	return 1 - c.MatchPercent/100
}

// Threshold returns the largest absolute difference accepted between a
// baseline value b and a new value n.
func (c Config) Threshold(b, n float64) float64 {
	denom := math.Max(math.Abs(b), math.Abs(n))
	return math.Max(c.AbsoluteTolerance, c.RelativeTolerance()*denom)
}
