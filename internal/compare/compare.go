package compare

import (
	"math"

	"github.com/AndreyAkinshin/solidcheck/internal/solid"
	"github.com/AndreyAkinshin/solidcheck/internal/tolerance"
)

// Compare returns one outcome per key in the union of baseline and current,
// sorted by key. A pair passes when |n-b| <= max(abs, rel*max(|b|,|n|)).
// Neither map is modified.
func Compare(baseline, current solid.VolumeMap, cfg tolerance.Config) []Outcome {
	keys := solid.UnionKeys(baseline, current)
	outcomes := make([]Outcome, 0, len(keys))

	for _, key := range keys {
		b, inBaseline := baseline[key]
		n, inCurrent := current[key]

		switch {
		case !inBaseline:
			outcomes = append(outcomes, MissingInBaseline{Key: key, New: n})
		case !inCurrent:
			outcomes = append(outcomes, MissingInNew{Key: key, Baseline: b})
		default:
			outcomes = append(outcomes, comparePair(key, b, n, cfg))
		}
	}

	return outcomes
}

func comparePair(key solid.Key, b, n float64, cfg tolerance.Config) Outcome {
	diff := math.Abs(n - b)
	relErr := RelativeError(b, n)

	if diff <= cfg.Threshold(b, n) {
		return Match{Key: key, Baseline: b, New: n, RelErr: relErr}
	}
	return Mismatch{Key: key, Baseline: b, New: n, RelErr: relErr}
}

// RelativeError returns |n-b| / max(|b|,|n|). With a zero denominator it is
// 0 for a zero difference and +Inf otherwise.
func RelativeError(b, n float64) float64 {
	diff := math.Abs(n - b)
	denom := math.Max(math.Abs(b), math.Abs(n))
	if denom > 0 {
		return diff / denom
	}
	if diff == 0 {
		return 0
	}
	return math.Inf(1)
}

// Failures returns the outcomes that did not pass, preserving order.
func Failures(outcomes []Outcome) []Outcome {
	var bad []Outcome
	for _, o := range outcomes {
		if !o.Passed() {
			bad = append(bad, o)
		}
	}
	return bad
}

// CountByReason tallies outcomes per classification.
func CountByReason(outcomes []Outcome) map[Reason]int {
	counts := make(map[Reason]int, len(Reasons))
	for _, o := range outcomes {
		counts[o.Reason()]++
	}
	return counts
}
