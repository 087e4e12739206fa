package solidcheck

import (
	"fmt"
	"strings"

	"github.com/AndreyAkinshin/solidcheck/internal/compare"
	"github.com/AndreyAkinshin/solidcheck/internal/solid"
	"github.com/AndreyAkinshin/solidcheck/internal/tolerance"
)

// Default tolerance values used by the CLI.
const (
	DefaultMatchPercent      = tolerance.DefaultMatchPercent
	DefaultAbsoluteTolerance = tolerance.DefaultAbsoluteTolerance
)

// Options configures report comparison.
type Options struct {
	// MatchPercent is the required match in (0, 100]. The relative
	// tolerance is 1 - MatchPercent/100.
	MatchPercent float64

	// AbsoluteTolerance is the floor in mm^3 below which differences are
	// always accepted.
	AbsoluteTolerance float64
}

// DefaultOptions returns the options the CLI uses when no flags are given.
func DefaultOptions() Options {
	return Options{
		MatchPercent:      DefaultMatchPercent,
		AbsoluteTolerance: DefaultAbsoluteTolerance,
	}
}

// Entry is the comparison result for one solid.
type Entry struct {
	Name     string
	Index    int
	Reason   string // ok, volume_mismatch, missing_in_baseline or missing_in_new
	OK       bool
	Baseline *float64 // nil when missing in the baseline
	New      *float64 // nil when missing in the new report
	RelErr   float64  // +Inf when only one side is zero; 0 when not compared
}

// Result holds every entry of a report comparison, sorted by name then index.
type Result struct {
	Entries []Entry
}

// Passed reports whether every entry matched.
func (r Result) Passed() bool {
	for _, e := range r.Entries {
		if !e.OK {
			return false
		}
	}
	return true
}

// Failures returns the entries that did not match.
func (r Result) Failures() []Entry {
	var failed []Entry
	for _, e := range r.Entries {
		if !e.OK {
			failed = append(failed, e)
		}
	}
	return failed
}

// CompareReports compares the per-solid volumes of two geometry reports.
// Malformed report entries are skipped and surface as missing entries.
// An error is returned only for invalid options.
func CompareReports(baseline, current []byte, opts Options) (Result, error) {
	cfg, err := tolerance.New(opts.MatchPercent, opts.AbsoluteTolerance)
	if err != nil {
		return Result{}, err
	}

	outcomes := compare.Compare(solid.ExtractBytes(baseline), solid.ExtractBytes(current), cfg)
	entries := make([]Entry, len(outcomes))
	for i, o := range outcomes {
		entries[i] = toEntry(o)
	}
	return Result{Entries: entries}, nil
}

func toEntry(o compare.Outcome) Entry {
	key := o.SolidKey()
	e := Entry{Name: key.Name, Index: key.Index, Reason: string(o.Reason()), OK: o.Passed()}
	switch v := o.(type) {
	case compare.Match:
		e.Baseline, e.New, e.RelErr = &v.Baseline, &v.New, v.RelErr
	case compare.Mismatch:
		e.Baseline, e.New, e.RelErr = &v.Baseline, &v.New, v.RelErr
	case compare.MissingInBaseline:
		e.New = &v.New
	case compare.MissingInNew:
		e.Baseline = &v.Baseline
	}
	return e
}

// FormatFailures returns a human-readable list of failing entries, one per
// line, or "" when the comparison passed.
func FormatFailures(r Result) string {
	var sb strings.Builder
	for _, e := range r.Failures() {
		switch {
		case e.Baseline != nil && e.New != nil:
			fmt.Fprintf(&sb, "%s (%s, %d): baseline=%.12g new=%.12g rel_err=%g\n",
				e.Reason, e.Name, e.Index, *e.Baseline, *e.New, e.RelErr)
		default:
			fmt.Fprintf(&sb, "%s: (%s, %d)\n", e.Reason, e.Name, e.Index)
		}
	}
	return sb.String()
}
