package run

import (
	"github.com/AndreyAkinshin/solidcheck/internal/compare"
	"github.com/AndreyAkinshin/solidcheck/internal/errors"
	"github.com/AndreyAkinshin/solidcheck/internal/tolerance"
)

// Status is the overall result of a run.
type Status string

const (
	StatusPassed     Status = "passed"
	StatusMismatches Status = "mismatches"
	StatusErrors     Status = "errors"
)

// Tally accumulates per-file results over a run. It is a value: Add returns
// the updated tally and leaves the receiver untouched.
type Tally struct {
	Checked    int                    `json:"checked"`
	OK         int                    `json:"ok"`
	Mismatched int                    `json:"mismatched"`
	Errored    int                    `json:"errors"`
	Reasons    map[compare.Reason]int `json:"reasons,omitempty"` // failing outcomes by reason
	Tolerance  tolerance.Config       `json:"-"`
}

// NewTally returns an empty tally for a run using cfg.
func NewTally(cfg tolerance.Config) Tally {
	return Tally{Tolerance: cfg}
}

// Add records one finished file.
func (t Tally) Add(r FileResult) Tally {
	t.Checked++
	switch r.Class() {
	case ClassOK:
		t.OK++
	case ClassMismatch:
		t.Mismatched++
	case ClassError:
		t.Errored++
	}

	failures := r.Failures()
	if len(failures) > 0 {
		reasons := make(map[compare.Reason]int, len(t.Reasons)+1)
		for k, v := range t.Reasons {
			reasons[k] = v
		}
		for _, o := range failures {
			reasons[o.Reason()]++
		}
		t.Reasons = reasons
	}
	return t
}

// Status returns the overall status. Errors take priority over mismatches.
func (t Tally) Status() Status {
	switch {
	case t.Errored > 0:
		return StatusErrors
	case t.Mismatched > 0:
		return StatusMismatches
	default:
		return StatusPassed
	}
}

// ExitCode maps Status to the process exit code.
func (t Tally) ExitCode() int {
	switch t.Status() {
	case StatusErrors:
		return errors.ExitError
	case StatusMismatches:
		return errors.ExitMismatch
	default:
		return errors.ExitSuccess
	}
}
