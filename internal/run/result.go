package run

import (
	"time"

	"github.com/AndreyAkinshin/solidcheck/internal/compare"
)

// State is a step of the per-file state machine:
//
//	discovered -> baseline_missing (terminal)
//	discovered -> baseline_resolved -> execution_error (terminal)
//	discovered -> baseline_resolved -> report_obtained -> compared (terminal)
type State string

const (
	StateDiscovered       State = "discovered"
	StateBaselineResolved State = "baseline_resolved"
	StateBaselineMissing  State = "baseline_missing"
	StateReportObtained   State = "report_obtained"
	StateExecutionError   State = "execution_error"
	StateCompared         State = "compared"
)

// Class is how a finished file counts in the Tally.
type Class int

const (
	ClassOK Class = iota
	ClassMismatch
	ClassError
)

func (c Class) String() string {
	switch c {
	case ClassOK:
		return "ok"
	case ClassMismatch:
		return "mismatch"
	default:
		return "error"
	}
}

// FileResult is the outcome of processing one input file.
type FileResult struct {
	Input    string
	Baseline string
	State    State
	Outcomes []compare.Outcome // set when State is StateCompared
	Err      error             // set for StateBaselineMissing and StateExecutionError
	Duration time.Duration
}

// Class returns how the file counts. A missing baseline is a mismatch, not
// an error.
func (r FileResult) Class() Class {
	switch r.State {
	case StateExecutionError:
		return ClassError
	case StateBaselineMissing:
		return ClassMismatch
	case StateCompared:
		if len(r.Failures()) > 0 {
			return ClassMismatch
		}
		return ClassOK
	default:
		// Not terminal: the file never finished.
		return ClassError
	}
}

// Failures returns the failing outcomes of a compared file.
func (r FileResult) Failures() []compare.Outcome {
	return compare.Failures(r.Outcomes)
}
