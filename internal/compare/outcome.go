// Package compare matches baseline and new volume maps by solid key and
// classifies every key into a pass, mismatch or missing outcome.
package compare

import (
	"github.com/AndreyAkinshin/solidcheck/internal/solid"
)

// Reason is the classification of one compared key.
type Reason string

const (
	ReasonOK                Reason = "ok"
	ReasonVolumeMismatch    Reason = "volume_mismatch"
	ReasonMissingInBaseline Reason = "missing_in_baseline"
	ReasonMissingInNew      Reason = "missing_in_new"
)

// Reasons lists every classification in display order.
var Reasons = []Reason{ReasonOK, ReasonVolumeMismatch, ReasonMissingInBaseline, ReasonMissingInNew}

// Outcome is one of Match, Mismatch, MissingInBaseline or MissingInNew.
type Outcome interface {
	SolidKey() solid.Key
	Reason() Reason
	Passed() bool

	outcome()
}

// Match is a key present on both sides whose volumes agree within tolerance.
type Match struct {
	Key      solid.Key
	Baseline float64
	New      float64
	RelErr   float64
}

// Mismatch is a key present on both sides whose volumes differ by more than
// the tolerance.
type Mismatch struct {
	Key      solid.Key
	Baseline float64
	New      float64
	RelErr   float64
}

// MissingInBaseline is a key reported by the tool but absent from the baseline.
type MissingInBaseline struct {
	Key solid.Key
	New float64
}

// MissingInNew is a key present in the baseline but absent from the tool output.
type MissingInNew struct {
	Key      solid.Key
	Baseline float64
}

func (o Match) SolidKey() solid.Key { return o.Key }
func (o Match) Reason() Reason      { return ReasonOK }
func (o Match) Passed() bool        { return true }
func (Match) outcome()              {}

func (o Mismatch) SolidKey() solid.Key { return o.Key }
func (o Mismatch) Reason() Reason      { return ReasonVolumeMismatch }
func (o Mismatch) Passed() bool        { return false }
func (Mismatch) outcome()              {}

func (o MissingInBaseline) SolidKey() solid.Key { return o.Key }
func (o MissingInBaseline) Reason() Reason      { return ReasonMissingInBaseline }
func (o MissingInBaseline) Passed() bool        { return false }
func (MissingInBaseline) outcome()              {}

func (o MissingInNew) SolidKey() solid.Key { return o.Key }
func (o MissingInNew) Reason() Reason      { return ReasonMissingInNew }
func (o MissingInNew) Passed() bool        { return false }
func (MissingInNew) outcome()              {}
