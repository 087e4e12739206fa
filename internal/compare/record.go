package compare

import (
	"math"

	"github.com/AndreyAkinshin/solidcheck/internal/solid"
)

// Record is the flat, serializable form of an Outcome. Baseline, New and
// RelErr are nil when the outcome does not carry them. RelErr is the string
// "inf" for an infinite relative error, which JSON cannot encode as a number.
type Record struct {
	Key      solid.Key `json:"key"`
	Reason   Reason    `json:"reason"`
	OK       bool      `json:"ok"`
	Baseline *float64  `json:"baseline,omitempty"`
	New      *float64  `json:"new,omitempty"`
	RelErr   any       `json:"rel_err,omitempty"`
}

// ToRecord flattens an outcome.
func ToRecord(o Outcome) Record {
	r := Record{Key: o.SolidKey(), Reason: o.Reason(), OK: o.Passed()}
	switch v := o.(type) {
	case Match:
		r.Baseline, r.New, r.RelErr = ptr(v.Baseline), ptr(v.New), relErrValue(v.RelErr)
	case Mismatch:
		r.Baseline, r.New, r.RelErr = ptr(v.Baseline), ptr(v.New), relErrValue(v.RelErr)
	case MissingInBaseline:
		r.New = ptr(v.New)
	case MissingInNew:
		r.Baseline = ptr(v.Baseline)
	}
	return r
}

// ToRecords flattens a list of outcomes.
func ToRecords(outcomes []Outcome) []Record {
	records := make([]Record, len(outcomes))
	for i, o := range outcomes {
		records[i] = ToRecord(o)
	}
	return records
}

func ptr(f float64) *float64 { return &f }

func relErrValue(f float64) any {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "inf"
	}
	return f
}
