package cli

import (
	"encoding/json"
	"io"

	"github.com/AndreyAkinshin/solidcheck/internal/compare"
	"github.com/AndreyAkinshin/solidcheck/internal/run"
	"github.com/AndreyAkinshin/solidcheck/internal/tolerance"
)

// runReport is the document written by --format json.
type runReport struct {
	RunID     string          `json:"run_id"`
	Status    run.Status      `json:"status"`
	Tolerance toleranceReport `json:"tolerance"`
	Tally     run.Tally       `json:"tally"`
	Files     []fileReport    `json:"files"`
}

type toleranceReport struct {
	MatchPercent      float64 `json:"match_percent"`
	RelativeTolerance float64 `json:"relative_tolerance"`
	AbsoluteTolerance float64 `json:"absolute_tolerance_mm3"`
}

type fileReport struct {
	File       string           `json:"file"`
	Input      string           `json:"input"`
	Baseline   string           `json:"baseline,omitempty"`
	State      run.State        `json:"state"`
	Result     string           `json:"result"`
	Error      string           `json:"error,omitempty"`
	DurationMS int64            `json:"duration_ms"`
	Outcomes   []compare.Record `json:"outcomes,omitempty"`
}

// jsonRenderer collects file results and writes one document at the end.
type jsonRenderer struct {
	w        io.Writer
	runID    string
	inputDir string
	tol      tolerance.Config
	files    []fileReport
}

func newJSONRenderer(w io.Writer, runID, inputDir string, tol tolerance.Config) *jsonRenderer {
	return &jsonRenderer{w: w, runID: runID, inputDir: inputDir, tol: tol}
}

func (j *jsonRenderer) File(r run.FileResult) {
	fr := fileReport{
		File:       displayName(j.inputDir, r.Input),
		Input:      r.Input,
		Baseline:   r.Baseline,
		State:      r.State,
		Result:     r.Class().String(),
		DurationMS: r.Duration.Milliseconds(),
	}
	if r.Err != nil {
		fr.Error = errorMessage(r.Err)
	}
	if len(r.Outcomes) > 0 {
		fr.Outcomes = compare.ToRecords(r.Outcomes)
	}
	j.files = append(j.files, fr)
}

func (j *jsonRenderer) Summary(tally run.Tally) error {
	files := j.files
	if files == nil {
		files = []fileReport{}
	}
	doc := runReport{
		RunID:  j.runID,
		Status: tally.Status(),
		Tolerance: toleranceReport{
			MatchPercent:      j.tol.MatchPercent,
			RelativeTolerance: j.tol.RelativeTolerance(),
			AbsoluteTolerance: j.tol.AbsoluteTolerance,
		},
		Tally: tally,
		Files: files,
	}

	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
