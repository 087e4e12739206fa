package cli

import (
	stderrors "errors"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/solidcheck/internal/compare"
	"github.com/AndreyAkinshin/solidcheck/internal/errors"
	"github.com/AndreyAkinshin/solidcheck/internal/output"
	"github.com/AndreyAkinshin/solidcheck/internal/run"
	"github.com/AndreyAkinshin/solidcheck/internal/tolerance"
)

// renderer presents per-file results as they arrive and the final tally.
type renderer interface {
	File(r run.FileResult)
	Summary(t run.Tally) error
}

// textRenderer prints the human-readable report.
type textRenderer struct {
	out      *output.Writer
	inputDir string
	tol      tolerance.Config
	verbose  bool
	title    cases.Caser
}

func newTextRenderer(out *output.Writer, inputDir string, tol tolerance.Config, verbose bool) *textRenderer {
	return &textRenderer{
		out:      out,
		inputDir: inputDir,
		tol:      tol,
		verbose:  verbose,
		title:    cases.Title(language.English),
	}
}

func (t *textRenderer) File(r run.FileResult) {
	name := displayName(t.inputDir, r.Input)

	switch r.Class() {
	case run.ClassError:
		t.out.FileError(name, errorMessage(r.Err))
		return
	case run.ClassOK:
		if t.verbose {
			t.out.FileOK(name, "solids=%d", len(r.Outcomes))
		}
		return
	}

	if r.State == run.StateBaselineMissing {
		t.out.FileFail(name, "baseline missing: %s", r.Baseline)
		return
	}

	failures := r.Failures()
	t.out.FileFail(name, "%d issue(s)", len(failures))
	for _, o := range failures {
		t.out.Issue("%s", issueLine(o, t.tol))
	}
	if t.verbose {
		bad := len(failures)
		t.out.Detail("solids compared: %d (ok=%d bad=%d)", len(r.Outcomes), len(r.Outcomes)-bad, bad)
	}
}

func (t *textRenderer) Summary(tally run.Tally) error {
	t.out.SummaryHeader("Summary")
	t.out.SummaryItem("Files checked", strconv.Itoa(tally.Checked))
	t.out.SummaryPassed("OK", strconv.Itoa(tally.OK))
	t.countItem("Mismatched", tally.Mismatched)
	t.countItem("Errors", tally.Errored)
	t.out.SummaryItem("Match pct", fmt.Sprintf("%s (rel_tol=%.12g)", formatPercent(t.tol.MatchPercent), t.tol.RelativeTolerance()))
	t.out.SummaryItem("Abs tol mm^3", fmt.Sprintf("%.12g", t.tol.AbsoluteTolerance))

	if len(tally.Reasons) > 0 {
		t.out.Println("")
		t.out.SummarySectionLabel("Issues by reason:")
		for _, reason := range compare.Reasons {
			if n := tally.Reasons[reason]; n > 0 {
				t.out.SummaryItem("  "+t.reasonLabel(reason), strconv.Itoa(n))
			}
		}
	}

	if tally.Status() == run.StatusPassed {
		t.out.FinalSuccess("Integration tests passed")
	} else {
		t.out.FinalFailure("Integration tests failed")
	}
	return nil
}

func (t *textRenderer) countItem(label string, n int) {
	if n > 0 {
		t.out.SummaryFailed(label, strconv.Itoa(n))
	} else {
		t.out.SummaryItem(label, strconv.Itoa(n))
	}
}

// reasonLabel turns volume_mismatch into "Volume Mismatch".
func (t *textRenderer) reasonLabel(r compare.Reason) string {
	return t.title.String(strings.ReplaceAll(string(r), "_", " "))
}

// issueLine formats one failing outcome.
func issueLine(o compare.Outcome, tol tolerance.Config) string {
	m, ok := o.(compare.Mismatch)
	if !ok {
		return fmt.Sprintf("%s: %s", o.Reason(), o.SolidKey())
	}

	rel := "inf"
	if !math.IsInf(m.RelErr, 0) && !math.IsNaN(m.RelErr) {
		rel = fmt.Sprintf("%.9f%%", m.RelErr*100)
	}
	return fmt.Sprintf("mismatch %s: baseline=%.12g new=%.12g rel_err=%s (required match >= %s%%)",
		m.Key, m.Baseline, m.New, rel, formatPercent(tol.MatchPercent))
}

func formatPercent(pct float64) string {
	return strconv.FormatFloat(pct, 'g', -1, 64)
}

// displayName is the input path relative to the input directory.
func displayName(inputDir, input string) string {
	rel, err := filepath.Rel(inputDir, input)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.Base(input)
	}
	return filepath.ToSlash(rel)
}

// errorMessage strips the file prefix that execution errors carry, since
// the file is already on the line.
func errorMessage(err error) string {
	if err == nil {
		return "unknown error"
	}
	var se *errors.Error
	if stderrors.As(err, &se) && se.Kind == errors.KindExecution && se.Cause != nil {
		return se.Cause.Error()
	}
	return err.Error()
}
