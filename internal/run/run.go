// Package run drives a regression run: for every input file it resolves the
// baseline, obtains a fresh report from the tool, compares the two and
// accumulates the result.
package run

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/tidwall/gjson"

	"github.com/AndreyAkinshin/solidcheck/internal/compare"
	"github.com/AndreyAkinshin/solidcheck/internal/discover"
	"github.com/AndreyAkinshin/solidcheck/internal/errors"
	"github.com/AndreyAkinshin/solidcheck/internal/solid"
	"github.com/AndreyAkinshin/solidcheck/internal/tolerance"
	"github.com/AndreyAkinshin/solidcheck/internal/tool"
)

// Orchestrator processes input files sequentially.
type Orchestrator struct {
	Tool      tool.Runner
	Baselines discover.BaselineResolver
	Tolerance tolerance.Config

	// OnFile, if set, is called once per file as soon as it finishes.
	OnFile func(FileResult)

	log *slog.Logger
}

// New creates an Orchestrator. A nil logger uses slog.Default().
func New(runner tool.Runner, baselines discover.BaselineResolver, cfg tolerance.Config, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		Tool:      runner,
		Baselines: baselines,
		Tolerance: cfg,
		log:       log,
	}
}

// Run processes inputs in order and returns the final tally. A per-file
// failure never stops the run; only ctx cancellation does, in which case the
// tally so far is returned with ctx's error.
func (o *Orchestrator) Run(ctx context.Context, inputs []string) (Tally, error) {
	if err := o.Tolerance.Validate(); err != nil {
		return NewTally(o.Tolerance), err
	}

	tally := NewTally(o.Tolerance)
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return tally, err
		}

		result := o.processFile(ctx, input)
		tally = tally.Add(result)

		if o.OnFile != nil {
			o.OnFile(result)
		}
	}
	return tally, nil
}

func (o *Orchestrator) processFile(ctx context.Context, input string) FileResult {
	start := time.Now()
	result := FileResult{Input: input, State: StateDiscovered}
	log := o.log.With(slog.String("file", input))

	finish := func(state State, err error) FileResult {
		result.State = state
		result.Err = err
		result.Duration = time.Since(start)
		log.Debug("file finished", slog.String("state", string(state)), slog.Duration("duration", result.Duration))
		return result
	}

	baselinePath, err := o.Baselines.Resolve(input)
	result.Baseline = baselinePath
	if err != nil {
		if stderrors.Is(err, discover.ErrBaselineMissing) {
			return finish(StateBaselineMissing, err)
		}
		return finish(StateExecutionError, errors.Execution(input, err))
	}
	result.State = StateBaselineResolved

	newReport, err := o.Tool.Run(ctx, input)
	if err != nil {
		return finish(StateExecutionError, errors.Execution(input, err))
	}
	result.State = StateReportObtained

	baseReport, err := o.Baselines.Load(baselinePath)
	if err != nil {
		return finish(StateExecutionError, errors.Execution(input, err))
	}

	newMap := o.extract(log, "new", newReport)
	baseMap := o.extract(log, "baseline", baseReport)

	result.Outcomes = compare.Compare(baseMap, newMap, o.Tolerance)
	return finish(StateCompared, nil)
}

func (o *Orchestrator) extract(log *slog.Logger, side string, report gjson.Result) solid.VolumeMap {
	volumes, rejected := solid.ExtractWithRejections(report)
	for _, r := range rejected {
		log.Debug("skipped report entry", slog.String("side", side), slog.String("entry", r.String()))
	}
	log.Debug("extracted volumes", slog.String("side", side), slog.Int("solids", len(volumes)), slog.Int("skipped", len(rejected)))
	return volumes
}
