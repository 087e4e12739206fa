package cli

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/AndreyAkinshin/solidcheck/internal/config"
	"github.com/AndreyAkinshin/solidcheck/internal/discover"
	"github.com/AndreyAkinshin/solidcheck/internal/errors"
	"github.com/AndreyAkinshin/solidcheck/internal/logging"
	"github.com/AndreyAkinshin/solidcheck/internal/run"
	"github.com/AndreyAkinshin/solidcheck/internal/tool"
)

// runCheck runs the regression check and returns the process exit code.
// A non-nil error is fatal and has already been mapped to ExitError.
func runCheck(ctx context.Context, a *app, flags *pflag.FlagSet) (int, error) {
	opts := &a.opts
	a.out.SetQuiet(opts.Quiet)

	cfg, warnings, err := resolveConfig(opts, flags)
	for _, w := range warnings {
		a.out.Warning("%s", w)
	}
	if err != nil {
		return errors.ExitError, errors.WrapConfig(err, "invalid configuration")
	}

	tol, err := cfg.Tolerance()
	if err != nil {
		return errors.ExitError, err
	}

	if err := checkRequiredPaths(cfg); err != nil {
		return errors.ExitError, err
	}

	inputs, err := discover.FindInputs(cfg.InputDir, cfg.Pattern, cfg.Recursive)
	if err != nil {
		return errors.ExitError, err
	}

	runID := uuid.NewString()
	log := logging.New(a.stderr, logging.LevelFor(opts.Verbose, opts.Quiet)).
		With(slog.String("run_id", runID))
	log.Debug("starting run",
		slog.String("tool", cfg.Tool),
		slog.String("script", cfg.Script),
		slog.Int("inputs", len(inputs)),
		slog.Duration("timeout", cfg.Timeout()))

	var r renderer
	switch opts.Format {
	case FormatJSON:
		r = newJSONRenderer(a.stdout, runID, cfg.InputDir, tol)
	default:
		r = newTextRenderer(a.out, cfg.InputDir, tol, opts.Verbose)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	runner := tool.NewCommand(cfg.Tool, cfg.Script, cfg.Timeout(), log)
	orch := run.New(runner, discover.Baselines{Dir: cfg.BaselineDir}, tol, log)
	orch.OnFile = r.File

	tally, err := orch.Run(ctx, inputs)
	if err != nil {
		return errors.ExitError, errors.Wrap(err, "run aborted")
	}

	if err := r.Summary(tally); err != nil {
		return errors.ExitError, err
	}
	log.Debug("run finished", slog.String("status", string(tally.Status())))
	return tally.ExitCode(), nil
}

// checkRequiredPaths verifies that every configured path exists. A tool
// given without a path separator is looked up in PATH.
func checkRequiredPaths(cfg *config.Config) error {
	if !strings.ContainsAny(cfg.Tool, `/\`) {
		if _, err := exec.LookPath(cfg.Tool); err != nil {
			return errors.Discoveryf("tool not found in PATH: %s", cfg.Tool)
		}
		return discover.CheckPaths(cfg.Script, cfg.InputDir, cfg.BaselineDir)
	}
	return discover.CheckPaths(cfg.Tool, cfg.Script, cfg.InputDir, cfg.BaselineDir)
}
