// Package tool runs the external geometry tool that measures a model file and
// returns its JSON report.
package tool

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
)

// outputName is the report file the tool is asked to write.
const outputName = "output.json"

// Runner produces a report for one input file.
type Runner interface {
	Run(ctx context.Context, input string) (gjson.Result, error)
}

// Command invokes "<Tool> <Script> <input> --out <tmp>/output.json" and reads
// the report back. The temporary directory is removed on every exit path.
type Command struct {
	Tool    string
	Script  string
	Timeout time.Duration // zero means no limit beyond ctx

	log *slog.Logger
}

// NewCommand creates a Command. A nil logger uses slog.Default().
func NewCommand(tool, script string, timeout time.Duration, log *slog.Logger) *Command {
	if log == nil {
		log = slog.Default()
	}
	return &Command{
		Tool:    tool,
		Script:  script,
		Timeout: timeout,
		log:     log,
	}
}

// Run executes the tool for input.
func (c *Command) Run(ctx context.Context, input string) (gjson.Result, error) {
	tmpDir, err := os.MkdirTemp("", "solidcheck-*")
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	outPath := filepath.Join(tmpDir, outputName)

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.Tool, c.Script, input, "--out", outPath)
	// Children that inherit the output pipes must not hold Wait open after a kill.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.log.Debug("running tool", slog.String("cmd", cmd.String()))

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	c.log.Debug("tool finished", slog.String("input", input), slog.Duration("elapsed", elapsed))

	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return gjson.Result{}, &TimeoutError{Limit: c.Timeout, Elapsed: elapsed}
	}
	if err := ctx.Err(); err != nil {
		return gjson.Result{}, fmt.Errorf("tool run interrupted: %w", err)
	}
	if runErr != nil {
		var exitErr *exec.ExitError
		if stderrors.As(runErr, &exitErr) {
			return gjson.Result{}, &NonZeroExitError{
				Code:   exitErr.ExitCode(),
				Stderr: string(bytes.TrimSpace(stderr.Bytes())),
				Stdout: excerpt(stdout.Bytes()),
			}
		}
		return gjson.Result{}, fmt.Errorf("failed to run %s: %w", c.Tool, runErr)
	}

	return readReport(outPath)
}

func readReport(path string) (gjson.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return gjson.Result{}, fmt.Errorf("%w: %s was not written", ErrEmptyOutput, outputName)
		}
		return gjson.Result{}, fmt.Errorf("failed to read tool output: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return gjson.Result{}, ErrEmptyOutput
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, &MalformedOutputError{Err: syntaxError(data), Excerpt: excerpt(data)}
	}
	return gjson.ParseBytes(data), nil
}

// syntaxError produces a descriptive parse error for data that gjson rejected.
func syntaxError(data []byte) error {
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return stderrors.New("invalid JSON")
}
