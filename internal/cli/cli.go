// Package cli implements the solidcheck command line.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/AndreyAkinshin/solidcheck/internal/errors"
	"github.com/AndreyAkinshin/solidcheck/internal/output"
)

// Version is set at build time.
var Version = "dev"

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	return Execute(args, os.Stdout, os.Stderr)
}

// Execute runs the CLI against the given writers and returns an exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	a := &app{
		out:    newWriter(stdout, stderr),
		stdout: stdout,
		stderr: stderr,
	}

	cmd := newRootCommand(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		a.out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}
	return a.exitCode
}

// app carries per-invocation state between cobra and the check command.
type app struct {
	opts     Options
	out      *output.Writer
	stdout   io.Writer
	stderr   io.Writer
	exitCode int
}

func newWriter(stdout, stderr io.Writer) *output.Writer {
	if f, ok := stdout.(*os.File); ok && f == os.Stdout {
		return output.New()
	}
	return output.NewWithWriters(stdout, stderr, false)
}
