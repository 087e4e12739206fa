// Package solidcheck provides the public surface of solidcheck: exit codes for
// tools that invoke the CLI, and report comparison for Go test harnesses.
package solidcheck

// Exit codes returned by the solidcheck CLI.
const (
	// ExitSuccess indicates every input file matched its baseline.
	ExitSuccess = 0

	// ExitMismatch indicates at least one file had a volume mismatch or a
	// missing baseline, and no execution errors occurred.
	ExitMismatch = 2

	// ExitError indicates an execution or I/O error, an invalid configuration,
	// a missing required path, or an empty input directory.
	ExitError = 3
)
