package tool

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// maxExcerpt caps how much tool output is kept in an error.
const maxExcerpt = 2000

// ErrEmptyOutput is returned when the tool exits cleanly without writing a report.
var ErrEmptyOutput = stderrors.New("tool produced no output")

// NonZeroExitError is returned when the tool exits with a non-zero status.
type NonZeroExitError struct {
	Code   int
	Stderr string // trimmed
	Stdout string // first maxExcerpt bytes, trimmed
}

func (e *NonZeroExitError) Error() string {
	return fmt.Sprintf("tool run failed (rc=%d)\nSTDERR:\n%s\n\nSTDOUT (first %d chars):\n%s",
		e.Code, e.Stderr, maxExcerpt, e.Stdout)
}

// TimeoutError is returned when the tool does not finish within the limit.
type TimeoutError struct {
	Limit   time.Duration
	Elapsed time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s", formatSeconds(e.Limit))
}

// MalformedOutputError is returned when the tool's report is not valid JSON.
type MalformedOutputError struct {
	Err     error
	Excerpt string // first maxExcerpt bytes of the report
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("invalid JSON from tool: %v\nOUTPUT (first %d chars):\n%s", e.Err, maxExcerpt, e.Excerpt)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

func excerpt(b []byte) string {
	if len(b) > maxExcerpt {
		b = b[:maxExcerpt]
	}
	return strings.TrimSpace(string(b))
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%gs", d.Seconds())
}
