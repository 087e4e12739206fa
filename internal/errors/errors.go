// Package errors provides structured error types and exit codes for solidcheck.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Exit codes returned by the solidcheck process.
const (
	ExitSuccess  = 0 // Every file passed
	ExitMismatch = 2 // At least one mismatch or missing baseline, no execution errors
	ExitError    = 3 // Execution/I-O error, invalid configuration, missing paths, no inputs
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindDiscovery
	KindExecution
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindDiscovery:
		return "discovery"
	case KindExecution:
		return "execution"
	default:
		return "runtime"
	}
}

// Error is the base error type for solidcheck.
type Error struct {
	Kind    ErrorKind
	Message string
	File    string // Input file if applicable
	Cause   error  // Underlying error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Cause != nil {
		if msg == "" {
			msg = e.Cause.Error()
		} else {
			msg = msg + ": " + e.Cause.Error()
		}
	}
	if e.File != "" {
		return fmt.Sprintf("[%s] %s", e.File, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
// Every error kind is fatal for the run; mismatches are never errors.
func (e *Error) ExitCode() int {
	return ExitError
}

// New creates a new runtime error.
func New(message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *Error {
	return Config(fmt.Sprintf(format, args...))
}

// Discovery creates a new discovery error (missing required path, no input files).
func Discovery(message string) *Error {
	return &Error{
		Kind:    KindDiscovery,
		Message: message,
	}
}

// Discoveryf creates a new discovery error with formatting.
func Discoveryf(format string, args ...interface{}) *Error {
	return Discovery(fmt.Sprintf(format, args...))
}

// Execution creates a per-file execution error wrapping cause.
func Execution(file string, cause error) *Error {
	return &Error{
		Kind:  KindExecution,
		File:  file,
		Cause: cause,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *Error {
	return &Error{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// WrapConfig wraps err as a configuration error.
func WrapConfig(err error, message string) *Error {
	return &Error{
		Kind:    KindConfig,
		Message: message,
		Cause:   err,
	}
}

// IsKind reports whether err carries a solidcheck error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *Error
	if stderrors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var se *Error
	if stderrors.As(err, &se) {
		return se.ExitCode()
	}
	return ExitError
}
