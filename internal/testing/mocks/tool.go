// Package mocks provides shared test doubles for solidcheck packages.
package mocks

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/tidwall/gjson"

	"github.com/AndreyAkinshin/solidcheck/internal/tool"
)

var _ tool.Runner = (*Tool)(nil)

// Tool implements tool.Runner for testing. Responses are keyed by the base
// name of the input file. Use NewTool() and the With* methods to configure it.
type Tool struct {
	reports map[string]string
	errs    map[string]error

	// RunFunc, if set, overrides the configured responses.
	RunFunc func(ctx context.Context, input string) (gjson.Result, error)

	mu    sync.Mutex
	calls []string
}

// NewTool creates a mock tool with no configured responses. Inputs without a
// response produce an error.
func NewTool() *Tool {
	return &Tool{
		reports: make(map[string]string),
		errs:    make(map[string]error),
	}
}

// WithReport makes the tool return the JSON report for input.
func (m *Tool) WithReport(input, report string) *Tool {
	m.reports[input] = report
	return m
}

// WithError makes the tool fail for input.
func (m *Tool) WithError(input string, err error) *Tool {
	m.errs[input] = err
	return m
}

// Run implements tool.Runner.
func (m *Tool) Run(ctx context.Context, input string) (gjson.Result, error) {
	m.mu.Lock()
	m.calls = append(m.calls, input)
	m.mu.Unlock()

	if m.RunFunc != nil {
		return m.RunFunc(ctx, input)
	}

	name := filepath.Base(input)
	if err, ok := m.errs[name]; ok {
		return gjson.Result{}, err
	}
	if report, ok := m.reports[name]; ok {
		return gjson.Parse(report), nil
	}
	return gjson.Result{}, fmt.Errorf("mock tool: no response configured for %s", name)
}

// Calls returns the inputs passed to Run, in order.
func (m *Tool) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]string, len(m.calls))
	copy(result, m.calls)
	return result
}

// Reset clears recorded calls.
func (m *Tool) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}
