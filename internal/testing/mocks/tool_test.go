package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/tidwall/gjson"
)

func TestTool_Responses(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	m := NewTool().
		WithReport("a.FCStd", `{"objects": {}}`).
		WithError("b.FCStd", boom)

	report, err := m.Run(context.Background(), "/models/a.FCStd")
	if err != nil {
		t.Fatalf("Run(a) error = %v", err)
	}
	if !report.Get("objects").IsObject() {
		t.Errorf("Run(a) report = %s, want objects", report.Raw)
	}

	if _, err := m.Run(context.Background(), "b.FCStd"); !errors.Is(err, boom) {
		t.Errorf("Run(b) error = %v, want %v", err, boom)
	}

	if _, err := m.Run(context.Background(), "c.FCStd"); err == nil {
		t.Error("Run(c) error = nil, want error for unconfigured input")
	}

	calls := m.Calls()
	want := []string{"/models/a.FCStd", "b.FCStd", "c.FCStd"}
	if len(calls) != len(want) {
		t.Fatalf("Calls() = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("Calls()[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestTool_RunFunc(t *testing.T) {
	t.Parallel()
	m := NewTool()
	m.RunFunc = func(ctx context.Context, input string) (gjson.Result, error) {
		return gjson.Parse(`{"input": "` + input + `"}`), nil
	}

	report, err := m.Run(context.Background(), "x.FCStd")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := report.Get("input").String(); got != "x.FCStd" {
		t.Errorf("input = %q, want %q", got, "x.FCStd")
	}
}

func TestTool_Reset(t *testing.T) {
	t.Parallel()
	m := NewTool().WithReport("a", `{}`)
	_, _ = m.Run(context.Background(), "a")

	m.Reset()

	if len(m.Calls()) != 0 {
		t.Errorf("Calls() after Reset = %v, want empty", m.Calls())
	}
}
