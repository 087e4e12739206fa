package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    slog.Level
	}{
		{"default", false, false, slog.LevelInfo},
		{"verbose", true, false, slog.LevelDebug},
		{"quiet", false, true, slog.LevelWarn},
		{"quiet wins", true, true, slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LevelFor(tt.verbose, tt.quiet))
		})
	}
}

func TestNew_PlainWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)

	log.Debug("hidden")
	log.Info("tool finished", slog.String("file", "a.FCStd"))

	got := buf.String()
	assert.NotContains(t, got, "hidden")
	assert.Contains(t, got, "level=info")
	assert.Contains(t, got, `msg="tool finished"`)
	assert.Contains(t, got, "file=a.FCStd")
	assert.NotContains(t, got, "time=")
}

func TestNew_DebugLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := New(&buf, LevelFor(true, false))

	log.Debug("skipped report entry")

	assert.Contains(t, buf.String(), "level=debug")
}

func TestIsTerminal_NonFile(t *testing.T) {
	t.Parallel()

	assert.False(t, isTerminal(&bytes.Buffer{}))
}
