package tool

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool writes an executable shell script standing in for the geometry
// tool. The script receives: <script> <input> --out <path>.
func fakeTool(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-script fake tools require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-tool")
	script := "#!/bin/sh\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

// recordOutDir makes the fake tool note where it was asked to write, so tests
// can check the temp directory is gone afterwards.
func recordOutDir(t *testing.T) (string, string) {
	t.Helper()
	marker := filepath.Join(t.TempDir(), "outdir")
	return marker, `dirname "$4" > "` + marker + `"`
}

func assertTempDirRemoved(t *testing.T, marker string) {
	t.Helper()
	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	dir := strings.TrimSpace(string(data))
	require.NotEmpty(t, dir)
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "temp dir %s still exists", dir)
}

func TestCommand_Success(t *testing.T) {
	marker, record := recordOutDir(t)
	toolPath := fakeTool(t, record+`
[ "$3" = "--out" ] || exit 9
printf '{"input": "%s", "objects": {"Body": {"solids": [{"index": 0, "metrics": {"volume_mm3": 42.5}}]}}}' "$2" > "$4"`)

	cmd := NewCommand(toolPath, "metrics.FCMacro", 10*time.Second, nil)
	report, err := cmd.Run(context.Background(), "part.FCStd")

	require.NoError(t, err)
	assert.Equal(t, "part.FCStd", report.Get("input").String())
	assert.Equal(t, 42.5, report.Get("objects.Body.solids.0.metrics.volume_mm3").Float())
	assertTempDirRemoved(t, marker)
}

func TestCommand_NonZeroExit(t *testing.T) {
	marker, record := recordOutDir(t)
	toolPath := fakeTool(t, record+`
echo "partial stdout"
echo "  Traceback: boom  " >&2
exit 7`)

	_, err := NewCommand(toolPath, "s", 10*time.Second, nil).Run(context.Background(), "part.FCStd")

	var exitErr *NonZeroExitError
	require.True(t, stderrors.As(err, &exitErr), "got %v", err)
	assert.Equal(t, 7, exitErr.Code)
	assert.Equal(t, "Traceback: boom", exitErr.Stderr)
	assert.Equal(t, "partial stdout", exitErr.Stdout)
	assert.Contains(t, err.Error(), "rc=7")
	assertTempDirRemoved(t, marker)
}

func TestCommand_StdoutExcerptIsCapped(t *testing.T) {
	toolPath := fakeTool(t, `
i=0
while [ $i -lt 300 ]; do printf '0123456789'; i=$((i+1)); done
exit 1`)

	_, err := NewCommand(toolPath, "s", 10*time.Second, nil).Run(context.Background(), "x")

	var exitErr *NonZeroExitError
	require.True(t, stderrors.As(err, &exitErr))
	assert.Len(t, exitErr.Stdout, maxExcerpt)
}

func TestCommand_Timeout(t *testing.T) {
	marker, record := recordOutDir(t)
	toolPath := fakeTool(t, record+`
exec sleep 10`)

	start := time.Now()
	_, err := NewCommand(toolPath, "s", 200*time.Millisecond, nil).Run(context.Background(), "slow.FCStd")

	var timeoutErr *TimeoutError
	require.True(t, stderrors.As(err, &timeoutErr), "got %v", err)
	assert.Equal(t, 200*time.Millisecond, timeoutErr.Limit)
	assert.GreaterOrEqual(t, timeoutErr.Elapsed, 200*time.Millisecond)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, "timed out after 0.2s", err.Error())
	assertTempDirRemoved(t, marker)
}

func TestCommand_CanceledContext(t *testing.T) {
	toolPath := fakeTool(t, `exec sleep 10`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCommand(toolPath, "s", 0, nil).Run(ctx, "x")

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled), "got %v", err)
}

func TestCommand_EmptyOutput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty file", `: > "$4"`},
		{"whitespace only", `printf '  \n' > "$4"`},
		{"file not written", `exit 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marker, record := recordOutDir(t)
			toolPath := fakeTool(t, record+"\n"+tt.body)

			_, err := NewCommand(toolPath, "s", 10*time.Second, nil).Run(context.Background(), "x")

			assert.True(t, stderrors.Is(err, ErrEmptyOutput), "got %v", err)
			assertTempDirRemoved(t, marker)
		})
	}
}

func TestCommand_MalformedOutput(t *testing.T) {
	marker, record := recordOutDir(t)
	toolPath := fakeTool(t, record+`
printf '{"objects": ' > "$4"`)

	_, err := NewCommand(toolPath, "s", 10*time.Second, nil).Run(context.Background(), "x")

	var malformed *MalformedOutputError
	require.True(t, stderrors.As(err, &malformed), "got %v", err)
	assert.Equal(t, `{"objects":`, malformed.Excerpt)
	assert.NotNil(t, malformed.Unwrap())
	assert.Contains(t, err.Error(), "invalid JSON from tool")
	assertTempDirRemoved(t, marker)
}

func TestCommand_ToolNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-tool")

	_, err := NewCommand(missing, "s", time.Second, nil).Run(context.Background(), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to run")
	var exitErr *NonZeroExitError
	assert.False(t, stderrors.As(err, &exitErr))
}
