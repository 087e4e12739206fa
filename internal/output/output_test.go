package output

import (
	"bytes"
	"strings"
	"testing"
)

// newTestWriter creates a Writer with captured output for testing.
func newTestWriter() (*Writer, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	w := &Writer{
		out:   stdout,
		err:   stderr,
		color: false, // Disable color for predictable test output
		quiet: false,
	}
	return w, stdout, stderr
}

func TestNew(t *testing.T) {
	w := New()
	if w == nil {
		t.Fatal("New() returned nil")
	}
	if w.out == nil {
		t.Error("out writer is nil")
	}
	if w.err == nil {
		t.Error("err writer is nil")
	}
}

func TestWriter_SetQuiet(t *testing.T) {
	w, _, _ := newTestWriter()

	w.SetQuiet(true)
	if !w.Quiet() {
		t.Error("SetQuiet(true) did not set quiet")
	}

	w.SetQuiet(false)
	if w.Quiet() {
		t.Error("SetQuiet(false) did not unset quiet")
	}
}

func TestWriter_Println(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.Println("hello %s", "world")

	if got := stdout.String(); got != "hello world\n" {
		t.Errorf("Println() = %q, want %q", got, "hello world\n")
	}
}

func TestWriter_Errorln(t *testing.T) {
	w, _, stderr := newTestWriter()

	w.Errorln("error %d", 42)

	if got := stderr.String(); got != "error 42\n" {
		t.Errorf("Errorln() = %q, want %q", got, "error 42\n")
	}
}

func TestWriter_FileLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(w *Writer)
		want  string
	}{
		{
			name:  "ok",
			write: func(w *Writer) { w.FileOK("box", "solids=%d", 3) },
			want:  "[OK]   box: solids=3\n",
		},
		{
			name:  "fail",
			write: func(w *Writer) { w.FileFail("box", "%d issue(s)", 2) },
			want:  "[FAIL] box: 2 issue(s)\n",
		},
		{
			name:  "error",
			write: func(w *Writer) { w.FileError("box", "timed out after 300s") },
			want:  "[ERROR] box: timed out after 300s\n",
		},
		{
			name:  "issue",
			write: func(w *Writer) { w.Issue("missing_in_new: %s", "(A, 0)") },
			want:  "  - missing_in_new: (A, 0)\n",
		},
		{
			name:  "detail",
			write: func(w *Writer) { w.Detail("solids compared: %d", 4) },
			want:  "  solids compared: 4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, stdout, _ := newTestWriter()
			tt.write(w)
			if got := stdout.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriter_QuietSuppressesPassingOutput(t *testing.T) {
	w, stdout, _ := newTestWriter()
	w.SetQuiet(true)

	w.Info("starting")
	w.FileOK("box", "solids=1")
	w.Detail("solids compared: 1")
	w.FileFail("cyl", "%d issue(s)", 1)
	w.FileError("cone", "boom")

	want := "[FAIL] cyl: 1 issue(s)\n[ERROR] cone: boom\n"
	if got := stdout.String(); got != want {
		t.Errorf("quiet output = %q, want %q", got, want)
	}
}

func TestWriter_WarningAndErrorPrefix(t *testing.T) {
	w, stdout, stderr := newTestWriter()

	w.Warning("unknown field %q", "x")
	w.ErrorPrefix("path does not exist: %s", "/nope")

	want := "warning: unknown field \"x\"\nsolidcheck: path does not exist: /nope\n"
	if got := stderr.String(); got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestWriter_Summary(t *testing.T) {
	w, stdout, _ := newTestWriter()

	w.SummaryHeader("Summary")
	w.SummaryItem("Files checked", "3")
	w.SummaryPassed("OK", "2")
	w.SummaryFailed("Mismatched", "1")
	w.SummarySectionLabel("Issues by reason:")
	w.FinalFailure("Integration tests failed")

	want := "\n=== Summary ===\n\n" +
		"  Files checked: 3\n" +
		"  OK: 2\n" +
		"  Mismatched: 1\n" +
		"  Issues by reason:\n" +
		"\nIntegration tests failed\n"
	if got := stdout.String(); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestWriter_ColorCodes(t *testing.T) {
	stdout := &bytes.Buffer{}
	w := NewWithWriters(stdout, &bytes.Buffer{}, true)

	w.FileFail("box", "%d issue(s)", 1)
	w.FinalSuccess("Integration tests passed")

	got := stdout.String()
	if !strings.Contains(got, red+"[FAIL]"+reset) {
		t.Errorf("FileFail() = %q, want red tag", got)
	}
	if !strings.Contains(got, green+"Integration tests passed"+reset) {
		t.Errorf("FinalSuccess() = %q, want green message", got)
	}
}
