package discover

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// ErrBaselineMissing is returned by Resolve when an input has no baseline file.
var ErrBaselineMissing = stderrors.New("baseline missing")

// BaselineResolver maps an input file to its baseline report.
type BaselineResolver interface {
	Resolve(input string) (string, error)
	Load(path string) (gjson.Result, error)
}

// Baselines resolves baselines by naming convention: <Dir>/<stem>.json.
type Baselines struct {
	Dir string
}

// Path returns the baseline location for input, whether or not it exists.
func (b Baselines) Path(input string) string {
	return filepath.Join(b.Dir, Stem(input)+".json")
}

// Resolve returns the baseline path for input, or an error wrapping
// ErrBaselineMissing when the file does not exist.
func (b Baselines) Resolve(input string) (string, error) {
	path := b.Path(input)
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return path, fmt.Errorf("%w: %s", ErrBaselineMissing, path)
		}
		return path, err
	}
	if info.IsDir() {
		return path, fmt.Errorf("%w: %s is a directory", ErrBaselineMissing, path)
	}
	return path, nil
}

// Load reads and parses a baseline report. Unreadable files and invalid JSON
// are errors; the report's shape is not checked here.
func (b Baselines) Load(path string) (gjson.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("failed to read baseline: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return gjson.Result{}, fmt.Errorf("invalid JSON in baseline %s", path)
	}
	return gjson.ParseBytes(data), nil
}
