// Package discover locates the input model files of a run and resolves the
// baseline report that belongs to each of them.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/AndreyAkinshin/solidcheck/internal/errors"
)

// DefaultPattern matches FreeCAD documents.
const DefaultPattern = "*.FCStd"

// CheckPaths fails with a discovery error naming the first path that does not exist.
func CheckPaths(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				return errors.Discoveryf("path does not exist: %s", p)
			}
			return &errors.Error{Kind: errors.KindDiscovery, Message: fmt.Sprintf("cannot access %s", p), Cause: err}
		}
	}
	return nil
}

// FindInputs returns the regular files under root whose name matches
// pattern, sorted. With recursive set, subdirectories are searched as well.
// An empty result is a discovery error.
func FindInputs(root, pattern string, recursive bool) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, errors.Configf("invalid input pattern %q", pattern)
	}
	if recursive {
		pattern = "**/" + pattern
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, &errors.Error{Kind: errors.KindDiscovery, Message: fmt.Sprintf("failed to scan %s", root), Cause: err}
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		files = append(files, filepath.Join(root, filepath.FromSlash(m)))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, errors.Discoveryf("no %s files found in: %s", pattern, root)
	}
	return files, nil
}

// Stem returns the file name without directory and final extension:
// "models/bracket.FCStd" -> "bracket".
func Stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
