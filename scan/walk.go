// Package scan applies compiled sensitive-word matchers to a directory
// of documents and folds the per-file findings into corpus statistics.
package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/santus/docxray/extract"
)

// NoFilesError reports a scan root that contains no supported files.
// The run ends without producing reports, but it is not a crash.
type NoFilesError struct {
	Dir string
}

func (e *NoFilesError) Error() string {
	return fmt.Sprintf("no supported files found in %s", e.Dir)
}

// WalkDir collects the supported files under dir. With recursive false
// only the top-level directory is considered. Hidden entries (dot-prefixed
// files and directories) are skipped. The result is sorted
// lexicographically so runs are reproducible across platforms.
func WalkDir(dir string, recursive bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == dir {
			return nil
		}
		hidden := strings.HasPrefix(d.Name(), ".")
		if d.IsDir() {
			if !recursive || hidden {
				return filepath.SkipDir
			}
			return nil
		}
		if !hidden && d.Type().IsRegular() && extract.Supported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
