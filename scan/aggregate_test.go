package scan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santus/docxray/dict"
)

func TestFoldAccumulatesOccurrences(t *testing.T) {
	agg := NewAggregator()

	// file A: "ssn" matched on 2 pages; file B: "ssn" on 1 page
	agg.Fold("a.pdf", FileFindings{
		"personal": {"ssn": &TermFinding{Pages: []int{1, 3}}},
	})
	agg.Fold("b.txt", FileFindings{
		"personal": {"ssn": &TermFinding{Pages: []int{1}}},
	})

	assert.Equal(t, 3, agg.Stats.Occurrences["personal"]["ssn"])
	assert.Equal(t, 3, agg.Stats.TotalMatches)
	assert.Equal(t, 2, agg.Stats.TotalFiles)
	assert.Equal(t, 2, agg.Stats.FilesWithHits)
	assert.Equal(t, map[string]int{".pdf": 1, ".txt": 1}, agg.Stats.FileTypes)
	require.Len(t, agg.Reports, 2)
	assert.Equal(t, "a.pdf", agg.Reports[0].Path)
	assert.Equal(t, "b.txt", agg.Reports[1].Path)
}

func TestFoldEmptyFindings(t *testing.T) {
	agg := NewAggregator()
	agg.Fold("clean.txt", FileFindings{})

	assert.Equal(t, 1, agg.Stats.TotalFiles)
	assert.Equal(t, 0, agg.Stats.FilesWithHits)
	assert.Equal(t, 0, agg.Stats.TotalMatches)
	require.Len(t, agg.Reports, 1, "clean files still get a report record")
	assert.Empty(t, agg.Reports[0].Findings)
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestRun(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt":       "the password is hidden",
		"b.md":        "nothing to see",
		"sub/c.txt":   "password and password again",
		"ignored.xyz": "password everywhere",
	})
	m := dict.Compile(dict.Dictionary{"credentials": {"password"}}, false)

	t.Run("top level only", func(t *testing.T) {
		var order []string
		agg, err := Run(dir, m, Options{Recursive: false},
			func(index, total int, path string, findings FileFindings, err error) {
				require.NoError(t, err)
				assert.Equal(t, 2, total)
				order = append(order, filepath.Base(path))
			})
		require.NoError(t, err)

		assert.Equal(t, []string{"a.txt", "b.md"}, order, "sorted, sub/ skipped")
		assert.Equal(t, 2, agg.Stats.TotalFiles)
		assert.Equal(t, 1, agg.Stats.FilesWithHits)
		assert.Equal(t, 1, agg.Stats.Occurrences["credentials"]["password"])
	})

	t.Run("recursive", func(t *testing.T) {
		agg, err := Run(dir, m, Options{Recursive: true}, nil)
		require.NoError(t, err)

		assert.Equal(t, 3, agg.Stats.TotalFiles)
		assert.Equal(t, 2, agg.Stats.FilesWithHits)
		// c.txt matches twice on its single page, which still counts one page
		assert.Equal(t, 2, agg.Stats.Occurrences["credentials"]["password"])
		assert.Equal(t, map[string]int{".txt": 2, ".md": 1}, agg.Stats.FileTypes)
	})
}

func TestRunAnnouncesFileTypesUpfront(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt": "one",
		"b.txt": "two",
		"c.md":  "three",
	})
	m := dict.Compile(dict.Dictionary{"credentials": {"password"}}, false)

	var (
		startTotal int
		startTypes map[string]int
		scanned    int
	)
	_, err := Run(dir, m, Options{
		OnStart: func(total int, fileTypes map[string]int) {
			startTotal = total
			startTypes = fileTypes
			assert.Zero(t, scanned, "OnStart fires before any file is scanned")
		},
	}, func(index, total int, path string, findings FileFindings, err error) {
		scanned++
	})
	require.NoError(t, err)

	assert.Equal(t, 3, startTotal)
	assert.Equal(t, map[string]int{".txt": 2, ".md": 1}, startTypes)
	assert.Equal(t, 3, scanned)
}

func TestRunDeterministic(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"one.txt":   "password here",
		"two.txt":   "iban and password",
		"three.txt": "clean file",
	})
	m := dict.Compile(dict.Dictionary{
		"credentials": {"password"},
		"financial":   {"iban"},
	}, false)

	first, err := Run(dir, m, Options{Recursive: false}, nil)
	require.NoError(t, err)
	second, err := Run(dir, m, Options{Recursive: false}, nil)
	require.NoError(t, err)

	assert.True(t, reflect.DeepEqual(first.Stats, second.Stats))
	require.Equal(t, len(first.Reports), len(second.Reports))
	for i := range first.Reports {
		assert.Equal(t, first.Reports[i].Path, second.Reports[i].Path)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	agg, err := Run(t.TempDir(), dict.Matcher{}, Options{}, nil)

	var noFiles *NoFilesError
	require.Error(t, err)
	assert.True(t, errors.As(err, &noFiles))
	assert.Nil(t, agg)
}

func TestRunContinuesPastBrokenFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"broken.docx": "not really a zip archive",
		"good.txt":    "the password is here",
	})
	m := dict.Compile(dict.Dictionary{"credentials": {"password"}}, false)

	var failed []string
	agg, err := Run(dir, m, Options{}, func(index, total int, path string, findings FileFindings, err error) {
		if err != nil {
			failed = append(failed, filepath.Base(path))
		}
	})
	require.NoError(t, err, "a broken file never aborts the run")

	assert.Equal(t, []string{"broken.docx"}, failed)
	assert.Equal(t, 2, agg.Stats.TotalFiles)
	assert.Equal(t, 1, agg.Stats.FilesWithHits)
}
