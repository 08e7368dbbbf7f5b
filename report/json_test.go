package report

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santus/docxray/scan"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteJSON(path, sampleStats()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc jsonReport
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, 4, doc.Summary.TotalFilesScanned)
	assert.Equal(t, 2, doc.Summary.FilesWithHits)
	assert.Equal(t, 6, doc.Summary.TotalMatches)
	assert.Equal(t, 3, doc.Summary.UniqueTermsFound)
	assert.Equal(t, 2, doc.Summary.CategoriesWithFindings)

	_, err = uuid.Parse(doc.Summary.RunID)
	assert.NoError(t, err, "run_id must be a valid UUID")
	_, err = time.Parse(time.RFC3339, doc.Summary.ScanTimestamp)
	assert.NoError(t, err, "scan_timestamp must be RFC3339")

	assert.Equal(t, map[string]int{".pdf": 2, ".txt": 2}, doc.FileTypes)
	require.Contains(t, doc.Findings, "credentials")
	assert.Equal(t, []jsonTerm{
		{Term: "password", Occurrences: 3},
		{Term: "api key", Occurrences: 1},
	}, doc.Findings["credentials"], "per-category terms keep the count-descending order")
}

func TestWriteJSONNoFindings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, WriteJSON(path, scan.Statistics{TotalFiles: 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// empty maps serialize as {}, never null
	assert.Contains(t, string(data), `"findings": {}`)
	assert.Contains(t, string(data), `"file_types": {}`)
}

func TestWriteJSONBadPath(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "missing", "report.json"), sampleStats())

	var sinkErr *SinkError
	require.Error(t, err)
	assert.True(t, errors.As(err, &sinkErr))
	assert.Equal(t, "json", sinkErr.Format)
}
