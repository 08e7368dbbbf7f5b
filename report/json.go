package report

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/santus/docxray/scan"
)

type jsonSummary struct {
	TotalFilesScanned      int    `json:"total_files_scanned"`
	FilesWithHits          int    `json:"files_with_hits"`
	TotalMatches           int    `json:"total_matches"`
	UniqueTermsFound       int    `json:"unique_terms_found"`
	CategoriesWithFindings int    `json:"categories_with_findings"`
	ScanTimestamp          string `json:"scan_timestamp"`
	RunID                  string `json:"run_id"`
}

type jsonTerm struct {
	Term        string `json:"term"`
	Occurrences int    `json:"occurrences"`
}

type jsonReport struct {
	Summary   jsonSummary           `json:"summary"`
	FileTypes map[string]int        `json:"file_types"`
	Findings  map[string][]jsonTerm `json:"findings"`
}

// WriteJSON exports the statistics as a machine-readable document. A run
// with zero findings produces an empty findings object, not null.
func WriteJSON(path string, stats scan.Statistics) error {
	doc := jsonReport{
		Summary: jsonSummary{
			TotalFilesScanned:      stats.TotalFiles,
			FilesWithHits:          stats.FilesWithHits,
			TotalMatches:           stats.TotalMatches,
			UniqueTermsFound:       uniqueTerms(stats),
			CategoriesWithFindings: len(stats.Occurrences),
			ScanTimestamp:          time.Now().Format(time.RFC3339),
			RunID:                  uuid.NewString(),
		},
		FileTypes: map[string]int{},
		Findings:  map[string][]jsonTerm{},
	}
	for ext, count := range stats.FileTypes {
		doc.FileTypes[ext] = count
	}
	for _, row := range sortedRows(stats) {
		doc.Findings[row.Category] = append(doc.Findings[row.Category],
			jsonTerm{Term: row.Term, Occurrences: row.Count})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &SinkError{Format: "json", Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &SinkError{Format: "json", Path: path, Err: err}
	}
	return nil
}
