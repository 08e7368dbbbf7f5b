package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/santus/docxray/scan"
)

// WriteCSV exports the statistics table followed by a summary block.
// A run with zero findings still produces a well-formed artifact with
// the header and summary rows.
func WriteCSV(path string, stats scan.Statistics) error {
	f, err := os.Create(path)
	if err != nil {
		return &SinkError{Format: "csv", Path: path, Err: err}
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := [][]string{
		{"Category", "Sensitive Term", "Total Occurrences"},
	}
	for _, row := range sortedRows(stats) {
		records = append(records, []string{row.Category, row.Term, strconv.Itoa(row.Count)})
	}
	records = append(records,
		[]string{""},
		[]string{"Summary Statistics"},
		[]string{"Total files scanned", strconv.Itoa(stats.TotalFiles)},
		[]string{"Files with hits", strconv.Itoa(stats.FilesWithHits)},
		[]string{"Total matches found", strconv.Itoa(stats.TotalMatches)},
		[]string{"Unique terms found", strconv.Itoa(uniqueTerms(stats))},
		[]string{"Categories with findings", strconv.Itoa(len(stats.Occurrences))},
	)

	if err := w.WriteAll(records); err != nil {
		return &SinkError{Format: "csv", Path: path, Err: err}
	}
	return nil
}
