package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/santus/docxray/scan"
)

// WriteXLSX exports a two-sheet workbook: "Occurrences" with the
// statistics table and "Statistics" with the summary counters.
func WriteXLSX(path string, stats scan.Statistics) error {
	f := excelize.NewFile()
	defer f.Close()

	fail := func(err error) error {
		return &SinkError{Format: "xlsx", Path: path, Err: err}
	}

	const occSheet = "Occurrences"
	if err := f.SetSheetName("Sheet1", occSheet); err != nil {
		return fail(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fail(err)
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fail(err)
	}

	for i, header := range []string{"Category", "Sensitive Term", "Total Occurrences"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(occSheet, cell, header)
	}
	f.SetCellStyle(occSheet, "A1", "C1", headerStyle)

	row := 2
	for _, r := range sortedRows(stats) {
		f.SetCellValue(occSheet, fmt.Sprintf("A%d", row), r.Category)
		f.SetCellValue(occSheet, fmt.Sprintf("B%d", row), r.Term)
		f.SetCellValue(occSheet, fmt.Sprintf("C%d", row), r.Count)
		row++
	}
	f.SetColWidth(occSheet, "A", "A", 25)
	f.SetColWidth(occSheet, "B", "B", 30)
	f.SetColWidth(occSheet, "C", "C", 20)

	const statSheet = "Statistics"
	if _, err := f.NewSheet(statSheet); err != nil {
		return fail(err)
	}

	summary := [][2]string{
		{"Metric", "Value"},
		{"Total files scanned", strconv.Itoa(stats.TotalFiles)},
		{"Files with hits", strconv.Itoa(stats.FilesWithHits)},
		{"Total matches found", strconv.Itoa(stats.TotalMatches)},
		{"Unique terms found", strconv.Itoa(uniqueTerms(stats))},
		{"Categories with findings", strconv.Itoa(len(stats.Occurrences))},
	}
	for i, pair := range summary {
		f.SetCellValue(statSheet, fmt.Sprintf("A%d", i+1), pair[0])
		if i == 0 {
			f.SetCellValue(statSheet, fmt.Sprintf("B%d", i+1), pair[1])
			f.SetCellStyle(statSheet, "A1", "B1", headerStyle)
			continue
		}
		if n, err := strconv.Atoi(pair[1]); err == nil {
			f.SetCellValue(statSheet, fmt.Sprintf("B%d", i+1), n)
		}
		f.SetCellStyle(statSheet, fmt.Sprintf("A%d", i+1), fmt.Sprintf("A%d", i+1), labelStyle)
	}
	f.SetColWidth(statSheet, "A", "A", 30)
	f.SetColWidth(statSheet, "B", "B", 20)

	if err := f.SaveAs(path); err != nil {
		return fail(err)
	}
	return nil
}
