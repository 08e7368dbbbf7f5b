// Package report renders scan results: colored console output plus
// HTML, CSV, XLSX and JSON artifacts. Every sink consumes the
// aggregator's statistics as-is; failures are per-sink and never stop
// another sink from running.
package report

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/santus/docxray/scan"
)

// SinkError reports a report artifact that could not be written.
type SinkError struct {
	Format string
	Path   string
	Err    error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("%s report %s: %v", e.Format, e.Path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// statRow is one category/term/count line of the statistics table.
type statRow struct {
	Category string
	Term     string
	Count    int
}

// sortedRows flattens Occurrences into rows ordered by category, then
// count descending, then term. The term tie-break keeps output
// deterministic across runs.
func sortedRows(stats scan.Statistics) []statRow {
	var rows []statRow
	for category, byTerm := range stats.Occurrences {
		for term, count := range byTerm {
			rows = append(rows, statRow{Category: category, Term: term, Count: count})
		}
	}
	slices.SortFunc(rows, func(a, b statRow) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Term, b.Term)
	})
	return rows
}

func uniqueTerms(stats scan.Statistics) int {
	n := 0
	for _, byTerm := range stats.Occurrences {
		n += len(byTerm)
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
