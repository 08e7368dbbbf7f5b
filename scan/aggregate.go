package scan

import (
	"path/filepath"
	"strings"

	"github.com/santus/docxray/dict"
)

// Statistics accumulates corpus-wide counters over a whole run.
type Statistics struct {
	// Occurrences maps category to matched surface form to the total
	// page count the term matched on, summed across all files.
	Occurrences   map[string]map[string]int
	TotalFiles    int
	FilesWithHits int
	TotalMatches  int
	// FileTypes counts scanned files per lowercased extension.
	FileTypes map[string]int
}

// FileReport pairs one scanned file with its findings. The sequence of
// reports preserves scan order and feeds the HTML sink.
type FileReport struct {
	Path     string
	Findings FileFindings
}

// Options control candidate enumeration for a run.
type Options struct {
	Recursive bool

	// OnStart observes the candidate set once enumeration finishes,
	// before the first file is scanned: the total count and the
	// per-extension histogram of what is about to be processed.
	OnStart func(total int, fileTypes map[string]int)
}

// FileHook observes each scanned file as the run progresses: its
// position, findings, and extraction error, if any. Used for console
// progress output; the hook never influences aggregation.
type FileHook func(index, total int, path string, findings FileFindings, err error)

// Aggregator folds per-file findings into corpus statistics. It is the
// sole owner of its state for the duration of a run; nothing else
// mutates it.
type Aggregator struct {
	Stats   Statistics
	Reports []FileReport
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		Stats: Statistics{
			Occurrences: make(map[string]map[string]int),
			FileTypes:   make(map[string]int),
		},
	}
}

// Fold merges one file's findings into the running statistics and
// appends its report record. Every scanned file is folded exactly once,
// findings or not.
func (a *Aggregator) Fold(path string, findings FileFindings) {
	a.Stats.TotalFiles++
	a.Stats.FileTypes[strings.ToLower(filepath.Ext(path))]++
	if len(findings) > 0 {
		a.Stats.FilesWithHits++
	}

	for category, byTerm := range findings {
		for surface, finding := range byTerm {
			count := len(finding.Pages)
			byCat := a.Stats.Occurrences[category]
			if byCat == nil {
				byCat = make(map[string]int)
				a.Stats.Occurrences[category] = byCat
			}
			byCat[surface] += count
			a.Stats.TotalMatches += count
		}
	}

	a.Reports = append(a.Reports, FileReport{Path: path, Findings: findings})
}

// Run scans every supported file under dir strictly sequentially in
// sorted order and folds the results. A file that cannot be decoded
// contributes zero findings and the run continues; only an empty
// candidate set aborts the run, with a NoFilesError.
func Run(dir string, m dict.Matcher, opts Options, hook FileHook) (*Aggregator, error) {
	files, err := WalkDir(dir, opts.Recursive)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, &NoFilesError{Dir: dir}
	}

	if opts.OnStart != nil {
		fileTypes := make(map[string]int)
		for _, path := range files {
			fileTypes[strings.ToLower(filepath.Ext(path))]++
		}
		opts.OnStart(len(files), fileTypes)
	}

	agg := NewAggregator()
	for i, path := range files {
		findings, err := ScanFile(path, m)
		agg.Fold(path, findings)
		if hook != nil {
			hook(i+1, len(files), path, findings, err)
		}
	}
	return agg, nil
}
