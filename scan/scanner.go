package scan

import (
	"strings"
	"unicode/utf8"

	"github.com/santus/docxray/dict"
	"github.com/santus/docxray/extract"
)

// contextChars is the window captured on each side of a match.
const contextChars = 40

// MatchContext is a fixed-width snippet around the first occurrence of a
// term within a file, with ellipses marking clipped edges.
type MatchContext struct {
	Before  string
	Matched string
	After   string
	Page    int
}

// TermFinding records where one matched surface form was seen in a file:
// one Pages entry per page with at least one match, and at most one
// representative context, taken from the first match in the file.
type TermFinding struct {
	Pages    []int
	Contexts []MatchContext
}

// FileFindings maps category to matched surface form (the literal text
// found, not the dictionary spelling) to its finding. A category key is
// present only if one of its terms matched.
type FileFindings map[string]map[string]*TermFinding

// ScanFile extracts a file and applies every compiled pattern to each
// page. An extraction failure is returned alongside empty findings so
// the caller can log it and continue; an empty page sequence is simply
// a file with no findings.
func ScanFile(path string, m dict.Matcher) (FileFindings, error) {
	pages, err := extract.Extract(path)
	if err != nil {
		return FileFindings{}, err
	}
	return scanPages(pages, m), nil
}

func scanPages(pages []string, m dict.Matcher) FileFindings {
	findings := make(FileFindings)
	for i, page := range pages {
		pageNum := i + 1
		text := normalize(page)

		for category, patterns := range m {
			for _, pattern := range patterns {
				spans := pattern.FindAll(text)
				if len(spans) == 0 {
					continue
				}

				// key by the surface actually matched on this page
				surface := text[spans[0][0]:spans[0][1]]

				byTerm := findings[category]
				if byTerm == nil {
					byTerm = make(map[string]*TermFinding)
					findings[category] = byTerm
				}
				finding := byTerm[surface]
				if finding == nil {
					finding = &TermFinding{}
					byTerm[surface] = finding
				}

				// one entry per page, regardless of match count within it
				finding.Pages = append(finding.Pages, pageNum)
				if len(finding.Contexts) == 0 {
					finding.Contexts = append(finding.Contexts,
						matchContext(text, spans[0][0], spans[0][1], pageNum))
				}
			}
		}
	}
	return findings
}

// normalize collapses runs of whitespace into single spaces.
func normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// matchContext captures up to contextChars characters on each side of
// the match. Window edges are snapped back to rune boundaries so UTF-8
// sequences are never split.
func matchContext(text string, start, end, page int) MatchContext {
	from := start - contextChars
	if from < 0 {
		from = 0
	}
	for from > 0 && !utf8.RuneStart(text[from]) {
		from--
	}
	to := end + contextChars
	if to > len(text) {
		to = len(text)
	}
	for to < len(text) && !utf8.RuneStart(text[to]) {
		to++
	}

	before := text[from:start]
	after := text[end:to]
	if from > 0 {
		before = "..." + before
	}
	if to < len(text) {
		after = after + "..."
	}
	return MatchContext{Before: before, Matched: text[start:end], After: after, Page: page}
}
