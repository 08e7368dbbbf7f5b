package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/santus/docxray/scan"
)

const rule = "================================================================================"

// Console renders per-file findings and the end-of-run summary. All
// output goes through the injected writer so tests can capture it.
type Console struct {
	out io.Writer

	cyan      *color.Color
	cyanBold  *color.Color
	green     *color.Color
	yellow    *color.Color
	red       *color.Color
	redBold   *color.Color
	blue      *color.Color
	magenta   *color.Color
	greenBold *color.Color
}

func NewConsole(out io.Writer) *Console {
	return &Console{
		out:       out,
		cyan:      color.New(color.FgCyan),
		cyanBold:  color.New(color.FgCyan, color.Bold),
		green:     color.New(color.FgGreen),
		yellow:    color.New(color.FgYellow, color.Bold),
		red:       color.New(color.FgRed),
		redBold:   color.New(color.FgRed, color.Bold),
		blue:      color.New(color.FgBlue),
		magenta:   color.New(color.FgMagenta),
		greenBold: color.New(color.FgGreen, color.Bold),
	}
}

// Start announces the run once the candidate set is known: the file
// count and the per-extension histogram of what is about to be scanned.
func (c *Console) Start(total int, fileTypes map[string]int) {
	c.greenBold.Fprintf(c.out, "\nStarting scan of %d file(s)...\n", total)
	if len(fileTypes) > 0 {
		parts := make([]string, 0, len(fileTypes))
		for _, ext := range sortedKeys(fileTypes) {
			parts = append(parts, fmt.Sprintf("%s (%d)", ext, fileTypes[ext]))
		}
		c.cyan.Fprintf(c.out, "File types found: %s\n", strings.Join(parts, ", "))
	}
	fmt.Fprintln(c.out)
}

// Progress prints the running [i/total] marker before each file.
func (c *Console) Progress(index, total int) {
	c.cyan.Fprintf(c.out, "[%d/%d] ", index, total)
}

// Error surfaces a per-file or per-sink failure without stopping the run.
func (c *Console) Error(err error) {
	c.red.Fprintf(c.out, "[ERROR] %v\n", err)
}

// Ok reports a successfully written artifact.
func (c *Console) Ok(format, msg string, args ...any) {
	c.green.Fprintf(c.out, "[OK] %s: %s\n", format, fmt.Sprintf(msg, args...))
}

// Infof prints a cyan informational line, used for configuration echo.
func (c *Console) Infof(msg string, args ...any) {
	c.cyan.Fprintf(c.out, msg+"\n", args...)
}

// FileResults prints one file's findings with a representative context
// snippet per term.
func (c *Console) FileResults(name string, findings scan.FileFindings) {
	c.cyan.Fprintf(c.out, "\n%s\n", rule)
	c.cyanBold.Fprintf(c.out, "File: %s\n", name)
	c.cyan.Fprintf(c.out, "%s\n", rule)

	if len(findings) == 0 {
		c.green.Fprintln(c.out, "[OK] No sensitive terms found.")
		return
	}

	for _, category := range sortedKeys(findings) {
		c.yellow.Fprintf(c.out, "\nCategory: %s\n", category)

		byTerm := findings[category]
		for _, surface := range sortedKeys(byTerm) {
			finding := byTerm[surface]

			c.red.Fprintf(c.out, "\n  [!] %q", surface)
			fmt.Fprint(c.out, " - ")
			c.magenta.Fprintf(c.out, "%d occurrence(s)", len(finding.Pages))
			fmt.Fprintf(c.out, " on page(s): %s\n", pageList(finding.Pages))

			if len(finding.Contexts) > 0 {
				ctx := finding.Contexts[0]
				c.blue.Fprintf(c.out, "  Context (page %d): ", ctx.Page)
				fmt.Fprintf(c.out, "%s%s%s\n", ctx.Before, c.redBold.Sprint(ctx.Matched), ctx.After)
			}
		}
	}
}

// Summary prints the corpus-wide statistics table and overall counters.
func (c *Console) Summary(stats scan.Statistics) {
	c.cyan.Fprintf(c.out, "\n%s\n", rule)
	c.cyanBold.Fprintln(c.out, "SUMMARY STATISTICS")
	c.cyan.Fprintf(c.out, "%s\n\n", rule)

	if len(stats.Occurrences) == 0 {
		c.green.Fprintln(c.out, "[OK] No sensitive terms found in any files.")
	} else {
		w := tabwriter.NewWriter(c.out, 2, 4, 3, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tSENSITIVE TERM\tTOTAL OCCURRENCES")
		for _, row := range sortedRows(stats) {
			fmt.Fprintf(w, "%s\t%s\t%d\n", row.Category, row.Term, row.Count)
		}
		w.Flush()
	}

	c.greenBold.Fprintln(c.out, "\nOverall Summary:")
	fmt.Fprintf(c.out, "  - Total files scanned: %d\n", stats.TotalFiles)
	fmt.Fprintf(c.out, "  - Total matches found: %d\n", stats.TotalMatches)
	fmt.Fprintf(c.out, "  - Files with hits: %d\n", stats.FilesWithHits)
	fmt.Fprintf(c.out, "  - Unique terms found: %d\n", uniqueTerms(stats))
	fmt.Fprintf(c.out, "  - Categories with findings: %d\n\n", len(stats.Occurrences))
}

// pageList renders the distinct matching pages in ascending order,
// e.g. "1, 3, 7".
func pageList(pages []int) string {
	seen := make(map[int]bool, len(pages))
	distinct := make([]int, 0, len(pages))
	for _, p := range pages {
		if !seen[p] {
			seen[p] = true
			distinct = append(distinct, p)
		}
	}
	// pages arrive in scan order, which is ascending per file
	parts := make([]string, len(distinct))
	for i, p := range distinct {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
