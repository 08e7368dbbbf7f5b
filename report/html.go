package report

import (
	"html/template"
	"os"
	"time"

	"github.com/santus/docxray/scan"
)

// htmlLabels holds the report-language strings. Unknown languages fall
// back to English.
var htmlLabels = map[string]map[string]string{
	"en": {
		"title":         "Sensitive Content Scan Report",
		"generated":     "Generated",
		"list":          "Sensitivity list",
		"totalFiles":    "Total files scanned",
		"filesWithHits": "Files with hits",
		"totalMatches":  "Total matches found",
		"uniqueTerms":   "Unique terms found",
		"categories":    "Categories with findings",
		"fileTypes":     "File types",
		"summary":       "Summary",
		"byCategory":    "Findings by category",
		"category":      "Category",
		"term":          "Sensitive Term",
		"count":         "Total Occurrences",
		"perFile":       "Per-file results",
		"pages":         "Pages",
		"context":       "Context",
		"clean":         "No sensitive terms found",
		"noFindings":    "No sensitive terms were found in any scanned file.",
	},
	"cz": {
		"title":         "Zpráva o skenování citlivého obsahu",
		"generated":     "Vygenerováno",
		"list":          "Seznam citlivých slov",
		"totalFiles":    "Celkem prohledaných souborů",
		"filesWithHits": "Soubory s nálezy",
		"totalMatches":  "Celkem nalezených shod",
		"uniqueTerms":   "Nalezené unikátní výrazy",
		"categories":    "Kategorie s nálezy",
		"fileTypes":     "Typy souborů",
		"summary":       "Souhrn",
		"byCategory":    "Nálezy podle kategorie",
		"category":      "Kategorie",
		"term":          "Citlivý výraz",
		"count":         "Celkem výskytů",
		"perFile":       "Výsledky podle souborů",
		"pages":         "Stránky",
		"context":       "Kontext",
		"clean":         "Žádné citlivé výrazy nenalezeny",
		"noFindings":    "V žádném prohledaném souboru nebyly nalezeny citlivé výrazy.",
	},
}

type htmlTerm struct {
	Surface string
	Count   int
	Pages   string
	Context *scan.MatchContext
}

type htmlCategory struct {
	Name  string
	Terms []htmlTerm
}

type htmlFile struct {
	Path       string
	Clean      bool
	Categories []htmlCategory
}

type extCount struct {
	Ext   string
	Count int
}

// HTMLData is the full data contract of the HTML report template.
type HTMLData struct {
	L             map[string]string
	Lang          string
	List          string
	GeneratedAt   string
	TotalFiles    int
	FilesWithHits int
	TotalMatches  int
	UniqueTerms   int
	Categories    int
	FileTypes     []extCount
	Rows          []statRow
	Files         []htmlFile
}

// BuildHTMLData assembles the template input from the per-file report
// records and the corpus statistics.
func BuildHTMLData(reports []scan.FileReport, stats scan.Statistics, list, lang string) HTMLData {
	labels, ok := htmlLabels[lang]
	if !ok {
		labels = htmlLabels["en"]
	}

	data := HTMLData{
		L:             labels,
		Lang:          lang,
		List:          list,
		GeneratedAt:   time.Now().Format("2006-01-02 15:04:05"),
		TotalFiles:    stats.TotalFiles,
		FilesWithHits: stats.FilesWithHits,
		TotalMatches:  stats.TotalMatches,
		UniqueTerms:   uniqueTerms(stats),
		Categories:    len(stats.Occurrences),
		Rows:          sortedRows(stats),
	}

	for _, ext := range sortedKeys(stats.FileTypes) {
		data.FileTypes = append(data.FileTypes, extCount{Ext: ext, Count: stats.FileTypes[ext]})
	}

	for _, rep := range reports {
		file := htmlFile{Path: rep.Path, Clean: len(rep.Findings) == 0}
		for _, category := range sortedKeys(rep.Findings) {
			cat := htmlCategory{Name: category}
			byTerm := rep.Findings[category]
			for _, surface := range sortedKeys(byTerm) {
				finding := byTerm[surface]
				term := htmlTerm{
					Surface: surface,
					Count:   len(finding.Pages),
					Pages:   pageList(finding.Pages),
				}
				if len(finding.Contexts) > 0 {
					term.Context = &finding.Contexts[0]
				}
				cat.Terms = append(cat.Terms, term)
			}
			file.Categories = append(file.Categories, cat)
		}
		data.Files = append(data.Files, file)
	}
	return data
}

// WriteHTML renders the report template to path.
func WriteHTML(tmpl *template.Template, path string, reports []scan.FileReport, stats scan.Statistics, list, lang string) error {
	f, err := os.Create(path)
	if err != nil {
		return &SinkError{Format: "html", Path: path, Err: err}
	}
	defer f.Close()

	data := BuildHTMLData(reports, stats, list, lang)
	if err := tmpl.ExecuteTemplate(f, "report.html", data); err != nil {
		return &SinkError{Format: "html", Path: path, Err: err}
	}
	return nil
}
