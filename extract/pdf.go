package extract

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfPages extracts one unit per PDF page. Pages without extractable
// text are skipped, so reported page numbers count text-bearing pages.
func pdfPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages []string
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// one broken page should not sink the document
			continue
		}
		if strings.TrimSpace(text) != "" {
			pages = append(pages, text)
		}
	}
	return pages, nil
}
