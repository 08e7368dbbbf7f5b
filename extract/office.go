package extract

import (
	"archive/zip"
	"cmp"
	"encoding/xml"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"
)

// wordPages returns the body, header and footer text of a DOCX file as
// a single synthetic page.
func wordPages(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var parts []string
	for _, f := range zr.File {
		if f.Name != "word/document.xml" &&
			!strings.HasPrefix(f.Name, "word/header") &&
			!strings.HasPrefix(f.Name, "word/footer") {
			continue
		}
		text, err := zipEntryCharData(f)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return []string{strings.Join(parts, " ")}, nil
}

// slidePages returns one unit per PPTX slide, in slide order. The zip
// directory does not guarantee ordering, so slides are sorted by the
// number embedded in the entry name.
func slidePages(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	type slide struct {
		num  int
		text string
	}
	var slides []slide
	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, "ppt/slides/slide") || !strings.HasSuffix(f.Name, ".xml") {
			continue
		}
		num, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(f.Name, "ppt/slides/slide"), ".xml"))
		if err != nil {
			continue
		}
		text, err := zipEntryCharData(f)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		slides = append(slides, slide{num: num, text: text})
	}

	slices.SortFunc(slides, func(a, b slide) int { return cmp.Compare(a.num, b.num) })
	pages := make([]string, 0, len(slides))
	for _, s := range slides {
		pages = append(pages, s.text)
	}
	return pages, nil
}

// odfPages extracts text from the content.xml of an OpenDocument file.
// container groups character data into units by XML element local name:
// "table" yields one unit per ODS sheet, "page" one per ODP slide, and
// the empty string collapses the whole document (ODT) into one unit.
func odfPages(path, container string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var entry *zip.File
	for _, f := range zr.File {
		if f.Name == "content.xml" {
			entry = f
			break
		}
	}
	if entry == nil {
		return nil, errors.New("content.xml not found")
	}

	rc, err := entry.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var pages []string
	var buf strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if container != "" && t.Name.Local == container {
				depth++
			}
		case xml.EndElement:
			if container != "" && t.Name.Local == container {
				depth--
				if depth == 0 {
					if s := strings.TrimSpace(buf.String()); s != "" {
						pages = append(pages, s)
					}
					buf.Reset()
				}
			}
		case xml.CharData:
			if container == "" || depth > 0 {
				buf.Write(t)
				buf.WriteByte(' ')
			}
		}
	}
	if container == "" {
		if s := strings.TrimSpace(buf.String()); s != "" {
			pages = append(pages, s)
		}
	}
	return pages, nil
}

// zipEntryCharData concatenates the XML character data of one zip entry,
// separating adjacent text nodes with spaces.
func zipEntryCharData(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	dec := xml.NewDecoder(rc)
	var buf strings.Builder
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if cd, ok := tok.(xml.CharData); ok {
			buf.Write(cd)
			buf.WriteByte(' ')
		}
	}
	return buf.String(), nil
}
