// Package extract turns document and source files into ordered,
// page-like text units. The unit granularity depends on the format:
// PDFs yield one unit per page, spreadsheets one per sheet, slide decks
// one per slide, and everything else collapses into a single unit.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// FileKind identifies the extraction strategy for a file.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindPDF
	KindWord
	KindSheet
	KindSlides
	KindRTF
	KindODT
	KindODS
	KindODP
	KindNotebook
	KindText
)

var kindNames = map[FileKind]string{
	KindUnknown:  "unknown",
	KindPDF:      "pdf",
	KindWord:     "word",
	KindSheet:    "spreadsheet",
	KindSlides:   "presentation",
	KindRTF:      "rtf",
	KindODT:      "odt",
	KindODS:      "ods",
	KindODP:      "odp",
	KindNotebook: "notebook",
	KindText:     "text",
}

func (k FileKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error reports a file that could not be decoded. Callers treat it as
// "zero findings" for that file; it never aborts a run.
type Error struct {
	Path string
	Kind FileKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var kindByExt = map[string]FileKind{
	".pdf":   KindPDF,
	".docx":  KindWord,
	".doc":   KindWord,
	".xlsx":  KindSheet,
	".xls":   KindSheet,
	".pptx":  KindSlides,
	".ppt":   KindSlides,
	".rtf":   KindRTF,
	".odt":   KindODT,
	".ods":   KindODS,
	".odp":   KindODP,
	".ipynb": KindNotebook,
}

// textExts is the allow-list of extensions read as plain text:
// programming languages, web assets, config, markup and data files.
var textExts = map[string]bool{
	".txt": true, ".md": true, ".markdown": true, ".rst": true, ".tex": true,
	".py": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".java": true, ".cpp": true, ".c": true, ".h": true, ".hpp": true,
	".cs": true, ".php": true, ".rb": true, ".go": true, ".rs": true,
	".swift": true, ".kt": true, ".scala": true, ".r": true, ".m": true,
	".lua": true, ".pl": true, ".sh": true, ".bash": true, ".zsh": true,
	".fish": true, ".ps1": true,
	".html": true, ".htm": true, ".css": true, ".scss": true, ".sass": true,
	".less": true, ".vue": true, ".svelte": true,
	".json": true, ".yaml": true, ".yml": true, ".toml": true, ".ini": true,
	".cfg": true, ".conf": true, ".config": true, ".properties": true, ".env": true,
	".xml": true, ".csv": true, ".tsv": true,
	".gradle": true, ".maven": true, ".sbt": true, ".rake": true, ".make": true,
	".cmake": true,
	".dockerfile": true, ".dockerignore": true, ".containerfile": true,
	".gitignore": true, ".gitattributes": true, ".editorconfig": true,
	".htaccess": true, ".npmrc": true, ".babelrc": true, ".eslintrc": true,
	".prettierrc": true, ".stylelintrc": true, ".jshintrc": true,
	".ansible": true, ".terraform": true, ".tf": true, ".tfvars": true,
}

// KindForPath maps a file path to its extraction kind by extension
// (ASCII case-insensitive). Text-like extensions fall back to KindText;
// everything unrecognized is KindUnknown and is never scanned.
func KindForPath(path string) FileKind {
	ext := strings.ToLower(filepath.Ext(path))
	if kind, ok := kindByExt[ext]; ok {
		return kind
	}
	if textExts[ext] {
		return KindText
	}
	return KindUnknown
}

// Supported reports whether the file would be picked up by a scan.
func Supported(path string) bool {
	return KindForPath(path) != KindUnknown
}

// Extract returns the ordered page-like text units of a file. Blank
// units are dropped, so an empty or unreadable document yields an empty
// slice. Decode failures are returned as *Error.
func Extract(path string) ([]string, error) {
	kind := KindForPath(path)

	var pages []string
	var err error
	switch kind {
	case KindPDF:
		pages, err = pdfPages(path)
	case KindWord:
		pages, err = wordPages(path)
	case KindSheet:
		pages, err = sheetPages(path)
	case KindSlides:
		pages, err = slidePages(path)
	case KindRTF:
		pages, err = rtfPages(path)
	case KindODT:
		pages, err = odfPages(path, "")
	case KindODS:
		pages, err = odfPages(path, "table")
	case KindODP:
		pages, err = odfPages(path, "page")
	case KindNotebook:
		pages, err = notebookPages(path)
	case KindText:
		pages, err = textPages(path)
	default:
		return nil, &Error{Path: path, Kind: kind, Err: errors.New("unsupported file type")}
	}
	if err != nil {
		return nil, &Error{Path: path, Kind: kind, Err: err}
	}
	return pages, nil
}
