package scan

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/santus/docxray/dict"
	"github.com/santus/docxray/extract"
)

func matcherFor(t *testing.T, d dict.Dictionary, caseSensitive bool) dict.Matcher {
	t.Helper()
	return dict.Compile(d, caseSensitive)
}

func TestScanPagesFirstContextOnly(t *testing.T) {
	m := matcherFor(t, dict.Dictionary{"credentials": {"token"}}, false)

	// token matches 5 times across pages 1, 2 (twice), 3 and 5
	pages := []string{
		"the token is on page one",
		"a token and another token share this page",
		"token opens page three",
		"nothing of interest here",
		"final token on page five",
	}
	findings := scanPages(pages, m)

	require.Contains(t, findings, "credentials")
	finding := findings["credentials"]["token"]
	require.NotNil(t, finding)

	assert.Equal(t, []int{1, 2, 3, 5}, finding.Pages, "one entry per matching page")
	require.Len(t, finding.Contexts, 1, "only the first context is retained")
	ctx := finding.Contexts[0]
	assert.Equal(t, 1, ctx.Page)
	assert.Equal(t, "token", ctx.Matched)
	assert.Equal(t, "the ", ctx.Before)
}

func TestScanPagesSurfaceForm(t *testing.T) {
	m := matcherFor(t, dict.Dictionary{"credentials": {"Password"}}, false)

	findings := scanPages([]string{"the password is hidden"}, m)

	byTerm := findings["credentials"]
	require.Len(t, byTerm, 1)
	// the key is the literal text found, not the dictionary spelling
	assert.Contains(t, byTerm, "password")
}

func TestScanPagesDistinctSurfacesPerPage(t *testing.T) {
	m := matcherFor(t, dict.Dictionary{"credentials": {"password"}}, false)

	findings := scanPages([]string{"PASSWORD first", "password second"}, m)

	byTerm := findings["credentials"]
	require.Len(t, byTerm, 2)
	assert.Equal(t, []int{1}, byTerm["PASSWORD"].Pages)
	assert.Equal(t, []int{2}, byTerm["password"].Pages)
}

func TestScanPagesNormalizesWhitespace(t *testing.T) {
	m := matcherFor(t, dict.Dictionary{"financial": {"credit card"}}, false)

	findings := scanPages([]string{"a  credit\n\tcard \n statement"}, m)

	require.Contains(t, findings, "financial")
	assert.Contains(t, findings["financial"], "credit card")
}

func TestScanPagesNoMatches(t *testing.T) {
	m := matcherFor(t, dict.Dictionary{"credentials": {"token"}}, false)
	findings := scanPages([]string{"nothing sensitive at all"}, m)
	assert.Empty(t, findings)
}

func TestMatchContextAtTextStart(t *testing.T) {
	text := "token sits at the very beginning"
	ctx := matchContext(text, 0, 5, 3)

	assert.Equal(t, "", ctx.Before)
	assert.Equal(t, "token", ctx.Matched)
	assert.Equal(t, " sits at the very beginning", ctx.After)
	assert.Equal(t, 3, ctx.Page)
}

func TestMatchContextClippedBothSides(t *testing.T) {
	text := strings.Repeat("a", 50) + " token " + strings.Repeat("b", 50)
	start := strings.Index(text, "token")
	ctx := matchContext(text, start, start+len("token"), 1)

	// the window is 40 characters each side, so both edges truncate
	assert.Equal(t, "..."+strings.Repeat("a", 39)+" ", ctx.Before)
	assert.Equal(t, "token", ctx.Matched)
	assert.Equal(t, " "+strings.Repeat("b", 39)+"...", ctx.After)
}

func TestMatchContextRuneBoundaries(t *testing.T) {
	// multibyte runes right at the window edges must not be split
	text := strings.Repeat("č", 50) + " token " + strings.Repeat("ř", 50)
	start := strings.Index(text, "token")
	ctx := matchContext(text, start, start+len("token"), 1)

	assert.True(t, utf8.ValidString(ctx.Before))
	assert.True(t, utf8.ValidString(ctx.After))
}

func TestScanFileTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("the api key is hidden"), 0o644))

	m := matcherFor(t, dict.Dictionary{"credentials": {"api key"}}, false)
	findings, err := ScanFile(path, m)
	require.NoError(t, err)
	assert.Contains(t, findings["credentials"], "api key")
}

func TestScanFileExtractionFailure(t *testing.T) {
	dir := t.TempDir()
	// a .docx that is not a zip archive cannot be decoded
	path := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))

	m := matcherFor(t, dict.Dictionary{"credentials": {"password"}}, false)
	findings, err := ScanFile(path, m)

	var extErr *extract.Error
	require.Error(t, err)
	assert.True(t, errors.As(err, &extErr))
	assert.Empty(t, findings, "a failed file contributes zero findings")
}
