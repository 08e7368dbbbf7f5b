package dict

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Pattern matches one dictionary term as a whole word. The term text is
// matched verbatim: regex metacharacters carry no meaning.
type Pattern struct {
	Term string // raw dictionary spelling
	re   *regexp.Regexp
}

// Matcher holds the compiled patterns of a dictionary, one per raw term,
// keyed by category. Read-only after Compile.
type Matcher map[string][]Pattern

// Compile builds a Matcher from a dictionary. Case folding is applied
// uniformly for the whole run: with caseSensitive false every pattern
// matches ignoring letter case. Compile is pure; the same inputs always
// yield matchers with identical behavior.
func Compile(d Dictionary, caseSensitive bool) Matcher {
	m := make(Matcher, len(d))
	for category, terms := range d {
		patterns := make([]Pattern, 0, len(terms))
		for _, term := range terms {
			expr := regexp.QuoteMeta(term)
			if !caseSensitive {
				expr = "(?i)" + expr
			}
			patterns = append(patterns, Pattern{Term: term, re: regexp.MustCompile(expr)})
		}
		m[category] = patterns
	}
	return m
}

// FindAll returns the start/end byte offsets of every non-overlapping
// whole-word occurrence of the term in text, in order.
//
// Go's regexp \b only understands ASCII word characters, which would
// break terms containing accented letters, so the literal matches are
// checked for word boundaries on the adjacent runes instead: a boundary
// is a transition between a word rune (letter, digit, underscore) and a
// non-word rune or text edge.
func (p Pattern) FindAll(text string) [][2]int {
	var spans [][2]int
	for _, loc := range p.re.FindAllStringIndex(text, -1) {
		if isBoundary(text, loc[0]) && isBoundary(text, loc[1]) {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}
	return spans
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isBoundary(text string, pos int) bool {
	var before, after bool
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:pos])
		before = isWordRune(r)
	}
	if pos < len(text) {
		r, _ := utf8.DecodeRuneInString(text[pos:])
		after = isWordRune(r)
	}
	return before != after
}
