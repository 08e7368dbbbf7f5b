package extract

import (
	"os"
	"regexp"
	"strings"
)

var (
	rtfControlWord = regexp.MustCompile(`\\[a-zA-Z]+-?\d* ?`)
	rtfHexEscape   = regexp.MustCompile(`\\'[0-9a-fA-F]{2}`)
	rtfSpaceRuns   = regexp.MustCompile(`[ \t]+`)
)

// rtfPages strips RTF control structures and returns the remaining text
// as a single synthetic page.
func rtfPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := stripRTF(string(data))
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return []string{text}, nil
}

// stripRTF reduces RTF markup to plain text: metadata groups are removed
// wholesale, paragraph controls become line breaks, then remaining
// control words and braces are dropped.
func stripRTF(text string) string {
	for _, marker := range []string{`{\fonttbl`, `{\colortbl`, `{\stylesheet`, `{\info`, `{\*`} {
		text = dropGroup(text, marker)
	}

	// common cp1252 escapes worth keeping readable
	replacer := strings.NewReplacer(
		`\'92`, "'",
		`\'93`, `"`,
		`\'94`, `"`,
		`\'96`, "-",
		`\'97`, "--",
		`\par`, "\n",
		`\line`, "\n",
		`\tab`, " ",
		// escaped braces are literal text, parked so group-brace
		// removal below cannot eat them
		`\{`, "\x01",
		`\}`, "\x02",
	)
	text = replacer.Replace(text)

	text = rtfHexEscape.ReplaceAllString(text, "")
	text = rtfControlWord.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "{", "")
	text = strings.ReplaceAll(text, "}", "")
	text = strings.ReplaceAll(text, "\x01", "{")
	text = strings.ReplaceAll(text, "\x02", "}")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(rtfSpaceRuns.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// dropGroup removes every `{\marker ...}` group, tracking nested braces.
func dropGroup(text, marker string) string {
	for {
		start := strings.Index(text, marker)
		if start < 0 {
			return text
		}
		level := 1
		end := start + len(marker)
		for end < len(text) && level > 0 {
			switch text[end] {
			case '{':
				level++
			case '}':
				level--
			}
			end++
		}
		if level != 0 {
			return text
		}
		text = text[:start] + text[end:]
	}
}
