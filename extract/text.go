package extract

import (
	"bytes"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// textPages reads a plain-text file as a single synthetic page. Content
// that is not valid UTF-8 is decoded as Windows-1252, falling back to
// Latin-1, mirroring how such files are usually produced.
func textPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	text := string(data)
	if !utf8.Valid(data) {
		for _, cm := range []*charmap.Charmap{charmap.Windows1252, charmap.ISO8859_1} {
			decoded, err := cm.NewDecoder().Bytes(data)
			if err != nil {
				continue
			}
			text = string(decoded)
			break
		}
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return []string{text}, nil
}
