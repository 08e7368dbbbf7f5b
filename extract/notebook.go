package extract

import (
	"encoding/json"
	"os"
	"strings"
)

// multiString accepts the two source encodings Jupyter uses: a plain
// JSON string or a list of line strings.
type multiString string

func (m *multiString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		var lines []string
		if err := json.Unmarshal(data, &lines); err != nil {
			return err
		}
		*m = multiString(strings.Join(lines, ""))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*m = multiString(s)
	return nil
}

type notebookOutput struct {
	Text multiString                `json:"text"`
	Data map[string]json.RawMessage `json:"data"`
}

type notebookCell struct {
	CellType string           `json:"cell_type"`
	Source   multiString      `json:"source"`
	Outputs  []notebookOutput `json:"outputs"`
}

// notebookPages joins the cell sources of a Jupyter notebook, plus the
// plain-text outputs of its code cells, into a single synthetic page.
func notebookPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var nb struct {
		Cells []notebookCell `json:"cells"`
	}
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, err
	}

	var parts []string
	appendText := func(s string) {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	for _, cell := range nb.Cells {
		appendText(string(cell.Source))
		if cell.CellType != "code" {
			continue
		}
		for _, out := range cell.Outputs {
			appendText(string(out.Text))
			if raw, ok := out.Data["text/plain"]; ok {
				var plain multiString
				if err := json.Unmarshal(raw, &plain); err == nil {
					appendText(string(plain))
				}
			}
		}
	}
	if len(parts) == 0 {
		return nil, nil
	}
	return []string{strings.Join(parts, " ")}, nil
}
