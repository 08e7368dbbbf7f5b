// Package dict loads category-tagged sensitive word dictionaries and
// compiles them into whole-word matchers.
package dict

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dictionary maps a category name to its ordered list of raw terms.
type Dictionary map[string][]string

// ConfigError reports a dictionary file that is missing or malformed.
// It is fatal: nothing can be scanned without a valid dictionary.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("sensitive words file %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads a dictionary from a JSON or YAML file, selected by
// extension. The top-level structure must be a mapping from category
// name to a sequence of term strings; anything else is a ConfigError.
func Load(path string) (Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	var d Dictionary
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &d)
	default:
		err = json.Unmarshal(data, &d)
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	for category, terms := range d {
		for i, term := range terms {
			if strings.TrimSpace(term) == "" {
				return nil, &ConfigError{
					Path: path,
					Err:  fmt.Errorf("category %q: term %d is blank", category, i+1),
				}
			}
		}
	}
	return d, nil
}
