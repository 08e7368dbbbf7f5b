package cli

import "strings"

// Config holds the configuration for the CLI.
type Config struct {
	// The directory to scan.
	Directory string

	// Sensitivity list identifier; selects sensitive_words_<list>.json
	// (or .yaml) as the dictionary.
	List string

	// Report language for the HTML report.
	Lang string

	// Descend into subdirectories.
	Recursive bool

	// Match terms case-sensitively. Default is case-insensitive.
	CaseSensitive bool

	// Skip the HTML report.
	NoHTML bool

	// Statistics export formats: csv, xlsx, json, a comma-separated
	// combination, or "all". Empty means no statistics export.
	Format string

	// Directory for generated reports. Created if missing.
	OutputDir string

	// Explicit dictionary path, used by the check subcommand.
	WordsFile string

	// Emit diagnostic log lines. Off by default; user-facing console
	// output is unaffected.
	Verbose bool
}

var DefaultConfig = Config{
	List:      "en",
	Lang:      "en",
	OutputDir: ".",
}

// Formats expands the format flag into the list of export sinks.
func (c *Config) Formats() []string {
	switch c.Format {
	case "":
		return nil
	case "all":
		return []string{"csv", "xlsx", "json"}
	default:
		var formats []string
		for _, f := range strings.Split(c.Format, ",") {
			if f = strings.TrimSpace(strings.ToLower(f)); f != "" {
				formats = append(formats, f)
			}
		}
		return formats
	}
}
