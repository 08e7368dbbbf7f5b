package cli

import (
	"github.com/abiiranathan/goflag"
)

// DefineFlags registers the subcommands and their flags on a goflag
// context. Handlers receive their inputs through the shared config.
func DefineFlags(config *Config, runScan, runCheck func()) *goflag.Context {
	ctx := goflag.NewContext()

	// global flags
	ctx.AddFlag(goflag.FlagBool, "verbose", "v", &config.Verbose,
		"Enable diagnostic logging", false)

	// Flags shared by multiple subcommands.
	listFlag := goflag.Flag{
		FlagType:  goflag.FlagString,
		Name:      "list",
		ShortName: "s",
		Value:     &config.List,
		Usage:     "Sensitivity list identifier, selects sensitive_words_<list>.json",
		Required:  false,
		Validator: nil,
	}

	ctx.AddSubCommand("scan", "Scan a directory for sensitive terms", runScan).
		AddFlag(goflag.FlagDirPath, "directory", "d", &config.Directory, "The directory to scan", true).
		AddFlagPtr(&listFlag).
		AddFlag(goflag.FlagString, "lang", "l", &config.Lang, "Report language: en or cz", false).
		AddFlag(goflag.FlagBool, "recursive", "r", &config.Recursive, "Recursively scan all subdirectories", false).
		AddFlag(goflag.FlagBool, "case-sensitive", "c", &config.CaseSensitive, "Enable case-sensitive matching", false).
		AddFlag(goflag.FlagBool, "no-html", "n", &config.NoHTML, "Disable HTML report generation", false).
		AddFlag(goflag.FlagString, "format", "o", &config.Format, "Export statistics: csv, xlsx, json or all", false).
		AddFlag(goflag.FlagString, "output-dir", "O", &config.OutputDir, "Output directory for reports and statistics", false)

	ctx.AddSubCommand("check", "Load and validate a sensitive words dictionary", runCheck).
		AddFlag(goflag.FlagFilePath, "words", "w", &config.WordsFile, "The dictionary file to validate", true)

	return ctx
}
