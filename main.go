package main

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/santus/docxray/cli"
	"github.com/santus/docxray/dict"
	"github.com/santus/docxray/report"
	"github.com/santus/docxray/scan"
)

//go:embed templates
var templatesFS embed.FS

// Default configuration for the CLI
var config = &cli.DefaultConfig

func main() {
	log.SetPrefix("[docxray]: ")
	log.SetFlags(0)

	// Parse the command line arguments
	ctx := cli.DefineFlags(config, runScan, runCheck)
	subcmd, err := ctx.Parse(os.Args)
	if err != nil {
		log.Fatalln(err)
	}

	// If the subcommand is nil, print the usage and exit
	if subcmd == nil {
		ctx.PrintUsage(os.Stdout)
		os.Exit(1)
	}

	applyVerbosity(config.Verbose)

	// Run the subcommand
	subcmd.Handler()
}

// applyVerbosity silences diagnostic logging unless --verbose is set.
// Console output is not affected.
func applyVerbosity(verbose bool) {
	if !verbose {
		log.SetOutput(io.Discard)
	}
}

// findDictionary resolves the dictionary file for a sensitivity list,
// checking the working directory first and then the executable's
// directory, JSON before YAML.
func findDictionary(list string) (string, error) {
	names := []string{
		fmt.Sprintf("sensitive_words_%s.json", list),
		fmt.Sprintf("sensitive_words_%s.yaml", list),
	}
	dirs := []string{"."}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	for _, dir := range dirs {
		for _, name := range names {
			path := filepath.Join(dir, name)
			if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
				return path, nil
			}
		}
	}
	return "", fmt.Errorf("sensitive words file not found for list %q", list)
}

func runScan() {
	console := report.NewConsole(os.Stdout)

	wordsPath, err := findDictionary(config.List)
	if err != nil {
		console.Error(err)
		os.Exit(1)
	}

	log.Printf("dictionary resolved to %s", wordsPath)

	dictionary, err := dict.Load(wordsPath)
	if err != nil {
		console.Error(err)
		os.Exit(1)
	}
	matcher := dict.Compile(dictionary, config.CaseSensitive)

	color.New(color.FgGreen).Printf("Using sensitivity list: %s (%s)\n",
		strings.ToUpper(config.List), filepath.Base(wordsPath))
	if config.Recursive {
		console.Infof("Recursive mode: ENABLED - scanning all subdirectories")
	}
	if config.CaseSensitive {
		console.Infof("Case-sensitive matching: ENABLED")
	}
	if config.OutputDir != "." {
		console.Infof("Output directory: %s", config.OutputDir)
	}

	opts := scan.Options{
		Recursive: config.Recursive,
		OnStart:   console.Start,
	}
	agg, err := scan.Run(config.Directory, matcher, opts,
		func(index, total int, path string, findings scan.FileFindings, err error) {
			console.Progress(index, total)
			if err != nil {
				console.Error(err)
				log.Printf("extraction failed: %v", err)
			}
			console.FileResults(filepath.Base(path), findings)
		})
	if err != nil {
		var noFiles *scan.NoFilesError
		if errors.As(err, &noFiles) {
			console.Error(noFiles)
			return
		}
		log.Fatalln(err)
	}

	console.Summary(agg.Stats)
	writeReports(console, agg)
}

// writeReports runs the requested artifact sinks. Each sink reports its
// own success or failure; one sink failing never stops another.
func writeReports(console *report.Console, agg *scan.Aggregator) {
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		console.Error(err)
		return
	}

	outPath := func(name string) string {
		return filepath.Join(config.OutputDir, name)
	}

	var g errgroup.Group

	if !config.NoHTML {
		tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
		if err != nil {
			// the binary is broken without its embedded templates
			panic(fmt.Errorf("unable to parse templates: %v", err))
		}
		path := outPath(fmt.Sprintf("scan_report_%s.html", config.List))
		g.Go(func() error {
			if err := report.WriteHTML(tmpl, path, agg.Reports, agg.Stats, config.List, config.Lang); err != nil {
				console.Error(err)
				return nil
			}
			console.Ok("HTML report generated", "%s", path)
			return nil
		})
	}

	for _, format := range config.Formats() {
		switch format {
		case "csv":
			path := outPath(fmt.Sprintf("statistics_%s.csv", config.List))
			g.Go(func() error {
				if err := report.WriteCSV(path, agg.Stats); err != nil {
					console.Error(err)
					return nil
				}
				console.Ok("CSV report exported", "%s", path)
				return nil
			})
		case "xlsx":
			path := outPath(fmt.Sprintf("statistics_%s.xlsx", config.List))
			g.Go(func() error {
				if err := report.WriteXLSX(path, agg.Stats); err != nil {
					console.Error(err)
					return nil
				}
				console.Ok("XLSX report exported", "%s", path)
				return nil
			})
		case "json":
			path := outPath(fmt.Sprintf("statistics_%s.json", config.List))
			g.Go(func() error {
				if err := report.WriteJSON(path, agg.Stats); err != nil {
					console.Error(err)
					return nil
				}
				console.Ok("JSON report exported", "%s", path)
				return nil
			})
		default:
			console.Error(fmt.Errorf("unknown export format %q", format))
		}
	}

	g.Wait()
}

func runCheck() {
	console := report.NewConsole(os.Stdout)

	dictionary, err := dict.Load(config.WordsFile)
	if err != nil {
		console.Error(err)
		os.Exit(1)
	}

	categories := make([]string, 0, len(dictionary))
	for category := range dictionary {
		categories = append(categories, category)
	}
	slices.Sort(categories)

	total := 0
	fmt.Printf("Dictionary: %s\n", config.WordsFile)
	for _, category := range categories {
		fmt.Printf("  %-24s %d term(s)\n", category, len(dictionary[category]))
		total += len(dictionary[category])
	}
	console.Ok("Dictionary valid", "%d categories, %d terms", len(categories), total)
}
