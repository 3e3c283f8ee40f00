package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/entikit/entitygen/internal/cli"
	"github.com/entikit/entitygen/internal/diagnostics"
)

func main() {
	var (
		templateFlag = flag.String("template", "", "Template name to render (defaults to the builtin entity.tmpl)")
		configFlag   = flag.String("config", "", "Path to a YAML template-engine config file")
		moduleFlag   = flag.String("module", "", "Custom module name for diagnostics (defaults to go.mod module)")
		outFlag      = flag.String("out", "", "Fallback output directory for unregistered packages (defaults to .)")
		verboseFlag  = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag    = flag.Bool("quiet", false, "Only show errors")
		cleanFlag    = flag.Bool("clean", false, "Delete generated *_gen.go files from the specified directories")
		helpFlag     = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "entitygen - entity implementation generator\n")
		fmt.Fprintf(os.Stderr, "Scans directories for interfaces annotated with //entity::generate and\n")
		fmt.Fprintf(os.Stderr, "generates implementation types from a template.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/...     Scan internal directory recursively\n")
		fmt.Fprintf(os.Stderr, "  ./pkg/domain       Scan only the specific directory\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                          # Generate everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -template custom.tmpl ./...    # Render a custom template\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -config entitygen.yaml ./...   # Use an engine config file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -clean ./...                   # Delete generated files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diag *diagnostics.System
	switch {
	case *quietFlag:
		diag = diagnostics.NewQuiet()
	case *verboseFlag:
		diag = diagnostics.NewVerbose()
	default:
		diag = diagnostics.NewSystem(diagnostics.LevelInfo)
	}

	diag.Section("entitygen")

	if *cleanFlag {
		cleaner := cli.NewCleaner(diag)
		removed, err := cleaner.Clean(args)
		if err != nil {
			diag.Error("Clean failed: %v", err)
			os.Exit(1)
		}
		diag.Success("Removed %d generated file(s)", removed)
		return
	}

	runner := cli.NewRunner(cli.Config{
		Directories:      args,
		TemplateName:     *templateFlag,
		EngineConfigPath: *configFlag,
		CustomModule:     *moduleFlag,
		OutputRoot:       *outFlag,
	}, diag)

	summary, err := runner.Run()
	if err != nil {
		diag.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	diag.Summary("Generation complete", summary.Stats())

	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		for _, file := range summary.GeneratedFiles {
			diag.List("%s", file)
		}
	}

	if summary.Failures > 0 {
		diag.Warn("%s with %d failure(s)", summary.Describe(), summary.Failures)
		os.Exit(1)
	}

	diag.Success("%s", summary.Describe())
}
