package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/entikit/entitygen/internal/diagnostics"
	"github.com/entikit/entitygen/internal/driver"
	"github.com/entikit/entitygen/internal/emitter"
	"github.com/entikit/entitygen/internal/models"
	"github.com/entikit/entitygen/internal/parser"
	"github.com/entikit/entitygen/internal/templates"
)

// Config carries the CLI options for one invocation.
type Config struct {
	Directories      []string
	TemplateName     string
	EngineConfigPath string
	CustomModule     string
	OutputRoot       string
}

// Summary reports what one generation run did.
type Summary struct {
	RunID            string
	PackagesScanned  int
	InterfacesFound  int
	ArtifactsWritten int
	Failures         int
	Skipped          int
	ParseFailures    int
	GeneratedFiles   []string
}

// Runner wires discovery, the emission driver and the filer together for
// one CLI invocation.
type Runner struct {
	scanner  *DirectoryScanner
	parser   *parser.Parser
	resolver *ModuleResolver
	diag     *diagnostics.System
	config   Config
}

// NewRunner creates a runner for the given configuration.
func NewRunner(config Config, diag *diagnostics.System) *Runner {
	if config.OutputRoot == "" {
		config.OutputRoot = "."
	}

	resolver := NewModuleResolver()
	if config.CustomModule != "" {
		resolver.SetCustomModule(config.CustomModule)
	}

	return &Runner{
		scanner:  NewDirectoryScanner(),
		parser:   parser.NewParser(),
		resolver: resolver,
		diag:     diag,
		config:   config,
	}
}

// Run executes one generation pass over the configured directories. A
// directory that fails to parse is reported and skipped; failures inside
// the batch are the driver's per-entry concern. The returned error covers
// setup problems only (bad config, unreadable directories).
func (r *Runner) Run() (Summary, error) {
	runID := uuid.NewString()
	r.diag.Verbose("generation pass %s", runID)

	engineConfig, err := templates.LoadConfig(r.config.EngineConfigPath)
	if err != nil {
		return Summary{}, err
	}
	if r.config.TemplateName != "" {
		engineConfig.Template = r.config.TemplateName
	}

	dirs, err := r.scanner.ScanDirectories(r.config.Directories)
	if err != nil {
		return Summary{}, err
	}

	filer := emitter.NewDirFiler(r.config.OutputRoot)
	var batch []models.InterfaceDeclaration
	parseFailures := 0

	for _, dir := range dirs {
		decls, err := r.parser.ParseDirectory(dir)
		if err != nil {
			r.diag.Error("%v", err)
			parseFailures++
			continue
		}
		for _, decl := range decls {
			filer.RegisterPackage(decl.PackageName, decl.SourceDir)
		}
		batch = append(batch, decls...)
	}

	r.describeBatch(batch)

	reporter := diagnostics.NewConsoleReporter(r.diag)
	engine := templates.NewEngine(engineConfig)
	result := driver.New(engine, emitter.NewFormatFiler(filer), reporter, engineConfig.Template).Run(batch)

	return Summary{
		RunID:            runID,
		PackagesScanned:  len(dirs),
		InterfacesFound:  len(batch),
		ArtifactsWritten: len(result.Artifacts),
		Failures:         result.Failures + parseFailures,
		Skipped:          result.Skipped,
		ParseFailures:    parseFailures,
		GeneratedFiles:   result.Paths(),
	}, nil
}

// describeBatch logs each discovered interface with its import path when
// the enclosing module can be resolved.
func (r *Runner) describeBatch(batch []models.InterfaceDeclaration) {
	if len(batch) == 0 {
		return
	}

	moduleName, moduleRoot, err := r.resolver.Resolve(batch[0].SourceDir)
	if err != nil {
		r.diag.Verbose("module name unresolved: %v", err)
		moduleName = ""
	}

	for _, decl := range batch {
		label := decl.PackageName
		if moduleName != "" {
			if importPath, err := r.resolver.PackagePath(moduleName, moduleRoot, decl.SourceDir); err == nil {
				label = importPath
			}
		}
		r.diag.Verbose("annotated interface: %s.%s (%s)", label, decl.Name, decl.SourceFile)
	}
}

// Stats renders the summary for the console in a stable order.
func (s Summary) Stats() []diagnostics.Stat {
	return []diagnostics.Stat{
		{Name: "Packages scanned", Value: s.PackagesScanned},
		{Name: "Interfaces found", Value: s.InterfacesFound},
		{Name: "Artifacts written", Value: s.ArtifactsWritten},
		{Name: "Failures", Value: s.Failures},
		{Name: "Skipped (no fields)", Value: s.Skipped},
	}
}

// Describe returns a one-line human description of the run.
func (s Summary) Describe() string {
	return fmt.Sprintf("wrote %d artifact(s) from %d interface(s)", s.ArtifactsWritten, s.InterfacesFound)
}
