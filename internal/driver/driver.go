// Package driver orchestrates one generation pass: build the field model,
// assemble the descriptor, render, emit, report.
package driver

import (
	"fmt"
	"io"

	"github.com/entikit/entitygen/internal/builder"
	"github.com/entikit/entitygen/internal/diagnostics"
	"github.com/entikit/entitygen/internal/emitter"
	"github.com/entikit/entitygen/internal/models"
	"github.com/entikit/entitygen/internal/templates"
)

// Driver runs generation passes. It holds no per-interface state: every
// batch entry gets a freshly built field table and descriptor, so nothing
// can leak between interfaces in a pass.
type Driver struct {
	engine       *templates.Engine
	filer        emitter.Filer
	reporter     diagnostics.Reporter
	templateName string
}

// New creates an emission driver. An empty template name selects the
// standard entity template.
func New(engine *templates.Engine, filer emitter.Filer, reporter diagnostics.Reporter, templateName string) *Driver {
	if templateName == "" {
		templateName = templates.DefaultTemplateName
	}
	return &Driver{
		engine:       engine,
		filer:        filer,
		reporter:     reporter,
		templateName: templateName,
	}
}

// Run processes the batch in order. A declaration whose methods yield no
// fields is skipped without an artifact or an error. Any failure in the
// build-render-emit chain becomes one ERROR diagnostic and the pass moves
// on to the next entry; the batch always completes. An empty batch is a
// no-op, and re-running an identical batch re-derives identical artifacts.
func (d *Driver) Run(batch []models.InterfaceDeclaration) models.DriverResult {
	var result models.DriverResult

	for _, decl := range batch {
		fields := builder.BuildFieldTable(decl.Methods)
		if len(fields) == 0 {
			result.Skipped++
			continue
		}

		descriptor := builder.AssembleDescriptor(decl.Name, decl.PackageName, fields)

		artifact, err := d.generate(descriptor)
		if err != nil {
			d.reporter.Error(err.Error(), decl.Ref())
			result.Failures++
			continue
		}

		d.reporter.Note(fmt.Sprintf("created source file %s for %s", artifact.Path, artifact.QualifiedName), decl.Ref())
		result.Artifacts = append(result.Artifacts, artifact)
	}

	return result
}

// generate renders one descriptor and writes the artifact. The sink is
// closed on both the success and the failure path.
func (d *Driver) generate(descriptor models.EntityDescriptor) (models.GeneratedArtifact, error) {
	resolved, err := d.engine.Resolve(d.templateName)
	if err != nil {
		return models.GeneratedArtifact{}, err
	}

	text, err := templates.Render(descriptor, resolved)
	if err != nil {
		return models.GeneratedArtifact{}, err
	}

	sink, err := d.filer.CreateSourceFile(descriptor.QualifiedName)
	if err != nil {
		return models.GeneratedArtifact{}, err
	}

	_, writeErr := io.WriteString(sink, text)
	closeErr := sink.Close()
	if writeErr != nil {
		return models.GeneratedArtifact{}, writeErr
	}
	if closeErr != nil {
		return models.GeneratedArtifact{}, closeErr
	}

	artifact := models.GeneratedArtifact{
		QualifiedName: descriptor.QualifiedName,
		Size:          len(text),
	}
	if reporter, ok := sink.(emitter.PathReporter); ok {
		artifact.Path = reporter.Path()
	}
	return artifact, nil
}
