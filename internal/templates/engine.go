// Package templates resolves and renders the entity source templates. The
// member layout of a generated artifact (accessors, equality, hashing,
// string form) is owned entirely by the template; the generation core only
// supplies the descriptor values.
package templates

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	genErrors "github.com/entikit/entitygen/internal/errors"
	"github.com/entikit/entitygen/internal/models"
)

// DefaultTemplateName is the fixed name of the standard entity template.
const DefaultTemplateName = "entity.tmpl"

// ResolvedTemplate is a parsed, ready-to-render template handle.
type ResolvedTemplate struct {
	name string
	tmpl *template.Template
}

// Name returns the resolved template's name.
func (t *ResolvedTemplate) Name() string {
	return t.name
}

// Engine locates and parses templates. Resolution order is the configured
// resource path first, then the builtin registry; parsed templates are
// cached when the config enables it.
type Engine struct {
	config Config
	cache  map[string]*ResolvedTemplate
}

// NewEngine creates a template engine with the given configuration.
func NewEngine(config Config) *Engine {
	return &Engine{
		config: config,
		cache:  make(map[string]*ResolvedTemplate),
	}
}

// Resolve returns the parsed template for the given name. A template that
// cannot be located is a TemplateNotFound error; one that cannot be parsed
// is a TemplateSyntaxError.
func (e *Engine) Resolve(name string) (*ResolvedTemplate, error) {
	if name == "" {
		name = DefaultTemplateName
	}

	if e.config.Cache {
		if resolved, ok := e.cache[name]; ok {
			return resolved, nil
		}
	}

	body, err := e.loadBody(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(body)
	if err != nil {
		return nil, genErrors.Wrapf(genErrors.TemplateSyntaxError, err, "failed to parse template %q", name)
	}

	resolved := &ResolvedTemplate{name: name, tmpl: tmpl}
	if e.config.Cache {
		e.cache[name] = resolved
	}
	return resolved, nil
}

// loadBody fetches the raw template text from the resource path or the
// builtin registry.
func (e *Engine) loadBody(name string) (string, error) {
	if e.config.ResourcePath != "" {
		path := filepath.Join(e.config.ResourcePath, name)
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", genErrors.Wrapf(genErrors.TemplateNotFound, err, "failed to read template %s", path)
		}
	}

	if body, ok := builtinTemplates[name]; ok {
		return body, nil
	}

	return "", genErrors.Newf(genErrors.TemplateNotFound, "template %q not found", name)
}

// Render substitutes the descriptor into the template and returns the
// generated source text. The render context is validated up front: a
// missing required variable is a hard RenderError, never an empty
// substitution. Rendering the same descriptor through the same template is
// deterministic.
func Render(descriptor models.EntityDescriptor, resolved *ResolvedTemplate) (string, error) {
	context, err := NewRenderContext(descriptor)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := resolved.tmpl.Execute(&buf, context); err != nil {
		return "", genErrors.Wrapf(genErrors.RenderError, err, "failed to render %s for %s", resolved.name, descriptor.QualifiedName)
	}
	return buf.String(), nil
}
