package templates

import (
	"github.com/samber/lo"

	genErrors "github.com/entikit/entitygen/internal/errors"
	"github.com/entikit/entitygen/internal/models"
)

// RenderContext is the statically shaped substitution context handed to a
// template. It mirrors the entity descriptor field for field; there is no
// dynamic key/value bag, so a template can only reference what is declared
// here.
type RenderContext struct {
	PackageName   string
	SourceName    string
	ImplName      string
	QualifiedName string

	// Fields holds every entity field in table order. IdentityFields is
	// the identifier-flagged subset; whether and how it drives equality
	// and hashing is the template's decision.
	Fields         []FieldContext
	IdentityFields []FieldContext
}

// FieldContext is one field as visible to the template.
type FieldContext struct {
	Name       string
	Type       string
	Identifier bool
}

// NewRenderContext validates the descriptor and builds the render context.
// Every variable the standard template requires must be present; absence is
// a RenderError at construction time rather than a lookup failure at
// substitution time.
func NewRenderContext(descriptor models.EntityDescriptor) (*RenderContext, error) {
	switch {
	case descriptor.PackageName == "":
		return nil, genErrors.New(genErrors.RenderError, "missing required template variable: package name")
	case descriptor.SourceName == "":
		return nil, genErrors.New(genErrors.RenderError, "missing required template variable: source type name")
	case descriptor.ImplName == "":
		return nil, genErrors.New(genErrors.RenderError, "missing required template variable: implementation type name")
	case descriptor.QualifiedName == "":
		return nil, genErrors.New(genErrors.RenderError, "missing required template variable: qualified name")
	}

	for _, field := range descriptor.Fields {
		if field.Name == "" {
			return nil, genErrors.Newf(genErrors.RenderError, "entity %s has a field with an empty name", descriptor.QualifiedName)
		}
		if field.Type == "" {
			return nil, genErrors.Newf(genErrors.RenderError, "field %q of entity %s has an empty type", field.Name, descriptor.QualifiedName)
		}
	}

	fields := lo.Map(descriptor.Fields, func(f models.FieldEntry, _ int) FieldContext {
		return FieldContext{Name: f.Name, Type: f.Type, Identifier: f.Identifier}
	})

	return &RenderContext{
		PackageName:    descriptor.PackageName,
		SourceName:     descriptor.SourceName,
		ImplName:       descriptor.ImplName,
		QualifiedName:  descriptor.QualifiedName,
		Fields:         fields,
		IdentityFields: lo.Filter(fields, func(f FieldContext, _ int) bool { return f.Identifier }),
	}, nil
}
