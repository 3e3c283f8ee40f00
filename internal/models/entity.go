package models

import (
	"fmt"

	"github.com/samber/lo"
)

// MethodDescriptor captures one interface member as seen by the discovery
// layer. ReturnType is the empty string when the method declares no result
// (the void sentinel), and ParamTypes lists parameter types in declaration
// order. Identifier carries the resolved value of the marker annotation's
// id attribute; it is false when the annotation is absent.
type MethodDescriptor struct {
	Name       string
	ReturnType string
	ParamTypes []string
	Identifier bool
}

// FieldEntry is one resolved entity field. Name is the lowercased,
// convention-derived field name.
type FieldEntry struct {
	Name       string
	Type       string
	Identifier bool
}

// FieldTable is the ordered, name-deduplicated output of the field model
// builder. Insertion order matches encounter order during the method scan.
type FieldTable []FieldEntry

// Contains reports whether an entry with the given name is already present.
func (t FieldTable) Contains(name string) bool {
	for _, f := range t {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Names returns the field names in table order.
func (t FieldTable) Names() []string {
	return lo.Map(t, func(f FieldEntry, _ int) string { return f.Name })
}

// EntityDescriptor is the fully resolved input to the template renderer.
// ImplName and QualifiedName are pure functions of SourceName and
// PackageName; a descriptor is built fresh for every interface in a pass
// and never mutated afterwards.
type EntityDescriptor struct {
	PackageName   string
	SourceName    string
	ImplName      string
	QualifiedName string
	Fields        FieldTable
}

// InterfaceDeclaration is one batch entry handed to the emission driver:
// an annotated interface plus the method descriptors discovered inside it.
// SourceDir, SourceFile and Line are discovery metadata used only for
// artifact placement and diagnostics; they take no part in the field model.
type InterfaceDeclaration struct {
	Name        string
	PackageName string
	Methods     []MethodDescriptor

	SourceDir  string
	SourceFile string
	Line       int
}

// Ref returns the element reference for diagnostics about this declaration.
func (d InterfaceDeclaration) Ref() ElementRef {
	return ElementRef{File: d.SourceFile, Line: d.Line, Name: d.Name}
}

// ElementRef points a diagnostic back at the declaration it concerns.
type ElementRef struct {
	File string
	Line int
	Name string
}

// IsEmpty reports whether the reference carries no useful information.
func (r ElementRef) IsEmpty() bool {
	return r.File == "" && r.Name == ""
}

func (r ElementRef) String() string {
	switch {
	case r.File != "" && r.Line > 0:
		return fmt.Sprintf("%s:%d (%s)", r.File, r.Line, r.Name)
	case r.File != "":
		return fmt.Sprintf("%s (%s)", r.File, r.Name)
	default:
		return r.Name
	}
}

// GeneratedArtifact describes one source artifact written by the driver.
type GeneratedArtifact struct {
	QualifiedName string
	Path          string
	Size          int
}

// DriverResult summarizes one generation pass over a batch.
type DriverResult struct {
	Artifacts []GeneratedArtifact
	Failures  int
	Skipped   int
}

// Paths returns the paths of all written artifacts in batch order.
func (r DriverResult) Paths() []string {
	return lo.Map(r.Artifacts, func(a GeneratedArtifact, _ int) string { return a.Path })
}
