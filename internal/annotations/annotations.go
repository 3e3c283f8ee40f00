// Package annotations parses entity:: marker annotations out of Go comment
// lines. The grammar is a single annotation kind followed by optional
// dash-prefixed attributes:
//
//	//entity::generate
//	//entity::generate -Id
//	//entity::generate -Id=false
package annotations

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/spf13/cast"
)

// Marker is the comment prefix that opts a declaration into generation.
const Marker = "entity::"

// KindGenerate marks an interface for entity generation; on a method it
// carries the identifier attribute.
const KindGenerate = "generate"

// ErrNotAnnotation is returned by Parse for comments that do not carry the
// entity:: marker at all.
var ErrNotAnnotation = stderrors.New("comment is not an entity annotation")

// Annotation is one parsed entity:: annotation.
type Annotation struct {
	Kind   string
	Params map[string]string // lowercased attribute names; "" means bare flag
	Raw    string
}

// Has reports whether the attribute is present, with or without a value.
func (a *Annotation) Has(name string) bool {
	_, ok := a.Params[strings.ToLower(name)]
	return ok
}

// Bool resolves a boolean attribute. A bare flag means true, an explicit
// value is coerced, and absence yields false.
func (a *Annotation) Bool(name string) bool {
	v, ok := a.Params[strings.ToLower(name)]
	if !ok {
		return false
	}
	if v == "" {
		return true
	}
	return cast.ToBool(v)
}

// commentLine is the participle AST for one annotation comment.
type commentLine struct {
	Kind  string      `parser:"Comment Marker Separator @Ident"`
	Flags []*flagExpr `parser:"@@*"`
}

type flagExpr struct {
	Name  string  `parser:"Dash @Ident"`
	Value *string `parser:"(Equals @(Ident | Number | String))?"`
}

var annotationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//`},
	{Name: "Marker", Pattern: `entity`},
	{Name: "Separator", Pattern: `::`},
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Equals", Pattern: `=`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var annotationParser = participle.MustBuild[commentLine](
	participle.Lexer(annotationLexer),
	participle.Elide("Whitespace"),
)

// IsAnnotation reports whether the comment line carries the entity:: marker.
func IsAnnotation(comment string) bool {
	trimmed := strings.TrimSpace(comment)
	trimmed = strings.TrimPrefix(trimmed, "//")
	trimmed = strings.TrimSpace(trimmed)
	return strings.HasPrefix(trimmed, Marker)
}

// Parse parses one comment line into an annotation. Comments without the
// marker return ErrNotAnnotation; marked comments that do not match the
// grammar or name an unknown kind are hard errors.
func Parse(comment string) (*Annotation, error) {
	if !IsAnnotation(comment) {
		return nil, ErrNotAnnotation
	}

	line, err := annotationParser.ParseString("", strings.TrimSpace(comment))
	if err != nil {
		return nil, fmt.Errorf("malformed annotation %q: %w", comment, err)
	}

	if line.Kind != KindGenerate {
		return nil, fmt.Errorf("unknown annotation kind %q: use %s%s", line.Kind, Marker, KindGenerate)
	}

	ann := &Annotation{
		Kind:   line.Kind,
		Params: make(map[string]string),
		Raw:    strings.TrimSpace(comment),
	}

	for _, f := range line.Flags {
		value := ""
		if f.Value != nil {
			value = stripQuotes(*f.Value)
		}
		ann.Params[strings.ToLower(f.Name)] = value
	}

	return ann, nil
}

// stripQuotes removes surrounding double quotes from string-token values.
func stripQuotes(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
