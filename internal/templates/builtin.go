package templates

// builtinTemplates maps template names to their embedded bodies. The
// resource path, when configured, shadows entries here.
var builtinTemplates = map[string]string{
	DefaultTemplateName: entityTemplate,
}

// entityTemplate is the standard entity implementation template. It owns
// the member layout policy: identifier-flagged fields define identity for
// Equal and Hash (falling back to every field when none are flagged), and
// String always renders the full field set.
const entityTemplate = `// Code generated by entitygen. DO NOT EDIT.

package {{ .PackageName }}

import (
	"fmt"
	"hash/fnv"
)

// {{ .ImplName }} is the generated implementation of {{ .SourceName }}.
type {{ .ImplName }} struct {
{{- range .Fields }}
	{{ .Name }} {{ .Type }}
{{- end }}
}

// New{{ .ImplName }} returns a zero-valued {{ .ImplName }}.
func New{{ .ImplName }}() *{{ .ImplName }} {
	return &{{ .ImplName }}{}
}
{{ range .Fields }}
func (e *{{ $.ImplName }}) {{ if eq .Type "bool" }}is{{ else }}get{{ end }}{{ .Name | title }}() {{ .Type }} {
	return e.{{ .Name }}
}

func (e *{{ $.ImplName }}) set{{ .Name | title }}(v {{ .Type }}) {
	e.{{ .Name }} = v
}
{{ end }}
// Equal reports whether both entities share the same identity.
func (e *{{ .ImplName }}) Equal(other *{{ .ImplName }}) bool {
	if other == nil {
		return false
	}
	{{- $fields := .IdentityFields }}{{ if not $fields }}{{ $fields = .Fields }}{{ end }}
	return {{ range $i, $f := $fields }}{{ if $i }} &&
		{{ end }}e.{{ $f.Name }} == other.{{ $f.Name }}{{ end }}
}

// Hash returns a 64-bit identity hash consistent with Equal.
func (e *{{ .ImplName }}) Hash() uint64 {
	h := fnv.New64a()
	{{- $fields := .IdentityFields }}{{ if not $fields }}{{ $fields = .Fields }}{{ end }}
	{{- range $fields }}
	fmt.Fprintf(h, "%v|", e.{{ .Name }})
	{{- end }}
	return h.Sum64()
}

// String renders every field for debugging output.
func (e *{{ .ImplName }}) String() string {
	return fmt.Sprintf("{{ .ImplName }}{{ "{" }}{{ range $i, $f := .Fields }}{{ if $i }} {{ end }}{{ $f.Name }}=%v{{ end }}{{ "}" }}", {{ range $i, $f := .Fields }}{{ if $i }}, {{ end }}e.{{ $f.Name }}{{ end }})
}
`
