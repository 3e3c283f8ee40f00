package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	genErrors "github.com/entikit/entitygen/internal/errors"
	"github.com/entikit/entitygen/internal/models"
)

func personDescriptor() models.EntityDescriptor {
	return models.EntityDescriptor{
		PackageName:   "sample",
		SourceName:    "Person",
		ImplName:      "PersonImpl",
		QualifiedName: "sample.PersonImpl",
		Fields: models.FieldTable{
			{Name: "name", Type: "string"},
			{Name: "active", Type: "bool", Identifier: true},
		},
	}
}

func TestResolve_BuiltinTemplate(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	resolved, err := engine.Resolve(DefaultTemplateName)
	require.NoError(t, err)
	assert.Equal(t, DefaultTemplateName, resolved.Name())
}

func TestResolve_UnknownTemplate(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	_, err := engine.Resolve("missing.tmpl")
	require.Error(t, err)
	assert.True(t, genErrors.IsKind(err, genErrors.TemplateNotFound))
}

func TestResolve_SyntaxError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.tmpl"), []byte("{{ .Unclosed"), 0o644))

	engine := NewEngine(Config{ResourcePath: dir})

	_, err := engine.Resolve("bad.tmpl")
	require.Error(t, err)
	assert.True(t, genErrors.IsKind(err, genErrors.TemplateSyntaxError))
}

func TestResolve_ResourcePathShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	custom := "// custom\npackage {{ .PackageName }}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultTemplateName), []byte(custom), 0o644))

	engine := NewEngine(Config{ResourcePath: dir})
	resolved, err := engine.Resolve(DefaultTemplateName)
	require.NoError(t, err)

	text, err := Render(personDescriptor(), resolved)
	require.NoError(t, err)
	assert.Equal(t, "// custom\npackage sample\n", text)
}

func TestResolve_CachesParsedTemplates(t *testing.T) {
	engine := NewEngine(Config{Cache: true})

	first, err := engine.Resolve(DefaultTemplateName)
	require.NoError(t, err)
	second, err := engine.Resolve(DefaultTemplateName)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestRender_DefaultTemplate(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	resolved, err := engine.Resolve(DefaultTemplateName)
	require.NoError(t, err)

	text, err := Render(personDescriptor(), resolved)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(text, "// Code generated by entitygen. DO NOT EDIT."))
	assert.Contains(t, text, "package sample")
	assert.Contains(t, text, "type PersonImpl struct {")
	assert.Contains(t, text, "func (e *PersonImpl) getName() string {")
	assert.Contains(t, text, "func (e *PersonImpl) setName(v string) {")
	assert.Contains(t, text, "func (e *PersonImpl) isActive() bool {")
	// active is the only identifier field, so it alone drives equality
	assert.Contains(t, text, "return e.active == other.active")
	assert.NotContains(t, text, "e.name == other.name")
}

func TestRender_NoIdentifierFallsBackToAllFields(t *testing.T) {
	descriptor := personDescriptor()
	descriptor.Fields = models.FieldTable{
		{Name: "name", Type: "string"},
		{Name: "age", Type: "int"},
	}

	engine := NewEngine(DefaultConfig())
	resolved, err := engine.Resolve(DefaultTemplateName)
	require.NoError(t, err)

	text, err := Render(descriptor, resolved)
	require.NoError(t, err)
	assert.Contains(t, text, "e.name == other.name")
	assert.Contains(t, text, "e.age == other.age")
}

func TestRender_Deterministic(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	resolved, err := engine.Resolve(DefaultTemplateName)
	require.NoError(t, err)

	first, err := Render(personDescriptor(), resolved)
	require.NoError(t, err)
	second, err := Render(personDescriptor(), resolved)
	require.NoError(t, err)

	assert.Equal(t, first, second, "rendering the same descriptor twice must be byte-identical")
}

func TestNewRenderContext_MissingRequiredVariable(t *testing.T) {
	descriptor := personDescriptor()
	descriptor.PackageName = ""

	_, err := NewRenderContext(descriptor)
	require.Error(t, err)
	assert.True(t, genErrors.IsKind(err, genErrors.RenderError))
}

func TestNewRenderContext_EmptyFieldName(t *testing.T) {
	descriptor := personDescriptor()
	descriptor.Fields = models.FieldTable{{Name: "", Type: "string"}}

	_, err := NewRenderContext(descriptor)
	require.Error(t, err)
	assert.True(t, genErrors.IsKind(err, genErrors.RenderError))
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		config, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "entitygen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("resource_path: ./tmpl\ncache: false\n"), 0o644))

		config, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "./tmpl", config.ResourcePath)
		assert.False(t, config.Cache)
		assert.Equal(t, DefaultTemplateName, config.Template)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
