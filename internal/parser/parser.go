// Package parser discovers annotated interface declarations in Go source
// and captures them as plain method descriptors. The generation core never
// touches the AST; everything it needs is carried by the models types.
package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"sort"
	"strings"

	"github.com/entikit/entitygen/internal/annotations"
	"github.com/entikit/entitygen/internal/models"
)

// Parser extracts entity::generate interface declarations from Go files.
type Parser struct {
	fileSet *token.FileSet
}

// NewParser creates a new declaration parser.
func NewParser() *Parser {
	return &Parser{fileSet: token.NewFileSet()}
}

// ParseSource parses a single source string. Used by tests and by callers
// that already hold file contents.
func (p *Parser) ParseSource(filename, source string) ([]models.InterfaceDeclaration, error) {
	file, err := parser.ParseFile(p.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}
	return p.extractDeclarations(file, filename, "")
}

// ParseDirectory parses all non-test Go files in one directory and returns
// the annotated interface declarations found there, in deterministic
// (file name, declaration) order.
func (p *Parser) ParseDirectory(dir string) ([]models.InterfaceDeclaration, error) {
	pkgs, err := parser.ParseDir(p.fileSet, dir, notTestFile, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse directory %s: %w", dir, err)
	}

	if len(pkgs) == 0 {
		return nil, nil
	}
	if len(pkgs) > 1 {
		return nil, fmt.Errorf("multiple packages found in directory %s", dir)
	}

	var decls []models.InterfaceDeclaration
	for _, pkg := range pkgs {
		fileNames := make([]string, 0, len(pkg.Files))
		for name := range pkg.Files {
			fileNames = append(fileNames, name)
		}
		sort.Strings(fileNames)

		for _, name := range fileNames {
			fileDecls, err := p.extractDeclarations(pkg.Files[name], name, dir)
			if err != nil {
				return nil, err
			}
			decls = append(decls, fileDecls...)
		}
	}

	return decls, nil
}

// extractDeclarations walks one file's AST and captures every interface
// whose doc comments carry the entity::generate annotation.
func (p *Parser) extractDeclarations(file *ast.File, fileName, dir string) ([]models.InterfaceDeclaration, error) {
	var decls []models.InterfaceDeclaration
	var walkErr error

	ast.Inspect(file, func(n ast.Node) bool {
		if walkErr != nil {
			return false
		}

		genDecl, ok := n.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			return true
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			ifaceType, ok := typeSpec.Type.(*ast.InterfaceType)
			if !ok {
				continue
			}

			marked, err := hasGenerateMarker(genDecl.Doc, typeSpec.Doc)
			if err != nil {
				walkErr = fmt.Errorf("%s: %w", fileName, err)
				return false
			}
			if !marked {
				continue
			}

			methods, err := p.captureMethods(ifaceType)
			if err != nil {
				walkErr = fmt.Errorf("%s: interface %s: %w", fileName, typeSpec.Name.Name, err)
				return false
			}

			decls = append(decls, models.InterfaceDeclaration{
				Name:        typeSpec.Name.Name,
				PackageName: file.Name.Name,
				Methods:     methods,
				SourceDir:   dir,
				SourceFile:  fileName,
				Line:        p.fileSet.Position(typeSpec.Pos()).Line,
			})
		}

		return true
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return decls, nil
}

// captureMethods converts the interface's method set into descriptors.
// Embedded interfaces carry no method name and are skipped; they contribute
// nothing to the field model.
func (p *Parser) captureMethods(iface *ast.InterfaceType) ([]models.MethodDescriptor, error) {
	if iface.Methods == nil {
		return nil, nil
	}

	var methods []models.MethodDescriptor
	for _, member := range iface.Methods.List {
		if len(member.Names) == 0 {
			continue
		}
		funcType, ok := member.Type.(*ast.FuncType)
		if !ok {
			continue
		}

		identifier, err := memberIdentifierFlag(member.Doc)
		if err != nil {
			return nil, fmt.Errorf("method %s: %w", member.Names[0].Name, err)
		}

		for _, name := range member.Names {
			methods = append(methods, models.MethodDescriptor{
				Name:       name.Name,
				ReturnType: returnTypeName(funcType),
				ParamTypes: paramTypeNames(funcType),
				Identifier: identifier,
			})
		}
	}

	return methods, nil
}

// hasGenerateMarker checks the declaration's doc comments for the
// entity::generate annotation. Malformed entity:: comments are hard errors;
// ordinary comments are ignored.
func hasGenerateMarker(groups ...*ast.CommentGroup) (bool, error) {
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, comment := range group.List {
			ann, err := annotations.Parse(comment.Text)
			if err != nil {
				if err == annotations.ErrNotAnnotation {
					continue
				}
				return false, err
			}
			if ann.Kind == annotations.KindGenerate {
				return true, nil
			}
		}
	}
	return false, nil
}

// memberIdentifierFlag resolves the identifier attribute from a method's
// doc comments. Absence of the annotation yields false.
func memberIdentifierFlag(group *ast.CommentGroup) (bool, error) {
	if group == nil {
		return false, nil
	}
	for _, comment := range group.List {
		ann, err := annotations.Parse(comment.Text)
		if err != nil {
			if err == annotations.ErrNotAnnotation {
				continue
			}
			return false, err
		}
		if ann.Kind == annotations.KindGenerate {
			return ann.Bool("id"), nil
		}
	}
	return false, nil
}

// returnTypeName renders the method's first result type, or the empty
// string (the void sentinel) when the method declares no results.
func returnTypeName(funcType *ast.FuncType) string {
	if funcType.Results == nil || len(funcType.Results.List) == 0 {
		return ""
	}
	return types.ExprString(funcType.Results.List[0].Type)
}

// paramTypeNames renders the parameter types in declaration order, one
// entry per declared name for grouped parameters like (a, b string).
func paramTypeNames(funcType *ast.FuncType) []string {
	if funcType.Params == nil {
		return nil
	}

	var params []string
	for _, field := range funcType.Params.List {
		typeName := types.ExprString(field.Type)
		count := len(field.Names)
		if count == 0 {
			count = 1
		}
		for i := 0; i < count; i++ {
			params = append(params, typeName)
		}
	}
	return params
}

// notTestFile filters _test.go files out of directory parses.
func notTestFile(info fs.FileInfo) bool {
	return !strings.HasSuffix(info.Name(), "_test.go")
}
