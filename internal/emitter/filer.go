// Package emitter writes generated source artifacts. The driver only sees
// the Filer interface: hand it a qualified generated name, get back a sink,
// write the text, close the sink.
package emitter

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	genErrors "github.com/entikit/entitygen/internal/errors"
)

// Filer creates writable sinks for generated source artifacts.
type Filer interface {
	CreateSourceFile(qualifiedName string) (io.WriteCloser, error)
}

// PathReporter is implemented by sinks that know their destination path.
// The driver uses it for artifact records and diagnostics.
type PathReporter interface {
	Path() string
}

// DirFiler maps qualified generated names onto the filesystem. Discovery
// registers each package's source directory; unregistered packages fall
// back to the configured root.
type DirFiler struct {
	root        string
	packageDirs map[string]string
}

// NewDirFiler creates a filer with the given fallback root directory.
func NewDirFiler(root string) *DirFiler {
	return &DirFiler{
		root:        root,
		packageDirs: make(map[string]string),
	}
}

// RegisterPackage records the source directory for a package name so that
// artifacts land next to the interfaces they implement.
func (f *DirFiler) RegisterPackage(packageName, dir string) {
	if dir != "" {
		f.packageDirs[packageName] = dir
	}
}

// PathFor returns the output path an artifact with the given qualified name
// would be written to.
func (f *DirFiler) PathFor(qualifiedName string) string {
	packageName, implName := splitQualifiedName(qualifiedName)
	dir, ok := f.packageDirs[packageName]
	if !ok {
		dir = f.root
	}
	return filepath.Join(dir, GeneratedFileName(implName))
}

// CreateSourceFile creates a new source artifact for the qualified name.
// Creation, write and close failures all surface as EmissionIOError.
func (f *DirFiler) CreateSourceFile(qualifiedName string) (io.WriteCloser, error) {
	path := f.PathFor(qualifiedName)
	file, err := os.Create(path)
	if err != nil {
		return nil, genErrors.Wrapf(genErrors.EmissionIOError, err, "failed to create source file %s", path)
	}
	return &fileSink{file: file, path: path}, nil
}

// GeneratedFileName derives the artifact file name from the implementation
// type name: PersonImpl becomes person_impl_gen.go.
func GeneratedFileName(implName string) string {
	return snakeCase(implName) + "_gen.go"
}

// GeneratedHeader is the marker line every artifact starts with; the
// cleaner refuses to delete files that lack it.
const GeneratedHeader = "// Code generated by entitygen. DO NOT EDIT."

// fileSink wraps the artifact file so write and close failures carry the
// emission error kind and the destination path.
type fileSink struct {
	file *os.File
	path string
}

func (s *fileSink) Write(p []byte) (int, error) {
	n, err := s.file.Write(p)
	if err != nil {
		return n, genErrors.Wrapf(genErrors.EmissionIOError, err, "failed to write %s", s.path)
	}
	return n, nil
}

func (s *fileSink) Close() error {
	if err := s.file.Close(); err != nil {
		return genErrors.Wrapf(genErrors.EmissionIOError, err, "failed to close %s", s.path)
	}
	return nil
}

func (s *fileSink) Path() string {
	return s.path
}

// splitQualifiedName splits "pkg.TypeImpl" into its package and type parts.
// A name with no dot belongs to the default (empty) package.
func splitQualifiedName(qualifiedName string) (string, string) {
	idx := strings.LastIndex(qualifiedName, ".")
	if idx < 0 {
		return "", qualifiedName
	}
	return qualifiedName[:idx], qualifiedName[idx+1:]
}

// snakeCase lowers a CamelCase type name with underscore word breaks,
// keeping acronym runs together: PersonImpl -> person_impl, URLImpl ->
// url_impl.
func snakeCase(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
