package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/entikit/entitygen/internal/diagnostics"
	"github.com/entikit/entitygen/internal/emitter"
)

// Cleaner removes previously generated entity files. Only files that carry
// the generated header are deleted; a hand-written file that happens to
// match the name pattern is left alone.
type Cleaner struct {
	scanner *DirectoryScanner
	diag    *diagnostics.System
}

// NewCleaner creates a cleaner.
func NewCleaner(diag *diagnostics.System) *Cleaner {
	return &Cleaner{
		scanner: NewDirectoryScanner(),
		diag:    diag,
	}
}

// Clean deletes generated files under the given directories and returns
// how many were removed.
func (c *Cleaner) Clean(dirs []string) (int, error) {
	packageDirs, err := c.scanner.ScanDirectories(dirs)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, dir := range packageDirs {
		matches, err := filepath.Glob(filepath.Join(dir, "*_gen.go"))
		if err != nil {
			return removed, err
		}
		for _, path := range matches {
			generated, err := isGeneratedFile(path)
			if err != nil {
				return removed, err
			}
			if !generated {
				c.diag.Verbose("skipping %s: missing generated header", path)
				continue
			}
			if err := os.Remove(path); err != nil {
				return removed, err
			}
			c.diag.List("removed %s", path)
			removed++
		}
	}

	return removed, nil
}

// isGeneratedFile checks for the generated header on the file's first line.
func isGeneratedFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	firstLine, _, _ := strings.Cut(string(data), "\n")
	return strings.HasPrefix(firstLine, emitter.GeneratedHeader), nil
}
