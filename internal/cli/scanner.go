package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
)

// DirectoryScanner resolves directory arguments into the set of package
// directories to parse. Go-style "./..." patterns scan recursively.
type DirectoryScanner struct{}

// NewDirectoryScanner creates a new directory scanner.
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{}
}

// ScanDirectories expands the given paths into directories that contain Go
// files, in deterministic order and without duplicates.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	var dirs []string

	for _, rootDir := range rootDirs {
		if strings.HasSuffix(rootDir, "/...") {
			baseDir := strings.TrimSuffix(rootDir, "/...")
			if baseDir == "" {
				baseDir = "."
			}
			expanded, err := s.walkGoDirs(baseDir)
			if err != nil {
				return nil, fmt.Errorf("failed to scan %s: %w", rootDir, err)
			}
			dirs = append(dirs, expanded...)
			continue
		}

		info, err := os.Stat(rootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", rootDir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", rootDir)
		}
		dirs = append(dirs, filepath.Clean(rootDir))
	}

	return lo.Uniq(dirs), nil
}

// walkGoDirs collects every directory under base that holds at least one
// non-test Go file, skipping hidden, underscore, vendor and testdata trees.
func (s *DirectoryScanner) walkGoDirs(base string) ([]string, error) {
	var dirs []string

	err := filepath.WalkDir(base, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != base && skipDir(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), ".go") && !strings.HasSuffix(entry.Name(), "_test.go") {
			dirs = append(dirs, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return lo.Uniq(dirs), nil
}

func skipDir(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	return name == "vendor" || name == "testdata" || name == "node_modules"
}
