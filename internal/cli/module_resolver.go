package cli

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// ModuleResolver resolves the enclosing Go module so diagnostics can name
// generated types by their import path.
type ModuleResolver struct {
	custom string
}

// NewModuleResolver creates a module resolver.
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{}
}

// SetCustomModule overrides go.mod discovery with an explicit module name.
func (r *ModuleResolver) SetCustomModule(name string) {
	r.custom = name
}

// Resolve returns the module path and module root for the module enclosing
// startDir. With a custom module set, the root is startDir itself.
func (r *ModuleResolver) Resolve(startDir string) (moduleName, moduleRoot string, err error) {
	if r.custom != "" {
		return r.custom, startDir, nil
	}

	goModPath, err := findGoMod(startDir)
	if err != nil {
		return "", "", err
	}

	data, err := os.ReadFile(goModPath)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", goModPath, err)
	}

	parsed, err := modfile.Parse(goModPath, data, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to parse %s: %w", goModPath, err)
	}
	if parsed.Module == nil {
		return "", "", fmt.Errorf("no module declaration found in %s", goModPath)
	}

	return parsed.Module.Mod.Path, filepath.Dir(goModPath), nil
}

// PackagePath joins the module path with a package directory's position
// inside the module root.
func (r *ModuleResolver) PackagePath(moduleName, moduleRoot, dir string) (string, error) {
	rel, err := filepath.Rel(moduleRoot, dir)
	if err != nil {
		return "", fmt.Errorf("package %s is outside module root %s: %w", dir, moduleRoot, err)
	}
	if rel == "." {
		return moduleName, nil
	}
	return path.Join(moduleName, filepath.ToSlash(rel)), nil
}

// findGoMod walks up from startDir until it finds a go.mod file.
func findGoMod(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		candidate := filepath.Join(dir, "go.mod")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above %s", startDir)
		}
		dir = parent
	}
}
