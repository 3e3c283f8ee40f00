package cli

import (
	"path/filepath"
	"testing"
)

func TestResolve_FindsEnclosingModule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "go.mod"), "module example.com/demo\n\ngo 1.25\n")
	nested := filepath.Join(root, "internal", "sample")
	writeFile(t, filepath.Join(nested, "sample.go"), "package sample\n")

	name, moduleRoot, err := NewModuleResolver().Resolve(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "example.com/demo" {
		t.Errorf("expected module example.com/demo, got %s", name)
	}
	if moduleRoot != root {
		t.Errorf("expected root %s, got %s", root, moduleRoot)
	}
}

func TestResolve_CustomModuleSkipsDiscovery(t *testing.T) {
	resolver := NewModuleResolver()
	resolver.SetCustomModule("example.com/custom")

	dir := t.TempDir()
	name, moduleRoot, err := resolver.Resolve(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "example.com/custom" || moduleRoot != dir {
		t.Errorf("unexpected resolution: %s %s", name, moduleRoot)
	}
}

func TestResolve_NoModuleFound(t *testing.T) {
	if _, _, err := NewModuleResolver().Resolve(t.TempDir()); err == nil {
		t.Skip("a go.mod exists above the temp dir on this machine")
	}
}

func TestPackagePath(t *testing.T) {
	resolver := NewModuleResolver()
	root := t.TempDir()

	tests := []struct {
		dir  string
		want string
	}{
		{root, "example.com/demo"},
		{filepath.Join(root, "internal", "sample"), "example.com/demo/internal/sample"},
	}
	for _, tt := range tests {
		got, err := resolver.PackagePath("example.com/demo", root, tt.dir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("PackagePath(%s) = %s, want %s", tt.dir, got, tt.want)
		}
	}
}
