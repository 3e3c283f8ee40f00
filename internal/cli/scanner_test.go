package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestScanDirectories_PlainDirectory(t *testing.T) {
	dir := t.TempDir()

	dirs, err := NewDirectoryScanner().ScanDirectories([]string{dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(dirs, []string{dir}) {
		t.Errorf("expected [%s], got %v", dir, dirs)
	}
}

func TestScanDirectories_RecursivePattern(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "a.go"), "package a\n")
	writeFile(t, filepath.Join(root, "a", "b", "b.go"), "package b\n")
	writeFile(t, filepath.Join(root, "a", "b", "b_test.go"), "package b\n")
	writeFile(t, filepath.Join(root, "vendor", "v", "v.go"), "package v\n")
	writeFile(t, filepath.Join(root, "testdata", "t.go"), "package t\n")
	writeFile(t, filepath.Join(root, ".hidden", "h.go"), "package h\n")
	writeFile(t, filepath.Join(root, "empty", "readme.md"), "no go files\n")

	dirs, err := NewDirectoryScanner().ScanDirectories([]string{root + "/..."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		filepath.Join(root, "a"),
		filepath.Join(root, "a", "b"),
	}
	if !reflect.DeepEqual(dirs, want) {
		t.Errorf("expected %v, got %v", want, dirs)
	}
}

func TestScanDirectories_Deduplicates(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "a.go"), "package a\n")

	dirs, err := NewDirectoryScanner().ScanDirectories([]string{
		filepath.Join(root, "a"),
		root + "/...",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dirs) != 1 {
		t.Errorf("expected 1 directory after dedup, got %v", dirs)
	}
}

func TestScanDirectories_MissingDirectory(t *testing.T) {
	if _, err := NewDirectoryScanner().ScanDirectories([]string{"/no/such/dir"}); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}

func TestScanDirectories_FileIsNotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.go")
	writeFile(t, file, "package a\n")

	if _, err := NewDirectoryScanner().ScanDirectories([]string{file}); err == nil {
		t.Fatal("expected an error for a file argument")
	}
}
