package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "octane.yaml")
	content := "sourceFiles:\n  - hello.json\n  - greeter.json\noutputDir: out\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if m.OutputDir != "out" {
		t.Fatalf("OutputDir = %q, want out", m.OutputDir)
	}
	if len(m.SourceFiles) != 2 || m.SourceFiles[0] != "hello.json" || m.SourceFiles[1] != "greeter.json" {
		t.Fatalf("SourceFiles = %v", m.SourceFiles)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing manifest")
	}
}
