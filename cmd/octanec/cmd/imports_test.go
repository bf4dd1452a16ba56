package cmd

import (
	"path/filepath"
	"testing"

	"github.com/octanelang/octanec/internal/loader"
)

func TestImportsAddAndListRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imports.json")
	importsRegistryPath = path

	if err := importsAddCmd.RunE(importsAddCmd, []string{"Gtk.Button", "gtk/gtkbutton.h"}); err != nil {
		t.Fatalf("importsAddCmd.RunE: %v", err)
	}

	reg, err := loader.LoadImportRegistry(path)
	if err != nil {
		t.Fatalf("LoadImportRegistry: %v", err)
	}
	entries := reg.List()
	if entries["Gtk.Button"] != "gtk/gtkbutton.h" {
		t.Fatalf("expected registered mapping, got %+v", entries)
	}

	if err := importsListCmd.RunE(importsListCmd, nil); err != nil {
		t.Fatalf("importsListCmd.RunE: %v", err)
	}
}
