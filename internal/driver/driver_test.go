package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/octanelang/octanec/internal/ir"
	"github.com/octanelang/octanec/internal/loader"
)

const counterDoc = `{
  "namespaces": [
    {
      "name": "App",
      "classes": [
        {
          "name": "Counter",
          "baseCName": "GObject",
          "fields": [
            {"name": "_count", "modifiers": ["private"], "type": {"typeName": "int"}}
          ],
          "properties": [
            {
              "name": "count",
              "type": {"typeName": "int"},
              "get": [{"kind": "return", "expr": {"kind": "simpleName", "name": "_count"}}],
              "set": [{"kind": "expr", "expr": {"kind": "assignment", "left": {"kind": "simpleName", "name": "_count"}, "right": {"kind": "simpleName", "name": "value"}}}]
            }
          ],
          "methods": [
            {
              "name": "increment",
              "modifiers": ["public"],
              "returnType": {"typeName": "void"},
              "body": [
                {"kind": "return"}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func TestDriverGeneratesHeaderAndSource(t *testing.T) {
	srcDir := t.TempDir()
	docPath := filepath.Join(srcDir, "counter.json")
	if err := os.WriteFile(docPath, []byte(counterDoc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	sf, hints, err := loader.LoadProgram(docPath)
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	ctx := &ir.Context{Root: ir.NewRootNamespace(), SourceFiles: []*ir.SourceFile{sf}}
	if err := loader.Wire(ctx, []*loader.Hints{hints}); err != nil {
		t.Fatalf("Wire: %v", err)
	}

	outDir := t.TempDir()
	registry, err := loader.LoadImportRegistry(filepath.Join(outDir, "imports.json"))
	if err != nil {
		t.Fatalf("LoadImportRegistry: %v", err)
	}

	d := New(outDir, registry)
	if err := d.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	header, err := os.ReadFile(filepath.Join(outDir, "counter.h"))
	if err != nil {
		t.Fatalf("reading generated header: %v", err)
	}
	h := string(header)
	for _, want := range []string{
		"#ifndef", "#define", "G_BEGIN_DECLS", "G_END_DECLS",
		"APP_TYPE_COUNTER", "AppCounter", "app_counter_get_type",
	} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q:\n%s", want, h)
		}
	}

	body, err := os.ReadFile(filepath.Join(outDir, "counter.c"))
	if err != nil {
		t.Fatalf("reading generated source: %v", err)
	}
	c := string(body)
	for _, want := range []string{
		"#include \"counter.h\"",
		"app_counter_increment",
		"app_counter_class_init",
		"app_counter_init",
	} {
		if !strings.Contains(c, want) {
			t.Errorf("source missing %q:\n%s", want, c)
		}
	}

	snaps.MatchSnapshot(t, h)
	snaps.MatchSnapshot(t, c)
}
