package dep_test

import (
	"strings"
	"testing"

	"github.com/octanelang/octanec/internal/codegen/dep"
	"github.com/octanelang/octanec/internal/ir"
)

type fakeRegistry map[string]string

func (r fakeRegistry) Lookup(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

func TestResolveOrdinaryReferenceGoesToSourceWithForwardDecl(t *testing.T) {
	otherFile := &ir.SourceFile{Filename: "widget.oct"}
	otherNS := &ir.Namespace{Name: "App", UpperCName: "APP_", Owner: otherFile}
	other := &ir.Class{Name: "Widget", CName: "AppWidget", UpperCName: "WIDGET", Namespace: otherNS}
	otherSym := &ir.Symbol{Kind: ir.SymClass, Class: other}

	sf := &ir.SourceFile{Filename: "main.oct", DepTypes: []*ir.Symbol{otherSym}}

	var h, c strings.Builder
	r := dep.New(&h, &c, nil)
	if err := r.Resolve(sf, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !strings.Contains(c.String(), `#include "widget.h"`) {
		t.Fatalf("expected a .c include for an ordinary reference:\n%s", c.String())
	}
	if strings.Contains(h.String(), `#include`) {
		t.Fatalf("ordinary reference should not include in the header:\n%s", h.String())
	}
	if !strings.Contains(h.String(), "_TYPE_APP_WIDGET") || !strings.Contains(h.String(), "typedef struct _AppWidget AppWidget;") {
		t.Fatalf("expected a guarded forward typedef in the header:\n%s", h.String())
	}
}

func TestResolveBaseClassReferenceGoesToHeader(t *testing.T) {
	otherFile := &ir.SourceFile{Filename: "shape.oct"}
	otherNS := &ir.Namespace{Name: "App", UpperCName: "APP_", Owner: otherFile}
	shape := &ir.Class{Name: "Shape", CName: "AppShape", UpperCName: "SHAPE", Namespace: otherNS}
	shapeSym := &ir.Symbol{Kind: ir.SymClass, Class: shape}

	circle := &ir.Class{Name: "Circle", CName: "AppCircle", Base: shape}
	sf := &ir.SourceFile{Filename: "circle.oct", DepTypes: []*ir.Symbol{shapeSym}}

	var h, c strings.Builder
	r := dep.New(&h, &c, nil)
	if err := r.Resolve(sf, []*ir.Class{circle}); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if !strings.Contains(h.String(), `#include "shape.h"`) {
		t.Fatalf("base class reference must include in the header:\n%s", h.String())
	}
	if strings.Contains(c.String(), "#include") {
		t.Fatalf("base class reference should not also include in the source:\n%s", c.String())
	}
}

func TestResolveEnumReferenceGoesToHeader(t *testing.T) {
	otherFile := &ir.SourceFile{Filename: "colors.oct"}
	otherNS := &ir.Namespace{Name: "App", UpperCName: "APP_", Owner: otherFile}
	e := &ir.Enum{Name: "Color", Namespace: otherNS}
	sym := &ir.Symbol{Kind: ir.SymEnum, Enum: e}

	sf := &ir.SourceFile{Filename: "main.oct", DepTypes: []*ir.Symbol{sym}}

	var h, c strings.Builder
	r := dep.New(&h, &c, nil)
	if err := r.Resolve(sf, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !strings.Contains(h.String(), `#include "colors.h"`) {
		t.Fatalf("enum reference must include in the header:\n%s", h.String())
	}
}

func TestResolveImportedNamespaceUsesRegistry(t *testing.T) {
	importedNS := &ir.Namespace{Name: "Gtk", Import: true}
	button := &ir.Class{Name: "Button", Namespace: importedNS}
	sym := &ir.Symbol{Kind: ir.SymClass, Class: button}

	sf := &ir.SourceFile{Filename: "main.oct", DepTypes: []*ir.Symbol{sym}}
	reg := fakeRegistry{"Gtk.Button": "gtk/gtkbutton.h"}

	var h, c strings.Builder
	r := dep.New(&h, &c, reg)
	if err := r.Resolve(sf, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !strings.Contains(h.String(), "#include <gtk/gtkbutton.h>") {
		t.Fatalf("expected a registry-resolved angle-bracket include:\n%s", h.String())
	}
}

func TestResolveGlobalNamespaceDepIsSkipped(t *testing.T) {
	globalNS := &ir.Namespace{Name: ""}
	cl := &ir.Class{Name: "Loose", Namespace: globalNS}
	sym := &ir.Symbol{Kind: ir.SymClass, Class: cl}

	sf := &ir.SourceFile{Filename: "main.oct", DepTypes: []*ir.Symbol{sym}}

	var h, c strings.Builder
	r := dep.New(&h, &c, nil)
	if err := r.Resolve(sf, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if h.Len() != 0 || c.Len() != 0 {
		t.Fatalf("expected no output for a global-namespace dependency, got h=%q c=%q", h.String(), c.String())
	}
}

func TestResolveDeduplicatesRepeatedIncludes(t *testing.T) {
	otherFile := &ir.SourceFile{Filename: "widget.oct"}
	otherNS := &ir.Namespace{Name: "App", UpperCName: "APP_", Owner: otherFile}
	other := &ir.Class{Name: "Widget", CName: "AppWidget", UpperCName: "WIDGET", Namespace: otherNS}
	sym1 := &ir.Symbol{Kind: ir.SymClass, Class: other}
	sym2 := &ir.Symbol{Kind: ir.SymClass, Class: other}

	sf := &ir.SourceFile{Filename: "main.oct", DepTypes: []*ir.Symbol{sym1, sym2}}

	var h, c strings.Builder
	r := dep.New(&h, &c, nil)
	if err := r.Resolve(sf, nil); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if strings.Count(c.String(), `#include "widget.h"`) != 1 {
		t.Fatalf("expected exactly one deduplicated include, got:\n%s", c.String())
	}
	if strings.Count(h.String(), "#ifndef _TYPE_APP_WIDGET") != 1 {
		t.Fatalf("expected exactly one deduplicated forward decl, got:\n%s", h.String())
	}
}
