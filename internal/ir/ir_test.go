package ir_test

import (
	"testing"

	"github.com/octanelang/octanec/internal/ir"
)

func TestModifierStringCombinesFlagsInDeclarationOrder(t *testing.T) {
	m := ir.Public | ir.Virtual
	if got := m.String(); got != "public virtual" {
		t.Errorf("Modifier.String() = %q, want %q", got, "public virtual")
	}
}

func TestModifierStringNoneWhenEmpty(t *testing.T) {
	var m ir.Modifier
	if got := m.String(); got != "(none)" {
		t.Errorf("Modifier.String() = %q, want (none)", got)
	}
}

func TestModifierHas(t *testing.T) {
	m := ir.Private | ir.Static
	if !m.Has(ir.Private) || !m.Has(ir.Static) {
		t.Fatal("expected both Private and Static set")
	}
	if m.Has(ir.Public) || m.Has(ir.Virtual) {
		t.Fatal("expected Public and Virtual unset")
	}
}

func TestSymbolKindStringNamesEveryKind(t *testing.T) {
	cases := map[ir.SymbolKind]string{
		ir.SymClass:         "class",
		ir.SymStruct:        "struct",
		ir.SymEnum:          "enum",
		ir.SymEnumValue:     "enum value",
		ir.SymNamespace:     "namespace",
		ir.SymMethod:        "method",
		ir.SymField:         "field",
		ir.SymProperty:      "property",
		ir.SymLocalVariable: "local variable",
		ir.SymBlock:         "block",
		ir.SymVoid:          "void",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("SymbolKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestSymbolBindAndLookup(t *testing.T) {
	scope := ir.NewSymbol(ir.SymBlock, "")
	child := ir.NewSymbol(ir.SymLocalVariable, "x")
	scope.Bind("x", child)

	if got := scope.Lookup("x"); got != child {
		t.Fatalf("Lookup(x) = %v, want %v", got, child)
	}
	if got := scope.Lookup("missing"); got != nil {
		t.Fatalf("Lookup(missing) = %v, want nil", got)
	}
}

func TestSymbolBindOverwritesPreviousBinding(t *testing.T) {
	scope := ir.NewSymbol(ir.SymBlock, "")
	first := ir.NewSymbol(ir.SymLocalVariable, "x")
	second := ir.NewSymbol(ir.SymLocalVariable, "x")
	scope.Bind("x", first)
	scope.Bind("x", second)

	if got := scope.Lookup("x"); got != second {
		t.Fatalf("expected the second binding to win, got %v", got)
	}
}

func TestSymbolLookupOnNilSymbolIsSafe(t *testing.T) {
	var s *ir.Symbol
	if got := s.Lookup("anything"); got != nil {
		t.Fatalf("Lookup on a nil *Symbol should return nil, got %v", got)
	}
}

func TestSymbolLookupDoesNotChainToParent(t *testing.T) {
	parent := ir.NewSymbol(ir.SymNamespace, "")
	parent.Bind("x", ir.NewSymbol(ir.SymLocalVariable, "x"))
	child := ir.NewSymbol(ir.SymBlock, "")

	if got := child.Lookup("x"); got != nil {
		t.Fatalf("Lookup should only check this symbol's own table, got %v", got)
	}
}

func TestPositionStringWithAndWithoutFile(t *testing.T) {
	p := ir.Position{Line: 4, Column: 2}
	if got := p.String(); got != "4:2" {
		t.Errorf("Position.String() (no file) = %q, want 4:2", got)
	}
	p.File = "foo.oct"
	if got := p.String(); got == "4:2" {
		t.Errorf("Position.String() (with file) should differ from the bare form, got %q", got)
	}
}
