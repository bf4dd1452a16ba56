package ctype_test

import (
	"testing"

	"github.com/octanelang/octanec/internal/codegen/ctype"
	"github.com/octanelang/octanec/internal/ir"
)

func primitive(root *ir.Namespace, name string) *ir.Symbol {
	return root.Symbol.Lookup(name)
}

func TestForTypeRefPrimitives(t *testing.T) {
	root := ir.NewRootNamespace()

	intRef := &ir.TypeRef{TypeName: "int", Symbol: primitive(root, "int")}
	got, err := ctype.ForTypeRef(intRef, false, ir.Position{})
	if err != nil {
		t.Fatalf("ForTypeRef(int): %v", err)
	}
	if got != "int " {
		t.Errorf("ForTypeRef(int) = %q, want %q", got, "int ")
	}

	strRef := &ir.TypeRef{TypeName: "string", Symbol: primitive(root, "string")}
	got, err = ctype.ForTypeRef(strRef, false, ir.Position{})
	if err != nil {
		t.Fatalf("ForTypeRef(string): %v", err)
	}
	if got != "char *" {
		t.Errorf("ForTypeRef(string) = %q, want %q", got, "char *")
	}
}

func TestForTypeRefConstArray(t *testing.T) {
	root := ir.NewRootNamespace()
	ref := &ir.TypeRef{TypeName: "int", Symbol: primitive(root, "int"), ArrayType: true}
	got, err := ctype.ForTypeRef(ref, true, ir.Position{})
	if err != nil {
		t.Fatalf("ForTypeRef: %v", err)
	}
	if got != "const int " {
		t.Errorf("ForTypeRef(const array int) = %q, want %q", got, "const int ")
	}
}

func TestForTypeRefClass(t *testing.T) {
	ns := &ir.Namespace{Name: "App", UpperCName: "APP_", LowerCName: "app_"}
	cl := &ir.Class{Name: "Widget", CName: "AppWidget", UpperCName: "WIDGET", LowerCName: "widget", Namespace: ns}
	sym := &ir.Symbol{Kind: ir.SymClass, Class: cl}

	ref := &ir.TypeRef{TypeName: "Widget", Symbol: sym}
	got, err := ctype.ForTypeRef(ref, false, ir.Position{})
	if err != nil {
		t.Fatalf("ForTypeRef(class): %v", err)
	}
	if got != "AppWidget *" {
		t.Errorf("ForTypeRef(class) = %q, want %q", got, "AppWidget *")
	}

	if got := ctype.ClassUpperMacro(cl); got != "APP_WIDGET" {
		t.Errorf("ClassUpperMacro = %q, want APP_WIDGET", got)
	}
	if got := ctype.ClassLowerPrefix(cl); got != "app_widget_" {
		t.Errorf("ClassLowerPrefix = %q, want app_widget_", got)
	}
}

func TestForTypeRefMissingSymbolIsError(t *testing.T) {
	ref := &ir.TypeRef{TypeName: "Unresolved"}
	if _, err := ctype.ForTypeRef(ref, false, ir.Position{}); err == nil {
		t.Fatal("expected an error for an unresolved TypeRef")
	}
}

func TestForStaticTypeVoid(t *testing.T) {
	expr := &ir.Expr{StaticTypeSymbol: &ir.Symbol{Kind: ir.SymVoid, Name: "void"}}
	got, err := ctype.ForStaticType(expr)
	if err != nil {
		t.Fatalf("ForStaticType(void): %v", err)
	}
	if got != "void" {
		t.Errorf("ForStaticType(void) = %q, want void", got)
	}
}
