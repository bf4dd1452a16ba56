package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/octanelang/octanec/internal/ir"
)

const shapesDoc = `{
  "namespaces": [
    {
      "name": "Shapes",
      "classes": [
        {
          "name": "Shape",
          "baseCName": "GObject",
          "fields": [
            {"name": "label", "modifiers": ["private"], "type": {"typeName": "string"}}
          ]
        },
        {
          "name": "Circle",
          "base": "Shape",
          "fields": [
            {"name": "radius", "modifiers": ["private"], "type": {"typeName": "int"}}
          ],
          "methods": [
            {
              "name": "area",
              "modifiers": ["public"],
              "returnType": {"typeName": "int"},
              "body": [
                {"kind": "varDecl", "name": "r", "type": {"typeName": "int"}, "initializer": {"kind": "simpleName", "name": "radius"}},
                {"kind": "return", "expr": {"kind": "simpleName", "name": "r"}}
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func loadShapes(t *testing.T) *ir.Context {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.json")
	if err := os.WriteFile(path, []byte(shapesDoc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	sf, hints, err := LoadProgram(path)
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	ctx := &ir.Context{Root: ir.NewRootNamespace(), SourceFiles: []*ir.SourceFile{sf}}
	if err := Wire(ctx, []*Hints{hints}); err != nil {
		t.Fatalf("Wire: %v", err)
	}
	return ctx
}

func findClass(ns *ir.Namespace, name string) *ir.Class {
	for _, cl := range ns.Classes {
		if cl.Name == name {
			return cl
		}
	}
	return nil
}

func TestWireResolvesUserBaseClass(t *testing.T) {
	ctx := loadShapes(t)
	ns := ctx.SourceFiles[0].Namespaces[0]
	shape := findClass(ns, "Shape")
	circle := findClass(ns, "Circle")

	if circle.Base != shape {
		t.Fatalf("Circle.Base = %v, want %v", circle.Base, shape)
	}
	if ns.LowerCName != "shapes_" || ns.UpperCName != "SHAPES_" {
		t.Fatalf("namespace cnames = %q / %q", ns.LowerCName, ns.UpperCName)
	}
	if circle.CName != "ShapesCircle" {
		t.Fatalf("Circle.CName = %q, want ShapesCircle", circle.CName)
	}
}

func TestWireResolvesFieldAndMethodTypeRefs(t *testing.T) {
	ctx := loadShapes(t)
	ns := ctx.SourceFiles[0].Namespaces[0]
	circle := findClass(ns, "Circle")

	radius := circle.Fields[0]
	if radius.Decl.Type.Symbol == nil || radius.Decl.Type.Symbol.Kind != ir.SymStruct {
		t.Fatalf("radius field type not resolved: %+v", radius.Decl.Type)
	}

	area := circle.Methods[0]
	if area.ReturnType.Symbol == nil {
		t.Fatalf("area method return type not resolved")
	}

	varDecl, ok := area.Body.Statements[0].(*ir.VariableDeclaration)
	if !ok {
		t.Fatalf("statements[0] = %T, want *ir.VariableDeclaration", area.Body.Statements[0])
	}
	if varDecl.Decl.Type.Symbol == nil {
		t.Fatalf("local variable type not resolved by Wire's body walk")
	}
}

func TestWireMissingBaseClassIsAnError(t *testing.T) {
	doc := `{"namespaces":[{"name":"N","classes":[{"name":"C","base":"Nope"}]}]}`
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	sf, hints, err := LoadProgram(path)
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	ctx := &ir.Context{Root: ir.NewRootNamespace(), SourceFiles: []*ir.SourceFile{sf}}
	if err := Wire(ctx, []*Hints{hints}); err == nil {
		t.Fatal("expected Wire to fail on an unresolved base class name")
	}
}
