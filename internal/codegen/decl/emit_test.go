package decl_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/octanelang/octanec/internal/codegen/decl"
	"github.com/octanelang/octanec/internal/ir"
	"github.com/octanelang/octanec/internal/loader"
)

const shapesDoc = `{
  "namespaces": [
    {
      "name": "App",
      "classes": [
        {
          "name": "Shape",
          "baseCName": "GObject",
          "methods": [
            {
              "name": "area",
              "modifiers": ["public", "virtual"],
              "returnType": {"typeName": "int"},
              "body": [{"kind": "return", "expr": {"kind": "literal", "literalKind": "int", "text": "0"}}]
            }
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
              "modifiers": ["public", "override"],
              "returnType": {"typeName": "int"},
              "body": [{"kind": "return", "expr": {"kind": "operation", "op": "*", "left": {"kind": "simpleName", "name": "radius"}, "right": {"kind": "simpleName", "name": "radius"}}}]
            }
          ]
        }
      ]
    }
  ]
}`

const mainDoc = `{
  "namespaces": [
    {
      "name": "App",
      "classes": [
        {
          "name": "Program",
          "baseCName": "GObject",
          "methods": [
            {
              "name": "main",
              "modifiers": ["public", "static"],
              "params": [
                {"name": "argc", "type": {"typeName": "int"}},
                {"name": "argv", "type": {"typeName": "string"}}
              ],
              "returnType": {"typeName": "int"},
              "body": [{"kind": "return", "expr": {"kind": "literal", "literalKind": "int", "text": "0"}}]
            }
          ]
        }
      ]
    }
  ]
}`

func loadMainClass(t *testing.T) (*ir.Class, *ir.Namespace) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.json")
	if err := os.WriteFile(path, []byte(mainDoc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	sf, hints, err := loader.LoadProgram(path)
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	root := ir.NewRootNamespace()
	ctx := &ir.Context{Root: root, SourceFiles: []*ir.SourceFile{sf}}
	if err := loader.Wire(ctx, []*loader.Hints{hints}); err != nil {
		t.Fatalf("Wire: %v", err)
	}
	return sf.Namespaces[0].Classes[0], root
}

// TestStaticMethodGetsNoSelfReceiver exercises the static-method
// cparameters rule a static `main` synthesis depends on: a Static
// method's CParams must not be prefixed with a self/base receiver, or
// the emitted main() trampoline's 2-argument call disagrees with the
// method's own 3-parameter declaration.
func TestStaticMethodGetsNoSelfReceiver(t *testing.T) {
	program, root := loadMainClass(t)

	var h, c strings.Builder
	em := decl.New(root, nil, &h, &c)
	if err := em.Pass1Class(program); err != nil {
		t.Fatalf("Pass1Class: %v", err)
	}
	if err := em.Pass2Class(program); err != nil {
		t.Fatalf("Pass2Class: %v", err)
	}

	m := program.Methods[0]
	if strings.Contains(m.CParams, "self") {
		t.Fatalf("static method must not receive a self parameter, got CParams=%q", m.CParams)
	}

	src := c.String()
	wantDef := "app_program_main (int argc, char *argv)"
	if !strings.Contains(src, wantDef) {
		t.Fatalf("expected static method definition %q:\n%s", wantDef, src)
	}
	if !strings.Contains(src, "return app_program_main(argc, argv);") {
		t.Fatalf("expected the main() trampoline to call with exactly 2 arguments:\n%s", src)
	}
}

func loadShapeHierarchy(t *testing.T) (*ir.Class, *ir.Class, *ir.Namespace) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.json")
	if err := os.WriteFile(path, []byte(shapesDoc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	sf, hints, err := loader.LoadProgram(path)
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	root := ir.NewRootNamespace()
	ctx := &ir.Context{Root: root, SourceFiles: []*ir.SourceFile{sf}}
	if err := loader.Wire(ctx, []*loader.Hints{hints}); err != nil {
		t.Fatalf("Wire: %v", err)
	}
	ns := sf.Namespaces[0]
	var shape, circle *ir.Class
	for _, cl := range ns.Classes {
		switch cl.Name {
		case "Shape":
			shape = cl
		case "Circle":
			circle = cl
		}
	}
	return shape, circle, root
}

// TestTwoPassClassEmissionGroupsHeaderLayout exercises the Declaration
// Emitter's Pass1Class/Pass2Class split across a base and a derived
// class: every class's Pass 1 macros land in the header ahead of every
// class's Pass 2 struct definitions, the virtual method gets a real
// body plus a GObject class-table dispatcher, and the override gets a
// self-stanza real body with no dispatcher of its own.
func TestTwoPassClassEmissionGroupsHeaderLayout(t *testing.T) {
	shape, circle, root := loadShapeHierarchy(t)

	var h, c strings.Builder
	em := decl.New(root, nil, &h, &c)

	for _, cl := range []*ir.Class{shape, circle} {
		if err := em.Pass1Class(cl); err != nil {
			t.Fatalf("Pass1Class(%s): %v", cl.Name, err)
		}
	}
	for _, cl := range []*ir.Class{shape, circle} {
		if err := em.Pass2Class(cl); err != nil {
			t.Fatalf("Pass2Class(%s): %v", cl.Name, err)
		}
	}

	header := h.String()
	shapeMacro := strings.Index(header, "APP_TYPE_SHAPE")
	circleMacro := strings.Index(header, "APP_TYPE_CIRCLE")
	shapeStruct := strings.Index(header, "struct _AppShape {")
	circleStruct := strings.Index(header, "struct _AppCircle {")
	if shapeMacro < 0 || circleMacro < 0 || shapeStruct < 0 || circleStruct < 0 {
		t.Fatalf("expected both classes' macros and structs in header:\n%s", header)
	}
	if !(shapeMacro < shapeStruct && circleMacro < circleStruct && circleMacro < shapeStruct) {
		t.Fatalf("expected every class's Pass 1 macros before every class's Pass 2 struct:\n%s", header)
	}

	src := c.String()
	if !strings.Contains(src, "app_shape_real_area") {
		t.Fatalf("virtual method's real body missing:\n%s", src)
	}
	if !strings.Contains(src, "APP_SHAPE_GET_CLASS(self)->area(self)") {
		t.Fatalf("virtual dispatcher call missing:\n%s", src)
	}
	if !strings.Contains(src, "app_circle_real_area (AppShape *base)") {
		t.Fatalf("override real body signature missing:\n%s", src)
	}
	if !strings.Contains(src, "AppCircle *self = APP_CIRCLE(base);") {
		t.Fatalf("override self-stanza missing:\n%s", src)
	}
	if !strings.Contains(src, "self->priv->radius * self->priv->radius") {
		t.Fatalf("override body didn't resolve the class's own private field:\n%s", src)
	}
	if strings.Contains(src, "app_circle_area (") {
		t.Fatalf("override must not get its own dispatcher symbol:\n%s", src)
	}
}
