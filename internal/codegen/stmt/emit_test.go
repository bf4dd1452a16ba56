package stmt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/octanelang/octanec/internal/codegen/stmt"
	"github.com/octanelang/octanec/internal/ir"
	"github.com/octanelang/octanec/internal/loader"
	"github.com/octanelang/octanec/internal/resolve"
)

const greeterDoc = `{
  "namespaces": [
    {
      "name": "App",
      "classes": [
        {
          "name": "Greeter",
          "baseCName": "GObject",
          "fields": [
            {"name": "_count", "modifiers": ["private"], "type": {"typeName": "int"}}
          ],
          "methods": [
            {
              "name": "classify",
              "modifiers": ["public"],
              "returnType": {"typeName": "int"},
              "body": [
                {"kind": "varDecl", "name": "r", "type": {}, "initializer": {"kind": "simpleName", "name": "_count"}},
                {"kind": "if",
                  "condition": {"kind": "operation", "op": ">", "left": {"kind": "simpleName", "name": "r"}, "right": {"kind": "literal", "literalKind": "int", "text": "0"}},
                  "true": {"kind": "block", "statements": [
                    {"kind": "varDecl", "name": "tmp", "type": {"typeName": "int"}, "initializer": {"kind": "literal", "literalKind": "int", "text": "1"}},
                    {"kind": "return", "expr": {"kind": "simpleName", "name": "tmp"}}
                  ]},
                  "false": {"kind": "block", "statements": [
                    {"kind": "varDecl", "name": "tmp", "type": {"typeName": "string"}, "initializer": {"kind": "literal", "literalKind": "string", "text": "\"none\""}},
                    {"kind": "return", "expr": {"kind": "literal", "literalKind": "int", "text": "0"}}
                  ]}
                }
              ]
            }
          ]
        }
      ]
    }
  ]
}`

func loadGreeter(t *testing.T) (*ir.Context, *ir.Class) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "greeter.json")
	if err := os.WriteFile(path, []byte(greeterDoc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	sf, hints, err := loader.LoadProgram(path)
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	ctx := &ir.Context{Root: ir.NewRootNamespace(), SourceFiles: []*ir.SourceFile{sf}}
	if err := loader.Wire(ctx, []*loader.Hints{hints}); err != nil {
		t.Fatalf("Wire: %v", err)
	}
	cl := ctx.SourceFiles[0].Namespaces[0].Classes[0]
	return ctx, cl
}

// TestEmitVarInferenceAndStackedBlockScopes exercises the var-typed
// local's type inference and the if/else branches' sibling block scopes:
// both branches declare a local named "tmp" with a different type, and
// each declaration is emitted with its own branch's type.
func TestEmitVarInferenceAndStackedBlockScopes(t *testing.T) {
	ctx, cl := loadGreeter(t)
	method := cl.Methods[0]

	rctx := resolve.NewContext(ctx.Root, cl, nil)
	var out strings.Builder
	se := stmt.New(rctx, &out)

	rctx.PushScope()
	for _, s := range method.Body.Statements {
		if err := se.Emit(s); err != nil {
			t.Fatalf("Emit: %v", err)
		}
	}
	rctx.PopScope()

	got := out.String()
	if !strings.Contains(got, "int r = self->priv->_count;") {
		t.Fatalf("var-typed local didn't infer int from its initializer:\n%s", got)
	}
	if !strings.Contains(got, "int tmp = 1;") {
		t.Fatalf("true-branch tmp declaration missing:\n%s", got)
	}
	if !strings.Contains(got, "char *tmp = \"none\";") {
		t.Fatalf("false-branch tmp declaration missing or wrong type:\n%s", got)
	}
	if !strings.Contains(got, "if (r > 0)") {
		t.Fatalf("if condition missing:\n%s", got)
	}
}
