// Package ctype renders a TypeRef (or an already-resolved expression's
// static type) to its C spelling, grounded on generator.c's
// get_cname_for_type_reference and get_cname_for_static_expression_type.
// Shared by the Statement and Declaration Emitters so field, constant,
// local, and parameter declarations agree on one rendering.
package ctype

import (
	"fmt"

	"github.com/octanelang/octanec/internal/diag"
	"github.com/octanelang/octanec/internal/ir"
)

func classUpper(cl *ir.Class) string { return cl.Namespace.UpperCName + cl.UpperCName }

// ForTypeRef renders t to a C type spelling. When constant is true and t
// is an array-typed struct, "const" is placed before the element type
// rather than the pointer (matching the original's special case for
// `const Array` vs `const Array *`).
func ForTypeRef(t *ir.TypeRef, constant bool, pos ir.Position) (string, error) {
	if t == nil || t.Symbol == nil {
		return "", diag.New(diag.InternalUnhandledKind, pos, "type reference has no resolved symbol")
	}
	sym := t.Symbol
	switch sym.Kind {
	case ir.SymClass:
		star := ""
		if t.ArrayType {
			star = "*"
		}
		return fmt.Sprintf("%s *%s", sym.Class.CName, star), nil
	case ir.SymStruct:
		ref := ""
		if sym.Struct.ReferenceType {
			ref = "*"
		}
		if constant && t.ArrayType {
			return fmt.Sprintf("const %s %s", sym.Struct.CName, ref), nil
		}
		star := ""
		if t.ArrayType {
			star = "*"
		}
		prefix := ""
		if constant {
			prefix = "const "
		}
		return fmt.Sprintf("%s%s %s%s", prefix, sym.Struct.CName, ref, star), nil
	case ir.SymEnum:
		return fmt.Sprintf("%s ", sym.Enum.CName), nil
	case ir.SymVoid:
		return "void", nil
	default:
		return "", diag.New(diag.InternalUnhandledKind, pos, "internal error: unhandled symbol kind %s", sym.Kind)
	}
}

// ForStaticType renders the already-resolved static type of expr (used
// for e.g. the Foreach array iterator declaration, §4.3 S4).
func ForStaticType(base *ir.Expr) (string, error) {
	sym := base.StaticTypeSymbol
	if sym == nil {
		return "", diag.New(diag.InternalUnhandledKind, base.Pos, "expression has no resolved static type")
	}
	switch sym.Kind {
	case ir.SymClass:
		star := ""
		if base.ArrayType {
			star = "*"
		}
		return fmt.Sprintf("%s *%s", sym.Class.CName, star), nil
	case ir.SymStruct:
		ref := ""
		if sym.Struct.ReferenceType {
			ref = "*"
		}
		star := ""
		if base.ArrayType {
			star = "*"
		}
		return fmt.Sprintf("%s %s%s", sym.Struct.CName, ref, star), nil
	case ir.SymVoid:
		return "void", nil
	default:
		return "", diag.New(diag.InternalUnhandledKind, base.Pos, "internal error: unhandled symbol kind %s", sym.Kind)
	}
}

// ClassUpperMacro returns the "NS_CLASS" macro-name fragment used by
// upcast/is-check/get-class macros, e.g. "GTK_BUTTON".
func ClassUpperMacro(cl *ir.Class) string { return classUpper(cl) }

// ClassLowerPrefix returns the "ns_class_" function-name prefix, e.g.
// "gtk_button_".
func ClassLowerPrefix(cl *ir.Class) string { return cl.Namespace.LowerCName + cl.LowerCName + "_" }
