package loader

import (
	"fmt"

	"github.com/octanelang/octanec/internal/identfmt"
	"github.com/octanelang/octanec/internal/ir"
)

// Wire finishes what LoadProgram could not do file-by-file: it binds
// every namespace/class/struct/enum into root's symbol table, derives
// the C-name fields the Declaration Emitter depends on, resolves every
// TypeRef's TypeName against a declared or primitive symbol, and
// settles each Class's user-defined Base pointer from the hints
// LoadProgram collected. Call it once, after every SourceFile in a
// Context has been loaded, so cross-file references resolve regardless
// of load order.
func Wire(ctx *ir.Context, hints []*Hints) error {
	for _, sf := range ctx.SourceFiles {
		for _, ns := range sf.Namespaces {
			if ns.IsGlobal() {
				// A per-file "" namespace is the same logical scope as the
				// root: alias it directly instead of creating a second,
				// disconnected symbol table a Simple Name lookup would never
				// find (SimpleName resolution only ever walks c.Root itself).
				ns.Symbol = ctx.Root.Symbol
				continue
			}
			bindNamespace(ctx.Root, ns)
		}
	}

	for _, sf := range ctx.SourceFiles {
		for _, ns := range sf.Namespaces {
			for _, cl := range ns.Classes {
				nameClass(cl)
			}
			for _, st := range ns.Structs {
				nameStruct(st)
			}
			for _, e := range ns.Enums {
				nameEnum(e)
			}
		}
	}

	for _, h := range hints {
		for cl, baseName := range h.BaseNames {
			baseSym := lookupType(ctx.Root, cl.Namespace, baseName)
			if baseSym == nil || baseSym.Kind != ir.SymClass {
				return fmt.Errorf("class %s: base class %q not found", cl.Name, baseName)
			}
			cl.Base = baseSym.Class
		}
	}

	for _, sf := range ctx.SourceFiles {
		for _, ns := range sf.Namespaces {
			for _, cl := range ns.Classes {
				if err := wireClassBody(ctx.Root, cl); err != nil {
					return err
				}
				for _, m := range cl.Methods {
					if err := wireBody(ctx.Root, ns, m.Body); err != nil {
						return fmt.Errorf("class %s method %s: %w", cl.Name, m.Name, err)
					}
				}
				for _, p := range cl.Properties {
					if err := wireBody(ctx.Root, ns, p.GetBody); err != nil {
						return fmt.Errorf("class %s property %s get: %w", cl.Name, p.Name, err)
					}
					if err := wireBody(ctx.Root, ns, p.SetBody); err != nil {
						return fmt.Errorf("class %s property %s set: %w", cl.Name, p.Name, err)
					}
				}
			}
			for _, st := range ns.Structs {
				if err := wireStructBody(ctx.Root, st); err != nil {
					return err
				}
				for _, m := range st.Methods {
					if err := wireBody(ctx.Root, ns, m.Body); err != nil {
						return fmt.Errorf("struct %s method %s: %w", st.Name, m.Name, err)
					}
				}
			}
			for _, m := range ns.Methods {
				if err := wireTypeRef(ctx.Root, ns, m.ReturnType); err != nil {
					return err
				}
				if err := wireParams(ctx.Root, ns, m.Params); err != nil {
					return err
				}
				if err := wireBody(ctx.Root, ns, m.Body); err != nil {
					return fmt.Errorf("method %s: %w", m.Name, err)
				}
			}
		}
	}

	return nil
}

// wireBody resolves every TypeRef reachable from a method/accessor
// body — local declarations, foreach loop variables, casts, is-checks,
// and object creations — none of which LoadProgram's own pass can see
// since they sit inside the statement/expression tree rather than a
// top-level declaration.
func wireBody(root, ns *ir.Namespace, body *ir.Block) error {
	if body == nil {
		return nil
	}
	return walkStmt(root, ns, body)
}

func walkStmt(root, ns *ir.Namespace, s ir.Statement) error {
	if s == nil {
		return nil
	}
	switch st := s.(type) {
	case *ir.Block:
		for _, inner := range st.Statements {
			if err := walkStmt(root, ns, inner); err != nil {
				return err
			}
		}
	case *ir.ExpressionStmt:
		return walkExpr(root, ns, st.Expr)
	case *ir.VariableDeclaration:
		if err := wireTypeRef(root, ns, st.Decl.Type); err != nil {
			return fmt.Errorf("variable %s: %w", st.Decl.Name, err)
		}
		return walkExpr(root, ns, st.Decl.Initializer)
	case *ir.While:
		if err := walkExpr(root, ns, st.Condition); err != nil {
			return err
		}
		return walkStmt(root, ns, st.Loop)
	case *ir.For:
		for _, e := range st.Initializer {
			if err := walkExpr(root, ns, e); err != nil {
				return err
			}
		}
		if err := walkExpr(root, ns, st.Condition); err != nil {
			return err
		}
		for _, e := range st.Iterator {
			if err := walkExpr(root, ns, e); err != nil {
				return err
			}
		}
		return walkStmt(root, ns, st.Loop)
	case *ir.Foreach:
		if err := wireTypeRef(root, ns, st.Type); err != nil {
			return fmt.Errorf("foreach variable %s: %w", st.Name, err)
		}
		if err := walkExpr(root, ns, st.Container); err != nil {
			return err
		}
		return walkStmt(root, ns, st.Loop)
	case *ir.If:
		if err := walkExpr(root, ns, st.Condition); err != nil {
			return err
		}
		if err := walkStmt(root, ns, st.True); err != nil {
			return err
		}
		return walkStmt(root, ns, st.False)
	case *ir.Return:
		return walkExpr(root, ns, st.Expr)
	}
	return nil
}

func walkExpr(root, ns *ir.Namespace, e ir.Expression) error {
	if e == nil {
		return nil
	}
	switch ex := e.(type) {
	case *ir.MemberAccess:
		return walkExpr(root, ns, ex.Left)
	case *ir.Invocation:
		if err := walkExpr(root, ns, ex.Callee); err != nil {
			return err
		}
		for _, a := range ex.Args {
			if err := walkExpr(root, ns, a); err != nil {
				return err
			}
		}
	case *ir.ObjectCreation:
		if err := wireTypeRef(root, ns, ex.Type); err != nil {
			return err
		}
		for _, na := range ex.NamedArguments {
			if err := walkExpr(root, ns, na.Expr); err != nil {
				return err
			}
		}
	case *ir.Operation:
		if err := walkExpr(root, ns, ex.Left); err != nil {
			return err
		}
		return walkExpr(root, ns, ex.Right)
	case *ir.Cast:
		if err := wireTypeRef(root, ns, ex.Type); err != nil {
			return err
		}
		return walkExpr(root, ns, ex.Inner)
	case *ir.IsExpr:
		if err := wireTypeRef(root, ns, ex.Type); err != nil {
			return err
		}
		return walkExpr(root, ns, ex.Of)
	case *ir.ElementAccess:
		if err := walkExpr(root, ns, ex.Array); err != nil {
			return err
		}
		return walkExpr(root, ns, ex.Index)
	case *ir.Parenthesized:
		return walkExpr(root, ns, ex.Inner)
	case *ir.Postfix:
		return walkExpr(root, ns, ex.Inner)
	case *ir.StructOrArrayInitializer:
		for _, el := range ex.Elements {
			if err := walkExpr(root, ns, el); err != nil {
				return err
			}
		}
	case *ir.Assignment:
		if err := walkExpr(root, ns, ex.Left); err != nil {
			return err
		}
		return walkExpr(root, ns, ex.Right)
	}
	return nil
}

// bindNamespace registers ns (and its declarations) in root's symbol
// table under ns.Name, creating ns.Symbol if this is the first source
// file to declare that namespace name (namespaces may be reopened
// across files, mirroring the original's per-file `namespace Foo {}`
// blocks sharing one logical namespace).
func bindNamespace(root *ir.Namespace, ns *ir.Namespace) {
	existing := root.Symbol.Lookup(ns.Name)
	if existing != nil && existing.Kind == ir.SymNamespace {
		ns.Symbol = existing
		ns.LowerCName = existing.NS.LowerCName
		ns.UpperCName = existing.NS.UpperCName
		return
	}

	ns.LowerCName = identfmt.ToLowerPrefix(ns.Name)
	ns.UpperCName = identfmt.ToUpperPrefix(ns.Name)
	ns.Symbol = ir.NewSymbol(ir.SymNamespace, ns.Name)
	ns.Symbol.NS = ns
	root.Symbol.Bind(ns.Name, ns.Symbol)
}

func nameClass(cl *ir.Class) {
	cl.LowerCName = identfmt.ToLower(cl.Name)
	cl.UpperCName = identfmt.ToUpper(cl.Name)
	cl.CName = cl.Namespace.Name + cl.Name
	cl.Symbol = ir.NewSymbol(ir.SymClass, cl.Name)
	cl.Symbol.Class = cl
	cl.Namespace.Symbol.Bind(cl.Name, cl.Symbol)

	for _, f := range cl.Fields {
		f.Symbol = ir.NewSymbol(ir.SymField, f.Name)
		f.Symbol.Field = f
		cl.Symbol.Bind(f.Name, f.Symbol)
	}
	for _, m := range cl.Methods {
		m.Symbol = ir.NewSymbol(ir.SymMethod, m.Name)
		m.Symbol.Method = m
		cl.Symbol.Bind(m.Name, m.Symbol)
	}
	for _, p := range cl.Properties {
		p.Symbol = ir.NewSymbol(ir.SymProperty, p.Name)
		p.Symbol.Property = p
		cl.Symbol.Bind(p.Name, p.Symbol)
	}
}

func nameStruct(st *ir.Struct) {
	st.LowerCName = identfmt.ToLower(st.Name)
	st.UpperCName = identfmt.ToUpper(st.Name)
	st.CName = st.Namespace.Name + st.Name
	st.Symbol = ir.NewSymbol(ir.SymStruct, st.Name)
	st.Symbol.Struct = st
	st.Namespace.Symbol.Bind(st.Name, st.Symbol)

	for _, f := range st.Fields {
		f.Symbol = ir.NewSymbol(ir.SymField, f.Name)
		f.Symbol.Field = f
		st.Symbol.Bind(f.Name, f.Symbol)
	}
	for _, m := range st.Methods {
		m.Symbol = ir.NewSymbol(ir.SymMethod, m.Name)
		m.Symbol.Method = m
		st.Symbol.Bind(m.Name, m.Symbol)
	}
}

func nameEnum(e *ir.Enum) {
	e.CName = e.Namespace.Name + e.Name
	e.UpperCName = identfmt.ToUpper(e.Name)
	e.Symbol = ir.NewSymbol(ir.SymEnum, e.Name)
	e.Symbol.Enum = e
	e.Namespace.Symbol.Bind(e.Name, e.Symbol)

	for _, v := range e.Values {
		v.CName = e.Namespace.UpperCName + e.UpperCName + "_" + identfmt.ToUpper(v.Name)
		v.Symbol = ir.NewSymbol(ir.SymEnumValue, v.Name)
		v.Symbol.EnumVal = v
		e.Symbol.Bind(v.Name, v.Symbol)
	}
}

// lookupType resolves name against the primitive table in root, then
// against ns's own declarations, mirroring the declaration-lookup
// portion of the Simple Name rule (§4.1) without the block-scope/using
// layers that only apply inside a method body.
func lookupType(root, ns *ir.Namespace, name string) *ir.Symbol {
	if sym := root.Symbol.Lookup(name); sym != nil {
		return sym
	}
	if ns != nil {
		if sym := ns.Symbol.Lookup(name); sym != nil {
			return sym
		}
	}
	return nil
}

func wireTypeRef(root *ir.Namespace, ns *ir.Namespace, t *ir.TypeRef) error {
	if t == nil || t.TypeName == "" {
		return nil // "var" placeholder, left for the Statement Emitter
	}
	sym := lookupType(root, ns, t.TypeName)
	if sym == nil {
		return fmt.Errorf("type %q not found", t.TypeName)
	}
	t.Symbol = sym
	return nil
}

func wireParams(root, ns *ir.Namespace, params []*ir.FormalParameter) error {
	for _, p := range params {
		if err := wireTypeRef(root, ns, p.Type); err != nil {
			return fmt.Errorf("parameter %s: %w", p.Name, err)
		}
	}
	return nil
}

func wireClassBody(root *ir.Namespace, cl *ir.Class) error {
	ns := cl.Namespace
	for _, f := range cl.Fields {
		if err := wireTypeRef(root, ns, f.Decl.Type); err != nil {
			return fmt.Errorf("class %s field %s: %w", cl.Name, f.Name, err)
		}
	}
	for _, p := range cl.Properties {
		if err := wireTypeRef(root, ns, p.ReturnType); err != nil {
			return fmt.Errorf("class %s property %s: %w", cl.Name, p.Name, err)
		}
	}
	for _, cst := range cl.Constants {
		if err := wireTypeRef(root, ns, cst.Decl.Type); err != nil {
			return fmt.Errorf("class %s constant %s: %w", cl.Name, cst.Decl.Name, err)
		}
	}
	for _, m := range cl.Methods {
		if err := wireTypeRef(root, ns, m.ReturnType); err != nil {
			return fmt.Errorf("class %s method %s: %w", cl.Name, m.Name, err)
		}
		if err := wireParams(root, ns, m.Params); err != nil {
			return fmt.Errorf("class %s method %s: %w", cl.Name, m.Name, err)
		}
	}
	return nil
}

func wireStructBody(root *ir.Namespace, st *ir.Struct) error {
	ns := st.Namespace
	for _, f := range st.Fields {
		if err := wireTypeRef(root, ns, f.Decl.Type); err != nil {
			return fmt.Errorf("struct %s field %s: %w", st.Name, f.Name, err)
		}
	}
	for _, m := range st.Methods {
		if err := wireTypeRef(root, ns, m.ReturnType); err != nil {
			return fmt.Errorf("struct %s method %s: %w", st.Name, m.Name, err)
		}
		if err := wireParams(root, ns, m.Params); err != nil {
			return fmt.Errorf("struct %s method %s: %w", st.Name, m.Name, err)
		}
	}
	return nil
}
