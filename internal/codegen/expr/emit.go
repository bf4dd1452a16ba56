// Package expr implements the Expression Emitter (SPEC_FULL.md §4.2): it
// translates a typed expression into its C-fragment spelling, resolving
// types lazily through internal/resolve as it goes (the Resolver is
// idempotent, so repeated visits of a shared subexpression are cheap).
package expr

import (
	"fmt"
	"strings"

	"github.com/octanelang/octanec/internal/codegen/ctype"
	"github.com/octanelang/octanec/internal/diag"
	"github.com/octanelang/octanec/internal/ir"
	"github.com/octanelang/octanec/internal/resolve"
)

// Emitter writes one expression's C fragment into an internal buffer.
// Callers take String() once Emit returns successfully.
type Emitter struct {
	Ctx *resolve.Context
	W   strings.Builder
}

func New(ctx *resolve.Context) *Emitter {
	return &Emitter{Ctx: ctx}
}

func (em *Emitter) String() string { return em.W.String() }

// Emit is the dispatcher of SPEC_FULL.md §4.2's final switch
// (vala_code_generator_process_expression).
func (em *Emitter) Emit(expression ir.Expression) error {
	if err := em.Ctx.Resolve(expression); err != nil {
		return err
	}

	switch e := expression.(type) {
	case *ir.Assignment:
		return em.emitAssignment(e)
	case *ir.Cast:
		return em.emitCast(e)
	case *ir.ElementAccess:
		return em.emitElementAccess(e)
	case *ir.Invocation:
		return em.emitInvocation(e)
	case *ir.IsExpr:
		return em.emitIs(e)
	case *ir.MemberAccess:
		return em.emitMemberAccess(e)
	case *ir.ObjectCreation:
		return em.emitObjectCreation(e)
	case *ir.Operation:
		return em.emitOperation(e)
	case *ir.Parenthesized:
		em.W.WriteString("(")
		if err := em.Emit(e.Inner); err != nil {
			return err
		}
		em.W.WriteString(")")
		return nil
	case *ir.Postfix:
		if err := em.Emit(e.Inner); err != nil {
			return err
		}
		em.W.WriteString(e.Op)
		return nil
	case *ir.Literal:
		em.emitLiteral(e)
		return nil
	case *ir.SimpleName:
		return em.emitSimpleName(e)
	case *ir.StructOrArrayInitializer:
		return em.emitStructOrArrayInitializer(e)
	case *ir.ThisAccess:
		em.W.WriteString("self")
		return nil
	default:
		return diag.New(diag.InternalUnhandledKind, expression.Base().Pos, "unhandled expression kind %T", expression)
	}
}

func (em *Emitter) emitLiteral(lit *ir.Literal) {
	switch lit.Kind {
	case ir.LiteralBool:
		if lit.Bool {
			em.W.WriteString("TRUE")
		} else {
			em.W.WriteString("FALSE")
		}
	case ir.LiteralNull:
		em.W.WriteString("NULL")
	default:
		em.W.WriteString(lit.Text)
	}
}

func (em *Emitter) emitOperation(op *ir.Operation) error {
	if op.Left != nil {
		if err := em.Emit(op.Left); err != nil {
			return err
		}
	}
	fmt.Fprintf(&em.W, " %s ", op.Op.Symbol())
	return em.Emit(op.Right)
}

// emitAssignment implements §4.2's Assignment rule: a property target
// routes through g_object_set; anything else is a plain `=`.
func (em *Emitter) emitAssignment(a *ir.Assignment) error {
	left := a.Left.Base()
	if left.BoundProperty != nil {
		em.W.WriteString("g_object_set (")
		switch target := a.Left.(type) {
		case *ir.SimpleName:
			em.W.WriteString("self")
		case *ir.MemberAccess:
			if err := em.Emit(target.Left); err != nil {
				return err
			}
		}
		fmt.Fprintf(&em.W, ", \"%s\", ", left.BoundProperty.Name)
		if err := em.Emit(a.Right); err != nil {
			return err
		}
		em.W.WriteString(", NULL)")
		return nil
	}

	if err := em.Emit(a.Left); err != nil {
		return err
	}
	em.W.WriteString(" = ")
	return em.Emit(a.Right)
}

// emitInvocation implements §4.2's Invocation rule.
func (em *Emitter) emitInvocation(inv *ir.Invocation) error {
	calleeSym := inv.Callee.Base().StaticTypeSymbol
	method := calleeSym.Method

	if method.ReturnsModifiedPointer {
		if inv.Base().StaticTypeSymbol != nil && inv.Base().StaticTypeSymbol.Kind != ir.SymVoid {
			return diag.New(diag.ReturnsModifiedPointerShape, inv.Base().Pos, "ReturnsModifiedPointer declared on a method with non-void return type")
		}
		if inv.Instance != nil {
			if err := em.Emit(inv.Instance); err != nil {
				return err
			}
		} else {
			em.W.WriteString("self")
		}
		em.W.WriteString(" = ")
	}

	if err := em.Emit(inv.Callee); err != nil {
		return err
	}
	em.W.WriteString(" (")

	first := true
	if !method.InstanceLast && !method.Modifiers.Has(ir.Static) {
		if err := em.emitInstanceArg(method, inv.Instance); err != nil {
			return err
		}
		first = false
	}
	for _, arg := range inv.Args {
		if !first {
			em.W.WriteString(", ")
		}
		first = false
		if err := em.Emit(arg); err != nil {
			return err
		}
	}
	if method.InstanceLast && !method.Modifiers.Has(ir.Static) {
		if !first {
			em.W.WriteString(", ")
		}
		if inv.Instance != nil {
			if err := em.Emit(inv.Instance); err != nil {
				return err
			}
		} else {
			em.W.WriteString("self")
		}
	}
	em.W.WriteString(")")
	return nil
}

func (em *Emitter) emitInstanceArg(method *ir.Method, instance ir.Expression) error {
	needsUpcast := !method.IsStructMethod
	if instance != nil {
		instSym := instance.Base().StaticTypeSymbol
		sameType := instSym != nil && method.Class != nil && instSym == method.Class.Symbol
		if needsUpcast && !sameType {
			fmt.Fprintf(&em.W, "%s(", ctype.ClassUpperMacro(method.Class))
		}
		if err := em.Emit(instance); err != nil {
			return err
		}
		if needsUpcast && !sameType {
			em.W.WriteString(")")
		}
		return nil
	}

	sameType := em.Ctx.Class != nil && method.Class != nil && em.Ctx.Class.Symbol == method.Class.Symbol
	if needsUpcast && !sameType {
		fmt.Fprintf(&em.W, "%s(", ctype.ClassUpperMacro(method.Class))
	}
	em.W.WriteString("self")
	if needsUpcast && !sameType {
		em.W.WriteString(")")
	}
	return nil
}

func (em *Emitter) emitCast(c *ir.Cast) error {
	if c.Type.Symbol != nil && c.Type.Symbol.Kind == ir.SymClass {
		fmt.Fprintf(&em.W, "%s(", ctype.ClassUpperMacro(c.Type.Symbol.Class))
		if err := em.Emit(c.Inner); err != nil {
			return err
		}
		em.W.WriteString(")")
		return nil
	}
	cname, err := ctype.ForTypeRef(c.Type, false, c.Base().Pos)
	if err != nil {
		return err
	}
	fmt.Fprintf(&em.W, "(%s) ", cname)
	return em.Emit(c.Inner)
}

func (em *Emitter) emitIs(is *ir.IsExpr) error {
	if is.Type.Symbol == nil || is.Type.Symbol.Kind != ir.SymClass {
		return diag.New(diag.IsOnNonClass, is.Base().Pos, "type check on non-class")
	}
	cl := is.Type.Symbol.Class
	fmt.Fprintf(&em.W, "%sIS_%s(", cl.Namespace.UpperCName, cl.UpperCName)
	if err := em.Emit(is.Of); err != nil {
		return err
	}
	em.W.WriteString(")")
	return nil
}

func (em *Emitter) emitElementAccess(ea *ir.ElementAccess) error {
	if err := em.Emit(ea.Array); err != nil {
		return err
	}
	em.W.WriteString("[")
	if err := em.Emit(ea.Index); err != nil {
		return err
	}
	em.W.WriteString("]")
	return nil
}

// emitMemberAccess implements §4.2's Member access rule.
func (em *Emitter) emitMemberAccess(ma *ir.MemberAccess) error {
	base := ma.Base()
	sym := base.StaticTypeSymbol

	if sym != nil && sym.Kind == ir.SymMethod {
		em.W.WriteString(sym.Method.CName)
		return nil
	}
	if base.StaticSymbol != nil && base.StaticSymbol.Kind == ir.SymEnumValue {
		em.W.WriteString(base.StaticSymbol.EnumVal.CName)
		return nil
	}
	if base.BoundProperty != nil {
		prop := base.BoundProperty
		fmt.Fprintf(&em.W, "%s%s_get_%s(", prop.Class.Namespace.LowerCName, prop.Class.LowerCName, prop.Name)
		if err := em.Emit(ma.Left); err != nil {
			return err
		}
		em.W.WriteString(")")
		return nil
	}

	field := base.BoundField
	if field != nil && !field.IsStructField {
		fmt.Fprintf(&em.W, "%s(", ctype.ClassUpperMacro(field.Class))
	}
	if err := em.Emit(ma.Left); err != nil {
		return err
	}
	if field != nil {
		if !field.IsStructField {
			em.W.WriteString(")")
		}
		fmt.Fprintf(&em.W, "->%s", ma.Right)
	}
	return nil
}

func (em *Emitter) emitObjectCreation(oc *ir.ObjectCreation) error {
	cl := oc.Type.Symbol.Class
	fmt.Fprintf(&em.W, "g_object_new(%sTYPE_%s", cl.Namespace.UpperCName, cl.UpperCName)
	for _, arg := range oc.NamedArguments {
		fmt.Fprintf(&em.W, ", \"%s\", ", arg.Name)
		if err := em.Emit(arg.Expr); err != nil {
			return err
		}
	}
	em.W.WriteString(", NULL)")
	return nil
}

func (em *Emitter) emitStructOrArrayInitializer(s *ir.StructOrArrayInitializer) error {
	em.W.WriteString("{ ")
	for i, el := range s.Elements {
		if i > 0 {
			em.W.WriteString(", ")
		}
		if err := em.Emit(el); err != nil {
			return err
		}
	}
	em.W.WriteString(" }")
	return nil
}

// emitSimpleName implements §4.2's Simple name rule, including the
// ref/out `&` prefix.
func (em *Emitter) emitSimpleName(sn *ir.SimpleName) error {
	if sn.RefOrOut {
		em.W.WriteString("&")
	}

	base := sn.Base()

	if field := base.BoundField; field != nil {
		return em.emitFieldSimpleName(sn, field)
	}
	if prop := base.BoundProperty; prop != nil {
		fmt.Fprintf(&em.W, "%s%s_get_%s(self)", prop.Class.Namespace.LowerCName, prop.Class.LowerCName, prop.Name)
		return nil
	}

	if base.StaticTypeSymbol != nil && base.StaticTypeSymbol.Kind == ir.SymMethod {
		em.W.WriteString(base.StaticTypeSymbol.Method.CName)
		return nil
	}
	em.W.WriteString(sn.Name)
	return nil
}

func (em *Emitter) emitFieldSimpleName(sn *ir.SimpleName, field *ir.Field) error {
	if field.Class != nil {
		cl := field.Class
		nsUp, clUp := cl.Namespace.UpperCName, cl.UpperCName
		switch {
		case field.Modifiers.Has(ir.Static) && field.Modifiers.Has(ir.Private):
			em.W.WriteString(sn.Name)
		case field.Modifiers.Has(ir.Static):
			fmt.Fprintf(&em.W, "%s%s_GET_CLASS(self)->%s", nsUp, clUp, sn.Name)
		case field.Modifiers.Has(ir.Private):
			fmt.Fprintf(&em.W, "self->priv->%s", sn.Name)
		case field.Modifiers.Has(ir.Public):
			fmt.Fprintf(&em.W, "%s%s(self)->%s", nsUp, clUp, sn.Name)
		}
		return nil
	}
	if field.Namespace != nil {
		if field.CName != "" {
			em.W.WriteString(field.CName)
		} else {
			fmt.Fprintf(&em.W, "%s%s", field.Namespace.LowerCName, sn.Name)
		}
		return nil
	}
	em.W.WriteString(sn.Name)
	return nil
}
