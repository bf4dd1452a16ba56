// Package resolve implements the Type Resolver (SPEC_FULL.md §4.1): it
// decorates each expression in place with its static_type_symbol,
// array_type flag, and bound field/property, per the lookup order of
// §4.1 and the inherited-member walk of §4.1.1.
package resolve

import (
	"github.com/octanelang/octanec/internal/diag"
	"github.com/octanelang/octanec/internal/ir"
)

// Context carries the lexical environment an expression is resolved in:
// the enclosing class (for `this` and inherited-member fallback), the
// current namespace, its using-directives, and the open block-scope
// stack. One Context is created per method/property-accessor body
// traversal — the Go analogue of the original's single mutable
// generator->sym / generator->class fields, made explicit and
// non-global so resolution is safe to reason about per call site.
type Context struct {
	Root      *ir.Namespace
	Class     *ir.Class
	Namespace *ir.Namespace
	Using     []string

	scopes *scopeStack
}

// NewContext starts a fresh resolution context for a method body owned
// by class, in the given root namespace, honoring the source file's
// using directives.
func NewContext(root *ir.Namespace, class *ir.Class, using []string) *Context {
	ns := root
	if class != nil {
		ns = class.Namespace
	}
	return &Context{Root: root, Class: class, Namespace: ns, Using: using, scopes: newScopeStack()}
}

// PushScope opens a new block scope (Block statement entry, §4.3) and
// returns it so the caller can bind parameters/loop variables before
// visiting statements.
func (c *Context) PushScope() *ir.Symbol { return c.scopes.push() }

// PopScope closes the innermost block scope (Block statement exit).
func (c *Context) PopScope() { c.scopes.pop() }

// BindLocal inserts a LocalVariable symbol for name, typed typeref, into
// the innermost open scope.
func (c *Context) BindLocal(name string, typeref *ir.TypeRef) {
	scope := c.scopes.current()
	if scope == nil {
		scope = c.scopes.push()
	}
	sym := ir.NewSymbol(ir.SymLocalVariable, name)
	sym.TypeRef = typeref
	scope.Bind(name, sym)
}

// Resolve sets expr.StaticTypeSymbol for every expression kind that has
// a type, recursing into subexpressions first where their type is
// needed. Int/char/bool/null literals, assignments, postfix expressions,
// initializers and operations other than + and - are left without one
// (assignments, postfix expressions and initializers still resolve their
// subexpressions). Idempotent
// (Invariant 5): a second call on an already-resolved expression is a
// no-op.
func (c *Context) Resolve(expr ir.Expression) error {
	base := expr.Base()
	if base.Resolved() {
		return nil
	}

	switch e := expr.(type) {
	case *ir.Literal:
		return c.resolveLiteral(e)
	case *ir.ThisAccess:
		if c.Class == nil {
			return diag.New(diag.UnresolvedSymbol, base.Pos, "'this' used outside a class context")
		}
		base.StaticTypeSymbol = c.Class.Symbol
		return nil
	case *ir.SimpleName:
		return c.resolveSimpleName(e)
	case *ir.MemberAccess:
		return c.resolveMemberAccess(e)
	case *ir.Invocation:
		return c.resolveInvocation(e)
	case *ir.ElementAccess:
		return c.resolveElementAccess(e)
	case *ir.Operation:
		return c.resolveOperation(e)
	case *ir.Cast:
		base.StaticTypeSymbol = e.Type.Symbol
		base.ArrayType = e.Type.ArrayType
		return nil
	case *ir.ObjectCreation:
		base.StaticTypeSymbol = e.Type.Symbol
		base.ArrayType = e.Type.ArrayType
		return nil
	case *ir.IsExpr:
		base.StaticTypeSymbol = c.lookupRoot(ir.TypeBool)
		return nil
	case *ir.Parenthesized:
		if err := c.Resolve(e.Inner); err != nil {
			return err
		}
		inner := e.Inner.Base()
		base.StaticTypeSymbol = inner.StaticTypeSymbol
		base.ArrayType = inner.ArrayType
		return nil
	case *ir.Assignment:
		// No type needed for assignment itself (§4.1); still resolve the
		// left side so property/field binding is available to emission.
		return c.Resolve(e.Left)
	case *ir.Postfix:
		return c.Resolve(e.Inner)
	case *ir.StructOrArrayInitializer:
		for _, el := range e.Elements {
			if err := c.Resolve(el); err != nil {
				return err
			}
		}
		return nil
	default:
		return diag.New(diag.InternalUnhandledKind, base.Pos, "unhandled expression kind %T", expr)
	}
}

func (c *Context) resolveLiteral(lit *ir.Literal) error {
	switch lit.Kind {
	case ir.LiteralString:
		lit.StaticTypeSymbol = c.lookupRoot(ir.TypeString)
	case ir.LiteralInt, ir.LiteralChar, ir.LiteralBool, ir.LiteralNull:
		// Left unset: int/char are inferred by context; bool/null need no
		// type for emission (TRUE/FALSE/NULL are written directly).
	}
	return nil
}

func (c *Context) lookupRoot(name string) *ir.Symbol {
	return c.Root.Symbol.Lookup(name)
}

// resolveSimpleName implements the lookup order of §4.1's Simple Name
// rule: (a) block scope chain, (b) this-inherited members, (c) current
// namespace, (d) root namespace, (e) using-directive namespaces
// (ambiguous across ≥2 hits is a hard error).
func (c *Context) resolveSimpleName(sn *ir.SimpleName) error {
	base := sn.Base()

	if sym := c.scopes.lookup(sn.Name); sym != nil {
		base.StaticTypeSymbol = sym.TypeRef.Symbol
		base.ArrayType = sym.TypeRef.ArrayType
		return nil
	}

	var sym *ir.Symbol
	if c.Class != nil {
		sym, _ = getInheritedMember(c.Class, sn.Name, false)
	}

	if sym == nil && c.Namespace != nil {
		sym = c.Namespace.Symbol.Lookup(sn.Name)
	}

	if sym == nil {
		sym = c.lookupRoot(sn.Name)
	}

	if sym == nil {
		var hits []*ir.Symbol
		for _, usingName := range c.Using {
			nsSym := c.lookupRoot(usingName)
			if nsSym == nil {
				return diag.New(diag.UnresolvedSymbol, base.Pos, "using directive namespace '%s' not found", usingName)
			}
			if hit := nsSym.Lookup(sn.Name); hit != nil {
				hits = append(hits, hit)
			}
		}
		if len(hits) > 1 {
			return diag.New(diag.AmbiguousUsing, base.Pos, "symbol '%s' is ambiguous across using directives", sn.Name)
		}
		if len(hits) == 1 {
			sym = hits[0]
		}
	}

	if sym == nil {
		return diag.New(diag.UnresolvedSymbol, base.Pos, "symbol '%s' not found", sn.Name)
	}

	bindHit(base, sn, sym)
	return nil
}

// bindHit flattens a Field/Property hit to its declared type, per §4.1.
func bindHit(base *ir.Expr, sn *ir.SimpleName, sym *ir.Symbol) {
	switch sym.Kind {
	case ir.SymField:
		base.BoundField = sym.Field
		base.ArrayType = sym.Field.Decl.Type.ArrayType
		base.StaticTypeSymbol = sym.Field.Decl.Type.Symbol
	case ir.SymProperty:
		base.BoundProperty = sym.Property
		base.ArrayType = sym.Property.ReturnType.ArrayType
		base.StaticTypeSymbol = sym.Property.ReturnType.Symbol
	default:
		base.StaticTypeSymbol = sym
	}
}

// resolveMemberAccess implements §4.1's Member access rule, dispatching
// on the left operand's resolved type-symbol kind.
func (c *Context) resolveMemberAccess(ma *ir.MemberAccess) error {
	base := ma.Base()
	if err := c.Resolve(ma.Left); err != nil {
		return err
	}
	leftSym := ma.Left.Base().StaticTypeSymbol
	if leftSym == nil {
		return diag.New(diag.BadMemberAccess, base.Pos, "cannot access member '%s' of an untyped expression", ma.Right)
	}

	switch leftSym.Kind {
	case ir.SymClass:
		hit, err := getInheritedMember(leftSym.Class, ma.Right, true)
		if err != nil {
			return withPos(err, base.Pos)
		}
		bindMemberHit(base, hit)
		return nil
	case ir.SymStruct:
		hit := leftSym.Lookup(ma.Right)
		if hit == nil {
			return diag.New(diag.MemberNotFound, base.Pos, "struct member '%s' not found", ma.Right)
		}
		bindMemberHit(base, hit)
		return nil
	case ir.SymEnum:
		hit := leftSym.Lookup(ma.Right)
		if hit == nil {
			return diag.New(diag.MemberNotFound, base.Pos, "enum member '%s' not found", ma.Right)
		}
		base.StaticSymbol = hit
		base.StaticTypeSymbol = c.lookupRoot(ir.TypeInt)
		return nil
	case ir.SymNamespace:
		hit := leftSym.Lookup(ma.Right)
		if hit == nil {
			return diag.New(diag.UnresolvedSymbol, base.Pos, "namespace member '%s' not found", ma.Right)
		}
		base.StaticTypeSymbol = hit
		return nil
	default:
		return diag.New(diag.BadMemberAccess, base.Pos, "symbol kind %s can't be used for member access", leftSym.Kind)
	}
}

func bindMemberHit(base *ir.Expr, hit *ir.Symbol) {
	switch hit.Kind {
	case ir.SymField:
		base.BoundField = hit.Field
		base.ArrayType = hit.Field.Decl.Type.ArrayType
		base.StaticTypeSymbol = hit.Field.Decl.Type.Symbol
	case ir.SymProperty:
		base.BoundProperty = hit.Property
		base.ArrayType = hit.Property.ReturnType.ArrayType
		base.StaticTypeSymbol = hit.Property.ReturnType.Symbol
	default:
		base.StaticTypeSymbol = hit
	}
}

func (c *Context) resolveInvocation(inv *ir.Invocation) error {
	base := inv.Base()
	if err := c.Resolve(inv.Callee); err != nil {
		return err
	}
	calleeSym := inv.Callee.Base().StaticTypeSymbol
	if calleeSym == nil || calleeSym.Kind != ir.SymMethod {
		return diag.New(diag.UnresolvedSymbol, base.Pos, "call target does not resolve to a method")
	}
	base.StaticTypeSymbol = calleeSym.Method.ReturnType.Symbol
	base.ArrayType = calleeSym.Method.ReturnType.ArrayType

	if ma, ok := inv.Callee.(*ir.MemberAccess); ok {
		inv.Instance = ma.Left
	}
	return nil
}

func (c *Context) resolveElementAccess(ea *ir.ElementAccess) error {
	base := ea.Base()
	if err := c.Resolve(ea.Array); err != nil {
		return err
	}
	arrBase := ea.Array.Base()
	if !arrBase.ArrayType {
		return diag.New(diag.NonArrayIndexed, base.Pos, "expression preceding indexer is not an array")
	}
	base.StaticTypeSymbol = arrBase.StaticTypeSymbol
	return nil
}

// resolveOperation propagates the left operand's type for +/- (pointer
// arithmetic support); other operators need no type for emission (§4.1).
func (c *Context) resolveOperation(op *ir.Operation) error {
	if op.Op != ir.OpPlus && op.Op != ir.OpMinus {
		return nil
	}
	if op.Left == nil {
		return nil
	}
	if err := c.Resolve(op.Left); err != nil {
		return err
	}
	op.Base().StaticTypeSymbol = op.Left.Base().StaticTypeSymbol
	op.Base().ArrayType = op.Left.Base().ArrayType
	return nil
}

// getInheritedMember walks the class chain from class upward
// (§4.1.1). An Override hit is skipped so the virtual slot resolves to
// the introducing ancestor's symbol; a miss at the root is
// MemberNotFound unless breakOnFailure is false (silent-failure mode,
// used for the this-scoped fallback in Simple Name lookup).
func getInheritedMember(class *ir.Class, name string, breakOnFailure bool) (*ir.Symbol, error) {
	for cls := class; cls != nil; cls = cls.Base {
		sym := cls.Symbol.Lookup(name)
		if sym == nil {
			continue
		}
		if sym.Kind == ir.SymMethod && sym.Method.Modifiers.Has(ir.Override) {
			continue
		}
		return sym, nil
	}
	if breakOnFailure {
		return nil, diag.New(diag.MemberNotFound, ir.Position{}, "type member '%s' not found", name)
	}
	return nil, nil
}

func withPos(err error, pos ir.Position) error {
	if de, ok := err.(*diag.Error); ok && de.Pos == (ir.Position{}) {
		de.Pos = pos
	}
	return err
}
