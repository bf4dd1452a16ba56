package ir

// SourceFile is one input compilation unit, lowered to one `.c`/`.h`
// pair (SPEC_FULL.md §3, §6).
type SourceFile struct {
	Filename string

	Root             *Namespace
	Namespaces       []*Namespace
	UsingDirectives  []string // namespace names brought into unqualified lookup

	// DepTypes is the set of foreign type Symbols referenced anywhere in
	// this file, as recorded by the (out-of-scope) binder; the
	// Dependency Resolver (§4.5) walks it to emit #includes/forward decls.
	DepTypes []*Symbol
}

// Context is the root input to the whole pipeline: every SourceFile plus
// the root namespace carrying built-in primitives (SPEC_FULL.md §6).
type Context struct {
	SourceFiles []*SourceFile
	Root        *Namespace
}

// Builtin primitive type names installed in the root namespace's symbol
// table by internal/loader before any SourceFile is processed.
const (
	TypeInt    = "int"
	TypeBool   = "bool"
	TypeString = "string"
	TypeChar   = "char"
	TypeVoid   = "void"
)

// NewRootNamespace builds the anonymous root namespace pre-populated
// with the primitive type symbols every program implicitly has in
// scope (§4.1's Simple Name lookup order, step (d)).
func NewRootNamespace() *Namespace {
	root := &Namespace{Name: "", Import: false}
	root.Symbol = NewSymbol(SymNamespace, "")
	root.Symbol.NS = root

	primitives := []struct {
		name          string
		cname         string
		referenceType bool
	}{
		{TypeInt, "int", false},
		{TypeBool, "gboolean", false},
		{TypeChar, "char", false},
		{TypeString, "char", true},
	}
	for _, p := range primitives {
		sym := NewSymbol(SymStruct, p.name)
		sym.Struct = &Struct{Name: p.name, Namespace: root, CName: p.cname, ReferenceType: p.referenceType, Symbol: sym}
		root.Symbol.Bind(p.name, sym)
	}

	voidSym := &Symbol{Kind: SymVoid, Name: TypeVoid}
	root.Symbol.Bind(TypeVoid, voidSym)

	return root
}
