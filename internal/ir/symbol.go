package ir

// SymbolKind tags what a Symbol denotes, mirroring the scope-entry shapes
// of SPEC_FULL.md §3 ("Symbol (scope entry)").
type SymbolKind int

const (
	SymClass SymbolKind = iota
	SymStruct
	SymEnum
	SymEnumValue
	SymNamespace
	SymMethod
	SymField
	SymProperty
	SymLocalVariable
	SymBlock
	// SymVoid marks the builtin void pseudo-type, used for return-type
	// comparisons (e.g. ReturnsModifiedPointer requires a void return).
	SymVoid
)

func (k SymbolKind) String() string {
	switch k {
	case SymClass:
		return "class"
	case SymStruct:
		return "struct"
	case SymEnum:
		return "enum"
	case SymEnumValue:
		return "enum value"
	case SymNamespace:
		return "namespace"
	case SymMethod:
		return "method"
	case SymField:
		return "field"
	case SymProperty:
		return "property"
	case SymLocalVariable:
		return "local variable"
	case SymBlock:
		return "block"
	case SymVoid:
		return "void"
	default:
		return "unknown"
	}
}

// Symbol is a scope-table entry. Exactly one of the typed back-pointers
// below is non-nil, selected by Kind — the Go analogue of the original
// generator's tagged ValaSymbol union (see generator.c's switches on
// `->type`).
//
// Table holds this symbol's own nested name->Symbol map, used when this
// Symbol is itself a scope (Namespace, Class, Struct, Block): lookups
// walk Table first, then defer to the enclosing scope per the chain in
// §4.1's Simple Name rule.
type Symbol struct {
	Kind  SymbolKind
	Name  string
	Table map[string]*Symbol

	Class    *Class
	Struct   *Struct
	Enum     *Enum
	EnumVal  *EnumValue
	Method   *Method
	Field    *Field
	Property *Property
	NS       *Namespace

	// TypeRef is set for LocalVariable symbols (loop/declared locals): the
	// bound type of that local, per §3's Symbol.typeref.
	TypeRef *TypeRef
}

// NewSymbol allocates a Symbol of the given kind with an empty table,
// ready to receive child bindings.
func NewSymbol(kind SymbolKind, name string) *Symbol {
	return &Symbol{Kind: kind, Name: name, Table: make(map[string]*Symbol)}
}

// Lookup finds name in this symbol's own table only (no chaining).
func (s *Symbol) Lookup(name string) *Symbol {
	if s == nil || s.Table == nil {
		return nil
	}
	return s.Table[name]
}

// Bind inserts a child symbol, overwriting any previous binding of the
// same name (the front end is trusted to have rejected redeclarations).
func (s *Symbol) Bind(name string, sym *Symbol) {
	if s.Table == nil {
		s.Table = make(map[string]*Symbol)
	}
	s.Table[name] = sym
}
