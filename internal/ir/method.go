package ir

// FormalParameter is one declared parameter of a Method.
type FormalParameter struct {
	Name string
	Type *TypeRef
	Pos  Position

	// RefOrOut marks a by-reference/out parameter; use-sites of the
	// corresponding argument are prefixed with `&` by the Expression
	// Emitter (§4.2's "Ref/out parameter markers").
	RefOrOut bool
}

// Method is a free function, class method, or struct method
// (SPEC_FULL.md §3). Exactly one of Class/Struct/Namespace (free method)
// owns it.
type Method struct {
	Name       string
	Pos        Position
	Modifiers  Modifier
	Params     []*FormalParameter
	ReturnType *TypeRef
	Body       *Block // nil for Abstract methods

	Class     *Class
	Struct    *Struct // set for struct methods
	Namespace *Namespace

	// ReturnsModifiedPointer requires ReturnType to be void; the
	// Expression Emitter prepends `<instance> = ` before the call
	// (§4.2's Invocation rule).
	ReturnsModifiedPointer bool
	// InstanceLast appends the instance argument after user arguments
	// instead of before (§4.2's Invocation rule).
	InstanceLast bool
	// IsStructMethod suppresses the upcast-macro wrapping around the
	// instance argument that class methods otherwise get (§4.2).
	IsStructMethod bool

	// Writable fields assigned exactly once by Declaration Emitter Pass 1
	// (Invariant 4).
	CName      string
	CParams    string
	CDecl1     string
	// VirtualSuperClass is the ancestor class whose virtual/abstract slot
	// this Override method fills, located by walking ancestors in Pass 1.
	VirtualSuperClass *Class

	Symbol *Symbol
}
