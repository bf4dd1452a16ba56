package ir

// Field is a class/struct/namespace-level variable declaration
// (SPEC_FULL.md §3).
type Field struct {
	Name      string
	Modifiers Modifier

	Class     *Class
	Struct    *Struct
	Namespace *Namespace

	// Decl carries the TypeRef and optional initializer, mirroring the
	// original's declaration_statement->variable_declaration shape.
	Decl *VariableDecl

	// IsStructField suppresses the upcast-macro wrapping the Expression
	// Emitter otherwise applies around class-field member accesses
	// (§4.2's Member access rule).
	IsStructField bool

	// CName, when set, is used verbatim for a namespace-level field
	// instead of the default `<nslower><name>` (§4.2's Simple name rule).
	CName string

	Symbol *Symbol
}

// Property is a get/set pair lowered to GObject property scaffolding
// (SPEC_FULL.md §3, §4.4 items 7-11).
type Property struct {
	Name       string
	Pos        Position
	ReturnType *TypeRef
	Class      *Class

	GetBody *Block // nil if the property is write-only
	SetBody *Block // nil if the property is read-only

	Symbol *Symbol
}

// Constant is a file-scope `const` declaration attached to a Class.
type Constant struct {
	Decl *VariableDecl
}
