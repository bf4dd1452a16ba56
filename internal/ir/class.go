package ir

// Class is a single-inheritance reference type lowered to a GObject
// instance/class struct pair (SPEC_FULL.md §3, §4.4).
type Class struct {
	Name string
	Pos  Position

	Namespace *Namespace
	Base      *Class // nil for a root class with no user-visible parent

	// BaseCName, when Base is nil, names the foreign base type's C
	// identifier directly (e.g. "GObject") so process_class2-equivalent
	// code can still emit `struct _X { GObject parent; ... }`.
	BaseCName string

	Fields     []*Field
	Methods    []*Method
	Properties []*Property
	Constants  []*Constant

	// CName is the camel-case C struct name, e.g. "GtkButton".
	CName string
	// LowerCName / UpperCName are the per-class fragments appended to the
	// namespace prefix, e.g. "button" / "BUTTON".
	LowerCName string
	UpperCName string

	// Writable fields, set during Declaration Emitter passes (§3 writable
	// set; Invariant 3).
	HasPrivateFields bool
	InitMethod       *Method
	ClassInitMethod  *Method

	Symbol *Symbol
}

// Struct is a value-type analogue of Class with no inheritance
// (SPEC_FULL.md §3).
type Struct struct {
	Name string
	Pos  Position

	Namespace *Namespace

	Fields  []*Field
	Methods []*Method

	// ReferenceType selects pointer-vs-value passing convention when the
	// struct is used as a field or parameter type.
	ReferenceType bool

	CName      string
	LowerCName string
	UpperCName string

	Symbol *Symbol
}

// Enum is an ordered set of named integer tags.
type Enum struct {
	Name string
	Pos  Position

	Namespace *Namespace
	Values    []*EnumValue

	CName      string
	UpperCName string

	Symbol *Symbol
}

// EnumValue is one member of an Enum.
type EnumValue struct {
	Name  string
	CName string
	Enum  *Enum

	Symbol *Symbol
}
