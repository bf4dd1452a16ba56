package ir

// TypeRef is a resolved (or inferable) type reference, per SPEC_FULL.md
// §3. Symbol is nil until the (out-of-scope) binder/loader has resolved
// TypeName against a namespace; "var" typed locals carry TypeName == ""
// and Symbol == nil until the Statement Emitter infers it from an
// initializer (§4.3).
type TypeRef struct {
	// TypeName is the literal spelling as written ("int", "string", "Foo"),
	// or "" for an inferred ("var") declaration.
	TypeName string

	// Symbol is the resolved type's Symbol (Class, Struct, or Enum kind),
	// or the builtin primitive Symbol for "int"/"bool"/"string"/"char"/void.
	Symbol *Symbol

	// ArrayType marks this TypeRef as an array-of-Symbol rather than a bare
	// Symbol value.
	ArrayType bool
}

// IsVar reports whether this TypeRef is the inferred "var" placeholder
// the Statement Emitter must resolve before first use (§4.3).
func (t *TypeRef) IsVar() bool {
	return t != nil && t.TypeName == "" && t.Symbol == nil
}
