package ir

// Namespace groups classes, structs, enums, and free methods under a
// shared C identifier prefix (SPEC_FULL.md §3). The empty name denotes
// the global namespace.
type Namespace struct {
	Name string

	// LowerCName and UpperCName are the derived C prefixes, e.g. for
	// namespace "Gtk" these are "gtk_" and "GTK_". Computed by
	// internal/identfmt and cached here once (see ir.Symbol invariant
	// parity with SPEC_FULL.md Invariant 4: assigned exactly once).
	LowerCName string
	UpperCName string

	Owner *SourceFile

	Classes []*Class
	Structs []*Struct
	Enums   []*Enum
	Methods []*Method

	// Import marks a namespace that lives outside this program (e.g. the
	// GObject base library); such namespaces never get a synthesized
	// forward declaration or #include of a sibling unit (§4.5).
	Import bool

	// IncludeFilename, when set, is emitted verbatim as
	// `#include <IncludeFilename>` for every dependent that reaches this
	// namespace (§4.5). Left empty for imported namespaces resolved via
	// the import registry instead (SPEC_FULL.md §6).
	IncludeFilename string

	Symbol *Symbol
}

// IsGlobal reports whether this is the anonymous root/global namespace.
func (n *Namespace) IsGlobal() bool {
	return n == nil || n.Name == ""
}
