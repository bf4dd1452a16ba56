// Package dep implements the Dependency Resolver (SPEC_FULL.md §4.5):
// for each foreign type symbol a source file references, it emits
// either an `#include`, a guarded forward typedef pair, or nothing,
// deduplicated per output stream.
package dep

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/octanelang/octanec/internal/ir"
)

// Registry resolves an imported namespace member ("Namespace.Name") to
// the header file it lives in, backing the on-disk imports.json
// consulted when a Namespace carries Import but no literal
// IncludeFilename (SPEC_FULL.md §6).
type Registry interface {
	Lookup(key string) (string, bool)
}

// Resolver writes dependency #includes/forward decls for one
// compilation unit's .c/.h pair.
type Resolver struct {
	H        io.Writer
	C        io.Writer
	Registry Registry
}

func New(h, c io.Writer, reg Registry) *Resolver {
	return &Resolver{H: h, C: c, Registry: reg}
}

func classUpper(cl *ir.Class) string { return cl.Namespace.UpperCName + cl.UpperCName }

func namespaceOf(sym *ir.Symbol) *ir.Namespace {
	switch sym.Kind {
	case ir.SymClass:
		return sym.Class.Namespace
	case ir.SymStruct:
		return sym.Struct.Namespace
	case ir.SymEnum:
		return sym.Enum.Namespace
	default:
		return nil
	}
}

func symbolName(sym *ir.Symbol) string {
	switch sym.Kind {
	case ir.SymClass:
		return sym.Class.Name
	case ir.SymStruct:
		return sym.Struct.Name
	case ir.SymEnum:
		return sym.Enum.Name
	default:
		return sym.Name
	}
}

// Resolve walks sf.DepTypes in declaration order. localClasses is this
// source file's own classes, used only to tell a base-class dependency
// (which needs the full struct definition in the header, for struct
// embedding) from an ordinary reference (forward decl suffices).
func (r *Resolver) Resolve(sf *ir.SourceFile, localClasses []*ir.Class) error {
	isBase := make(map[*ir.Class]bool)
	for _, cl := range localClasses {
		if cl.Base != nil {
			isBase[cl.Base] = true
		}
	}

	seenH := make(map[string]bool)
	seenC := make(map[string]bool)
	forwarded := make(map[*ir.Class]bool)

	for _, sym := range sf.DepTypes {
		ns := namespaceOf(sym)
		if ns.IsGlobal() {
			// §9: global/anonymous-namespace deps are skipped — no owning
			// header to point at.
			continue
		}

		if ns.Import {
			if err := r.resolveImported(ns, sym, seenH); err != nil {
				return err
			}
			continue
		}

		owner := ns.Owner
		if owner == nil {
			// Missing source file (never loaded) — nothing to include.
			continue
		}
		base := strings.TrimSuffix(filepath.Base(owner.Filename), filepath.Ext(owner.Filename))
		headerFile := base + ".h"

		needsHeader := sym.Kind == ir.SymEnum || (sym.Kind == ir.SymClass && isBase[sym.Class])
		if needsHeader {
			if !seenH[headerFile] {
				fmt.Fprintf(r.H, "#include \"%s\"\n", headerFile)
				seenH[headerFile] = true
			}
		} else {
			if !seenC[headerFile] {
				fmt.Fprintf(r.C, "#include \"%s\"\n", headerFile)
				seenC[headerFile] = true
			}
		}

		if sym.Kind == ir.SymClass && !forwarded[sym.Class] {
			r.emitForwardDecl(sym.Class)
			forwarded[sym.Class] = true
		}
	}
	return nil
}

func (r *Resolver) resolveImported(ns *ir.Namespace, sym *ir.Symbol, seenH map[string]bool) error {
	file := ns.IncludeFilename
	if file == "" && r.Registry != nil {
		key := ns.Name + "." + symbolName(sym)
		if f, ok := r.Registry.Lookup(key); ok {
			file = f
		}
	}
	if file == "" {
		// No registry entry either — nothing we can emit for this dep.
		return nil
	}
	if !seenH[file] {
		fmt.Fprintf(r.H, "#include <%s>\n", file)
		seenH[file] = true
	}
	return nil
}

// emitForwardDecl writes the same `_TYPE_NSCLASS`-guarded pair the
// Declaration Emitter writes for a locally-defined class (§4.4, §9's
// "rebuild this guard system verbatim"), so repeated #includes of this
// header stay idempotent regardless of inclusion order.
func (r *Resolver) emitForwardDecl(cl *ir.Class) {
	upper := classUpper(cl)
	guard := "_TYPE_" + upper
	fmt.Fprintf(r.H, "#ifndef %s\n#define %s\ntypedef struct _%s %s;\ntypedef struct _%sClass %sClass;\n#endif\n",
		guard, guard, cl.CName, cl.CName, cl.CName, cl.CName)
}
