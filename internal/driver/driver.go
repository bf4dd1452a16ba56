// Package driver implements the Driver (SPEC_FULL.md §2 item 6, §4.6):
// it walks a Context's source files in a deterministic order and, for
// each, runs the Declaration Emitter and Dependency Resolver to produce
// one .c/.h pair, writing both atomically.
package driver

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/maruel/natural"

	"github.com/octanelang/octanec/internal/codegen/dep"
	"github.com/octanelang/octanec/internal/codegen/decl"
	"github.com/octanelang/octanec/internal/identfmt"
	"github.com/octanelang/octanec/internal/ir"
)

// Driver holds the per-run configuration: where generated pairs land,
// and the (optional) import registry consulted by the Dependency
// Resolver for imported namespaces lacking a literal IncludeFilename.
type Driver struct {
	OutputDir string
	Registry  dep.Registry
	Log       *log.Logger
}

func New(outputDir string, registry dep.Registry) *Driver {
	return &Driver{OutputDir: outputDir, Registry: registry, Log: log.New(os.Stderr, "", 0)}
}

// Run processes every SourceFile in ctx, natural-sorted by filename so
// emission order is stable across a hand-edited, append-only manifest
// (SPEC_FULL.md §2.1). A diagnostic on one file stops that file's
// processing but does not prevent the rest from running; Run returns a
// single aggregate error naming every file that failed.
func (d *Driver) Run(ctx *ir.Context) error {
	files := make([]*ir.SourceFile, len(ctx.SourceFiles))
	copy(files, ctx.SourceFiles)
	sort.Slice(files, func(i, j int) bool {
		return natural.Less(files[i].Filename, files[j].Filename)
	})

	var failed []string
	for _, sf := range files {
		d.Log.Printf("generating %s", sf.Filename)
		if err := d.processFile(ctx.Root, sf); err != nil {
			d.Log.Printf("%s: %v", sf.Filename, err)
			failed = append(failed, sf.Filename)
			continue
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("generation failed for %d source file(s): %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

func (d *Driver) processFile(root *ir.Namespace, sf *ir.SourceFile) error {
	base := strings.TrimSuffix(filepath.Base(sf.Filename), filepath.Ext(sf.Filename))

	var h1, h2, depH, depC, cbody bytes.Buffer

	pass1Em := decl.New(root, sf.UsingDirectives, &h1, &cbody)
	pass2Em := decl.New(root, sf.UsingDirectives, &h2, &cbody)

	var localClasses []*ir.Class
	for _, ns := range sf.Namespaces {
		localClasses = append(localClasses, ns.Classes...)
	}

	for _, ns := range sf.Namespaces {
		for _, cl := range ns.Classes {
			if err := pass1Em.Pass1Class(cl); err != nil {
				return err
			}
		}
	}
	for _, ns := range sf.Namespaces {
		for _, cl := range ns.Classes {
			if err := pass2Em.Pass2Class(cl); err != nil {
				return err
			}
		}
		for _, st := range ns.Structs {
			if err := pass2Em.Struct(st); err != nil {
				return err
			}
		}
		for _, e := range ns.Enums {
			if err := pass2Em.Enum(e); err != nil {
				return err
			}
		}
	}

	depResolver := dep.New(&depH, &depC, d.Registry)
	if err := depResolver.Resolve(sf, localClasses); err != nil {
		return err
	}

	headerName := base + ".h"
	guard := identfmt.HeaderGuard(headerName)

	var finalH bytes.Buffer
	fmt.Fprintf(&finalH, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprint(&finalH, "#include <stdio.h>\n#include <glib-object.h>\n\n")
	finalH.Write(h1.Bytes())
	finalH.Write(depH.Bytes())
	fmt.Fprint(&finalH, "\nG_BEGIN_DECLS\n\n")
	finalH.Write(h2.Bytes())
	fmt.Fprint(&finalH, "\nG_END_DECLS\n\n")
	fmt.Fprintf(&finalH, "#endif /* %s */\n", guard)

	var finalC bytes.Buffer
	fmt.Fprintf(&finalC, "#include \"%s\"\n\n", headerName)
	finalC.Write(depC.Bytes())
	finalC.Write(cbody.Bytes())

	if err := d.writeAtomic(filepath.Join(d.OutputDir, headerName), finalH.Bytes()); err != nil {
		return err
	}
	return d.writeAtomic(filepath.Join(d.OutputDir, base+".c"), finalC.Bytes())
}

// writeAtomic writes to a temp file in the destination directory and
// renames it into place, so a process killed mid-write never leaves a
// truncated .c/.h on disk — generalized from the teacher's
// write-on-success output-file handling in cmd/dwscript/cmd/compile.go.
func (d *Driver) writeAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
