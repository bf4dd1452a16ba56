// Package decl implements the Declaration Emitter (SPEC_FULL.md §4.4): the
// GObject scaffolding generator. Emitter.Class runs Pass 1 (forward
// macros, private layout, method cname/cparameters/cdecl1 assignment)
// then Pass 2 (public structs, constants, method bodies, property
// plumbing, _init/_class_init/_get_type) for a single ir.Class, writing
// header text to H and body text to C. Emitter.Struct and Emitter.Enum
// cover the reduced forms of §4.4's last paragraph.
package decl

import (
	"io"

	"github.com/octanelang/octanec/internal/ir"
	"github.com/octanelang/octanec/internal/resolve"
)

// Emitter holds the two output streams for one compilation unit and the
// lexical context (root namespace, using-directives) every method body
// traversal needs a fresh resolve.Context built from.
type Emitter struct {
	H io.Writer
	C io.Writer

	Root  *ir.Namespace
	Using []string
}

func New(root *ir.Namespace, using []string, h, c io.Writer) *Emitter {
	return &Emitter{H: h, C: c, Root: root, Using: using}
}

func (em *Emitter) newContext(class *ir.Class) *resolve.Context {
	return resolve.NewContext(em.Root, class, em.Using)
}

// Class runs both passes for cl back to back, in the order Pass 1 then
// Pass 2 — Pass 2 method bodies need every method's cname already
// assigned (Invariant 4), and Pass 1's Override lookups need nothing
// from Pass 2. Callers that need every class's Pass 1 output grouped
// ahead of every class's Pass 2 output (internal/driver's header
// layout, §6) call Pass1Class/Pass2Class directly instead.
func (em *Emitter) Class(cl *ir.Class) error {
	if err := em.Pass1Class(cl); err != nil {
		return err
	}
	return em.Pass2Class(cl)
}

// Struct emits the reduced Pass 1/2 form for a value type: a typedef and
// method forward declarations, then method bodies under their cnames —
// no type-macros, no private-struct machinery, no GType registration.
func (em *Emitter) Struct(st *ir.Struct) error {
	return em.emitStruct(st)
}

// Enum emits a header typedef of e's ordered values.
func (em *Emitter) Enum(e *ir.Enum) error {
	return em.emitEnum(e)
}
