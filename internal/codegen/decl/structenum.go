package decl

import (
	"fmt"

	"github.com/octanelang/octanec/internal/codegen/ctype"
	"github.com/octanelang/octanec/internal/codegen/stmt"
	"github.com/octanelang/octanec/internal/ir"
	"github.com/octanelang/octanec/internal/resolve"
)

// emitStruct implements §4.4's reduced form for value types: a header
// typedef plus method forward declarations, then the method bodies
// under their assigned cnames. No type-macros, no private/GType
// machinery — structs carry neither inheritance nor virtual dispatch.
func (em *Emitter) emitStruct(st *ir.Struct) error {
	fmt.Fprintf(em.H, "typedef struct _%s %s;\n", st.CName, st.CName)
	fmt.Fprintf(em.H, "struct _%s {\n", st.CName)
	for _, f := range st.Fields {
		cname, err := ctype.ForTypeRef(f.Decl.Type, false, f.Decl.Pos)
		if err != nil {
			return err
		}
		fmt.Fprintf(em.H, "\t%s%s;\n", cname, f.Name)
	}
	fmt.Fprint(em.H, "};\n")

	if err := em.assignStructMethodNames(st); err != nil {
		return err
	}

	for _, m := range st.Methods {
		if m.Modifiers.Has(ir.Public) {
			fmt.Fprintf(em.H, "%s %s (%s);\n", m.CDecl1, m.CName, m.CParams)
		}
		if m.Body == nil {
			continue
		}
		fmt.Fprintf(em.C, "%s\n%s (%s)\n", m.CDecl1, m.CName, m.CParams)
		ctx := resolve.NewContext(em.Root, nil, em.Using)
		ctx.PushScope()
		for _, p := range m.Params {
			ctx.BindLocal(p.Name, p.Type)
		}
		se := stmt.New(ctx, em.C)
		if err := se.Emit(m.Body); err != nil {
			ctx.PopScope()
			return err
		}
		ctx.PopScope()
	}
	return nil
}

// emitEnum implements §4.4's reduced form: a header typedef of the
// enum's ordered values.
func (em *Emitter) emitEnum(e *ir.Enum) error {
	fmt.Fprintf(em.H, "typedef enum {\n")
	for i, v := range e.Values {
		sep := ","
		if i == len(e.Values)-1 {
			sep = ""
		}
		fmt.Fprintf(em.H, "\t%s%s\n", v.CName, sep)
	}
	fmt.Fprintf(em.H, "} %s;\n", e.CName)
	return nil
}
