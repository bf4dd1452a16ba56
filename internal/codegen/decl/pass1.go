package decl

import (
	"fmt"
	"strings"

	"github.com/octanelang/octanec/internal/codegen/ctype"
	"github.com/octanelang/octanec/internal/diag"
	"github.com/octanelang/octanec/internal/identfmt"
	"github.com/octanelang/octanec/internal/ir"
)

func classUpper(cl *ir.Class) string { return cl.Namespace.UpperCName + cl.UpperCName }

// Pass1Class emits §4.4 Pass 1: header type-macros and guarded forward
// typedefs, the private struct/GET_PRIVATE macro/static storage into
// the body, and per-method cname/cparameters/cdecl1 assignment with
// non-public forward declarations.
func (em *Emitter) Pass1Class(cl *ir.Class) error {
	if err := em.emitTypeMacros(cl); err != nil {
		return err
	}
	if err := em.emitPrivateLayout(cl); err != nil {
		return err
	}
	return em.assignClassMethodNames(cl)
}

func (em *Emitter) emitTypeMacros(cl *ir.Class) error {
	nsUpper := cl.Namespace.UpperCName
	upper := classUpper(cl)
	className := cl.CName
	classClassName := cl.CName + "Class"

	fmt.Fprintf(em.H, "#define %sTYPE_%s (%sget_type())\n", nsUpper, cl.UpperCName, ctype.ClassLowerPrefix(cl))
	fmt.Fprintf(em.H, "#define %s(obj) (G_TYPE_CHECK_INSTANCE_CAST((obj), %sTYPE_%s, %s))\n", upper, nsUpper, cl.UpperCName, className)
	fmt.Fprintf(em.H, "#define %s_CLASS(klass) (G_TYPE_CHECK_CLASS_CAST((klass), %sTYPE_%s, %s))\n", upper, nsUpper, cl.UpperCName, classClassName)
	fmt.Fprintf(em.H, "#define %sIS_%s(obj) (G_TYPE_CHECK_INSTANCE_TYPE((obj), %sTYPE_%s))\n", nsUpper, cl.UpperCName, nsUpper, cl.UpperCName)
	fmt.Fprintf(em.H, "#define %sIS_%s_CLASS(klass) (G_TYPE_CHECK_CLASS_TYPE((klass), %sTYPE_%s))\n", nsUpper, cl.UpperCName, nsUpper, cl.UpperCName)
	fmt.Fprintf(em.H, "#define %s_GET_CLASS(obj) (G_TYPE_INSTANCE_GET_CLASS((obj), %sTYPE_%s, %s))\n", upper, nsUpper, cl.UpperCName, classClassName)

	guard := "_TYPE_" + upper
	fmt.Fprintf(em.H, "#ifndef %s\n#define %s\ntypedef struct _%s %s;\ntypedef struct _%s %s;\n#endif\n", guard, guard, className, className, classClassName, classClassName)
	return nil
}

// emitPrivateLayout emits the body-only private struct (with a `dummy`
// field when there are no private instance fields, Invariant 3 / the
// round-trip property in §8), the GET_PRIVATE macro, and file-static
// storage for private static fields.
func (em *Emitter) emitPrivateLayout(cl *ir.Class) error {
	var instanceFields, staticFields []*ir.Field
	for _, f := range cl.Fields {
		if !f.Modifiers.Has(ir.Private) {
			continue
		}
		if f.Modifiers.Has(ir.Static) {
			staticFields = append(staticFields, f)
		} else {
			instanceFields = append(instanceFields, f)
		}
	}
	cl.HasPrivateFields = len(instanceFields) > 0

	privName := cl.CName + "Private"
	fmt.Fprintf(em.C, "struct _%s {\n", privName)
	if len(instanceFields) == 0 {
		fmt.Fprint(em.C, "\tint dummy;\n")
	}
	for _, f := range instanceFields {
		cname, err := ctype.ForTypeRef(f.Decl.Type, false, f.Decl.Pos)
		if err != nil {
			return err
		}
		fmt.Fprintf(em.C, "\t%s%s;\n", cname, f.Name)
	}
	fmt.Fprint(em.C, "};\n")

	fmt.Fprintf(em.C, "#define %s_GET_PRIVATE(obj) (G_TYPE_INSTANCE_GET_PRIVATE((obj), %sTYPE_%s, %s))\n",
		classUpper(cl), cl.Namespace.UpperCName, cl.UpperCName, privName)

	for _, f := range staticFields {
		cname, err := ctype.ForTypeRef(f.Decl.Type, false, f.Decl.Pos)
		if err != nil {
			return err
		}
		fmt.Fprintf(em.C, "static %s%s;\n", cname, f.Name)
	}
	return nil
}

// assignClassMethodNames implements Pass 1's method-decoration rule:
// cname = nslower_lower_name, cparameters prepends the self/base
// receiver (walking ancestors for Override's matching Virtual/Abstract
// slot, §4.4 / Invariant 2) unless the method is Static, cdecl1 carries
// the return type with a `static` prefix for non-public methods, and
// non-public methods get a forward declaration written into the .c
// stream right away.
func (em *Emitter) assignClassMethodNames(cl *ir.Class) error {
	prefix := ctype.ClassLowerPrefix(cl)
	for _, m := range cl.Methods {
		lname := identfmt.ToLower(m.Name)
		m.CName = prefix + lname

		var params []string
		if !m.Modifiers.Has(ir.Static) {
			selfParam := cl.CName + " *self"
			if m.Modifiers.Has(ir.Override) {
				super, err := findVirtualSuperClass(cl.Base, m.Name)
				if err != nil {
					return err
				}
				m.VirtualSuperClass = super
				selfParam = super.CName + " *base"
			}
			params = append(params, selfParam)
		}
		for _, p := range m.Params {
			ct, err := ctype.ForTypeRef(p.Type, false, p.Pos)
			if err != nil {
				return err
			}
			params = append(params, ct+p.Name)
		}
		m.CParams = strings.Join(params, ", ")

		ret, err := ctype.ForTypeRef(m.ReturnType, false, m.Pos)
		if err != nil {
			return err
		}
		cdecl1 := ret
		if !m.Modifiers.Has(ir.Public) {
			cdecl1 = "static " + ret
		}
		m.CDecl1 = cdecl1

		if !m.Modifiers.Has(ir.Public) {
			fmt.Fprintf(em.C, "%s%s (%s);\n", m.CDecl1, m.CName, m.CParams)
		}
	}
	return nil
}

// findVirtualSuperClass walks from base upward for the ancestor that
// declares name as Virtual or Abstract — the slot an Override fills.
func findVirtualSuperClass(base *ir.Class, name string) (*ir.Class, error) {
	for cls := base; cls != nil; cls = cls.Base {
		for _, m := range cls.Methods {
			if m.Name == name && (m.Modifiers.Has(ir.Virtual) || m.Modifiers.Has(ir.Abstract)) {
				return cls, nil
			}
		}
	}
	return nil, diag.New(diag.NoOverridableMethod, ir.Position{}, "override '%s' has no ancestor Virtual/Abstract method of the same name", name)
}

// assignFreeMethodNames handles namespace-scoped free methods, which
// have no receiver and a simpler `nslower_name` cname.
func (em *Emitter) assignFreeMethodNames(ns *ir.Namespace) error {
	prefix := ns.LowerCName
	for _, m := range ns.Methods {
		lname := identfmt.ToLower(m.Name)
		m.CName = prefix + lname

		var params []string
		for _, p := range m.Params {
			ct, err := ctype.ForTypeRef(p.Type, false, p.Pos)
			if err != nil {
				return err
			}
			params = append(params, ct+p.Name)
		}
		m.CParams = strings.Join(params, ", ")

		ret, err := ctype.ForTypeRef(m.ReturnType, false, m.Pos)
		if err != nil {
			return err
		}
		cdecl1 := ret
		if !m.Modifiers.Has(ir.Public) {
			cdecl1 = "static " + ret
		}
		m.CDecl1 = cdecl1

		if !m.Modifiers.Has(ir.Public) {
			fmt.Fprintf(em.C, "%s%s (%s);\n", m.CDecl1, m.CName, m.CParams)
		}
	}
	return nil
}

// assignStructMethodNames mirrors assignClassMethodNames for struct
// methods: same self-prepend-unless-Static rule, no Override/virtual
// machinery since structs carry no inheritance.
func (em *Emitter) assignStructMethodNames(st *ir.Struct) error {
	prefix := st.Namespace.LowerCName + st.LowerCName + "_"
	for _, m := range st.Methods {
		lname := identfmt.ToLower(m.Name)
		m.CName = prefix + lname

		var params []string
		if !m.Modifiers.Has(ir.Static) {
			params = append(params, st.CName+" *self")
		}
		for _, p := range m.Params {
			ct, err := ctype.ForTypeRef(p.Type, false, p.Pos)
			if err != nil {
				return err
			}
			params = append(params, ct+p.Name)
		}
		m.CParams = strings.Join(params, ", ")

		ret, err := ctype.ForTypeRef(m.ReturnType, false, m.Pos)
		if err != nil {
			return err
		}
		cdecl1 := ret
		if !m.Modifiers.Has(ir.Public) {
			cdecl1 = "static " + ret
		}
		m.CDecl1 = cdecl1

		if !m.Modifiers.Has(ir.Public) {
			fmt.Fprintf(em.C, "%s%s (%s);\n", m.CDecl1, m.CName, m.CParams)
		}
	}
	return nil
}
