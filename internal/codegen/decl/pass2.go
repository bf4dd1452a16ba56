package decl

import (
	"fmt"
	"strings"

	"github.com/octanelang/octanec/internal/codegen/ctype"
	"github.com/octanelang/octanec/internal/codegen/expr"
	"github.com/octanelang/octanec/internal/codegen/stmt"
	"github.com/octanelang/octanec/internal/diag"
	"github.com/octanelang/octanec/internal/identfmt"
	"github.com/octanelang/octanec/internal/ir"
)

// Pass2Class emits §4.4 Pass 2, items 1-12, in the documented order.
func (em *Emitter) Pass2Class(cl *ir.Class) error {
	em.emitPublicInstanceStruct(cl)
	em.emitPublicClassStruct(cl)
	fmt.Fprintf(em.H, "GType %sget_type();\n", ctype.ClassLowerPrefix(cl))

	if err := em.emitConstants(cl); err != nil {
		return err
	}
	if err := em.emitMethodBodies(cl); err != nil {
		return err
	}
	if err := em.maybeEmitMain(cl); err != nil {
		return err
	}
	if err := em.emitPropertyAccessors(cl); err != nil {
		return err
	}
	em.emitPropertyIDEnum(cl)
	if err := em.emitPropertyDispatchers(cl); err != nil {
		return err
	}
	if err := em.emitInit(cl); err != nil {
		return err
	}
	if err := em.emitClassInit(cl); err != nil {
		return err
	}
	em.emitGetType(cl)
	return nil
}

func (em *Emitter) emitPublicInstanceStruct(cl *ir.Class) {
	fmt.Fprintf(em.H, "struct _%s {\n", cl.CName)
	fmt.Fprintf(em.H, "\t%s parent;\n", em.baseInstanceCType(cl))
	if cl.HasPrivateFields {
		fmt.Fprintf(em.H, "\t%sPrivate *priv;\n", cl.CName)
	}
	for _, f := range cl.Fields {
		if f.Modifiers.Has(ir.Private) || f.Modifiers.Has(ir.Static) {
			continue
		}
		cname, err := ctype.ForTypeRef(f.Decl.Type, false, f.Decl.Pos)
		if err != nil {
			continue
		}
		fmt.Fprintf(em.H, "\t%s%s;\n", cname, f.Name)
	}
	fmt.Fprint(em.H, "};\n")
}

func (em *Emitter) baseInstanceCType(cl *ir.Class) string {
	if cl.Base != nil {
		return cl.Base.CName
	}
	return cl.BaseCName
}

func (em *Emitter) baseClassCType(cl *ir.Class) string {
	if cl.Base != nil {
		return cl.Base.CName + "Class"
	}
	return cl.BaseCName + "Class"
}

func (em *Emitter) emitPublicClassStruct(cl *ir.Class) {
	fmt.Fprintf(em.H, "struct _%sClass {\n", cl.CName)
	fmt.Fprintf(em.H, "\t%s parent_class;\n", em.baseClassCType(cl))
	for _, f := range cl.Fields {
		if f.Modifiers.Has(ir.Private) || !f.Modifiers.Has(ir.Static) {
			continue
		}
		cname, err := ctype.ForTypeRef(f.Decl.Type, false, f.Decl.Pos)
		if err != nil {
			continue
		}
		fmt.Fprintf(em.H, "\t%s%s;\n", cname, f.Name)
	}
	for _, m := range cl.Methods {
		if !m.Modifiers.Has(ir.Virtual) && !m.Modifiers.Has(ir.Abstract) {
			continue
		}
		ret, err := ctype.ForTypeRef(m.ReturnType, false, m.Pos)
		if err != nil {
			continue
		}
		var params []string
		params = append(params, cl.CName+" *self")
		for _, p := range m.Params {
			pt, err := ctype.ForTypeRef(p.Type, false, p.Pos)
			if err != nil {
				continue
			}
			params = append(params, pt+p.Name)
		}
		fmt.Fprintf(em.H, "\t%s(*%s) (%s);\n", ret, identfmt.ToLower(m.Name), strings.Join(params, ", "))
	}
	fmt.Fprint(em.H, "};\n")
}

func (em *Emitter) emitConstants(cl *ir.Class) error {
	for _, c := range cl.Constants {
		cname, err := ctype.ForTypeRef(c.Decl.Type, true, c.Decl.Pos)
		if err != nil {
			return err
		}
		var initText string
		if c.Decl.Initializer != nil {
			em2 := expr.New(em.newContext(cl))
			if err := em2.Emit(c.Decl.Initializer); err != nil {
				return err
			}
			initText = em2.String()
		}
		fmt.Fprintf(em.C, "const %s%s = %s;\n", cname, c.Decl.Name, initText)
	}
	return nil
}

// emitMethodBodies implements item 5: regular methods under their own
// cname; Virtual/Override methods get a `_real_` body plus (for the
// slot-introducing class only) a thin public dispatcher.
func (em *Emitter) emitMethodBodies(cl *ir.Class) error {
	for _, m := range cl.Methods {
		switch {
		case m.Modifiers.Has(ir.Override):
			realName := ctype.ClassLowerPrefix(cl) + "real_" + identfmt.ToLower(m.Name)
			if err := em.emitMethodBody(cl, m, realName, true); err != nil {
				return err
			}
		case m.Modifiers.Has(ir.Virtual):
			realName := ctype.ClassLowerPrefix(cl) + "real_" + identfmt.ToLower(m.Name)
			if err := em.emitMethodBody(cl, m, realName, false); err != nil {
				return err
			}
			em.emitVirtualDispatcher(cl, m)
		case m.Modifiers.Has(ir.Abstract):
			em.emitVirtualDispatcher(cl, m)
		default:
			if err := em.emitMethodBody(cl, m, m.CName, false); err != nil {
				return err
			}
		}
		// Virtual/Abstract dispatchers declare their own header prototype
		// above; Override exposes no symbol of its own.
		plain := !m.Modifiers.Has(ir.Virtual) && !m.Modifiers.Has(ir.Abstract) && !m.Modifiers.Has(ir.Override)
		if m.Modifiers.Has(ir.Public) && plain {
			fmt.Fprintf(em.H, "%s %s (%s);\n", strings.TrimPrefix(m.CDecl1, "static "), m.CName, m.CParams)
		}
	}
	return nil
}

// emitMethodBody writes cname's full definition. When selfStanza is
// true (an Override body), a `Self *self = NS_CLASS(base);` line is
// inserted first so the inherited-lookup-resolved body can still refer
// to fields/methods through the derived type (§4.4 item 5).
func (em *Emitter) emitMethodBody(cl *ir.Class, m *ir.Method, cname string, selfStanza bool) error {
	fmt.Fprintf(em.C, "%s\n%s (%s)\n", m.CDecl1, cname, m.CParams)
	fmt.Fprint(em.C, "{\n")

	ctx := em.newContext(cl)
	ctx.PushScope()
	for _, p := range m.Params {
		ctx.BindLocal(p.Name, p.Type)
	}
	if selfStanza {
		fmt.Fprintf(em.C, "\t%s *self = %s(base);\n", cl.CName, classUpper(cl))
	}

	if m.Body != nil {
		se := stmt.New(ctx, em.C)
		ctx.PushScope()
		for _, s := range m.Body.Statements {
			if err := se.Emit(s); err != nil {
				ctx.PopScope()
				ctx.PopScope()
				return err
			}
		}
		ctx.PopScope()
	}
	ctx.PopScope()

	fmt.Fprint(em.C, "}\n")
	return nil
}

func (em *Emitter) emitVirtualDispatcher(cl *ir.Class, m *ir.Method) {
	lname := identfmt.ToLower(m.Name)
	argNames := []string{"self"}
	for _, p := range m.Params {
		argNames = append(argNames, p.Name)
	}
	call := fmt.Sprintf("%s_GET_CLASS(self)->%s(%s)", classUpper(cl), lname, strings.Join(argNames, ", "))

	fmt.Fprintf(em.C, "%s\n%s (%s)\n{\n", m.CDecl1, m.CName, m.CParams)
	if isVoidType(m.ReturnType) {
		fmt.Fprintf(em.C, "\t%s;\n", call)
	} else {
		fmt.Fprintf(em.C, "\treturn %s;\n", call)
	}
	fmt.Fprint(em.C, "}\n")

	fmt.Fprintf(em.H, "%s %s (%s);\n", strings.TrimPrefix(m.CDecl1, "static "), m.CName, m.CParams)
}

func isVoidType(t *ir.TypeRef) bool {
	return t != nil && t.Symbol != nil && t.Symbol.Kind == ir.SymVoid
}

func isIntType(t *ir.TypeRef) bool {
	return t != nil && t.Symbol != nil && t.Symbol.Kind == ir.SymStruct && t.Symbol.Struct.Name == ir.TypeInt
}

// maybeEmitMain implements item 6: a static int main(...) with exactly
// two parameters also gets a real C entry point.
func (em *Emitter) maybeEmitMain(cl *ir.Class) error {
	for _, m := range cl.Methods {
		if !strings.EqualFold(m.Name, "main") || !m.Modifiers.Has(ir.Static) {
			continue
		}
		if len(m.Params) != 2 || !isIntType(m.ReturnType) {
			continue
		}
		fmt.Fprint(em.C, "int\nmain (int argc, char **argv)\n{\n")
		fmt.Fprint(em.C, "\tg_type_init();\n")
		fmt.Fprintf(em.C, "\treturn %s(argc, argv);\n", m.CName)
		fmt.Fprint(em.C, "}\n")
		return nil
	}
	return nil
}

// emitPropertyAccessors implements item 7: one getter/setter per
// property with a get-/set-body, declared public in the header.
func (em *Emitter) emitPropertyAccessors(cl *ir.Class) error {
	prefix := ctype.ClassLowerPrefix(cl)
	for _, p := range cl.Properties {
		lname := identfmt.ToLower(p.Name)
		ret, err := ctype.ForTypeRef(p.ReturnType, false, p.Pos)
		if err != nil {
			return err
		}

		if p.GetBody != nil {
			getName := prefix + "get_" + lname
			params := cl.CName + " *self"
			fmt.Fprintf(em.C, "%s\n%s (%s)\n", ret, getName, params)
			if err := em.emitPropertyAccessorBody(cl, p.GetBody); err != nil {
				return err
			}
			fmt.Fprintf(em.H, "%s %s (%s);\n", ret, getName, params)
		}
		if p.SetBody != nil {
			setName := prefix + "set_" + lname
			params := fmt.Sprintf("%s *self, %svalue", cl.CName, ret)
			fmt.Fprintf(em.C, "void\n%s (%s)\n", setName, params)
			if err := em.emitPropertySetterBody(cl, p); err != nil {
				return err
			}
			fmt.Fprintf(em.H, "void %s (%s);\n", setName, params)
		}
	}
	return nil
}

func (em *Emitter) emitPropertyAccessorBody(cl *ir.Class, body *ir.Block) error {
	ctx := em.newContext(cl)
	se := stmt.New(ctx, em.C)
	return se.Emit(body)
}

// emitPropertySetterBody emits a property setter's body with its "value"
// C parameter bound as a local, the same way emitMethodBody binds a
// method's formal parameters before resolving its statements.
func (em *Emitter) emitPropertySetterBody(cl *ir.Class, p *ir.Property) error {
	ctx := em.newContext(cl)
	ctx.PushScope()
	ctx.BindLocal("value", p.ReturnType)
	se := stmt.New(ctx, em.C)
	err := se.Emit(p.SetBody)
	ctx.PopScope()
	return err
}

// emitPropertyIDEnum implements item 8.
func (em *Emitter) emitPropertyIDEnum(cl *ir.Class) {
	if len(cl.Properties) == 0 {
		return
	}
	upper := classUpper(cl)
	fmt.Fprint(em.C, "enum {\n")
	fmt.Fprintf(em.C, "\t%s_DUMMY_PROPERTY,\n", upper)
	for _, p := range cl.Properties {
		fmt.Fprintf(em.C, "\t%s_%s,\n", upper, identfmt.ToUpper(p.Name))
	}
	fmt.Fprint(em.C, "};\n")
}

// propertyValueKind picks the g_value_*/g_param_spec_* suffix for a
// resolved type symbol, per item 9/11's keying table.
func propertyValueKind(sym *ir.Symbol) string {
	if sym == nil {
		return "pointer"
	}
	switch sym.Kind {
	case ir.SymClass:
		return "object"
	case ir.SymEnum:
		return "int"
	case ir.SymStruct:
		switch sym.Struct.Name {
		case ir.TypeString:
			return "string"
		case ir.TypeBool:
			return "boolean"
		case ir.TypeInt, ir.TypeChar:
			return "int"
		default:
			return "pointer"
		}
	default:
		return "pointer"
	}
}

// emitPropertyDispatchers implements item 9: _get_property/_set_property
// switching on property_id, routing through the accessors emitted above.
func (em *Emitter) emitPropertyDispatchers(cl *ir.Class) error {
	if len(cl.Properties) == 0 {
		return nil
	}
	prefix := ctype.ClassLowerPrefix(cl)
	upper := classUpper(cl)

	fmt.Fprintf(em.C, "static void\n%sget_property (GObject *object, guint property_id, GValue *value, GParamSpec *pspec)\n{\n", prefix)
	fmt.Fprintf(em.C, "\t%s *self = %s(object);\n\n", cl.CName, upper)
	fmt.Fprint(em.C, "\tswitch (property_id) {\n")
	for _, p := range cl.Properties {
		if p.GetBody == nil {
			continue
		}
		kind := propertyValueKind(p.ReturnType.Symbol)
		lname := identfmt.ToLower(p.Name)
		fmt.Fprintf(em.C, "\tcase %s_%s:\n", upper, identfmt.ToUpper(p.Name))
		fmt.Fprintf(em.C, "\t\tg_value_set_%s(value, %sget_%s(self));\n", kind, prefix, lname)
		fmt.Fprint(em.C, "\t\tbreak;\n")
	}
	fmt.Fprint(em.C, "\tdefault:\n\t\tG_OBJECT_WARN_INVALID_PROPERTY_ID(object, property_id, pspec);\n\t\tbreak;\n\t}\n}\n")

	fmt.Fprintf(em.C, "static void\n%sset_property (GObject *object, guint property_id, const GValue *value, GParamSpec *pspec)\n{\n", prefix)
	fmt.Fprintf(em.C, "\t%s *self = %s(object);\n\n", cl.CName, upper)
	fmt.Fprint(em.C, "\tswitch (property_id) {\n")
	for _, p := range cl.Properties {
		if p.SetBody == nil {
			continue
		}
		kind := propertyValueKind(p.ReturnType.Symbol)
		lname := identfmt.ToLower(p.Name)
		extract := "g_value_get_" + kind
		if kind == "string" {
			extract = "g_value_dup_string"
		}
		fmt.Fprintf(em.C, "\tcase %s_%s:\n", upper, identfmt.ToUpper(p.Name))
		fmt.Fprintf(em.C, "\t\t%sset_%s(self, %s(value));\n", prefix, lname, extract)
		fmt.Fprint(em.C, "\t\tbreak;\n")
	}
	fmt.Fprint(em.C, "\tdefault:\n\t\tG_OBJECT_WARN_INVALID_PROPERTY_ID(object, property_id, pspec);\n\t\tbreak;\n\t}\n}\n")
	return nil
}

// emitInit implements item 10.
func (em *Emitter) emitInit(cl *ir.Class) error {
	prefix := ctype.ClassLowerPrefix(cl)
	fmt.Fprintf(em.C, "static void\n%sinit (%s *self)\n{\n", prefix, cl.CName)
	if cl.HasPrivateFields {
		fmt.Fprintf(em.C, "\tself->priv = %s_GET_PRIVATE(self);\n", classUpper(cl))
	}

	ctx := em.newContext(cl)
	for _, f := range cl.Fields {
		if f.Modifiers.Has(ir.Static) || f.Decl.Initializer == nil {
			continue
		}
		target := "self->" + f.Name
		if f.Modifiers.Has(ir.Private) {
			target = "self->priv->" + f.Name
		}
		em2 := expr.New(ctx)
		if err := em2.Emit(f.Decl.Initializer); err != nil {
			return err
		}
		fmt.Fprintf(em.C, "\t%s = %s;\n", target, em2.String())
	}

	initMethod, err := findLifecycleMethod(cl, "init", diag.InstanceInitShape, false)
	if err != nil {
		return err
	}
	cl.InitMethod = initMethod
	if initMethod != nil && initMethod.Body != nil {
		se := stmt.New(ctx, em.C)
		ctx.PushScope()
		for _, s := range initMethod.Body.Statements {
			if err := se.Emit(s); err != nil {
				ctx.PopScope()
				return err
			}
		}
		ctx.PopScope()
	}

	fmt.Fprint(em.C, "}\n")
	return nil
}

// findLifecycleMethod locates the user `init`/`class_init` method (case-
// insensitively) and validates its shape (Invariant-adjacent checks for
// diag kinds InstanceInitShape/ClassInitShape): init must be an instance
// method with no parameters, class_init must be static with none.
func findLifecycleMethod(cl *ir.Class, name string, kind diag.Kind, wantStatic bool) (*ir.Method, error) {
	for _, m := range cl.Methods {
		if !strings.EqualFold(m.Name, name) {
			continue
		}
		if m.Modifiers.Has(ir.Static) != wantStatic || len(m.Params) != 0 {
			return nil, diag.New(kind, m.Pos, "'%s' must be %s with no parameters", name, staticWord(wantStatic))
		}
		return m, nil
	}
	return nil, nil
}

func staticWord(wantStatic bool) string {
	if wantStatic {
		return "static"
	}
	return "an instance method"
}

// emitClassInit implements item 11.
func (em *Emitter) emitClassInit(cl *ir.Class) error {
	prefix := ctype.ClassLowerPrefix(cl)
	klassType := cl.CName + "Class"

	fmt.Fprintf(em.C, "static void\n%sclass_init (%s *klass)\n{\n", prefix, klassType)

	haveProps := len(cl.Properties) > 0
	if haveProps {
		fmt.Fprint(em.C, "\tGObjectClass *gobject_class = G_OBJECT_CLASS(klass);\n\n")
	}

	if cl.HasPrivateFields {
		fmt.Fprintf(em.C, "\tg_type_class_add_private(klass, sizeof(%sPrivate));\n", cl.CName)
	}

	ctx := em.newContext(cl)
	for _, f := range cl.Fields {
		if !f.Modifiers.Has(ir.Static) || f.Modifiers.Has(ir.Private) || f.Decl.Initializer == nil {
			continue
		}
		em2 := expr.New(ctx)
		if err := em2.Emit(f.Decl.Initializer); err != nil {
			return err
		}
		fmt.Fprintf(em.C, "\tklass->%s = %s;\n", f.Name, em2.String())
	}

	for _, m := range cl.Methods {
		lname := identfmt.ToLower(m.Name)
		switch {
		case m.Modifiers.Has(ir.Virtual):
			realName := prefix + "real_" + lname
			fmt.Fprintf(em.C, "\tklass->%s = %s;\n", lname, realName)
		case m.Modifiers.Has(ir.Override) && m.VirtualSuperClass != nil:
			realName := prefix + "real_" + lname
			fmt.Fprintf(em.C, "\t%s_CLASS(klass)->%s = %s;\n", classUpper(m.VirtualSuperClass), lname, realName)
		}
	}

	if haveProps {
		fmt.Fprintf(em.C, "\n\tgobject_class->set_property = %sset_property;\n", prefix)
		fmt.Fprintf(em.C, "\tgobject_class->get_property = %sget_property;\n\n", prefix)
		for _, p := range cl.Properties {
			if err := em.emitParamSpecInstall(cl, p); err != nil {
				return err
			}
		}
	}

	classInitMethod, err := findLifecycleMethod(cl, "class_init", diag.ClassInitShape, true)
	if err != nil {
		return err
	}
	cl.ClassInitMethod = classInitMethod
	if classInitMethod != nil && classInitMethod.Body != nil {
		se := stmt.New(ctx, em.C)
		ctx.PushScope()
		for _, s := range classInitMethod.Body.Statements {
			if err := se.Emit(s); err != nil {
				ctx.PopScope()
				return err
			}
		}
		ctx.PopScope()
	}

	fmt.Fprint(em.C, "}\n")
	return nil
}

func (em *Emitter) emitParamSpecInstall(cl *ir.Class, p *ir.Property) error {
	upper := classUpper(cl)
	nick := p.Name
	switch propertyValueKind(p.ReturnType.Symbol) {
	case "string":
		fmt.Fprintf(em.C, "\tg_object_class_install_property(gobject_class, %s_%s,\n\t\tg_param_spec_string(\"%s\", \"%s\", \"%s\", NULL, G_PARAM_CONSTRUCT_ONLY | G_PARAM_READWRITE));\n",
			upper, identfmt.ToUpper(p.Name), p.Name, nick, nick)
	case "int":
		fmt.Fprintf(em.C, "\tg_object_class_install_property(gobject_class, %s_%s,\n\t\tg_param_spec_int(\"%s\", \"%s\", \"%s\", G_MININT, G_MAXINT, 0, G_PARAM_CONSTRUCT_ONLY | G_PARAM_READWRITE));\n",
			upper, identfmt.ToUpper(p.Name), p.Name, nick, nick)
	case "boolean":
		fmt.Fprintf(em.C, "\tg_object_class_install_property(gobject_class, %s_%s,\n\t\tg_param_spec_boolean(\"%s\", \"%s\", \"%s\", FALSE, G_PARAM_CONSTRUCT_ONLY | G_PARAM_READWRITE));\n",
			upper, identfmt.ToUpper(p.Name), p.Name, nick, nick)
	case "object":
		typeMacro, err := em.typeMacroFor(p.ReturnType.Symbol)
		if err != nil {
			return err
		}
		fmt.Fprintf(em.C, "\tg_object_class_install_property(gobject_class, %s_%s,\n\t\tg_param_spec_object(\"%s\", \"%s\", \"%s\", %s, G_PARAM_CONSTRUCT_ONLY | G_PARAM_READWRITE));\n",
			upper, identfmt.ToUpper(p.Name), p.Name, nick, nick, typeMacro)
	default:
		fmt.Fprintf(em.C, "\tg_object_class_install_property(gobject_class, %s_%s,\n\t\tg_param_spec_pointer(\"%s\", \"%s\", \"%s\", G_PARAM_CONSTRUCT_ONLY | G_PARAM_READWRITE));\n",
			upper, identfmt.ToUpper(p.Name), p.Name, nick, nick)
	}
	return nil
}

func (em *Emitter) typeMacroFor(sym *ir.Symbol) (string, error) {
	if sym == nil || sym.Kind != ir.SymClass {
		return "", diag.New(diag.InternalUnhandledKind, ir.Position{}, "object-kind property requires a class type")
	}
	cl := sym.Class
	return fmt.Sprintf("%sTYPE_%s", cl.Namespace.UpperCName, cl.UpperCName), nil
}

// emitGetType implements item 12.
func (em *Emitter) emitGetType(cl *ir.Class) {
	prefix := ctype.ClassLowerPrefix(cl)
	klassType := cl.CName + "Class"
	rawTypeName := cl.Namespace.Name + cl.Name

	fmt.Fprintf(em.C, "GType\n%sget_type ()\n{\n", prefix)
	fmt.Fprint(em.C, "\tstatic GType type = 0;\n")
	fmt.Fprint(em.C, "\tif (G_UNLIKELY (type == 0)) {\n")
	fmt.Fprint(em.C, "\t\tstatic const GTypeInfo info = {\n")
	fmt.Fprintf(em.C, "\t\t\tsizeof (%s),\n", klassType)
	fmt.Fprint(em.C, "\t\t\tNULL, NULL,\n")
	fmt.Fprintf(em.C, "\t\t\t(GClassInitFunc) %sclass_init,\n", prefix)
	fmt.Fprint(em.C, "\t\t\tNULL, NULL,\n")
	fmt.Fprintf(em.C, "\t\t\tsizeof (%s),\n", cl.CName)
	fmt.Fprint(em.C, "\t\t\t0,\n")
	fmt.Fprintf(em.C, "\t\t\t(GInstanceInitFunc) %sinit,\n", prefix)
	fmt.Fprint(em.C, "\t\t\tNULL\n\t\t};\n")
	fmt.Fprintf(em.C, "\t\ttype = g_type_register_static (%s, \"%s\", &info, 0);\n", em.baseTypeMacro(cl), rawTypeName)
	fmt.Fprint(em.C, "\t\t/* TODO: register implemented interfaces here */\n")
	fmt.Fprint(em.C, "\t}\n\treturn type;\n}\n")
}

// baseTypeMacro renders the base class's TYPE_ macro: a user base class
// follows the usual `NS_TYPE_CLASS` derivation; a foreign base without a
// Class record falls back to the handful of GObject-library spellings,
// defaulting to a best-effort `G_TYPE_<NAME>` guess otherwise.
func (em *Emitter) baseTypeMacro(cl *ir.Class) string {
	if cl.Base != nil {
		return fmt.Sprintf("%sTYPE_%s", cl.Base.Namespace.UpperCName, cl.Base.UpperCName)
	}
	switch cl.BaseCName {
	case "GObject":
		return "G_TYPE_OBJECT"
	case "GInitiallyUnowned":
		return "G_TYPE_INITIALLY_UNOWNED"
	default:
		return "G_TYPE_" + identfmt.ToUpper(strings.TrimPrefix(cl.BaseCName, "G"))
	}
}
