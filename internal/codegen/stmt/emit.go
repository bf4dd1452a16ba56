// Package stmt implements the Statement Emitter (SPEC_FULL.md §4.3): a
// one-to-one lowering to C except for var-typed declarations (which
// infer their type from the initializer) and Foreach (which lowers
// differently over arrays vs GLists). It manages the per-block symbol
// scope via internal/resolve.Context as it descends into nested Blocks.
package stmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/octanelang/octanec/internal/codegen/ctype"
	"github.com/octanelang/octanec/internal/codegen/expr"
	"github.com/octanelang/octanec/internal/ir"
	"github.com/octanelang/octanec/internal/resolve"
)

// Emitter writes statement C text to W, threading expression emission
// and type resolution through Ctx.
type Emitter struct {
	Ctx *resolve.Context
	W   io.Writer
}

func New(ctx *resolve.Context, w io.Writer) *Emitter {
	return &Emitter{Ctx: ctx, W: w}
}

func (se *Emitter) exprText(e ir.Expression) (string, error) {
	em := expr.New(se.Ctx)
	if err := em.Emit(e); err != nil {
		return "", err
	}
	return em.String(), nil
}

// Emit is the dispatcher of §4.3's final switch
// (vala_code_generator_process_statement).
func (se *Emitter) Emit(statement ir.Statement) error {
	switch s := statement.(type) {
	case *ir.Block:
		return se.emitBlock(s)
	case *ir.ExpressionStmt:
		fmt.Fprint(se.W, "\t")
		text, err := se.exprText(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(se.W, "%s;\n", text)
		return nil
	case *ir.VariableDeclaration:
		return se.emitVariableDeclaration(s)
	case *ir.While:
		return se.emitWhile(s)
	case *ir.For:
		return se.emitFor(s)
	case *ir.Foreach:
		return se.emitForeach(s)
	case *ir.If:
		return se.emitIf(s)
	case *ir.Return:
		return se.emitReturn(s)
	default:
		fmt.Fprint(se.W, "\t;\n")
		return nil
	}
}

// emitBlock opens a new scope Symbol on entry (§4.3's Block rule) and
// closes it on exit — a genuine stack, per DESIGN.md Open Question 2.
func (se *Emitter) emitBlock(b *ir.Block) error {
	fmt.Fprint(se.W, "{\n")
	se.Ctx.PushScope()
	for _, s := range b.Statements {
		if err := se.Emit(s); err != nil {
			se.Ctx.PopScope()
			return err
		}
	}
	se.Ctx.PopScope()
	fmt.Fprint(se.W, "}\n")
	return nil
}

func (se *Emitter) emitVariableDeclaration(vd *ir.VariableDeclaration) error {
	decl := vd.Decl
	if decl.Type.IsVar() {
		if decl.Initializer == nil {
			return fmt.Errorf("%s: var declaration of '%s' has no initializer to infer from", decl.Pos, decl.Name)
		}
		if err := se.Ctx.Resolve(decl.Initializer); err != nil {
			return err
		}
		initBase := decl.Initializer.Base()
		decl.Type.Symbol = initBase.StaticTypeSymbol
		decl.Type.ArrayType = initBase.ArrayType
	}

	cname, err := ctype.ForTypeRef(decl.Type, false, decl.Pos)
	if err != nil {
		return err
	}
	fmt.Fprintf(se.W, "\t%s%s", cname, decl.Name)

	if decl.Initializer != nil {
		text, err := se.exprText(decl.Initializer)
		if err != nil {
			return err
		}
		fmt.Fprintf(se.W, " = %s", text)
	}
	fmt.Fprint(se.W, ";\n")

	se.Ctx.BindLocal(decl.Name, decl.Type)
	return nil
}

func (se *Emitter) emitWhile(w *ir.While) error {
	cond, err := se.exprText(w.Condition)
	if err != nil {
		return err
	}
	fmt.Fprintf(se.W, "\twhile (%s)\n", cond)
	return se.Emit(w.Loop)
}

func (se *Emitter) emitFor(f *ir.For) error {
	initText, err := se.exprList(f.Initializer)
	if err != nil {
		return err
	}
	condText, err := se.exprText(f.Condition)
	if err != nil {
		return err
	}
	iterText, err := se.exprList(f.Iterator)
	if err != nil {
		return err
	}
	fmt.Fprintf(se.W, "\tfor (%s; %s; %s)\n", initText, condText, iterText)
	return se.Emit(f.Loop)
}

func (se *Emitter) exprList(list []ir.Expression) (string, error) {
	var parts []string
	for _, e := range list {
		text, err := se.exprText(e)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", "), nil
}

// emitForeach implements §4.3's two Foreach lowerings and S4: array
// containers get a raw-pointer NULL-terminated walk, GList containers
// get the standard ->next walk.
func (se *Emitter) emitForeach(f *ir.Foreach) error {
	if err := se.Ctx.Resolve(f.Container); err != nil {
		return err
	}
	containerText, err := se.exprText(f.Container)
	if err != nil {
		return err
	}
	containerBase := f.Container.Base()

	elemType, err := ctype.ForTypeRef(f.Type, false, f.Pos)
	if err != nil {
		return err
	}

	if containerBase.ArrayType {
		f.Kind = ir.ContainerArray
		itType, err := ctype.ForStaticType(containerBase)
		if err != nil {
			return err
		}
		fmt.Fprintf(se.W, "\t%s%s_it;\n", itType, f.Name)
		fmt.Fprintf(se.W, "\tfor (%s_it = %s; *%s_it != NULL; %s_it++) {\n", f.Name, containerText, f.Name, f.Name)
		fmt.Fprintf(se.W, "\t\t%s%s = *%s_it;\n", elemType, f.Name, f.Name)
	} else {
		f.Kind = ir.ContainerList
		fmt.Fprintf(se.W, "\tGList *%s_it;\n", f.Name)
		fmt.Fprintf(se.W, "\tfor (%s_it = %s; %s_it != NULL; %s_it = %s_it->next) {\n", f.Name, containerText, f.Name, f.Name, f.Name)
		fmt.Fprintf(se.W, "\t%s%s = %s_it->data;\n", elemType, f.Name, f.Name)
	}

	se.Ctx.BindLocal(f.Name, f.Type)

	if err := se.Emit(f.Loop); err != nil {
		return err
	}
	fmt.Fprint(se.W, "}\n")
	return nil
}

func (se *Emitter) emitIf(i *ir.If) error {
	cond, err := se.exprText(i.Condition)
	if err != nil {
		return err
	}
	fmt.Fprintf(se.W, "\tif (%s)\n", cond)
	if err := se.Emit(i.True); err != nil {
		return err
	}
	if i.False != nil {
		fmt.Fprint(se.W, "\telse ")
		return se.Emit(i.False)
	}
	return nil
}

func (se *Emitter) emitReturn(r *ir.Return) error {
	fmt.Fprint(se.W, "\treturn ")
	if r.Expr != nil {
		text, err := se.exprText(r.Expr)
		if err != nil {
			return err
		}
		fmt.Fprint(se.W, text)
	}
	fmt.Fprint(se.W, ";\n")
	return nil
}
