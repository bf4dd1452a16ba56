package loader

import (
	"encoding/json"
	"fmt"

	"github.com/octanelang/octanec/internal/ir"
)

// exprNode is the union of every field any expression kind needs; only
// the "kind"-appropriate subset is populated for a given node. This
// mirrors the teacher's own tagged-union parse nodes more closely than
// one Go type per kind would, at the cost of some unused fields per case.
type exprNode struct {
	Kind string `json:"kind"`

	LiteralKind string `json:"literalKind"`
	Text        string `json:"text"`
	Bool        bool   `json:"bool"`

	Name     string `json:"name"`
	RefOrOut bool   `json:"refOrOut"`

	Left   json.RawMessage `json:"left"`
	Member string          `json:"member"`

	Callee json.RawMessage   `json:"callee"`
	Args   []json.RawMessage `json:"args"`

	Type           *typeRefDoc       `json:"type"`
	NamedArguments []namedArgDoc     `json:"namedArguments"`
	Op             string            `json:"op"`
	RightExpr      json.RawMessage   `json:"right"`
	Inner          json.RawMessage   `json:"inner"`
	Of             json.RawMessage   `json:"of"`
	Array          json.RawMessage   `json:"array"`
	Index          json.RawMessage   `json:"index"`
	PostfixOp      string            `json:"postfixOp"`
	Elements       []json.RawMessage `json:"elements"`
}

type namedArgDoc struct {
	Name string          `json:"name"`
	Expr json.RawMessage `json:"expr"`
}

var literalKinds = map[string]ir.LiteralKind{
	"int": ir.LiteralInt, "char": ir.LiteralChar, "string": ir.LiteralString,
	"bool": ir.LiteralBool, "null": ir.LiteralNull,
}

var opTypes = map[string]ir.OpType{
	"+": ir.OpPlus, "-": ir.OpMinus, "*": ir.OpMul, "/": ir.OpDiv,
	"==": ir.OpEq, "!=": ir.OpNe, "<": ir.OpLt, ">": ir.OpGt, "<=": ir.OpLe, ">=": ir.OpGe,
	"!": ir.OpNeg, "&&": ir.OpAnd, "||": ir.OpOr, "&": ir.OpBitwiseAnd, "|": ir.OpBitwiseOr,
}

// decodeExpr converts one JSON-encoded expression node into its ir
// variant. A nil/empty raw message decodes to a nil Expression (the
// "no initializer" / "no else value" case).
func decodeExpr(raw json.RawMessage) (ir.Expression, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var n exprNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	base := &ir.Expr{}

	switch n.Kind {
	case "literal":
		return &ir.Literal{Expr: base, Kind: literalKinds[n.LiteralKind], Text: n.Text, Bool: n.Bool}, nil

	case "this":
		return &ir.ThisAccess{Expr: base}, nil

	case "simpleName":
		return &ir.SimpleName{Expr: base, Name: n.Name, RefOrOut: n.RefOrOut}, nil

	case "memberAccess":
		left, err := decodeExpr(n.Left)
		if err != nil {
			return nil, err
		}
		return &ir.MemberAccess{Expr: base, Left: left, Right: n.Member}, nil

	case "invocation":
		callee, err := decodeExpr(n.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(n.Args)
		if err != nil {
			return nil, err
		}
		return &ir.Invocation{Expr: base, Callee: callee, Args: args}, nil

	case "objectCreation":
		var named []ir.NamedArgument
		for _, na := range n.NamedArguments {
			e, err := decodeExpr(na.Expr)
			if err != nil {
				return nil, err
			}
			named = append(named, ir.NamedArgument{Name: na.Name, Expr: e})
		}
		return &ir.ObjectCreation{Expr: base, Type: typeRefFromDocPtr(n.Type), NamedArguments: named}, nil

	case "operation":
		left, err := decodeExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(n.RightExpr)
		if err != nil {
			return nil, err
		}
		return &ir.Operation{Expr: base, Op: opTypes[n.Op], Left: left, Right: right}, nil

	case "cast":
		inner, err := decodeExpr(n.Inner)
		if err != nil {
			return nil, err
		}
		return &ir.Cast{Expr: base, Type: typeRefFromDocPtr(n.Type), Inner: inner}, nil

	case "is":
		of, err := decodeExpr(n.Of)
		if err != nil {
			return nil, err
		}
		return &ir.IsExpr{Expr: base, Type: typeRefFromDocPtr(n.Type), Of: of}, nil

	case "elementAccess":
		array, err := decodeExpr(n.Array)
		if err != nil {
			return nil, err
		}
		index, err := decodeExpr(n.Index)
		if err != nil {
			return nil, err
		}
		return &ir.ElementAccess{Expr: base, Array: array, Index: index}, nil

	case "parenthesized":
		inner, err := decodeExpr(n.Inner)
		if err != nil {
			return nil, err
		}
		return &ir.Parenthesized{Expr: base, Inner: inner}, nil

	case "postfix":
		inner, err := decodeExpr(n.Inner)
		if err != nil {
			return nil, err
		}
		return &ir.Postfix{Expr: base, Inner: inner, Op: n.PostfixOp}, nil

	case "initializer":
		elems, err := decodeExprs(n.Elements)
		if err != nil {
			return nil, err
		}
		return &ir.StructOrArrayInitializer{Expr: base, Elements: elems}, nil

	case "assignment":
		left, err := decodeExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(n.RightExpr)
		if err != nil {
			return nil, err
		}
		return &ir.Assignment{Expr: base, Left: left, Right: right}, nil

	default:
		return nil, fmt.Errorf("unknown expression kind %q", n.Kind)
	}
}

// mustDecodeExpr is decodeExpr for the single-expression call sites
// (field/constant initializers) that have no error return of their own
// to thread through; see decodeStmts for why a malformed document fails
// loud.
func mustDecodeExpr(raw json.RawMessage) ir.Expression {
	e, err := decodeExpr(raw)
	if err != nil {
		panic(fmt.Sprintf("loader: decoding expression: %v", err))
	}
	return e
}

func decodeExprs(raws []json.RawMessage) ([]ir.Expression, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	out := make([]ir.Expression, 0, len(raws))
	for _, raw := range raws {
		e, err := decodeExpr(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func typeRefFromDocPtr(d *typeRefDoc) *ir.TypeRef {
	if d == nil {
		return &ir.TypeRef{}
	}
	return typeRefFromDoc(*d)
}

// stmtNode mirrors exprNode's one-struct-per-union approach for statements.
type stmtNode struct {
	Kind string `json:"kind"`

	Statements []json.RawMessage `json:"statements"`

	Expr json.RawMessage `json:"expr"`

	Name string      `json:"name"`
	Type *typeRefDoc `json:"type"`

	Initializer json.RawMessage   `json:"initializer"`
	InitExprs   []json.RawMessage `json:"initExprs"`
	Condition   json.RawMessage   `json:"condition"`
	Iterator    []json.RawMessage `json:"iterator"`
	Loop        json.RawMessage   `json:"loop"`
	Container   json.RawMessage   `json:"container"`
	True        json.RawMessage   `json:"true"`
	False       json.RawMessage   `json:"false"`
}

// decodeStmt converts one JSON-encoded statement node into its ir
// variant.
func decodeStmt(raw json.RawMessage) (ir.Statement, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var n stmtNode
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}

	switch n.Kind {
	case "block":
		return &ir.Block{Statements: decodeStmts(n.Statements)}, nil

	case "expr":
		e, err := decodeExpr(n.Expr)
		if err != nil {
			return nil, err
		}
		return &ir.ExpressionStmt{Expr: e}, nil

	case "varDecl":
		init, err := decodeExpr(n.Initializer)
		if err != nil {
			return nil, err
		}
		return &ir.VariableDeclaration{Decl: &ir.VariableDecl{Name: n.Name, Type: typeRefFromDocPtr(n.Type), Initializer: init}}, nil

	case "while":
		cond, err := decodeExpr(n.Condition)
		if err != nil {
			return nil, err
		}
		loop, err := decodeStmt(n.Loop)
		if err != nil {
			return nil, err
		}
		return &ir.While{Condition: cond, Loop: loop}, nil

	case "for":
		initExprs, err := decodeExprs(n.InitExprs)
		if err != nil {
			return nil, err
		}
		cond, err := decodeExpr(n.Condition)
		if err != nil {
			return nil, err
		}
		iter, err := decodeExprs(n.Iterator)
		if err != nil {
			return nil, err
		}
		loop, err := decodeStmt(n.Loop)
		if err != nil {
			return nil, err
		}
		return &ir.For{Initializer: initExprs, Condition: cond, Iterator: iter, Loop: loop}, nil

	case "foreach":
		container, err := decodeExpr(n.Container)
		if err != nil {
			return nil, err
		}
		loop, err := decodeStmt(n.Loop)
		if err != nil {
			return nil, err
		}
		return &ir.Foreach{Name: n.Name, Type: typeRefFromDocPtr(n.Type), Container: container, Loop: loop}, nil

	case "if":
		cond, err := decodeExpr(n.Condition)
		if err != nil {
			return nil, err
		}
		trueStmt, err := decodeStmt(n.True)
		if err != nil {
			return nil, err
		}
		falseStmt, err := decodeStmt(n.False)
		if err != nil {
			return nil, err
		}
		return &ir.If{Condition: cond, True: trueStmt, False: falseStmt}, nil

	case "return":
		e, err := decodeExpr(n.Expr)
		if err != nil {
			return nil, err
		}
		return &ir.Return{Expr: e}, nil

	default:
		return nil, fmt.Errorf("unknown statement kind %q", n.Kind)
	}
}

// decodeStmts decodes a slice of raw statement nodes. A malformed
// document panics with a descriptive message rather than silently
// dropping the bad node: program documents are build input the author
// controls, not untrusted user input.
func decodeStmts(raws []json.RawMessage) []ir.Statement {
	out := make([]ir.Statement, 0, len(raws))
	for _, raw := range raws {
		s, err := decodeStmt(raw)
		if err != nil {
			panic(fmt.Sprintf("loader: decoding statement: %v", err))
		}
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}
