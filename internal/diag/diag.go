// Package diag formats and reports the core's diagnostics, grounded on
// the teacher's internal/errors (CompilerError with source context and a
// caret pointer at the offending column). It additionally tags every
// error with a Kind drawn from SPEC_FULL.md §7 so callers — and tests —
// can assert on *which* of the eleven error kinds fired, not just message
// text.
package diag

import (
	"fmt"
	"strings"

	"github.com/octanelang/octanec/internal/ir"
)

// Kind enumerates the eleven error kinds the core can raise: the ten of
// SPEC_FULL.md §7 plus MemberNotFound, raised by the Type Resolver.
type Kind int

const (
	UnresolvedSymbol Kind = iota
	AmbiguousUsing
	NoOverridableMethod
	InstanceInitShape
	ClassInitShape
	ReturnsModifiedPointerShape
	NonArrayIndexed
	IsOnNonClass
	BadMemberAccess
	MemberNotFound
	InternalUnhandledKind
)

func (k Kind) String() string {
	switch k {
	case UnresolvedSymbol:
		return "UnresolvedSymbol"
	case AmbiguousUsing:
		return "AmbiguousUsing"
	case NoOverridableMethod:
		return "NoOverridableMethod"
	case InstanceInitShape:
		return "InstanceInitShape"
	case ClassInitShape:
		return "ClassInitShape"
	case ReturnsModifiedPointerShape:
		return "ReturnsModifiedPointerShape"
	case NonArrayIndexed:
		return "NonArrayIndexed"
	case IsOnNonClass:
		return "IsOnNonClass"
	case BadMemberAccess:
		return "BadMemberAccess"
	case MemberNotFound:
		return "MemberNotFound"
	case InternalUnhandledKind:
		return "InternalUnhandledKind"
	default:
		return "Unknown"
	}
}

// Error is a single diagnostic with source position and context, in the
// shape of the teacher's CompilerError.
type Error struct {
	Kind    Kind
	Message string
	Pos     ir.Position
	Source  string // the full text of the offending file, for context lines
}

func New(kind Kind, pos ir.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Format(false)
}

// Format renders the diagnostic with a source line and caret indicator,
// mirroring CompilerError.Format(color bool).
func (e *Error) Format(color bool) string {
	var sb strings.Builder

	if e.Pos.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.Pos.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at line %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if line := sourceLine(e.Source, e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	fmt.Fprintf(&sb, "[%s] %s", e.Kind, e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
