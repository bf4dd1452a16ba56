package resolve

import "github.com/octanelang/octanec/internal/ir"

// scopeStack is a genuine lexical-scope stack: push on Block entry, pop
// on exit, lookups walk top-down. SPEC_FULL.md §9 / DESIGN.md Open
// Question 2 corrects the original generator's single flattened scope
// (which let a nested block's locals leak into its siblings) to this.
type scopeStack struct {
	frames []*ir.Symbol
}

func newScopeStack() *scopeStack {
	return &scopeStack{}
}

// push opens a new Block scope and returns it so the caller can bind
// parameters/loop variables into it before statements are emitted.
func (s *scopeStack) push() *ir.Symbol {
	sym := ir.NewSymbol(ir.SymBlock, "")
	s.frames = append(s.frames, sym)
	return sym
}

func (s *scopeStack) pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// current returns the innermost open scope, for binding new locals.
func (s *scopeStack) current() *ir.Symbol {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// lookup walks frames from innermost to outermost.
func (s *scopeStack) lookup(name string) *ir.Symbol {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if sym := s.frames[i].Lookup(name); sym != nil {
			return sym
		}
	}
	return nil
}
