package slr

import (
	"github.com/finger-bone/mygo-parser/internal/cst"
	"github.com/finger-bone/mygo-parser/internal/lex"
	"github.com/finger-bone/mygo-parser/internal/slrerr"
)

// StepKind identifies which driver action a TraceFunc is reporting.
type StepKind int

const (
	StepShift StepKind = iota
	StepReduce
	StepAccept
	StepError
)

// TraceFunc is called once per driver step when a non-nil trace is given to
// Parse, generalized from dekarrin-tunaq/internal/ictiobus/parse/lr.go's
// trace/notifyTrace* hooks. The CLI's --trace mode uses this to pause at a
// readline prompt between steps.
type TraceFunc func(kind StepKind, state int, token lex.Token)

// Parse runs the shift/reduce/accept loop of SPEC_FULL.md §4.6 over tokens,
// building a CST whose root is returned on Accept. The first failure
// (missing ACTION entry, missing GOTO entry, or leftover stack state at
// Accept) aborts the parse and returns a *slrerr.ParseError.
func (p *Parser) Parse(tokens lex.TokenStream, trace TraceFunc) (*cst.Node, error) {
	stateStack := []int{0}
	var nodeStack []*cst.Node

	pos := 0
	for {
		s := stateStack[len(stateStack)-1]
		tok := tokens.Peek()
		a, ok := p.ActionAt(s, tok.Lexeme)
		if !ok {
			if trace != nil {
				trace(StepError, s, tok)
			}
			return nil, &slrerr.ParseError{Position: pos, State: s, Symbol: tok.Lexeme, Reason: slrerr.NoAction}
		}

		switch a.Type {
		case Shift:
			if trace != nil {
				trace(StepShift, s, tok)
			}
			tokens.Next()
			stateStack = append(stateStack, a.Value)
			nodeStack = append(nodeStack, cst.NewLeaf(tok.Lexeme, tok.Lexeme))
			pos++

		case Reduce:
			if trace != nil {
				trace(StepReduce, s, tok)
			}
			prod := p.Productions[a.Value]
			n := len(prod.RHS)

			children := make([]*cst.Node, n)
			copy(children, nodeStack[len(nodeStack)-n:])
			nodeStack = nodeStack[:len(nodeStack)-n]
			stateStack = stateStack[:len(stateStack)-n]

			newNode := cst.NewInternal(prod.LHS, a.Value, children)

			s2 := stateStack[len(stateStack)-1]
			j, ok := p.GotoAt(s2, prod.LHS)
			if !ok {
				return nil, &slrerr.ParseError{Position: pos, State: s2, Symbol: prod.LHS, Reason: slrerr.NoGoto}
			}
			stateStack = append(stateStack, j)
			nodeStack = append(nodeStack, newNode)

		case Accept:
			if trace != nil {
				trace(StepAccept, s, tok)
			}
			if len(nodeStack) != 1 {
				return nil, &slrerr.ParseError{Position: pos, State: s, Symbol: tok.Lexeme, Reason: slrerr.ExtraSymbolsAtAccept}
			}
			return nodeStack[0], nil
		}
	}
}
