// Package slrerr defines the typed error taxonomy shared by every stage of
// the grammar-to-parser pipeline: grammar source parsing, table
// construction, parsing, and AST reshaping. Each kind is a distinct Go type
// so callers can discriminate with errors.As instead of string matching.
package slrerr

import (
	"fmt"

	"github.com/finger-bone/mygo-parser/internal/util"
)

// GrammarSyntaxError reports a malformed grammar rule: an unterminated
// literal, an unknown escape, or a missing arrow or AST bracket.
type GrammarSyntaxError struct {
	Line   int
	Source string
	Reason string
}

func (e *GrammarSyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("grammar syntax error at line %d: %s (%q)", e.Line, e.Reason, e.Source)
	}
	return fmt.Sprintf("grammar syntax error: %s (%q)", e.Reason, e.Source)
}

// UndefinedNonTerminal reports a non-terminal referenced on some production's
// RHS that is never declared as any rule's LHS.
type UndefinedNonTerminal struct {
	Names []string
}

func (e *UndefinedNonTerminal) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("undefined non-terminal: %q", e.Names[0])
	}
	// MakeTextList prepends "and " onto the last element in place, so it
	// gets a copy rather than e.Names itself.
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return fmt.Sprintf("undefined non-terminals: %s", util.MakeTextList(quoted))
}

// ConflictKind distinguishes the two ways an ACTION table cell can be
// written twice during table construction.
type ConflictKind int

const (
	ShiftReduce ConflictKind = iota
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ShiftReduce {
		return "shift/reduce"
	}
	return "reduce/reduce"
}

// TableConflict reports a shift/reduce or reduce/reduce conflict found
// during ACTION table construction. It does not abort construction unless
// strict mode is enabled; see slr.Build's StrictMode option.
type TableConflict struct {
	Kind     ConflictKind
	State    int
	Symbol   string
	Existing string
	Rejected string
}

func (e *TableConflict) Error() string {
	return fmt.Sprintf("%s conflict in state %d on %q: kept %q, rejected %q",
		e.Kind, e.State, e.Symbol, e.Existing, e.Rejected)
}

// ParseErrorReason enumerates why the parse driver failed.
type ParseErrorReason int

const (
	NoAction ParseErrorReason = iota
	NoGoto
	ExtraSymbolsAtAccept
)

func (r ParseErrorReason) String() string {
	switch r {
	case NoAction:
		return "no action"
	case NoGoto:
		return "no goto"
	case ExtraSymbolsAtAccept:
		return "extra symbols at accept"
	default:
		return "unknown"
	}
}

// ParseError reports a non-recoverable parse failure at a 0-based token
// index, naming the parser state and offending symbol.
type ParseError struct {
	Position int
	State    int
	Symbol   string
	Reason   ParseErrorReason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at token %d (state %d, symbol %q): %s",
		e.Position, e.State, e.Symbol, e.Reason)
}

// ASTShapeError reports an AST directive referencing an out-of-range child
// index during CST-to-AST reshaping.
type ASTShapeError struct {
	Production int
	Index      int
	ChildCount int
}

func (e *ASTShapeError) Error() string {
	return fmt.Sprintf("ast_children index %d out of range for production %d (has %d children)",
		e.Index, e.Production, e.ChildCount)
}
