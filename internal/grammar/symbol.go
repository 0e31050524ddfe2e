// Package grammar holds the value types for a context-free grammar
// annotated with AST-shaping directives: symbols, productions, rules, and
// the FIRST/FOLLOW engine and augmentation step that sit above them.
package grammar

import "fmt"

// SymbolType tags a Symbol as one of the four kinds the parser distinguishes.
// The two terminal tags behave identically for IsTerminal and String (and so
// in JSON output), and likewise for the two non-terminal tags; Equal still
// compares the tag. SpecialTerminal marks the "#" end marker and terminals
// written as <escape> in grammar source.
type SymbolType int

const (
	Terminal SymbolType = iota
	NonTerminal
	SpecialTerminal
	SpecialNonTerminal
)

func (t SymbolType) String() string {
	switch t {
	case Terminal, SpecialTerminal:
		return "terminal"
	case NonTerminal, SpecialNonTerminal:
		return "non-terminal"
	default:
		return "unknown"
	}
}

// EndOfInputName is the name of the reserved end-of-input marker, seeded into
// FOLLOW(augmented start) and accepted only in the accepting state.
const EndOfInputName = "#"

// Symbol is a grammar symbol: a terminal or non-terminal name tagged with
// its kind. Equality and hashing are over (Type, Name).
type Symbol struct {
	Type SymbolType
	Name string
}

func NewTerminal(name string) Symbol        { return Symbol{Type: Terminal, Name: name} }
func NewNonTerminal(name string) Symbol     { return Symbol{Type: NonTerminal, Name: name} }
func NewSpecialTerminal(name string) Symbol { return Symbol{Type: SpecialTerminal, Name: name} }

// EndOfInput is the "#" special terminal symbol.
func EndOfInput() Symbol { return Symbol{Type: SpecialTerminal, Name: EndOfInputName} }

func (s Symbol) IsTerminal() bool {
	return s.Type == Terminal || s.Type == SpecialTerminal
}

func (s Symbol) IsNonTerminal() bool {
	return s.Type == NonTerminal || s.Type == SpecialNonTerminal
}

func (s Symbol) Equal(o Symbol) bool {
	return s.Type == o.Type && s.Name == o.Name
}

func (s Symbol) String() string {
	if s.IsTerminal() {
		if s.Name == "\n" {
			return "'\\n'"
		}
		return fmt.Sprintf("'%s'", s.Name)
	}
	return fmt.Sprintf("%q", s.Name)
}
