package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finger-bone/mygo-parser/internal/grammar"
)

func TestSymbol_IsTerminalIsNonTerminal(t *testing.T) {
	assert.True(t, grammar.NewTerminal("+").IsTerminal())
	assert.False(t, grammar.NewTerminal("+").IsNonTerminal())

	assert.True(t, grammar.NewNonTerminal("E").IsNonTerminal())
	assert.False(t, grammar.NewNonTerminal("E").IsTerminal())

	eoi := grammar.EndOfInput()
	assert.True(t, eoi.IsTerminal())
	assert.Equal(t, grammar.EndOfInputName, eoi.Name)
}

func TestSymbol_Equal(t *testing.T) {
	a := grammar.NewTerminal("+")
	b := grammar.NewTerminal("+")
	c := grammar.NewNonTerminal("+")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSymbol_String(t *testing.T) {
	assert.Equal(t, "'+'", grammar.NewTerminal("+").String())
	assert.Equal(t, "'\\n'", grammar.NewTerminal("\n").String())
	assert.Equal(t, `"E"`, grammar.NewNonTerminal("E").String())
}
