package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finger-bone/mygo-parser/internal/lex"
)

func TestTokenize_LongestMatchWins(t *testing.T) {
	tz := lex.NewTokenizer([]string{"=", "=="})

	tokens, skips := tz.Tokenize("===")
	require.Empty(t, skips)

	// "==" then "=" then end-of-input.
	require.Len(t, tokens, 3)
	assert.Equal(t, "==", tokens[0].Lexeme)
	assert.Equal(t, "=", tokens[1].Lexeme)
	assert.Equal(t, lex.EndOfInputID, tokens[2].Lexeme)
}

func TestTokenize_SkipsUnmatchedCharacters(t *testing.T) {
	tz := lex.NewTokenizer([]string{"a", "b"})

	tokens, skips := tz.Tokenize("a?b")
	require.Len(t, skips, 1)
	assert.Equal(t, byte('?'), skips[0].Char)

	require.Len(t, tokens, 3)
	assert.Equal(t, "a", tokens[0].Lexeme)
	assert.Equal(t, "b", tokens[1].Lexeme)
}

func TestTokenize_TracksLineAndColumn(t *testing.T) {
	tz := lex.NewTokenizer([]string{"\n", "x"})

	tokens, _ := tz.Tokenize("x\nx")
	require.Len(t, tokens, 4)
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[2].Line)
	assert.Equal(t, 2, tokens[1].LinePos)
	assert.Equal(t, 1, tokens[2].LinePos)
}
