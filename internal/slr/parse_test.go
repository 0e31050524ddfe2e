package slr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finger-bone/mygo-parser/internal/gsrc"
	"github.com/finger-bone/mygo-parser/internal/lex"
	"github.com/finger-bone/mygo-parser/internal/slr"
	"github.com/finger-bone/mygo-parser/internal/slrerr"
)

// scenario 1 of SPEC_FULL.md §8: the classic expression grammar.
const exprGrammarSrc = `
[; ] "E" -> "E" '+' "T" | "T"
[; ] "T" -> "T" '*' "F" | "F"
[; ] "F" -> '(' "E" ')' | 'id'
`

func buildExprParser(t *testing.T) *slr.Parser {
	g, err := gsrc.Parse(exprGrammarSrc)
	require.NoError(t, err)
	parser, conflicts, err := slr.Build(g, "E")
	require.NoError(t, err)
	require.Empty(t, conflicts)
	return parser
}

func TestParse_ExpressionGrammar_Accepts(t *testing.T) {
	parser := buildExprParser(t)

	tokens := []lex.Token{
		{Class: lex.NewClass("id"), Lexeme: "id"},
		{Class: lex.NewClass("+"), Lexeme: "+"},
		{Class: lex.NewClass("id"), Lexeme: "id"},
		{Class: lex.NewClass("*"), Lexeme: "*"},
		{Class: lex.NewClass("id"), Lexeme: "id"},
		{Class: lex.ClassEndOfInput, Lexeme: "#"},
	}

	tree, err := parser.Parse(lex.NewStream(tokens), nil)
	require.NoError(t, err)
	require.NotNil(t, tree)
	require.Equal(t, "E", tree.Symbol)

	// E( E(T(F(id))) + T( T(F(id)) * F(id) ) )
	require.Len(t, tree.Children, 3)
	require.Equal(t, "T", tree.Children[2].Symbol)
	require.Len(t, tree.Children[2].Children, 3)
}

func TestParse_ReportsNoActionOnBadToken(t *testing.T) {
	parser := buildExprParser(t)

	tokens := []lex.Token{
		{Class: lex.NewClass("+"), Lexeme: "+"},
		{Class: lex.ClassEndOfInput, Lexeme: "#"},
	}

	_, err := parser.Parse(lex.NewStream(tokens), nil)
	require.Error(t, err)

	var perr *slrerr.ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, slrerr.NoAction, perr.Reason)
}
