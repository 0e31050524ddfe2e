package ast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finger-bone/mygo-parser/internal/ast"
	"github.com/finger-bone/mygo-parser/internal/gsrc"
	"github.com/finger-bone/mygo-parser/internal/lex"
	"github.com/finger-bone/mygo-parser/internal/slr"
)

func buildParser(t *testing.T, src, start string, tokens []lex.Token) *slr.Parser {
	g, err := gsrc.Parse(src)
	require.NoError(t, err)
	parser, _, err := slr.Build(g, start)
	require.NoError(t, err)
	return parser
}

// scenario 2 of SPEC_FULL.md §8: the flatten directive.
const flattenGrammarSrc = `
[*; ] "L" -> "L" ',' "E" | "E"
[; ] "E" -> 'n'
`

func TestReshape_FlattenCollapsesLeftRecursion(t *testing.T) {
	parser := buildParser(t, flattenGrammarSrc, "L", nil)

	tokens := []lex.Token{
		{Class: lex.NewClass("n"), Lexeme: "n"},
		{Class: lex.NewClass(","), Lexeme: ","},
		{Class: lex.NewClass("n"), Lexeme: "n"},
		{Class: lex.NewClass(","), Lexeme: ","},
		{Class: lex.NewClass("n"), Lexeme: "n"},
		{Class: lex.ClassEndOfInput, Lexeme: "#"},
	}

	cstTree, err := parser.Parse(lex.NewStream(tokens), nil)
	require.NoError(t, err)

	astTree, err := ast.Reshape(parser.Productions, cstTree)
	require.NoError(t, err)

	require.Equal(t, "L", astTree.Symbol)
	require.Len(t, astTree.Children, 3)
	for _, c := range astTree.Children {
		require.Equal(t, "E", c.Symbol)
	}
}

// scenario 3 of SPEC_FULL.md §8: selective children.
const selectiveGrammarSrc = `
[; 1] "Paren" -> '(' "E" ')'
[; ] "E" -> 'n'
`

func TestReshape_SelectiveChildrenDropsParens(t *testing.T) {
	parser := buildParser(t, selectiveGrammarSrc, "Paren", nil)

	tokens := []lex.Token{
		{Class: lex.NewClass("("), Lexeme: "("},
		{Class: lex.NewClass("n"), Lexeme: "n"},
		{Class: lex.NewClass(")"), Lexeme: ")"},
		{Class: lex.ClassEndOfInput, Lexeme: "#"},
	}

	cstTree, err := parser.Parse(lex.NewStream(tokens), nil)
	require.NoError(t, err)
	require.Len(t, cstTree.Children, 3)

	astTree, err := ast.Reshape(parser.Productions, cstTree)
	require.NoError(t, err)

	require.Equal(t, "Paren", astTree.Symbol)
	require.Len(t, astTree.Children, 1)
	require.Equal(t, "E", astTree.Children[0].Symbol)
}
