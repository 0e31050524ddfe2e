package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finger-bone/mygo-parser/internal/grammar"
)

func exprGrammar(t *testing.T) *grammar.Grammar {
	g := grammar.New()
	g.AddRule(grammar.Rule{
		LHS:            "E",
		Alternations:   [][]grammar.Symbol{{grammar.NewNonTerminal("E"), grammar.NewTerminal("+"), grammar.NewNonTerminal("T")}, {grammar.NewNonTerminal("T")}},
		UseAllChildren: true,
	})
	g.AddRule(grammar.Rule{
		LHS:            "T",
		Alternations:   [][]grammar.Symbol{{grammar.NewNonTerminal("T"), grammar.NewTerminal("*"), grammar.NewNonTerminal("F")}, {grammar.NewNonTerminal("F")}},
		UseAllChildren: true,
	})
	g.AddRule(grammar.Rule{
		LHS: "F",
		Alternations: [][]grammar.Symbol{
			{grammar.NewTerminal("("), grammar.NewNonTerminal("E"), grammar.NewTerminal(")")},
			{grammar.NewTerminal("id")},
		},
		UseAllChildren: true,
	})
	return g
}

func TestValidate_NoUndefinedNonTerminals(t *testing.T) {
	g := exprGrammar(t)
	require.NoError(t, g.Validate())
}

func TestValidate_ReportsUndefined(t *testing.T) {
	g := grammar.New()
	g.AddRule(grammar.Rule{
		LHS:            "S",
		Alternations:   [][]grammar.Symbol{{grammar.NewNonTerminal("Missing")}},
		UseAllChildren: true,
	})
	err := g.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing")
}

func TestAugment_GeneratesCollisionFreeStartName(t *testing.T) {
	g := grammar.New()
	g.AddRule(grammar.Rule{LHS: "S", Alternations: [][]grammar.Symbol{{grammar.NewTerminal("a")}}, UseAllChildren: true})
	g.AddRule(grammar.Rule{LHS: "S'", Alternations: [][]grammar.Symbol{{grammar.NewTerminal("b")}}, UseAllChildren: true})

	aug, err := grammar.Augment(g, "S")
	require.NoError(t, err)
	assert.NotEqual(t, "S'", aug.StartSymbol)
	assert.Equal(t, "S''", aug.StartSymbol)
	assert.Equal(t, aug.StartSymbol, aug.Productions[0].LHS)
	assert.Equal(t, []grammar.Symbol{grammar.NewNonTerminal("S")}, aug.Productions[0].RHS)
	assert.True(t, aug.Productions[0].UseAllChildren)
}

func TestExtractTerminals_SortedAndDeduped(t *testing.T) {
	g := exprGrammar(t)
	terms := g.ExtractTerminals()

	names := make([]string, len(terms))
	for i, s := range terms {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"(", ")", "*", "+", "id"}, names)
}

func TestGrammar_NonTerminalsAndRules(t *testing.T) {
	g := exprGrammar(t)

	assert.Equal(t, []string{"E", "T", "F"}, g.NonTerminals())
	assert.True(t, g.HasNonTerminal("T"))
	assert.False(t, g.HasNonTerminal("G"))
	assert.Len(t, g.Rules("F"), 1)
}

func TestCompute_FirstFollow(t *testing.T) {
	g := exprGrammar(t)
	aug, err := grammar.Augment(g, "E")
	require.NoError(t, err)

	ff := grammar.Compute(aug.Productions, aug.StartSymbol)

	assert.True(t, ff.FirstOf("F")["("])
	assert.True(t, ff.FirstOf("F")["id"])
	assert.True(t, ff.FirstOf("T")["("])
	assert.True(t, ff.FirstOf("E")["("])

	assert.True(t, ff.FollowOf(aug.StartSymbol)["#"])
	assert.True(t, ff.FollowOf("E")["+"])
	assert.True(t, ff.FollowOf("E")[")"])
	assert.True(t, ff.FollowOf("E")["#"])
	assert.True(t, ff.FollowOf("T")["*"])
}
