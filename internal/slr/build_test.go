package slr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finger-bone/mygo-parser/internal/gsrc"
	"github.com/finger-bone/mygo-parser/internal/slr"
	"github.com/finger-bone/mygo-parser/internal/slrerr"
)

// the classic dangling-else grammar: scenario 5 of SPEC_FULL.md §8.
const danglingElseSrc = `
[; ] "Stmt" -> "If" | 'other'
[; ] "If" -> 'if' "Cond" 'then' "Stmt" | 'if' "Cond" 'then' "Stmt" 'else' "Stmt"
[; ] "Cond" -> 'c'
`

func TestBuild_ReportsShiftReduceConflictAndKeepsShift(t *testing.T) {
	g, err := gsrc.Parse(danglingElseSrc)
	require.NoError(t, err)

	parser, conflicts, err := slr.Build(g, "Stmt")
	require.NoError(t, err)
	require.NotEmpty(t, conflicts, "dangling-else grammar must report a shift/reduce conflict")

	found := false
	for _, c := range conflicts {
		if c.Kind == slrerr.ShiftReduce && c.Symbol == "else" {
			found = true
			assert.Contains(t, c.Existing, "s")
		}
	}
	assert.True(t, found, "expected a shift/reduce conflict on 'else'")
	assert.NotNil(t, parser)
}

func TestBuild_StrictModeAbortsOnConflict(t *testing.T) {
	g, err := gsrc.Parse(danglingElseSrc)
	require.NoError(t, err)

	_, _, err = slr.Build(g, "Stmt", slr.StrictMode())
	require.Error(t, err)

	var conflict *slrerr.TableConflict
	assert.ErrorAs(t, err, &conflict)
}

func TestBuild_RejectsUndefinedNonTerminal(t *testing.T) {
	g, err := gsrc.Parse(`[; ] "S" -> "Missing"`)
	require.NoError(t, err)

	_, _, err = slr.Build(g, "S")
	require.Error(t, err)

	var undef *slrerr.UndefinedNonTerminal
	require.ErrorAs(t, err, &undef)
	assert.Equal(t, []string{"Missing"}, undef.Names)
}
