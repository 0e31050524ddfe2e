// Package slr builds SLR(1) ACTION/GOTO tables from an augmented grammar
// and drives a shift/reduce/accept parse over a token stream, per
// SPEC_FULL.md §4.5/§4.6. Table construction is grounded on
// dekarrin-tunaq/internal/ictiobus/parse/slr.go's
// constructSimpleLRParseTable and original_source/src/slr_parser_build.cpp's
// build_tables; the parse driver is grounded on
// dekarrin-tunaq/internal/ictiobus/parse/lr.go's Parse (Algorithm 4.44).
package slr

import (
	"github.com/finger-bone/mygo-parser/internal/automaton"
	"github.com/finger-bone/mygo-parser/internal/grammar"
	"github.com/finger-bone/mygo-parser/internal/slrerr"
)

// Parser is a built, read-only SLR(1) parser: productions, item-set
// collection, and the ACTION/GOTO tables derived from them. Construction is
// one-shot; Parser is safe for concurrent use by multiple goroutines parsing
// independent token streams afterward, per SPEC_FULL.md §5.
type Parser struct {
	Productions []grammar.Production
	StartSymbol string
	Collection  *automaton.Collection
	FirstFollow *grammar.FirstFollow

	// action[state] maps terminal name (or "#") to its Action.
	action []map[string]Action
}

type buildOptions struct {
	strict bool
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// StrictMode fails table construction with the first reported
// *slrerr.TableConflict instead of keeping the earlier-written action and
// continuing, per SPEC_FULL.md §4.5's "implementations MAY add a strict
// mode" allowance.
func StrictMode() BuildOption {
	return func(o *buildOptions) { o.strict = true }
}

// Build augments g at start, computes FIRST/FOLLOW, enumerates the
// canonical LR(0) item sets, and constructs the ACTION/GOTO tables.
// Conflicts are reported (first-write-wins: the earlier-written action is
// kept) unless StrictMode is given, in which case the first conflict aborts
// construction.
func Build(g *grammar.Grammar, start string, opts ...BuildOption) (*Parser, []slrerr.TableConflict, error) {
	if err := g.Validate(); err != nil {
		return nil, nil, err
	}

	aug, err := grammar.Augment(g, start)
	if err != nil {
		return nil, nil, err
	}

	return BuildFromAugmented(aug.Productions, aug.StartSymbol, opts...)
}

// BuildFromAugmented builds the ACTION/GOTO tables directly from an
// already-augmented production list, skipping grammar validation and
// augmentation. The CLI calls it on an internal/cache hit with the cached
// augmented productions; FIRST/FOLLOW, the item sets and the tables are
// computed here in full either way.
func BuildFromAugmented(prods []grammar.Production, startSymbol string, opts ...BuildOption) (*Parser, []slrerr.TableConflict, error) {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	ff := grammar.Compute(prods, startSymbol)
	col := automaton.Build(prods)

	p := &Parser{
		Productions: prods,
		StartSymbol: startSymbol,
		Collection:  col,
		FirstFollow: ff,
	}
	p.action = make([]map[string]Action, len(col.States))
	for i := range p.action {
		p.action[i] = make(map[string]Action)
	}

	var conflicts []slrerr.TableConflict

	write := func(state int, symbol string, a Action) error {
		existing, has := p.action[state][symbol]
		if !has {
			p.action[state][symbol] = a
			return nil
		}
		if existing.Equal(a) {
			return nil
		}
		kind := slrerr.ShiftReduce
		if existing.Type == Reduce && a.Type == Reduce {
			kind = slrerr.ReduceReduce
		}
		c := slrerr.TableConflict{
			Kind:     kind,
			State:    state,
			Symbol:   symbol,
			Existing: existing.Display(),
			Rejected: a.Display(),
		}
		conflicts = append(conflicts, c)
		if o.strict {
			return &c
		}
		// first-write-wins: keep the existing action.
		return nil
	}

	// Shift actions are written before reduce/accept actions in every
	// state, regardless of item order within that state. SPEC_FULL.md §8
	// scenario 5 (the dangling-else grammar) binds first-write-wins to
	// mean "shift wins a shift/reduce conflict": sorting items by
	// (Prod, Dot) for canonical state identity (automaton/item.go) would
	// otherwise let a lower-indexed completed item reach write() before
	// a higher-indexed shift item in the same state, flipping the
	// conflict outcome. Two passes over each state's items keep item
	// order canonical while still guaranteeing shift-before-reduce.
	for i, state := range col.States {
		for _, it := range state.Items {
			prod := p.Productions[it.Prod]
			if prod.IsCompleted(it.Dot) {
				continue
			}

			sym, _ := prod.DotSymbol(it.Dot)
			if !sym.IsTerminal() {
				continue
			}
			j, ok := col.GotoState(i, sym)
			if !ok {
				continue
			}
			if err := write(i, sym.Name, Action{Type: Shift, Value: j}); err != nil {
				return nil, conflicts, err
			}
		}

		for _, it := range state.Items {
			prod := p.Productions[it.Prod]
			if !prod.IsCompleted(it.Dot) {
				continue
			}

			if prod.LHS == startSymbol {
				if err := write(i, grammar.EndOfInputName, Action{Type: Accept}); err != nil {
					return nil, conflicts, err
				}
				continue
			}
			for t := range ff.FollowOf(prod.LHS) {
				if err := write(i, t, Action{Type: Reduce, Value: it.Prod}); err != nil {
					return nil, conflicts, err
				}
			}
		}
	}

	return p, conflicts, nil
}

// ActionAt returns the ACTION table entry for (state, terminal), or
// (Action{}, false) if no action is defined.
func (p *Parser) ActionAt(state int, terminal string) (Action, bool) {
	a, ok := p.action[state][terminal]
	return a, ok
}

// GotoAt returns the GOTO table entry for (state, nonTerminal), or
// (-1, false) if undefined (see automaton.Collection.GotoState).
func (p *Parser) GotoAt(state int, nonTerminal string) (int, bool) {
	return p.Collection.GotoState(state, grammar.NewNonTerminal(nonTerminal))
}
