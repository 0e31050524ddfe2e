package automaton

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/linkedhashset"

	"github.com/finger-bone/mygo-parser/internal/grammar"
)

// Collection is the canonical LR(0) item-set collection: one ItemSet per
// state, indexed by state number, plus the GOTO relation recorded for both
// terminals and non-terminals (terminal entries feed shift-action
// derivation in internal/slr; non-terminal entries are consumed directly by
// the parse driver).
type Collection struct {
	States []ItemSet
	// Goto[state][symbolKey] = successor state index.
	Goto []map[string]int
}

func symbolKey(s grammar.Symbol) string {
	return s.Type.String() + ":" + s.Name
}

// Build enumerates the canonical LR(0) item sets starting from
// closure({augStart -> . S}), following the worklist discipline of
// SPEC_FULL.md §4.4: FIFO over states (an emirpasic/gods arraylist used as a
// queue), symbols considered in the order they are first seen after a dot in
// each state (an emirpasic/gods linkedhashset, so dedup keeps insertion
// order instead of the arbitrary order a plain map would give), state
// identity by set equality.
func Build(prods []grammar.Production) *Collection {
	start := Closure(prods, []Item{{Prod: 0, Dot: 0}})

	col := &Collection{
		States: []ItemSet{start},
		Goto:   []map[string]int{{}},
	}
	keyToState := map[string]int{start.Key(): 0}

	worklist := arraylist.New()
	worklist.Add(0)
	for !worklist.Empty() {
		iv, _ := worklist.Get(0)
		worklist.Remove(0)
		i := iv.(int)

		state := col.States[i]

		symOrder := linkedhashset.New()
		symByKey := make(map[string]grammar.Symbol)
		for _, it := range state.Items {
			sym, ok := prods[it.Prod].DotSymbol(it.Dot)
			if !ok {
				continue
			}
			sk := symbolKey(sym)
			if !symOrder.Contains(sk) {
				symOrder.Add(sk)
				symByKey[sk] = sym
			}
		}

		for _, sk := range symOrder.Values() {
			sym := symByKey[sk.(string)]
			j := Goto(prods, state, sym)
			if len(j.Items) == 0 {
				continue
			}
			jKey := j.Key()
			jIdx, exists := keyToState[jKey]
			if !exists {
				jIdx = len(col.States)
				col.States = append(col.States, j)
				col.Goto = append(col.Goto, map[string]int{})
				keyToState[jKey] = jIdx
				worklist.Add(jIdx)
			}
			col.Goto[i][symbolKey(sym)] = jIdx
		}
	}

	return col
}

// GotoState returns the successor state index for (state, sym), or -1 if
// undefined.
func (c *Collection) GotoState(state int, sym grammar.Symbol) (int, bool) {
	j, ok := c.Goto[state][symbolKey(sym)]
	if !ok {
		return -1, false
	}
	return j, true
}
