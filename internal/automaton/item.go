// Package automaton builds the canonical LR(0) item-set collection and the
// GOTO relation for an augmented production list: closure, goto, and the
// worklist-driven enumeration that assigns each distinct item set a state
// index. Adapted from dekarrin-tunaq/internal/ictiobus/automaton's
// epsilon-closure/subset-construction technique, restricted to the LR(0)
// case (its LALR(1)/LR(1) construction is out of scope here).
package automaton

import (
	"fmt"
	"sort"

	"github.com/finger-bone/mygo-parser/internal/grammar"
)

// Item is an LR(0) item referencing its production by index rather than
// copying the production's LHS/RHS, per SPEC_FULL.md §3's adoption of the
// "items reference productions by index" design note. Equality is a plain
// struct compare.
type Item struct {
	Prod int
	Dot  int
}

func (it Item) key() string {
	return fmt.Sprintf("%d.%d", it.Prod, it.Dot)
}

// ItemSet is an unordered, deduplicated collection of items, closed under
// Closure. Items is kept sorted by (Prod, Dot) so two item sets with the
// same contents produce the same Key, and so table construction can iterate
// items in a fixed order per the reproducibility note in SPEC_FULL.md §4.4.
type ItemSet struct {
	Items []Item
}

func newItemSet(items map[string]Item) ItemSet {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		out = append(out, it)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Prod != out[j].Prod {
			return out[i].Prod < out[j].Prod
		}
		return out[i].Dot < out[j].Dot
	})
	return ItemSet{Items: out}
}

// Key returns a canonical string identity for the item set, used to
// deduplicate states by set equality (two item sets with the same key are
// the same state).
func (s ItemSet) Key() string {
	var sb []byte
	for i, it := range s.Items {
		if i > 0 {
			sb = append(sb, ',')
		}
		sb = append(sb, it.key()...)
	}
	return string(sb)
}

// Closure returns the least superset of seed such that for every item
// A -> alpha . B gamma in the result and every production B -> delta, the
// item B -> . delta is in the result. Implemented as a worklist over items,
// deduped by structural equality, per SPEC_FULL.md §4.3.
func Closure(prods []grammar.Production, seed []Item) ItemSet {
	byLHS := make(map[string][]int)
	for i, p := range prods {
		byLHS[p.LHS] = append(byLHS[p.LHS], i)
	}

	items := make(map[string]Item)
	var worklist []Item
	for _, it := range seed {
		k := it.key()
		if _, ok := items[k]; !ok {
			items[k] = it
			worklist = append(worklist, it)
		}
	}

	for len(worklist) > 0 {
		it := worklist[0]
		worklist = worklist[1:]

		sym, ok := prods[it.Prod].DotSymbol(it.Dot)
		if !ok || !sym.IsNonTerminal() {
			continue
		}
		for _, pIdx := range byLHS[sym.Name] {
			cand := Item{Prod: pIdx, Dot: 0}
			k := cand.key()
			if _, ok := items[k]; !ok {
				items[k] = cand
				worklist = append(worklist, cand)
			}
		}
	}

	return newItemSet(items)
}

// Goto returns closure({A -> alpha X . beta | A -> alpha . X beta in I}),
// the successor state reached from I on symbol X.
func Goto(prods []grammar.Production, i ItemSet, x grammar.Symbol) ItemSet {
	var moved []Item
	for _, it := range i.Items {
		sym, ok := prods[it.Prod].DotSymbol(it.Dot)
		if !ok || !sym.Equal(x) {
			continue
		}
		moved = append(moved, Item{Prod: it.Prod, Dot: it.Dot + 1})
	}
	if len(moved) == 0 {
		return ItemSet{}
	}
	return Closure(prods, moved)
}
