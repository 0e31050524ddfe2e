package grammar

import (
	"fmt"
	"sort"

	"github.com/finger-bone/mygo-parser/internal/slrerr"
)

// Grammar is an ordered mapping from non-terminal name to the list of rules
// declared for it, in declaration order. It is produced by internal/gsrc
// from grammar source text (or constructed directly by tests) and is
// validated before being handed to internal/slr.Build.
type Grammar struct {
	order []string
	rules map[string][]Rule
}

func New() *Grammar {
	return &Grammar{rules: make(map[string][]Rule)}
}

// AddRule appends a rule to the grammar, registering its LHS in declaration
// order the first time it is seen.
func (g *Grammar) AddRule(r Rule) {
	if _, ok := g.rules[r.LHS]; !ok {
		g.order = append(g.order, r.LHS)
	}
	g.rules[r.LHS] = append(g.rules[r.LHS], r)
}

// NonTerminals returns the declared non-terminal names in declaration order.
func (g *Grammar) NonTerminals() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Rules returns the rules declared for a non-terminal, in declaration order.
func (g *Grammar) Rules(lhs string) []Rule {
	return g.rules[lhs]
}

func (g *Grammar) HasNonTerminal(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// UndefinedNonTerminals returns, in first-seen order, every non-terminal
// name referenced on some RHS that has no declared rule of its own.
func (g *Grammar) UndefinedNonTerminals() []string {
	var seen []string
	seenSet := make(map[string]bool)
	for _, lhs := range g.order {
		for _, rule := range g.rules[lhs] {
			for _, alt := range rule.Alternations {
				for _, sym := range alt {
					if !sym.IsNonTerminal() {
						continue
					}
					if g.HasNonTerminal(sym.Name) {
						continue
					}
					if seenSet[sym.Name] {
						continue
					}
					seenSet[sym.Name] = true
					seen = append(seen, sym.Name)
				}
			}
		}
	}
	return seen
}

// Validate checks the undefined-non-terminal invariant required before
// table construction and returns a *slrerr.UndefinedNonTerminal if it is
// violated.
func (g *Grammar) Validate() error {
	if undef := g.UndefinedNonTerminals(); len(undef) > 0 {
		return &slrerr.UndefinedNonTerminal{Names: undef}
	}
	return nil
}

// ExtractTerminals returns the set of distinct terminal symbols appearing
// anywhere on an RHS, sorted by name for deterministic output.
func (g *Grammar) ExtractTerminals() []Symbol {
	seen := make(map[string]Symbol)
	for _, lhs := range g.order {
		for _, rule := range g.rules[lhs] {
			for _, alt := range rule.Alternations {
				for _, sym := range alt {
					if sym.IsTerminal() {
						seen[sym.Name] = sym
					}
				}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Symbol, len(names))
	for i, name := range names {
		out[i] = seen[name]
	}
	return out
}

// Augmented is the result of augmenting a Grammar with a fresh start
// production S' -> S. Productions[0] is always that start production.
type Augmented struct {
	Productions []Production
	StartSymbol string // the generated S' name
}

// Augment wraps g with a fresh start production S' -> S, where S is start.
// The augmented name is picked by appending "'" to start until the result
// collides with no declared non-terminal, resolving the open question in
// SPEC_FULL.md about S' colliding with a user-declared non-terminal of the
// same name.
func Augment(g *Grammar, start string) (*Augmented, error) {
	if !g.HasNonTerminal(start) {
		return nil, fmt.Errorf("start symbol %q is not a declared non-terminal", start)
	}

	augStart := start + "'"
	for g.HasNonTerminal(augStart) {
		augStart += "'"
	}

	prods := []Production{
		{
			LHS:            augStart,
			RHS:            []Symbol{NewNonTerminal(start)},
			ASTChildren:    []int{0},
			DoFlatten:      false,
			UseAllChildren: true,
		},
	}

	for _, lhs := range g.order {
		for _, rule := range g.rules[lhs] {
			for _, alt := range rule.Alternations {
				rhs := make([]Symbol, len(alt))
				copy(rhs, alt)
				prods = append(prods, Production{
					LHS:            rule.LHS,
					RHS:            rhs,
					ASTChildren:    rule.ASTChildren,
					DoFlatten:      rule.DoFlatten,
					UseAllChildren: rule.UseAllChildren,
					SemanticAction: rule.SemanticAction,
				})
			}
		}
	}

	return &Augmented{Productions: prods, StartSymbol: augStart}, nil
}
