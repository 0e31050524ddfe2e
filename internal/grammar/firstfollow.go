package grammar

// FirstFollow holds the computed FIRST and FOLLOW sets for an augmented
// production list, keyed by symbol name. FIRST is keyed over every symbol
// (terminals map to a singleton set of themselves); FOLLOW is keyed over
// non-terminal names only. Each per-symbol set is a plain map[string]bool:
// the fixed-point loops below only ever need membership test, insert, and a
// growth check against len(), none of which benefits from a set wrapper type.
type FirstFollow struct {
	First  map[string]map[string]bool
	Follow map[string]map[string]bool
}

// Compute runs the least-fixed-point iterations described in SPEC_FULL.md
// §4.2: FIRST is seeded from every terminal occurrence and grown by copying
// FIRST of each production's leading symbol into FIRST of its LHS; FOLLOW is
// seeded with "#" in FOLLOW(start) and grown by propagating FIRST of the
// symbol following each non-terminal occurrence, and FOLLOW(LHS) into
// FOLLOW(the final symbol of the RHS). Deliberately omits epsilon handling:
// grammars with empty productions are rejected earlier, when internal/gsrc
// parses grammar source; a production with an empty RHS that reaches here
// anyway contributes nothing to FIRST.
func Compute(prods []Production, startSymbol string) *FirstFollow {
	ff := &FirstFollow{
		First:  make(map[string]map[string]bool),
		Follow: make(map[string]map[string]bool),
	}

	ensure := func(m map[string]map[string]bool, key string) map[string]bool {
		if m[key] == nil {
			m[key] = make(map[string]bool)
		}
		return m[key]
	}

	for _, p := range prods {
		ensure(ff.First, p.LHS)
		ensure(ff.Follow, p.LHS)
		for _, sym := range p.RHS {
			if sym.IsTerminal() {
				ensure(ff.First, sym.Name)[sym.Name] = true
			} else {
				ensure(ff.First, sym.Name)
				ensure(ff.Follow, sym.Name)
			}
		}
	}

	ensure(ff.Follow, startSymbol)[EndOfInputName] = true

	for {
		grew := false

		for _, p := range prods {
			if len(p.RHS) == 0 {
				continue
			}
			head := p.RHS[0]
			before := len(ff.First[p.LHS])
			for t := range ff.First[head.Name] {
				ff.First[p.LHS][t] = true
			}
			if len(ff.First[p.LHS]) != before {
				grew = true
			}
		}

		for _, p := range prods {
			for i, sym := range p.RHS {
				if !sym.IsNonTerminal() {
					continue
				}
				if i+1 < len(p.RHS) {
					next := p.RHS[i+1]
					before := len(ff.Follow[sym.Name])
					for t := range ff.First[next.Name] {
						ff.Follow[sym.Name][t] = true
					}
					if len(ff.Follow[sym.Name]) != before {
						grew = true
					}
				} else {
					before := len(ff.Follow[sym.Name])
					for t := range ff.Follow[p.LHS] {
						ff.Follow[sym.Name][t] = true
					}
					if len(ff.Follow[sym.Name]) != before {
						grew = true
					}
				}
			}
		}

		if !grew {
			break
		}
	}

	return ff
}

func (ff *FirstFollow) FirstOf(name string) map[string]bool  { return ff.First[name] }
func (ff *FirstFollow) FollowOf(name string) map[string]bool { return ff.Follow[name] }
