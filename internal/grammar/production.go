package grammar

// Production is one alternation of one rule: a left-hand non-terminal, a
// right-hand sequence of symbols, and the AST-shaping directives that apply
// whenever a CST node reduced by this production is reshaped into an AST
// node (see the ast package). Productions are immutable once a Grammar is
// augmented and indexed; every later stage (items, tables, CST nodes)
// refers to a production by its index into Augmented.Productions rather than
// carrying a copy, per the single-owner design called out in SPEC_FULL.md.
type Production struct {
	LHS            string
	RHS            []Symbol
	ASTChildren    []int
	DoFlatten      bool
	UseAllChildren bool
	SemanticAction string
}

// IsCompleted reports whether dot has reached the end of the production's
// RHS, i.e. the item (index, dot) refers to a completed item.
func (p Production) IsCompleted(dot int) bool {
	return dot >= len(p.RHS)
}

// DotSymbol returns the symbol immediately after dot and true, or the zero
// Symbol and false if dot is at or past the end of the RHS.
func (p Production) DotSymbol(dot int) (Symbol, bool) {
	if dot < 0 || dot >= len(p.RHS) {
		return Symbol{}, false
	}
	return p.RHS[dot], true
}

// Rule bundles every alternation sharing one LHS that was declared together
// in grammar source, along with the AST directives and optional semantic
// action text that apply to every alternation of the rule. Multiple Rule
// values may share an LHS if the source declares it more than once; they
// are concatenated in declaration order when the Grammar is flattened into
// its ordered Production slice.
type Rule struct {
	LHS            string
	Alternations   [][]Symbol
	ASTChildren    []int
	DoFlatten      bool
	UseAllChildren bool
	SemanticAction string
}
