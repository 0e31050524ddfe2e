// Package jsonexport renders a built parser and its CST/AST output as the
// stable JSON documents of SPEC_FULL.md §6, grounded field-for-field on
// original_source/src/slr_parser_output.cpp's to_json.
package jsonexport

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/finger-bone/mygo-parser/internal/automaton"
	"github.com/finger-bone/mygo-parser/internal/cst"
	"github.com/finger-bone/mygo-parser/internal/grammar"
	"github.com/finger-bone/mygo-parser/internal/slr"
)

type symbolJSON struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

type productionJSON struct {
	Index int          `json:"index"`
	Left  string       `json:"left"`
	Right []symbolJSON `json:"right"`
}

type actionCellJSON struct {
	Type    int    `json:"type"`
	Value   int    `json:"value"`
	Display string `json:"display"`
}

type actionRowJSON struct {
	Actions map[string]actionCellJSON `json:"actions"`
}

type itemSetJSON struct {
	Items []string `json:"items"`
}

type parserDumpJSON struct {
	Productions []productionJSON         `json:"productions"`
	ItemSets    []itemSetJSON            `json:"item_sets"`
	ActionTable []actionRowJSON          `json:"action_table"`
	GotoTable   []map[string]int         `json:"goto_table"`
}

// DumpParser renders p as the parser-dump JSON document of SPEC_FULL.md §6.
func DumpParser(w io.Writer, p *slr.Parser) error {
	doc := parserDumpJSON{}

	for i, prod := range p.Productions {
		right := make([]symbolJSON, len(prod.RHS))
		for j, sym := range prod.RHS {
			right[j] = symbolJSON{Value: sym.Name, Type: sym.Type.String()}
		}
		doc.Productions = append(doc.Productions, productionJSON{Index: i, Left: prod.LHS, Right: right})
	}

	terms := make(map[string]bool)
	nonTerms := make(map[string]bool)
	for _, prod := range p.Productions {
		for _, sym := range prod.RHS {
			if sym.IsTerminal() {
				terms[sym.Name] = true
			} else {
				nonTerms[sym.Name] = true
			}
		}
	}
	terms["#"] = true

	for i := range p.Collection.States {
		var items []string
		for _, it := range p.Collection.States[i].Items {
			items = append(items, itemDisplay(p.Productions, it))
		}
		doc.ItemSets = append(doc.ItemSets, itemSetJSON{Items: items})

		row := actionRowJSON{Actions: make(map[string]actionCellJSON)}
		for t := range terms {
			a, ok := p.ActionAt(i, t)
			if !ok {
				row.Actions[t] = actionCellJSON{Type: int(slr.Error), Value: 0, Display: "err"}
				continue
			}
			row.Actions[t] = actionCellJSON{Type: int(a.Type), Value: a.Value, Display: a.Display()}
		}
		doc.ActionTable = append(doc.ActionTable, row)

		gotoRow := make(map[string]int)
		for nt := range nonTerms {
			if j, ok := p.GotoAt(i, nt); ok {
				gotoRow[nt] = j
			}
		}
		doc.GotoTable = append(doc.GotoTable, gotoRow)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func itemDisplay(prods []grammar.Production, it automaton.Item) string {
	p := prods[it.Prod]
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s ->", p.LHS)
	for i, sym := range p.RHS {
		if i == it.Dot {
			sb.WriteString(" .")
		}
		sb.WriteString(" ")
		sb.WriteString(sym.String())
	}
	if it.Dot == len(p.RHS) {
		sb.WriteString(" .")
	}
	return sb.String()
}

type treeNodeJSON struct {
	Type     string          `json:"type"`
	Value    string          `json:"value"`
	Children []*treeNodeJSON `json:"children,omitempty"`
}

// DumpTree renders a CST or AST rooted at root as the tree-dump JSON
// document of SPEC_FULL.md §6, pretty-printed with 2-space indentation.
func DumpTree(w io.Writer, root *cst.Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toTreeJSON(root))
}

func toTreeJSON(n *cst.Node) *treeNodeJSON {
	if n == nil {
		return nil
	}
	if n.Terminal {
		return &treeNodeJSON{Type: "terminal", Value: n.Lexeme}
	}
	out := &treeNodeJSON{Type: "non-terminal", Value: n.Symbol}
	for _, c := range n.Children {
		out.Children = append(out.Children, toTreeJSON(c))
	}
	return out
}
