package slr

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// String renders the ACTION/GOTO tables as an aligned text table, grounded
// on dekarrin-tunaq/internal/ictiobus/parse/slr.go's slrTable.String, used
// by the CLI's --dump-table flag.
func (p *Parser) String() string {
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

	var termList, nonTermList []string
	for t := range terms {
		termList = append(termList, t)
	}
	for nt := range nonTerms {
		nonTermList = append(nonTermList, nt)
	}

	headers := []string{"S", "|"}
	for _, t := range termList {
		headers = append(headers, fmt.Sprintf("A:%s", t))
	}
	headers = append(headers, "|")
	for _, nt := range nonTermList {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}

	for i := range p.Collection.States {
		row := []string{fmt.Sprintf("%d", i), "|"}
		for _, t := range termList {
			cell := ""
			if a, ok := p.ActionAt(i, t); ok {
				cell = a.Display()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonTermList {
			cell := ""
			if j, ok := p.GotoAt(i, nt); ok {
				cell = fmt.Sprintf("%d", j)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
