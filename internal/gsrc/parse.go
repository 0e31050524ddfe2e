// Package gsrc parses the grammar source text format of SPEC_FULL.md §6
// into a *grammar.Grammar, grounded on
// original_source/src/grammar_parser*.cpp (rule/AST-directive/production
// list/terminal/non-terminal parsing) and original_source/src/
// grammar_parser.cpp (line-oriented driver, comment/blank-line skipping).
package gsrc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/finger-bone/mygo-parser/internal/grammar"
	"github.com/finger-bone/mygo-parser/internal/slrerr"
)

var specialTerminals = map[string]string{
	"n":        "\n",
	"quot":     "\"",
	"squot":    "'",
	"vertical": "|",
	"rarrow":   "-",
	"langle":   "<",
	"rangle":   ">",
	"hash":     "#",
}

// Parse reads grammar source text and returns the declared grammar. Lines
// beginning with '#' and blank lines are ignored; a trailing '\' continues
// a logical line across physical lines; a rule may span lines while a
// backtick-delimited semantic-action block is open.
func Parse(src string) (*grammar.Grammar, error) {
	g := grammar.New()

	logicalLines, err := joinLogicalLines(src)
	if err != nil {
		return nil, err
	}

	for _, ll := range logicalLines {
		rule, err := parseRule(ll.text)
		if err != nil {
			return nil, &slrerr.GrammarSyntaxError{Line: ll.line, Source: ll.text, Reason: err.Error()}
		}
		g.AddRule(*rule)
	}

	return g, nil
}

type logicalLine struct {
	line int // 1-based physical line the logical line started on
	text string
}

func joinLogicalLines(src string) ([]logicalLine, error) {
	physical := strings.Split(src, "\n")

	var out []logicalLine
	var buf strings.Builder
	bufStartLine := 0
	inProgress := false

	openBackticks := func(s string) bool {
		return strings.Count(s, "`")%2 == 1
	}

	for i, raw := range physical {
		lineNo := i + 1

		if !inProgress {
			trimmed := strings.TrimSpace(raw)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
			bufStartLine = lineNo
			buf.Reset()
		} else {
			buf.WriteByte('\n')
		}

		line := raw
		continued := strings.HasSuffix(strings.TrimRight(line, " \t"), "\\")
		if continued {
			line = strings.TrimSuffix(strings.TrimRight(line, " \t"), "\\")
		}
		buf.WriteString(line)

		if continued || openBackticks(buf.String()) {
			inProgress = true
			continue
		}

		inProgress = false
		out = append(out, logicalLine{line: bufStartLine, text: buf.String()})
	}

	if inProgress {
		return nil, &slrerr.GrammarSyntaxError{Line: bufStartLine, Source: buf.String(), Reason: "unterminated line continuation or semantic action block"}
	}

	return out, nil
}

// parseRule parses one logical rule line:
//
//	["*"]? ";" [child-index ("," child-index)* | "-"]? "]" LHS "->" RHS ["`" action "`"]
//
// wrapped as: "[" directive "]" LHS -> RHS ["`" action "`"]
func parseRule(line string) (*grammar.Rule, error) {
	astStart := strings.IndexByte(line, '[')
	astEnd := strings.IndexByte(line, ']')
	if astStart < 0 || astEnd < 0 || astStart >= astEnd {
		return nil, fmt.Errorf("missing AST directive enclosed in '[' ']'")
	}
	directive := line[astStart+1 : astEnd]

	doFlatten, useAll, children, err := parseDirective(directive)
	if err != nil {
		return nil, err
	}

	rest := line[astEnd+1:]
	arrowPos := strings.Index(rest, "->")
	if arrowPos < 0 {
		return nil, fmt.Errorf("missing '->' in rule")
	}
	lhsStr := strings.TrimSpace(rest[:arrowPos])
	rhsStr := rest[arrowPos+2:]

	lhs, err := parseNonTerminal(lhsStr)
	if err != nil {
		return nil, err
	}

	semanticAction := ""
	if first := strings.IndexByte(rhsStr, '`'); first >= 0 {
		second := strings.IndexByte(rhsStr[first+1:], '`')
		if second >= 0 {
			second += first + 1
			semanticAction = rhsStr[first+1 : second]
			rhsStr = rhsStr[:first] + rhsStr[second+1:]
		}
	}

	alts, err := parseProductionList(rhsStr)
	if err != nil {
		return nil, err
	}
	for _, alt := range alts {
		if len(alt) == 0 {
			return nil, fmt.Errorf("empty production in rule for %q", lhs)
		}
	}

	return &grammar.Rule{
		LHS:            lhs,
		Alternations:   alts,
		ASTChildren:    children,
		DoFlatten:      doFlatten,
		UseAllChildren: useAll,
		SemanticAction: semanticAction,
	}, nil
}

// parseDirective implements the AST directive grammar of SPEC_FULL.md §6:
// a leading '*' before the ';' means do_flatten; after the ';', empty means
// use_all_children, "-" means no children, and a comma list of indices
// selects those children.
func parseDirective(directive string) (doFlatten, useAll bool, children []int, err error) {
	semi := strings.IndexByte(directive, ';')
	if semi < 0 {
		return false, false, nil, fmt.Errorf("missing ';' in AST directive %q", directive)
	}

	prefix := directive[:semi]
	doFlatten = strings.Contains(prefix, "*")

	content := strings.Join(strings.Fields(directive[semi+1:]), "")
	switch {
	case content == "-":
		return doFlatten, false, nil, nil
	case content == "":
		return doFlatten, true, nil, nil
	default:
		for _, tok := range strings.Split(content, ",") {
			idx, convErr := strconv.Atoi(tok)
			if convErr != nil || idx < 0 {
				return false, false, nil, fmt.Errorf("invalid child index %q in AST directive", tok)
			}
			children = append(children, idx)
		}
		return doFlatten, false, children, nil
	}
}

func parseNonTerminal(s string) (string, error) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("non-terminal must be enclosed in double quotes, given %q", s)
	}
	return s[1 : len(s)-1], nil
}

func parseTerminalLiteral(body string) (string, error) {
	return body, nil
}

func parseSpecialTerminal(body string) (string, error) {
	v, ok := specialTerminals[body]
	if !ok {
		return "", fmt.Errorf("unknown escape %q", body)
	}
	return v, nil
}

// parseProductionList is a char-scanning recognizer over the RHS text,
// grounded on original_source/src/grammar_parser.cpp's ProductionList::parse:
// '...' is a literal terminal, "..." a non-terminal, <...> a special
// terminal, '|' separates alternations, all other characters outside those
// delimiters (aside from newlines, which are insignificant here) are
// ignored.
func parseProductionList(s string) ([][]grammar.Symbol, error) {
	var alts [][]grammar.Symbol
	var cur []grammar.Symbol

	i := 0
	for i < len(s) {
		ch := s[i]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			i++
		case ch == '|':
			alts = append(alts, cur)
			cur = nil
			i++
		case ch == '\'':
			end := strings.IndexByte(s[i+1:], '\'')
			if end < 0 {
				return nil, fmt.Errorf("unterminated terminal literal starting at %q", s[i:])
			}
			body := s[i+1 : i+1+end]
			lit, err := parseTerminalLiteral(body)
			if err != nil {
				return nil, err
			}
			cur = append(cur, grammar.NewTerminal(lit))
			i += end + 2
		case ch == '"':
			end := strings.IndexByte(s[i+1:], '"')
			if end < 0 {
				return nil, fmt.Errorf("unterminated non-terminal starting at %q", s[i:])
			}
			cur = append(cur, grammar.NewNonTerminal(s[i+1:i+1+end]))
			i += end + 2
		case ch == '<':
			end := strings.IndexByte(s[i+1:], '>')
			if end < 0 {
				return nil, fmt.Errorf("unterminated special terminal starting at %q", s[i:])
			}
			body := s[i+1 : i+1+end]
			lit, err := parseSpecialTerminal(body)
			if err != nil {
				return nil, err
			}
			cur = append(cur, grammar.NewSpecialTerminal(lit))
			i += end + 2
		default:
			i++
		}
	}
	if len(cur) > 0 || len(alts) == 0 {
		alts = append(alts, cur)
	}
	return alts, nil
}
