// Package cst defines the tree node shared by the parse driver's concrete
// syntax tree output and the reshaper's abstract syntax tree output: the two
// have the same shape, the AST is simply the CST after directive-driven
// projection, so one node type serves both (mirrors
// dekarrin-tunaq/internal/ictiobus/types.ParseTree, generalized to store a
// production index rather than a full production value or lhs string).
package cst

import (
	"fmt"
	"strings"
)

// Node is a CST or AST node. Terminal leaves have Prod == -1 and no
// children; internal nodes carry the index of the production (into the
// parser's production slice) that produced them.
type Node struct {
	Symbol   string
	Terminal bool
	Lexeme   string
	Prod     int
	Children []*Node
}

// NewLeaf builds a terminal leaf node for symbol with the given lexed text.
func NewLeaf(symbol, lexeme string) *Node {
	return &Node{Symbol: symbol, Terminal: true, Lexeme: lexeme, Prod: -1}
}

// NewInternal builds an internal node for symbol, reduced by production
// prod, with the given children in left-to-right order.
func NewInternal(symbol string, prod int, children []*Node) *Node {
	return &Node{Symbol: symbol, Terminal: false, Prod: prod, Children: children}
}

// Copy returns a deep copy of the subtree rooted at n.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{Symbol: n.Symbol, Terminal: n.Terminal, Lexeme: n.Lexeme, Prod: n.Prod}
	if n.Children != nil {
		cp.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			cp.Children[i] = c.Copy()
		}
	}
	return cp
}

// Equal reports whether two subtrees have identical structure: same symbol,
// terminal-ness, lexeme (for leaves), and equal children in order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Terminal != o.Terminal || n.Symbol != o.Symbol {
		return false
	}
	if n.Terminal {
		return n.Lexeme == o.Lexeme
	}
	if len(n.Children) != len(o.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// String renders the subtree as an indented ASCII tree, in the style of
// dekarrin-tunaq's ParseTree.String, for use in test failure output and the
// CLI's --print-tree debug mode.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, "", "")
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, firstPrefix, contPrefix string) {
	sb.WriteString(firstPrefix)
	if n.Terminal {
		fmt.Fprintf(sb, "(TERM %q)", n.Lexeme)
	} else {
		fmt.Fprintf(sb, "( %s )", n.Symbol)
	}
	for i, c := range n.Children {
		sb.WriteRune('\n')
		var fp, cp string
		if i+1 < len(n.Children) {
			fp = contPrefix + "  |--: "
			cp = contPrefix + "  |     "
		} else {
			fp = contPrefix + `  \--: `
			cp = contPrefix + "        "
		}
		c.write(sb, fp, cp)
	}
}
