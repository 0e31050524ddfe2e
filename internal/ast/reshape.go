// Package ast reshapes a concrete syntax tree into an abstract syntax tree
// by interpreting each internal node's production's AST directives, exactly
// mirroring original_source/src/slr_parser_ast.cpp's CSTNode::to_ast.
package ast

import (
	"github.com/finger-bone/mygo-parser/internal/cst"
	"github.com/finger-bone/mygo-parser/internal/grammar"
	"github.com/finger-bone/mygo-parser/internal/slrerr"
)

// Reshape converts a CST subtree into its AST subtree per SPEC_FULL.md
// §4.7: for each visited child, a child whose own production has
// DoFlatten set is recursively reshaped and its resulting children are
// spliced into the parent (its own root is dropped); every other visited
// child is recursively reshaped and kept as a single child. Selection
// (ast_children vs. use_all_children) applies before flattening.
func Reshape(prods []grammar.Production, node *cst.Node) (*cst.Node, error) {
	if node == nil {
		return nil, nil
	}
	if node.Terminal {
		return node.Copy(), nil
	}

	p := prods[node.Prod]

	var indices []int
	if p.UseAllChildren {
		for i := range node.Children {
			indices = append(indices, i)
		}
	} else {
		indices = p.ASTChildren
	}

	var children []*cst.Node
	for _, idx := range indices {
		if idx < 0 || idx >= len(node.Children) {
			return nil, &slrerr.ASTShapeError{Production: node.Prod, Index: idx, ChildCount: len(node.Children)}
		}
		child := node.Children[idx]

		reshaped, err := Reshape(prods, child)
		if err != nil {
			return nil, err
		}

		if !child.Terminal && prods[child.Prod].DoFlatten {
			children = append(children, reshaped.Children...)
		} else {
			children = append(children, reshaped)
		}
	}

	return cst.NewInternal(node.Symbol, node.Prod, children), nil
}
