// Package ast defines the parse-tree node the parser driver builds and the
// Builder interface it calls to construct one, per §4.6/§6.
package ast

import (
	"fmt"
	"strings"

	"github.com/kestrelsoft/fecc/internal/token"
)

// indentUnit is repeated once per nesting depth when rendering a tree.
const indentUnit = "    "

// Node is one vertex of the AST: a symbol name, a flag distinguishing
// terminal from nonterminal, and — for a nonterminal — the production index
// that produced it and its children in left-to-right order (§3).
type Node struct {
	Terminal   bool
	Symbol     string
	Production int
	Source     token.Token
	Children   []*Node
}

// String renders the tree depth-first, one node per line, indented by
// nesting depth — suitable for line-by-line structural comparison in tests.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat(indentUnit, depth))
	if n.Terminal {
		fmt.Fprintf(sb, "%s %q\n", n.Symbol, n.Source.Lexeme())
		return
	}
	fmt.Fprintf(sb, "%s\n", n.Symbol)
	for _, child := range n.Children {
		child.dump(sb, depth+1)
	}
}

// Equal reports whether n and o have the same terminal/nonterminal
// structure and symbol names; source positions are not compared.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Terminal != o.Terminal || n.Symbol != o.Symbol {
		return false
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

// Leaves returns the terminal nodes of n in left-to-right order, used by
// tests to check that a parse's leaf sequence matches its token stream.
func (n *Node) Leaves() []*Node {
	if n == nil {
		return nil
	}
	if n.Terminal {
		return []*Node{n}
	}
	var out []*Node
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Builder constructs AST nodes on behalf of the parser driver (§6). The
// driver never inspects the returned nodes beyond passing them back in as
// later children.
type Builder interface {
	// MakeTerminal wraps tok as a terminal leaf.
	MakeTerminal(symbol string, tok token.Token) *Node

	// MakeNode builds a nonterminal node for production p with the given
	// left-to-right children.
	MakeNode(symbol string, production int, children []*Node) *Node
}

// DefaultBuilder is the straightforward Builder backing ordinary parser
// runs: it does no semantic work, just assembles Node values.
type DefaultBuilder struct{}

func (DefaultBuilder) MakeTerminal(symbol string, tok token.Token) *Node {
	return &Node{Terminal: true, Symbol: symbol, Source: tok}
}

func (DefaultBuilder) MakeNode(symbol string, production int, children []*Node) *Node {
	return &Node{Symbol: symbol, Production: production, Children: children}
}
