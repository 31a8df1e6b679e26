// Package regex parses the small regular-expression dialect used in token
// specs into an AST, per §4.1 of the specification. It does not itself match
// anything; internal/automaton consumes the AST to build an NFA.
package regex

import "fmt"

// NodeType is a closed variant over the kinds of regex AST node.
type NodeType int

const (
	Literal NodeType = iota
	Epsilon
	CharClass
	Concat
	Alt
	Star
	Plus
	Question
)

func (t NodeType) String() string {
	switch t {
	case Literal:
		return "Literal"
	case Epsilon:
		return "Epsilon"
	case CharClass:
		return "CharClass"
	case Concat:
		return "Concat"
	case Alt:
		return "Alt"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case Question:
		return "Question"
	default:
		return "Unknown"
	}
}

// Node is an immutable regex AST node. Only the fields relevant to Type are
// populated; the rest are zero. A Node is owned by the NFA builder during
// translation to an automaton and is discarded after.
type Node struct {
	Type NodeType

	// Byte is valid when Type is Literal.
	Byte byte

	// Class is valid when Type is CharClass. Each entry is either a single
	// byte or a [lo, hi] inclusive range, to be expanded at NFA-build time.
	Class []ClassItem

	// Left and Right are the children. Right is nil for unary nodes
	// (Star, Plus, Question), and both are nil for Literal/Epsilon/CharClass.
	Left  *Node
	Right *Node
}

// ClassItem is one element of a character class: either a lone byte (Lo ==
// Hi) or an inclusive range.
type ClassItem struct {
	Lo, Hi byte
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Type {
	case Literal:
		return fmt.Sprintf("Literal(%q)", n.Byte)
	case Epsilon:
		return "Epsilon"
	case CharClass:
		return fmt.Sprintf("CharClass(%v)", n.Class)
	case Concat:
		return fmt.Sprintf("Concat(%s, %s)", n.Left, n.Right)
	case Alt:
		return fmt.Sprintf("Alt(%s, %s)", n.Left, n.Right)
	case Star:
		return fmt.Sprintf("Star(%s)", n.Left)
	case Plus:
		return fmt.Sprintf("Plus(%s)", n.Left)
	case Question:
		return fmt.Sprintf("Question(%s)", n.Left)
	default:
		return "<invalid>"
	}
}

func lit(b byte) *Node             { return &Node{Type: Literal, Byte: b} }
func eps() *Node                   { return &Node{Type: Epsilon} }
func concat(l, r *Node) *Node      { return &Node{Type: Concat, Left: l, Right: r} }
func alt(l, r *Node) *Node         { return &Node{Type: Alt, Left: l, Right: r} }
func star(c *Node) *Node           { return &Node{Type: Star, Left: c} }
func plus(c *Node) *Node           { return &Node{Type: Plus, Left: c} }
func question(c *Node) *Node       { return &Node{Type: Question, Left: c} }
func class(items []ClassItem) *Node { return &Node{Type: CharClass, Class: items} }
