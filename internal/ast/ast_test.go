package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelsoft/fecc/internal/token"
)

func termNode(symbol, lexeme string) *Node {
	return DefaultBuilder{}.MakeTerminal(symbol, token.New(token.NewClass(symbol), lexeme, 1, 1))
}

func Test_Builder_MakeTerminal(t *testing.T) {
	n := termNode("id", "foo")
	assert.True(t, n.Terminal)
	assert.Equal(t, "id", n.Symbol)
	assert.Equal(t, "foo", n.Source.Lexeme())
}

func Test_Builder_MakeNode(t *testing.T) {
	a := termNode("id", "a")
	plus := termNode("+", "+")
	b := termNode("id", "b")

	root := DefaultBuilder{}.MakeNode("E", 0, []*Node{a, plus, b})
	assert.False(t, root.Terminal)
	assert.Equal(t, "E", root.Symbol)
	assert.Equal(t, 0, root.Production)
	assert.Len(t, root.Children, 3)
}

func Test_Node_Leaves(t *testing.T) {
	a := termNode("id", "a")
	plus := termNode("+", "+")
	b := termNode("id", "b")
	inner := DefaultBuilder{}.MakeNode("T", 1, []*Node{b})
	root := DefaultBuilder{}.MakeNode("E", 0, []*Node{a, plus, inner})

	leaves := root.Leaves()
	if assert.Len(t, leaves, 3) {
		assert.Equal(t, "a", leaves[0].Source.Lexeme())
		assert.Equal(t, "+", leaves[1].Source.Lexeme())
		assert.Equal(t, "b", leaves[2].Source.Lexeme())
	}
}

func Test_Node_Equal(t *testing.T) {
	build := func() *Node {
		a := termNode("id", "a")
		b := termNode("id", "b")
		return DefaultBuilder{}.MakeNode("E", 0, []*Node{a, b})
	}

	n1, n2 := build(), build()
	assert.True(t, n1.Equal(n2))

	n3 := DefaultBuilder{}.MakeNode("E", 0, []*Node{termNode("id", "a")})
	assert.False(t, n1.Equal(n3))
}

func Test_Node_String_DoesNotPanicOnLeaf(t *testing.T) {
	n := termNode("id", "a")
	assert.NotEmpty(t, n.String())

	var nilNode *Node
	assert.Equal(t, "<nil>", nilNode.String())
}
