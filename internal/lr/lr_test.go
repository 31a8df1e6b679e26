package lr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelsoft/fecc/internal/ast"
	"github.com/kestrelsoft/fecc/internal/grammar"
	"github.com/kestrelsoft/fecc/internal/token"
)

// fakeStream replays a fixed slice of tokens, appending an EOF sentinel.
type fakeStream struct {
	toks []token.Token
	pos  int
}

func newFakeStream(toks []token.Token) *fakeStream {
	return &fakeStream{toks: append(toks, token.New(token.EOF, "", 0, 0))}
}

func (f *fakeStream) Next() token.Token {
	t := f.toks[f.pos]
	if f.pos < len(f.toks)-1 {
		f.pos++
	}
	return t
}

func (f *fakeStream) Peek() token.Token { return f.toks[f.pos] }
func (f *fakeStream) HasNext() bool     { return f.toks[f.pos].Class().ID() != token.EOF.ID() }

func tok(class, lexeme string) token.Token {
	return token.New(token.NewClass(class), lexeme, 1, 1)
}

// exprGrammar builds §8 scenario 4's classic expression grammar:
//
//	E : E + T
//	E : T
//	T : id
func exprGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New([]string{"+", "id"}, []string{"E", "T"}, "E")
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "E", RHS: []string{"E", "+", "T"}}))
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "E", RHS: []string{"T"}}))
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "T", RHS: []string{"id"}}))
	assert.NoError(t, g.Validate())
	return g
}

func Test_Build_ExprGrammar_ParsesAdditionChain(t *testing.T) {
	g := exprGrammar(t)
	table, err := Build(g)
	if !assert.NoError(t, err) {
		return
	}

	toks := []token.Token{
		tok("id", "a"), tok("+", "+"), tok("id", "b"), tok("+", "+"), tok("id", "c"),
	}
	root, err := Parse(table, newFakeStream(toks), ast.DefaultBuilder{})
	if assert.NoError(t, err) {
		assert.Equal(t, "E", root.Symbol)
		assert.Len(t, root.Leaves(), 5)
	}
}

func Test_Build_ExprGrammar_RejectsMalformedInput(t *testing.T) {
	g := exprGrammar(t)
	table, err := Build(g)
	if !assert.NoError(t, err) {
		return
	}

	toks := []token.Token{tok("id", "a"), tok("+", "+"), tok("+", "+")}
	_, err = Parse(table, newFakeStream(toks), ast.DefaultBuilder{})
	assert.Error(t, err)
}

// Test_Build_DetectsShiftReduceConflict exercises §8 scenario 5: the
// classic ambiguous arithmetic grammar (no precedence declarations) must
// fail table construction with a conflict rather than silently picking
// shift or reduce at "E + E . + E".
func Test_Build_DetectsShiftReduceConflict(t *testing.T) {
	g := grammar.New([]string{"+", "*", "id"}, []string{"E"}, "E")
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "E", RHS: []string{"E", "+", "E"}}))
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "E", RHS: []string{"E", "*", "E"}}))
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "E", RHS: []string{"id"}}))
	assert.NoError(t, g.Validate())

	_, err := Build(g)
	assert.Error(t, err)
}

func Test_Build_DetectsReduceReduceConflict(t *testing.T) {
	g := grammar.New([]string{"a"}, []string{"S", "A", "B"}, "S")
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "S", RHS: []string{"A"}}))
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "S", RHS: []string{"B"}}))
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "A", RHS: []string{"a"}}))
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "B", RHS: []string{"a"}}))
	assert.NoError(t, g.Validate())

	_, err := Build(g)
	assert.Error(t, err)
}

func Test_Table_String_RendersWithoutPanicking(t *testing.T) {
	g := exprGrammar(t)
	table, err := Build(g)
	if assert.NoError(t, err) {
		assert.NotEmpty(t, table.String())
	}
}
