package lr

import (
	"sort"

	"github.com/kestrelsoft/fecc/internal/ast"
	"github.com/kestrelsoft/fecc/internal/grammar"
	"github.com/kestrelsoft/fecc/internal/langerr"
	"github.com/kestrelsoft/fecc/internal/token"
)

// Parse drives the two-stack shift-reduce automaton of §4.6 over tokens
// using t, asking builder to assemble the AST. It returns the root node on
// Accept.
func Parse(t *Table, tokens token.Stream, builder ast.Builder) (*ast.Node, error) {
	states := []int{t.StartState}
	var nodes []*ast.Node

	lookahead := tokens.Next()

	for {
		s := states[len(states)-1]
		classID := classKey(lookahead)

		action, ok := t.Action[s][classID]
		if !ok {
			return nil, langerr.SyntaxErrorAt(lookahead.Class().Human(), lookahead.Lexeme(), lookahead.Line(), lookahead.LinePos(), expectedTerminals(t.Action[s]))
		}

		switch action.Kind {
		case ActionShift:
			states = append(states, action.Target)
			nodes = append(nodes, builder.MakeTerminal(classID, lookahead))
			lookahead = tokens.Next()

		case ActionReduce:
			p := t.Productions[action.Target]
			k := len(p.RHS)
			children := append([]*ast.Node(nil), nodes[len(nodes)-k:]...)
			states = states[:len(states)-k]
			nodes = nodes[:len(nodes)-k]

			top := states[len(states)-1]
			next, ok := t.Goto[top][p.LHS]
			if !ok {
				return nil, langerr.ParserInternal("missing GOTO after reduce by production " + p.String())
			}
			states = append(states, next)
			nodes = append(nodes, builder.MakeNode(p.LHS, action.Target, children))

		case ActionAccept:
			return nodes[len(nodes)-1], nil

		default:
			return nil, langerr.SyntaxErrorAt(lookahead.Class().Human(), lookahead.Lexeme(), lookahead.Line(), lookahead.LinePos(), expectedTerminals(t.Action[s]))
		}
	}
}

// expectedTerminals lists the terminal names with a non-error ACTION cell in
// row, sorted for deterministic error messages.
func expectedTerminals(row map[string]Action) []string {
	var out []string
	for sym, act := range row {
		if act.Kind != ActionError {
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return out
}

// classKey maps a token's class to the terminal name used as an ACTION
// table column. Human() (not ID(), which lower-cases) is used so the
// lookup matches the exact spelling declared in the grammar file; the
// end-of-input token is always keyed under "$".
func classKey(tok token.Token) string {
	if tok.Class().ID() == token.EOF.ID() {
		return grammar.EndOfInput
	}
	return tok.Class().Human()
}
