package lr

import (
	"fmt"

	"github.com/kestrelsoft/fecc/internal/grammar"
	"github.com/kestrelsoft/fecc/internal/langerr"
)

// ActionKind is the closed variant of cells in the ACTION table (§3).
type ActionKind int

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one ACTION table cell: for Shift, Target is the next state; for
// Reduce, Target is the production index.
type Action struct {
	Kind   ActionKind
	Target int
}

// Table is the compiled ACTION/GOTO pair the parser driver consults, plus
// enough of the augmented grammar to report symbol names in diagnostics.
type Table struct {
	Action      []map[string]Action
	Goto        []map[string]int
	Productions []grammar.Production
	StartState  int
}

// Build runs closure/goto state discovery over g's canonical LR(1)
// automaton and fills ACTION/GOTO, per §4.5. g must already have passed
// grammar.Grammar.Validate.
func Build(g *grammar.Grammar) (*Table, error) {
	a := augment(g)

	start := newState()
	start.add(Core{Prod: 0, Dot: 0}, grammar.EndOfInput)
	closure(a, start)

	states := []*state{start}
	index := map[string]int{start.key(): 0}

	t := &Table{StartState: 0, Productions: a.prods}

	worklist := []int{0}
	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]
		I := states[id]

		for len(t.Action) <= id {
			t.Action = append(t.Action, nil)
			t.Goto = append(t.Goto, nil)
		}
		t.Action[id] = make(map[string]Action)
		t.Goto[id] = make(map[string]int)

		symbols := symbolsAfterDot(a, I)
		for _, X := range symbols {
			J := gotoState(a, I, X)
			if len(J.cores) == 0 {
				continue
			}
			key := J.key()
			targetID, ok := index[key]
			if !ok {
				targetID = len(states)
				states = append(states, J)
				index[key] = targetID
				worklist = append(worklist, targetID)
			}

			if a.isTerminal(X) {
				if err := setAction(t, id, X, Action{Kind: ActionShift, Target: targetID}); err != nil {
					return nil, err
				}
			} else {
				t.Goto[id][X] = targetID
			}
		}

		for _, core := range I.cores {
			if _, ok := core.AtDot(a.ag); ok {
				continue
			}
			for la := range I.lookaheads[core] {
				if core.Prod == 0 && la == grammar.EndOfInput {
					if err := setAction(t, id, grammar.EndOfInput, Action{Kind: ActionAccept}); err != nil {
						return nil, err
					}
					continue
				}
				if err := setAction(t, id, la, Action{Kind: ActionReduce, Target: core.Prod}); err != nil {
					return nil, err
				}
			}
		}
	}

	return t, nil
}

// closure computes the closure of I in place (purple dragon book algorithm
// 4.9, extended with per-core lookahead merging per §4.5/§9): a worklist
// re-processes cores whose lookahead set just grew, since newly merged
// lookaheads can themselves enable new closure additions.
func closure(a *augmented, I *state) {
	worklist := append([]Core(nil), I.cores...)
	for len(worklist) > 0 {
		c := worklist[0]
		worklist = worklist[1:]

		sym, ok := c.AtDot(a.ag)
		if !ok || !a.isNonTerminal(sym) {
			continue
		}

		beta := a.prods[c.Prod].RHS[c.Dot+1:]
		for la := range I.lookaheads[c] {
			seq := append(append([]string(nil), beta...), la)
			lookaheads := grammar.OfSequence(a.ag, a.first, seq)

			for _, prodIdx := range a.productionsFor(sym) {
				newCore := Core{Prod: prodIdx, Dot: 0}
				for b := range lookaheads {
					if b == grammar.Epsilon {
						continue
					}
					if I.add(newCore, b) {
						worklist = append(worklist, newCore)
					}
				}
			}
		}
	}
}

// symbolsAfterDot returns, in first-seen order, every symbol that appears
// immediately after a dot in some core of I.
func symbolsAfterDot(a *augmented, I *state) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range I.cores {
		sym, ok := c.AtDot(a.ag)
		if !ok || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	return out
}

// gotoState computes goto(I, X) per §4.5: for each core A -> alpha . X beta
// in I, the result holds A -> alpha X . beta with I's lookahead set for
// that core, closed.
func gotoState(a *augmented, I *state, X string) *state {
	J := newState()
	for _, c := range I.cores {
		sym, ok := c.AtDot(a.ag)
		if !ok || sym != X {
			continue
		}
		next := c.advance()
		for la := range I.lookaheads[c] {
			J.add(next, la)
		}
	}
	closure(a, J)
	return J
}

// setAction installs act into cell [state, symbol], failing with
// GrammarConflict if a different, already-set action occupies it (§4.5).
func setAction(t *Table, state int, symbol string, act Action) error {
	existing, ok := t.Action[state][symbol]
	if ok && existing != act {
		return langerr.GrammarConflict(state, symbol, fmt.Sprintf("%s vs %s", describeAction(existing), describeAction(act)))
	}
	t.Action[state][symbol] = act
	return nil
}

func describeAction(a Action) string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift to state %d", a.Target)
	case ActionReduce:
		return fmt.Sprintf("reduce by production %d", a.Target)
	case ActionAccept:
		return "accept"
	default:
		return "error"
	}
}
