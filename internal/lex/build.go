package lex

import (
	"fmt"

	"github.com/kestrelsoft/fecc/internal/automaton"
	"github.com/kestrelsoft/fecc/internal/langerr"
	"github.com/kestrelsoft/fecc/internal/regex"
)

// BuildDFA compiles specs (already sorted by priority, so index i is tag i)
// into the single combined DFA the scanner drives, per §4.2/§4.3. A spec
// whose regex matches the empty string is rejected: the subset
// construction would otherwise let the scanner "match" zero bytes forever
// and never make progress (§8).
func BuildDFA(specs []Spec) (automaton.DFA, error) {
	nfas := make([]automaton.NFA, len(specs))
	tags := make([]int, len(specs))

	for i, spec := range specs {
		ast, err := regex.Parse(spec.Pattern)
		if err != nil {
			return automaton.DFA{}, err
		}
		nfa, err := automaton.Build(ast)
		if err != nil {
			return automaton.DFA{}, err
		}
		if acceptsEmpty(&nfa) {
			return automaton.DFA{}, langerr.SpecFormat(0, fmt.Sprintf("rule %q matches the empty string", spec.Name))
		}
		nfas[i] = nfa
		tags[i] = i
	}

	combined := automaton.Combine(nfas, tags)
	return automaton.ToDFA(&combined), nil
}

// acceptsEmpty reports whether n's start state is itself (transitively,
// via epsilons) an accept state — i.e. whether n matches the empty string.
func acceptsEmpty(n *automaton.NFA) bool {
	for _, s := range n.EpsilonClosure([]int{n.Start}) {
		if n.States[s].Accept {
			return true
		}
	}
	return false
}
