package lr

import "github.com/kestrelsoft/fecc/internal/grammar"

// augmented wraps g with the S' -> S production required by canonical
// LR(1) construction (§4.5): production index 0 is always S' -> S, and
// every original production index is shifted up by one.
type augmented struct {
	g       *grammar.Grammar
	prods   []grammar.Production
	nonTerm []string
	ag      *grammar.Grammar
	first   grammar.FirstSets
}

func augment(g *grammar.Grammar) *augmented {
	prods := make([]grammar.Production, 0, len(g.Productions)+1)
	prods = append(prods, grammar.Production{LHS: grammar.AugmentedStart, RHS: []string{g.Start}})
	prods = append(prods, g.Productions...)

	nonTerm := append([]string{grammar.AugmentedStart}, g.NonTerminals...)

	// a.ag declares "$" as a terminal alongside g's own, even though g.Validate
	// rejects it as a reserved name: grammar.OfSequence needs IsTerminal("$")
	// to hold so a trailing end-of-input lookahead contributes itself instead
	// of being treated as an undefined nonterminal.
	agTerminals := append(append([]string(nil), g.Terminals...), grammar.EndOfInput)

	a := &augmented{g: g, prods: prods, nonTerm: nonTerm}
	a.ag = grammar.New(agTerminals, nonTerm, grammar.AugmentedStart)
	for _, p := range a.prods {
		// errors are impossible here: a.prods by construction has no
		// duplicates beyond what g itself already validated.
		_ = a.ag.AddProduction(p)
	}
	a.first = grammar.ComputeFirst(a.ag)
	return a
}

func (a *augmented) isTerminal(sym string) bool {
	return a.g.IsTerminal(sym) || sym == grammar.EndOfInput
}

func (a *augmented) isNonTerminal(sym string) bool {
	for _, nt := range a.nonTerm {
		if nt == sym {
			return true
		}
	}
	return false
}

func (a *augmented) productionsFor(nt string) []int {
	var out []int
	for i, p := range a.prods {
		if p.LHS == nt {
			out = append(out, i)
		}
	}
	return out
}
