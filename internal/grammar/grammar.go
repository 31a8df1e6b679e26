// Package grammar holds the context-free grammar data model consumed by
// internal/lr: terminal and nonterminal alphabets, productions, and the
// FIRST-set fixpoint the table constructor needs, per §3/§4.5.
package grammar

import (
	"fmt"

	"github.com/kestrelsoft/fecc/internal/langerr"
)

// EndOfInput and AugmentedStart are reserved symbol names; a grammar file
// that declares either is malformed (§3).
const (
	EndOfInput     = "$"
	AugmentedStart = "S'"
)

// Production is one grammar rule: LHS -> RHS[0] RHS[1] ... RHS[n-1].
type Production struct {
	LHS string
	RHS []string
}

func (p Production) String() string {
	if len(p.RHS) == 0 {
		return fmt.Sprintf("%s -> ε", p.LHS)
	}
	s := p.LHS + " ->"
	for _, sym := range p.RHS {
		s += " " + sym
	}
	return s
}

func (p Production) equal(o Production) bool {
	if p.LHS != o.LHS || len(p.RHS) != len(o.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != o.RHS[i] {
			return false
		}
	}
	return true
}

// Grammar is a context-free grammar: ordered terminal and nonterminal
// alphabets, a start symbol, and an ordered list of productions (§3).
type Grammar struct {
	Terminals    []string
	NonTerminals []string
	Start        string
	Productions  []Production

	terminalSet    map[string]bool
	nonTerminalSet map[string]bool
}

// New builds a Grammar from its declared alphabets and start symbol. Callers
// add productions with AddProduction, then must call Validate before use.
func New(terminals, nonTerminals []string, start string) *Grammar {
	g := &Grammar{
		Terminals:      append([]string(nil), terminals...),
		NonTerminals:   append([]string(nil), nonTerminals...),
		Start:          start,
		terminalSet:    make(map[string]bool, len(terminals)),
		nonTerminalSet: make(map[string]bool, len(nonTerminals)),
	}
	for _, t := range terminals {
		g.terminalSet[t] = true
	}
	for _, nt := range nonTerminals {
		g.nonTerminalSet[nt] = true
	}
	return g
}

// IsTerminal reports whether sym was declared a terminal.
func (g *Grammar) IsTerminal(sym string) bool { return g.terminalSet[sym] }

// IsNonTerminal reports whether sym was declared a nonterminal.
func (g *Grammar) IsNonTerminal(sym string) bool { return g.nonTerminalSet[sym] }

// AddProduction appends p, rejecting an exact LHS+RHS duplicate (§3).
func (g *Grammar) AddProduction(p Production) error {
	for _, existing := range g.Productions {
		if existing.equal(p) {
			return langerr.GrammarSymbol(fmt.Sprintf("duplicate production %s", p))
		}
	}
	g.Productions = append(g.Productions, p)
	return nil
}

// Validate checks the declarations required by §4.5: every production LHS
// is a declared nonterminal, every RHS symbol is declared as terminal or
// nonterminal, the start symbol is declared, and neither reserved name
// ($ or S') appears anywhere in the grammar's own alphabets.
func (g *Grammar) Validate() error {
	if g.terminalSet[EndOfInput] || g.nonTerminalSet[EndOfInput] {
		return langerr.GrammarSymbol("reserved symbol \"$\" may not appear in the grammar")
	}
	if g.terminalSet[AugmentedStart] || g.nonTerminalSet[AugmentedStart] {
		return langerr.GrammarSymbol("reserved symbol \"S'\" may not appear in the grammar")
	}
	if !g.nonTerminalSet[g.Start] {
		return langerr.GrammarSymbol(fmt.Sprintf("start symbol %q is not a declared nonterminal", g.Start))
	}
	for _, p := range g.Productions {
		if !g.nonTerminalSet[p.LHS] {
			return langerr.GrammarSymbol(fmt.Sprintf("production LHS %q is not a declared nonterminal", p.LHS))
		}
		for _, sym := range p.RHS {
			if !g.terminalSet[sym] && !g.nonTerminalSet[sym] {
				return langerr.GrammarSymbol(fmt.Sprintf("symbol %q in production %s is not declared", sym, p))
			}
		}
	}
	return nil
}

// ProductionsFor returns the indices, in declaration order, of the
// productions whose LHS is nt.
func (g *Grammar) ProductionsFor(nt string) []int {
	var out []int
	for i, p := range g.Productions {
		if p.LHS == nt {
			out = append(out, i)
		}
	}
	return out
}
