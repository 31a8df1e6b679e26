package grammar

// Epsilon is the nullable marker used inside FIRST sets, per §4.5: it is
// included in FIRST(X) when X can derive the empty string.
const Epsilon = ""

// FirstSets is the fixpoint solution mapping every nonterminal to its FIRST
// set (terminals, plus Epsilon if the nonterminal is nullable).
type FirstSets map[string]map[string]bool

// ComputeFirst runs the standard worklist fixpoint (purple dragon book
// algorithm 4.4) over g's nonterminals: FIRST(terminal) = {terminal} always,
// and FIRST(nonterminal) grows until no production adds anything new.
func ComputeFirst(g *Grammar) FirstSets {
	first := make(FirstSets, len(g.NonTerminals))
	for _, nt := range g.NonTerminals {
		first[nt] = make(map[string]bool)
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.Productions {
			set := first[p.LHS]
			before := len(set)

			nullablePrefix := true
			for _, sym := range p.RHS {
				if g.IsTerminal(sym) {
					set[sym] = true
					nullablePrefix = false
					break
				}
				for t := range first[sym] {
					if t != Epsilon {
						set[t] = true
					}
				}
				if !first[sym][Epsilon] {
					nullablePrefix = false
					break
				}
			}
			if nullablePrefix {
				set[Epsilon] = true
			}

			if len(set) != before {
				changed = true
			}
		}
	}
	return first
}

// OfSequence computes FIRST(alpha) for a symbol sequence alpha (which may be
// empty), given the fixpoint FIRST sets for nonterminals. It does not itself
// mutate first.
func OfSequence(g *Grammar, first FirstSets, alpha []string) map[string]bool {
	out := make(map[string]bool)
	nullable := true
	for _, sym := range alpha {
		if g.IsTerminal(sym) {
			out[sym] = true
			nullable = false
			break
		}
		for t := range first[sym] {
			if t != Epsilon {
				out[t] = true
			}
		}
		if !first[sym][Epsilon] {
			nullable = false
			break
		}
	}
	if nullable {
		out[Epsilon] = true
	}
	return out
}
