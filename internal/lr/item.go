// Package lr builds a canonical LR(1) automaton from a grammar (§4.5) and
// drives a shift-reduce parse over it (§4.6).
package lr

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kestrelsoft/fecc/internal/grammar"
)

// Core is the (production, dot position) pair that identifies an LR(1)
// item's core; lookaheads are tracked per-core, never per-item, which is
// the lookahead-merging design that keeps canonical LR(1) state counts
// close to LALR's (§4.5, §9).
type Core struct {
	Prod int
	Dot  int
}

func (c Core) String(g *grammar.Grammar) string {
	p := g.Productions[c.Prod]
	left := strings.Join(p.RHS[:c.Dot], " ")
	right := strings.Join(p.RHS[c.Dot:], " ")
	if left != "" {
		left += " "
	}
	if right != "" {
		right = " " + right
	}
	return fmt.Sprintf("%s ->%s.%s", p.LHS, left, right)
}

// AtDot returns the symbol immediately after the dot and true, or ("",
// false) if the dot is at the end of the production.
func (c Core) AtDot(g *grammar.Grammar) (string, bool) {
	rhs := g.Productions[c.Prod].RHS
	if c.Dot >= len(rhs) {
		return "", false
	}
	return rhs[c.Dot], true
}

// advance returns the core with the dot moved one symbol to the right.
func (c Core) advance() Core {
	return Core{Prod: c.Prod, Dot: c.Dot + 1}
}

// state is one node of the canonical LR(1) automaton: a set of cores, each
// with its own merged lookahead set.
type state struct {
	cores      []Core
	lookaheads map[Core]map[string]bool
}

func newState() *state {
	return &state{lookaheads: make(map[Core]map[string]bool)}
}

// add merges lookahead la into core's set, adding the core itself if new.
// Reports whether anything changed, so callers can drive a fixpoint
// worklist.
func (s *state) add(core Core, la string) bool {
	set, ok := s.lookaheads[core]
	if !ok {
		set = make(map[string]bool)
		s.lookaheads[core] = set
		s.cores = append(s.cores, core)
	}
	if set[la] {
		return false
	}
	set[la] = true
	return true
}

// key canonicalizes s for state-identity lookup: cores sorted by
// (production, dot), each with its lookaheads sorted lexicographically
// (§4.5's "canonical serialization" / §9's "do not compare states by
// pointer").
func (s *state) key() string {
	cores := append([]Core(nil), s.cores...)
	sort.Slice(cores, func(i, j int) bool {
		if cores[i].Prod != cores[j].Prod {
			return cores[i].Prod < cores[j].Prod
		}
		return cores[i].Dot < cores[j].Dot
	})

	var sb strings.Builder
	for _, c := range cores {
		las := make([]string, 0, len(s.lookaheads[c]))
		for la := range s.lookaheads[c] {
			las = append(las, la)
		}
		sort.Strings(las)
		fmt.Fprintf(&sb, "%d.%d[%s]|", c.Prod, c.Dot, strings.Join(las, ","))
	}
	return sb.String()
}
