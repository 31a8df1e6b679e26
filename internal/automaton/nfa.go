// Package automaton implements the regex → NFA → DFA pipeline of §4.2/§4.3:
// a Thompson construction from a regex AST, and subset construction from the
// resulting NFA (or from many NFAs combined under a single start state).
//
// States are addressed by integer index into a flat slice, never by
// pointer — this keeps ownership acyclic even though the transition graph
// itself is not (Star introduces epsilon cycles).
package automaton

import "github.com/kestrelsoft/fecc/internal/regex"

// State is one NFA state. Transitions is a dense 256-entry table, each
// entry a (possibly empty) list of target indices, per §3's NFA data model.
type State struct {
	Transitions [256][]int
	Epsilon     []int
	Accept      bool

	// Tag identifies the winning token rule when Accept is true. -1 when
	// Accept is false or the tag has not yet been assigned.
	Tag int
}

// NFA is a graph of States indexed 0..len(States)-1.
type NFA struct {
	States []State
	Start  int

	// AcceptState is the single accept state for an NFA built from one
	// regex. It is -1 for a combined NFA, which instead relies solely on
	// each member state's own Accept/Tag.
	AcceptState int
}

func newState() State {
	return State{Tag: -1}
}

func (n *NFA) addState() int {
	n.States = append(n.States, newState())
	return len(n.States) - 1
}

func (n *NFA) addEpsilon(from, to int) {
	n.States[from].Epsilon = append(n.States[from].Epsilon, to)
}

func (n *NFA) addByteTransition(from int, b byte, to int) {
	n.States[from].Transitions[b] = append(n.States[from].Transitions[b], to)
}

// offsetStates relocates every state index referenced within states (transitions,
// epsilons) by adding delta, in place. Used when splicing one NFA's state
// list after another's during construction.
func offsetStates(states []State, delta int) {
	for i := range states {
		for b := range states[i].Transitions {
			for j := range states[i].Transitions[b] {
				states[i].Transitions[b][j] += delta
			}
		}
		for j := range states[i].Epsilon {
			states[i].Epsilon[j] += delta
		}
	}
}

// Build performs a Thompson construction (§4.2) of ast into a fresh NFA with
// exactly one accept state (AcceptState), which carries no tag — it is the
// caller's job to tag it via Combine, or to treat AcceptState directly for a
// single-rule NFA.
func Build(ast *regex.Node) (NFA, error) {
	switch ast.Type {
	case regex.Literal:
		var n NFA
		s0 := n.addState()
		s1 := n.addState()
		n.addByteTransition(s0, ast.Byte, s1)
		n.Start, n.AcceptState = s0, s1
		n.States[s1].Accept = true
		return n, nil

	case regex.Epsilon:
		var n NFA
		s0 := n.addState()
		s1 := n.addState()
		n.addEpsilon(s0, s1)
		n.Start, n.AcceptState = s0, s1
		n.States[s1].Accept = true
		return n, nil

	case regex.CharClass:
		bytes := expandClass(ast.Class)
		if len(bytes) == 0 {
			return NFA{}, emptyClassErr(ast)
		}
		// equivalent to an alternation of literal NFAs over the expanded
		// bytes, per §4.2.
		result, err := Build(&regex.Node{Type: regex.Literal, Byte: bytes[0]})
		if err != nil {
			return NFA{}, err
		}
		for _, b := range bytes[1:] {
			next, err := Build(&regex.Node{Type: regex.Literal, Byte: b})
			if err != nil {
				return NFA{}, err
			}
			result = joinAlt(result, next)
		}
		return result, nil

	case regex.Concat:
		left, err := Build(ast.Left)
		if err != nil {
			return NFA{}, err
		}
		right, err := Build(ast.Right)
		if err != nil {
			return NFA{}, err
		}
		return joinConcat(left, right), nil

	case regex.Alt:
		left, err := Build(ast.Left)
		if err != nil {
			return NFA{}, err
		}
		right, err := Build(ast.Right)
		if err != nil {
			return NFA{}, err
		}
		return joinAlt(left, right), nil

	case regex.Star:
		child, err := Build(ast.Left)
		if err != nil {
			return NFA{}, err
		}
		return joinStar(child), nil

	case regex.Plus:
		// Plus(C) = Concat(C, Star(C)), built from two independent copies of
		// C's AST so the two sub-NFAs get distinct state indices.
		left, err := Build(ast.Left)
		if err != nil {
			return NFA{}, err
		}
		right, err := Build(ast.Left)
		if err != nil {
			return NFA{}, err
		}
		return joinConcat(left, joinStar(right)), nil

	case regex.Question:
		child, err := Build(ast.Left)
		if err != nil {
			return NFA{}, err
		}
		epsN, _ := Build(&regex.Node{Type: regex.Epsilon})
		return joinAlt(epsN, child), nil

	default:
		panic("automaton: unhandled regex node type")
	}
}

// joinConcat splices left's accept into right's start via an epsilon edge;
// left's accept state loses its accept flag, per §4.2.
func joinConcat(left, right NFA) NFA {
	offset := len(left.States)
	offsetStates(right.States, offset)

	var n NFA
	n.States = append(left.States, right.States...)
	n.States[left.AcceptState].Accept = false
	n.addEpsilon(left.AcceptState, right.Start+offset)
	n.Start = left.Start
	n.AcceptState = right.AcceptState + offset
	return n
}

// joinAlt builds a new start with epsilons to both starts, and a new accept
// reached by epsilons from both old accepts, per §4.2.
func joinAlt(left, right NFA) NFA {
	offset := len(left.States)
	offsetStates(right.States, offset)

	var n NFA
	n.States = append(left.States, right.States...)
	n.States[left.AcceptState].Accept = false
	n.States[right.AcceptState+offset].Accept = false

	newStart := n.addState()
	newAccept := n.addState()
	n.addEpsilon(newStart, left.Start)
	n.addEpsilon(newStart, right.Start+offset)
	n.addEpsilon(left.AcceptState, newAccept)
	n.addEpsilon(right.AcceptState+offset, newAccept)
	n.States[newAccept].Accept = true

	n.Start = newStart
	n.AcceptState = newAccept
	return n
}

// joinStar wraps child in a new start/accept pair with the epsilon edges
// of §4.2's Star(C) construction.
func joinStar(child NFA) NFA {
	var n NFA
	n.States = append(n.States, child.States...)
	n.States[child.AcceptState].Accept = false

	newStart := n.addState()
	newAccept := n.addState()
	n.addEpsilon(newStart, child.Start)
	n.addEpsilon(newStart, newAccept)
	n.addEpsilon(child.AcceptState, child.Start)
	n.addEpsilon(child.AcceptState, newAccept)
	n.States[newAccept].Accept = true

	n.Start = newStart
	n.AcceptState = newAccept
	return n
}

// Combine merges the NFAs built from K regexes, tagging each one's accept
// state with its caller-supplied tag and joining them under one fresh start
// state, per §4.2. The resulting NFA has AcceptState == -1: recognition is
// driven entirely by each accepting state's Tag.
func Combine(nfas []NFA, tags []int) NFA {
	var combined NFA
	newStart := combined.addState()
	combined.Start = newStart
	combined.AcceptState = -1

	for i, sub := range nfas {
		offset := len(combined.States)
		states := make([]State, len(sub.States))
		copy(states, sub.States)
		offsetStates(states, offset)
		states[sub.AcceptState].Tag = tags[i]

		combined.States = append(combined.States, states...)
		combined.addEpsilon(newStart, sub.Start+offset)
	}

	return combined
}

// EpsilonClosure returns the set of states reachable from any state in seed
// via zero or more epsilon transitions, represented as a sorted slice of
// distinct indices.
func (n *NFA) EpsilonClosure(seed []int) []int {
	seen := make(map[int]bool, len(seed))
	stack := append([]int(nil), seed...)
	for _, s := range seed {
		seen[s] = true
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range n.States[s].Epsilon {
			if !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sortInts(out)
	return out
}

// Move returns the set of states reachable from any state in from via one
// transition on byte b.
func (n *NFA) Move(from []int, b byte) []int {
	var out []int
	for _, s := range from {
		out = append(out, n.States[s].Transitions[b]...)
	}
	return out
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

func expandClass(items []regex.ClassItem) []byte {
	var out []byte
	seen := [256]bool{}
	for _, it := range items {
		for b := int(it.Lo); b <= int(it.Hi); b++ {
			if !seen[b] {
				seen[b] = true
				out = append(out, byte(b))
			}
		}
	}
	return out
}
