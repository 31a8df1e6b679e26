package automaton

import (
	"fmt"
	"strconv"

	"github.com/kestrelsoft/fecc/internal/bincodec"
)

// dfaSentinel marks "no transition" in a DFA state's dense table, per §3:
// the dead/sink case is encoded as this sentinel, not as a distinct state.
const dfaSentinel = -1

// DFAState is one DFA state: a dense 256-entry table mapping each byte to a
// target state index or dfaSentinel, an accept flag, and (if accepting) a
// tag — the numerically smallest tag among the NFA states that coalesced
// into it, per §3/§4.3's longest-match/highest-priority rule.
type DFAState struct {
	Next   [256]int
	Accept bool
	Tag    int
}

// DFA is a slice of DFAStates indexed 0..len(States)-1, with a start index.
type DFA struct {
	States []DFAState
	Start  int
}

// ToDFA performs subset construction (§4.3, purple dragon book algorithm
// 3.20) over n, producing a DFA whose accept-tag on any accepting state is
// the minimum tag among the underlying NFA accepts.
func ToDFA(n *NFA) DFA {
	start := n.EpsilonClosure([]int{n.Start})

	var dfa DFA
	index := map[string]int{}

	newDFAState := func(members []int) int {
		id := len(dfa.States)
		st := DFAState{Tag: -1}
		for i := range st.Next {
			st.Next[i] = dfaSentinel
		}
		for _, m := range members {
			if n.States[m].Accept {
				st.Accept = true
				if st.Tag == -1 || (n.States[m].Tag >= 0 && n.States[m].Tag < st.Tag) {
					st.Tag = n.States[m].Tag
				}
			}
		}
		dfa.States = append(dfa.States, st)
		return id
	}

	startKey := setKey(start)
	dfa.Start = newDFAState(start)
	index[startKey] = dfa.Start

	worklist := [][]int{start}
	for len(worklist) > 0 {
		members := worklist[0]
		worklist = worklist[1:]
		id := index[setKey(members)]

		for b := 0; b < 256; b++ {
			moved := n.Move(members, byte(b))
			if len(moved) == 0 {
				continue
			}
			target := n.EpsilonClosure(moved)
			if len(target) == 0 {
				continue
			}
			key := setKey(target)
			targetID, ok := index[key]
			if !ok {
				targetID = newDFAState(target)
				index[key] = targetID
				worklist = append(worklist, target)
			}
			dfa.States[id].Next[b] = targetID
		}
	}

	return dfa
}

// setKey gives a canonical key for a sorted set of NFA state indices, used
// to deduplicate DFA states by the subset of NFA states they represent.
// members must already be sorted and deduplicated (EpsilonClosure
// guarantees this).
func setKey(members []int) string {
	// a handful of digits per member, joined; cheap and collision-free since
	// members is strictly increasing.
	out := make([]byte, 0, len(members)*4)
	for i, m := range members {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendInt(out, int64(m), 10)
	}
	return string(out)
}

// MarshalBinary encodes the DFA as a flat sequence of fixed-width ints, for
// use by internal/cache via github.com/dekarrin/rezi. The format is not
// meant to be read by anything but UnmarshalBinary.
func (d DFA) MarshalBinary() ([]byte, error) {
	w := bincodec.NewWriter()
	w.Int(d.Start).Int(len(d.States))
	for _, st := range d.States {
		for _, n := range st.Next {
			w.Int(n)
		}
		w.Bool(st.Accept).Int(st.Tag)
	}
	return w.Bytes(), nil
}

// UnmarshalBinary decodes a DFA encoded by MarshalBinary.
func (d *DFA) UnmarshalBinary(data []byte) error {
	r := bincodec.NewReader(data)
	d.Start = r.Int()
	n := r.Int()
	d.States = make([]DFAState, n)
	for i := 0; i < n; i++ {
		for b := 0; b < 256; b++ {
			d.States[i].Next[b] = r.Int()
		}
		d.States[i].Accept = r.Bool()
		d.States[i].Tag = r.Int()
	}
	if r.Err() != nil {
		return fmt.Errorf("decode DFA: %w", r.Err())
	}
	return nil
}
