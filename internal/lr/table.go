package lr

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// String renders the ACTION/GOTO tables as a bordered grid, one row per
// state, for use by --dump-tables. It is diagnostic output only; nothing in
// the parser driver reads it back.
func (t *Table) String() string {
	terms := make(map[string]bool)
	nonTerms := make(map[string]bool)
	for _, row := range t.Action {
		for sym := range row {
			terms[sym] = true
		}
	}
	for _, row := range t.Goto {
		for sym := range row {
			nonTerms[sym] = true
		}
	}

	termList := sortedKeys(terms)
	nonTermList := sortedKeys(nonTerms)

	header := []string{"state", "|"}
	header = append(header, termList...)
	header = append(header, "|")
	header = append(header, nonTermList...)

	data := [][]string{header}
	for i := range t.Action {
		row := []string{fmt.Sprintf("%d", i), "|"}
		for _, term := range termList {
			cell := ""
			if act, ok := t.Action[i][term]; ok {
				cell = describeAction(act)
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonTermList {
			cell := ""
			if target, ok := t.Goto[i][nt]; ok {
				cell = fmt.Sprintf("%d", target)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
