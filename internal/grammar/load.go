package grammar

import (
	"bufio"
	"io"
	"strings"

	"github.com/kestrelsoft/fecc/internal/langerr"
)

const (
	sectionTerminals    = "Terminals:"
	sectionNonTerminals = "NonTerminals:"
	sectionStart        = "Start:"
	sectionProductions  = "Productions:"
)

// Load reads a grammar file from r, per §6: four section headers
// (Terminals:, NonTerminals:, Start:, Productions:) each on their own line,
// with non-comment, non-blank lines belonging to the most recently seen
// header until the next one. Missing Start or Productions sections is
// fatal.
func Load(r io.Reader) (*Grammar, error) {
	var terminals, nonTerminals []string
	var start string
	var prods []Production
	sawStart, sawProductions := false, false

	section := ""
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch line {
		case sectionTerminals, sectionNonTerminals, sectionStart, sectionProductions:
			section = line
			continue
		}

		switch section {
		case sectionTerminals:
			terminals = append(terminals, strings.Fields(line)...)
		case sectionNonTerminals:
			nonTerminals = append(nonTerminals, strings.Fields(line)...)
		case sectionStart:
			if sawStart {
				return nil, langerr.GrammarFormat(lineNo, "multiple symbols in Start section")
			}
			fields := strings.Fields(line)
			if len(fields) != 1 {
				return nil, langerr.GrammarFormat(lineNo, "Start section must hold exactly one symbol")
			}
			start = fields[0]
			sawStart = true
		case sectionProductions:
			p, err := parseProduction(line, lineNo)
			if err != nil {
				return nil, err
			}
			prods = append(prods, p)
			sawProductions = true
		default:
			return nil, langerr.GrammarFormat(lineNo, "content before any section header")
		}
	}
	if err := sc.Err(); err != nil {
		return nil, langerr.GrammarFormat(lineNo, err.Error())
	}

	if !sawStart {
		return nil, langerr.GrammarFormat(lineNo, "missing Start section")
	}
	if !sawProductions {
		return nil, langerr.GrammarFormat(lineNo, "missing Productions section")
	}

	g := New(terminals, nonTerminals, start)
	for _, p := range prods {
		if err := g.AddProduction(p); err != nil {
			return nil, err
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// parseProduction parses one "LHS : sym sym ..." rule line. An RHS of just
// ":" with nothing after it is a valid epsilon production.
func parseProduction(line string, lineNo int) (Production, error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return Production{}, langerr.GrammarFormat(lineNo, "production missing ':' separator")
	}
	lhs := strings.TrimSpace(line[:idx])
	if lhs == "" {
		return Production{}, langerr.GrammarFormat(lineNo, "production has empty LHS")
	}
	rhs := strings.Fields(line[idx+1:])
	return Production{LHS: lhs, RHS: rhs}, nil
}
