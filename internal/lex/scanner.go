package lex

import (
	"github.com/kestrelsoft/fecc/internal/automaton"
	"github.com/kestrelsoft/fecc/internal/token"
)

// bookmark is the scanner's "last accepting" memory: the DFA tag and the
// reader position it was seen at, kept so the scanner can rewind to the
// longest accepted prefix (§4.4, §9's lookahead-buffer resolution of the
// Reader contract).
type bookmark struct {
	set    bool
	tag    int
	length int // bytes consumed from scan start when this bookmark was taken
}

// Scanner is the longest-match driver of §4.4: it walks dfa byte by byte
// from the reader, remembers the last position at which the DFA accepted,
// and on a failed transition rewinds to that position before emitting a
// token. It implements token.Stream with a one-token lookahead.
type Scanner struct {
	reader *Reader
	dfa    *automaton.DFA
	specs  []Spec // in priority order; index == NFA/DFA tag
	symtab SymbolTable

	// identClass is the spec name that triggers symbol-table interning.
	identClass string

	lookahead    token.Token
	haveLookahead bool
}

// NewScanner builds a Scanner. specs must already be sorted by priority
// (see SortByPriority) and dfa must have been built from the NFAs of those
// same specs in that same order, so that DFA tag i corresponds to specs[i].
func NewScanner(reader *Reader, dfa *automaton.DFA, specs []Spec, symtab SymbolTable, identClass string) *Scanner {
	return &Scanner{reader: reader, dfa: dfa, specs: specs, symtab: symtab, identClass: identClass}
}

func (s *Scanner) Next() token.Token {
	s.ensureLookahead()
	t := s.lookahead
	s.haveLookahead = false
	s.lookahead = nil
	return t
}

func (s *Scanner) Peek() token.Token {
	s.ensureLookahead()
	return s.lookahead
}

func (s *Scanner) HasNext() bool {
	s.ensureLookahead()
	return s.lookahead.Class().ID() != token.EOF.ID()
}

func (s *Scanner) ensureLookahead() {
	if !s.haveLookahead {
		s.lookahead = s.scanOne()
		s.haveLookahead = true
	}
}

// scanOne implements the six steps of §4.4 directly, recursing on step 5's
// "ignore" branch.
func (s *Scanner) scanOne() token.Token {
	if s.reader.AtEnd() {
		return token.New(token.EOF, "", s.reader.Line(), s.reader.Col())
	}

	startLine, startCol := s.reader.Line(), s.reader.Col()

	state := s.dfa.Start
	var mark bookmark
	var lexeme []byte

	for {
		b, ok := s.reader.Peek(len(lexeme))
		if !ok {
			break
		}
		next := s.dfa.States[state].Next[int(b)]
		if next < 0 {
			break
		}
		lexeme = append(lexeme, b)
		state = next
		if s.dfa.States[state].Accept {
			mark = bookmark{set: true, tag: s.dfa.States[state].Tag, length: len(lexeme)}
		}
	}

	if !mark.set {
		// no accepting state was ever reached: consume exactly one byte and
		// emit Unknown, guaranteeing forward progress (§4.4 step 4, §8).
		b, _ := s.reader.Next()
		return token.New(token.Unknown, string(b), startLine, startCol)
	}

	// rewind: consume exactly mark.length bytes from the reader (it has
	// only been peeked so far, never advanced).
	for i := 0; i < mark.length; i++ {
		s.reader.Next()
	}
	text := string(lexeme[:mark.length])
	spec := s.specs[mark.tag]

	if spec.Ignore {
		return s.scanOne()
	}

	class := token.NewClass(spec.Name)
	if spec.Name == s.identClass {
		id := s.symtab.Intern(text)
		return token.NewInterned(class, text, startLine, startCol, id)
	}
	return token.New(class, text, startLine, startCol)
}
