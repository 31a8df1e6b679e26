package lex

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelsoft/fecc/internal/token"
)

func Test_LoadSpecs(t *testing.T) {
	src := `
# comment
IDENT [a-zA-Z]+ false 1
WS [ \t\r\n]+ true 0
`
	specs, err := LoadSpecs(strings.NewReader(src))
	if assert.NoError(t, err) {
		if assert.Len(t, specs, 2) {
			assert.Equal(t, "IDENT", specs[0].Name)
			assert.Equal(t, "[a-zA-Z]+", specs[0].Pattern)
			assert.False(t, specs[0].Ignore)
			assert.Equal(t, 1, specs[0].Priority)

			assert.Equal(t, "WS", specs[1].Name)
			assert.True(t, specs[1].Ignore)
			assert.Equal(t, 0, specs[1].Priority)
		}
	}
}

func Test_LoadSpecs_Malformed(t *testing.T) {
	_, err := LoadSpecs(strings.NewReader("IDENT [a-z]+ maybe 1\n"))
	assert.Error(t, err)
}

func Test_SortByPriority(t *testing.T) {
	specs := []Spec{
		{Name: "IDENT", Priority: 1},
		{Name: "WS", Priority: 0},
		{Name: "KW", Priority: 0},
	}
	SortByPriority(specs)
	assert.Equal(t, "WS", specs[0].Name)
	assert.Equal(t, "KW", specs[1].Name)
	assert.Equal(t, "IDENT", specs[2].Name)
}

func scanAll(t *testing.T, specs []Spec, identClass, input string) []token.Token {
	t.Helper()
	SortByPriority(specs)
	dfa, err := BuildDFA(specs)
	if !assert.NoError(t, err) {
		return nil
	}
	r := NewReader(strings.NewReader(input))
	symtab := NewSymbolTable()
	sc := NewScanner(r, &dfa, specs, symtab, identClass)

	var toks []token.Token
	for sc.HasNext() {
		toks = append(toks, sc.Next())
	}
	return toks
}

// Test_Scanner_IdentifiersAndWhitespace exercises §8 scenario 1: an
// identifier rule and a discarded whitespace rule over "Hello World".
func Test_Scanner_IdentifiersAndWhitespace(t *testing.T) {
	specs := []Spec{
		{Name: "IDENT", Pattern: "[a-zA-Z]+", Ignore: false, Priority: 1},
		{Name: "WS", Pattern: "[ \t\r\n]+", Ignore: true, Priority: 0},
	}
	toks := scanAll(t, specs, "IDENT", "Hello World")

	if assert.Len(t, toks, 2) {
		assert.Equal(t, "Hello", toks[0].Lexeme())
		assert.Equal(t, "World", toks[1].Lexeme())
	}
}

// Test_Scanner_KeywordBeatsIdentifier exercises §8 scenario 2: a keyword
// rule outranks a same-matching identifier rule by lower priority tag, but
// only on an exact match — "ifx" still falls through to IDENT.
func Test_Scanner_KeywordBeatsIdentifier(t *testing.T) {
	specs := []Spec{
		{Name: "KEYWORD", Pattern: "if", Ignore: false, Priority: 0},
		{Name: "IDENT", Pattern: "[a-z]+", Ignore: false, Priority: 1},
		{Name: "WS", Pattern: " +", Ignore: true, Priority: 2},
	}
	toks := scanAll(t, specs, "IDENT", "if ifx")

	if assert.Len(t, toks, 2) {
		assert.Equal(t, "KEYWORD", toks[0].Class().Human())
		assert.Equal(t, "if", toks[0].Lexeme())

		assert.Equal(t, "IDENT", toks[1].Class().Human())
		assert.Equal(t, "ifx", toks[1].Lexeme())
	}
}

// Test_Scanner_RewindsToLongestAccepted exercises §8 scenario 6: the
// scanner must peek past the end of a shorter accepting prefix ("print")
// before discovering the longer identifier match ("printer") and rewinding
// to it, never truncating to the keyword.
func Test_Scanner_RewindsToLongestAccepted(t *testing.T) {
	specs := []Spec{
		{Name: "KW", Pattern: "print", Ignore: false, Priority: 0},
		{Name: "IDENT", Pattern: "[a-z]+", Ignore: false, Priority: 1},
	}
	toks := scanAll(t, specs, "IDENT", "printer")

	if assert.Len(t, toks, 1) {
		assert.Equal(t, "IDENT", toks[0].Class().Human())
		assert.Equal(t, "printer", toks[0].Lexeme())
	}
}

func Test_Scanner_UnknownByteOnNoMatch(t *testing.T) {
	specs := []Spec{
		{Name: "IDENT", Pattern: "[a-z]+", Ignore: false, Priority: 0},
	}
	toks := scanAll(t, specs, "IDENT", "1")
	if assert.Len(t, toks, 1) {
		assert.Equal(t, token.Unknown.ID(), toks[0].Class().ID())
	}
}

func Test_BuildDFA_RejectsEmptyMatch(t *testing.T) {
	_, err := BuildDFA([]Spec{{Name: "EMPTY", Pattern: "a*", Priority: 0}})
	assert.Error(t, err)
}

func Test_SymbolTable_InternsIdentifiers(t *testing.T) {
	specs := []Spec{
		{Name: "IDENT", Pattern: "[a-z]+", Ignore: false, Priority: 0},
		{Name: "WS", Pattern: " +", Ignore: true, Priority: 1},
	}
	SortByPriority(specs)
	dfa, err := BuildDFA(specs)
	if !assert.NoError(t, err) {
		return
	}
	symtab := NewSymbolTable()
	sc := NewScanner(NewReader(strings.NewReader("foo bar foo")), &dfa, specs, symtab, "IDENT")

	first := sc.Next()
	sc.Next()
	third := sc.Next()

	assert.Equal(t, first.SymbolID(), third.SymbolID())
}
