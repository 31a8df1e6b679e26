package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelsoft/fecc/internal/regex"
)

func run(t *testing.T, dfa DFA, input string) (accepted bool, tag int) {
	t.Helper()
	state := dfa.Start
	for i := 0; i < len(input); i++ {
		next := dfa.States[state].Next[input[i]]
		if next < 0 {
			return false, -1
		}
		state = next
	}
	return dfa.States[state].Accept, dfa.States[state].Tag
}

func Test_ToDFA_SingleRegex(t *testing.T) {
	testCases := []struct {
		name    string
		pattern string
		input   string
		accept  bool
	}{
		{name: "literal match", pattern: "abc", input: "abc", accept: true},
		{name: "literal mismatch", pattern: "abc", input: "abd", accept: false},
		{name: "star matches zero", pattern: "a*", input: "", accept: true},
		{name: "star matches many", pattern: "a*", input: "aaaa", accept: true},
		{name: "plus requires one", pattern: "a+", input: "", accept: false},
		{name: "question optional", pattern: "colou?r", input: "color", accept: true},
		{name: "question present", pattern: "colou?r", input: "colour", accept: true},
		{name: "alternation left", pattern: "cat|dog", input: "cat", accept: true},
		{name: "alternation right", pattern: "cat|dog", input: "dog", accept: true},
		{name: "alternation neither", pattern: "cat|dog", input: "cow", accept: false},
		{name: "class range", pattern: "[a-z]+", input: "hello", accept: true},
		{name: "class range rejects digit", pattern: "[a-z]+", input: "hell0", accept: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			ast, err := regex.Parse(tc.pattern)
			if !assert.NoError(err) {
				return
			}
			nfa, err := Build(ast)
			if !assert.NoError(err) {
				return
			}
			dfa := ToDFA(&nfa)

			accepted, _ := run(t, dfa, tc.input)
			assert.Equal(tc.accept, accepted)
		})
	}
}

// Test_ToDFA_Combine_TagPriority exercises §8's "longest-match,
// highest-priority" law: when several rules can accept the same input, the
// combined DFA's winning tag is the numerically smallest one.
func Test_ToDFA_Combine_TagPriority(t *testing.T) {
	assert := assert.New(t)

	kwAst, err := regex.Parse("if")
	assert.NoError(err)
	identAst, err := regex.Parse("[a-z]+")
	assert.NoError(err)

	kwNFA, err := Build(kwAst)
	assert.NoError(err)
	identNFA, err := Build(identAst)
	assert.NoError(err)

	// tag 0 (keyword) has higher priority than tag 1 (identifier).
	combined := Combine([]NFA{kwNFA, identNFA}, []int{0, 1})
	dfa := ToDFA(&combined)

	accepted, tag := run(t, dfa, "if")
	assert.True(accepted)
	assert.Equal(0, tag)

	accepted, tag = run(t, dfa, "ifx")
	assert.True(accepted)
	assert.Equal(1, tag)
}

func Test_Build_EmptyCharClass(t *testing.T) {
	assert := assert.New(t)

	ast := &regex.Node{Type: regex.CharClass}
	_, err := Build(ast)
	assert.Error(err)
}
