package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name      string
		pattern   string
		expect    string
		expectErr bool
	}{
		{
			name:    "single literal",
			pattern: "a",
			expect:  `Literal('a')`,
		},
		{
			name:    "concat",
			pattern: "abc",
			expect:  `Concat(Literal('a'), Concat(Literal('b'), Literal('c')))`,
		},
		{
			name:    "leading alternation is epsilon alternative",
			pattern: "|abc",
			expect:  `Alt(Epsilon, Concat(Literal('a'), Concat(Literal('b'), Literal('c'))))`,
		},
		{
			name:    "star binds tighter than concat",
			pattern: "ab*",
			expect:  `Concat(Literal('a'), Star(Literal('b')))`,
		},
		{
			name:    "double star applies left to right",
			pattern: "a**",
			expect:  `Star(Star(Literal('a')))`,
		},
		{
			name:    "character class",
			pattern: "[a-z]",
			expect:  `CharClass([{97 122}])`,
		},
		{
			name:      "unclosed paren",
			pattern:   "(a",
			expectErr: true,
		},
		{
			name:      "unclosed class",
			pattern:   "[a-z",
			expectErr: true,
		},
		{
			name:      "inverted range",
			pattern:   "[z-a]",
			expectErr: true,
		},
		{
			name:      "trailing input after top-level alt",
			pattern:   "a)",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			node, err := Parse(tc.pattern)
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, node.String())
		})
	}
}
