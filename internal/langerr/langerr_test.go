package langerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_KindOf(t *testing.T) {
	err := GrammarFormat(3, "missing Start section")
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindGrammarFormat, kind)
	assert.Equal(t, "GrammarFormat", kind.String())
}

func Test_KindOf_ForeignError(t *testing.T) {
	_, ok := KindOf(assert.AnError)
	assert.False(t, ok)
}

func Test_SyntaxErrorAt_ListsExpected(t *testing.T) {
	err := SyntaxErrorAt("id", "42", 3, 7, []string{"+", "id"})
	assert.Contains(t, err.Error(), "expected one of: `+`, `id`")
}

func Test_SyntaxErrorAt_NoExpectedList(t *testing.T) {
	err := SyntaxErrorAt("id", "42", 3, 7, nil)
	assert.NotContains(t, err.Error(), "expected one of")
}

func Test_Preprocessor_Unwraps(t *testing.T) {
	err := Preprocessor("gcc -E -P x.c", assert.AnError)
	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindPreprocessor, kind)
	assert.ErrorIs(t, err, assert.AnError)
}
