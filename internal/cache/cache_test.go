package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrelsoft/fecc/internal/grammar"
	"github.com/kestrelsoft/fecc/internal/lex"
)

func buildTestEntry(t *testing.T) (Entry, []grammar.Production) {
	t.Helper()

	specs := []lex.Spec{
		{Name: "id", Pattern: "[a-z]+", Priority: 0},
		{Name: "+", Pattern: "\\+", Priority: 1},
	}
	lex.SortByPriority(specs)
	dfa, err := lex.BuildDFA(specs)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	g := grammar.New([]string{"+", "id"}, []string{"E"}, "E")
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "E", RHS: []string{"E", "+", "E"}}))
	assert.NoError(t, g.AddProduction(grammar.Production{LHS: "E", RHS: []string{"id"}}))
	assert.NoError(t, g.Validate())

	return Entry{DFA: dfa}, g.Productions
}

func Test_Key_StableForSameInput(t *testing.T) {
	k1 := Key([]byte("specs"), []byte("grammar"))
	k2 := Key([]byte("specs"), []byte("grammar"))
	assert.Equal(t, k1, k2)

	k3 := Key([]byte("specs"), []byte("grammar2"))
	assert.NotEqual(t, k1, k3)
}

func Test_StoreLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	entry, prods := buildTestEntry(t)

	key := Key([]byte("s"), []byte("g"))
	if !assert.NoError(t, Store(dir, key, entry)) {
		return
	}

	loaded, ok, err := Load(dir, key, prods)
	if assert.NoError(t, err) && assert.True(t, ok) {
		assert.Equal(t, entry.DFA.Start, loaded.DFA.Start)
		assert.Len(t, loaded.DFA.States, len(entry.DFA.States))
		assert.Equal(t, prods, loaded.Table.Productions)
	}
}

func Test_Load_MissReturnsFalseNoError(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Load(dir, "does-not-exist", nil)
	assert.NoError(t, err)
	assert.False(t, ok)
}
