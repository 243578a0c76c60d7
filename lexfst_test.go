package lexfst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiomura/lexfst-go/fst"
	"github.com/shiomura/lexfst-go/lexicon"
	"github.com/shiomura/lexfst-go/symtab"
)

func pipelineTables(t *testing.T) (*symtab.Table, *symtab.Table) {
	t.Helper()
	tokens := symtab.NewTokenTable()
	for _, s := range []string{"a", "b"} {
		_, err := tokens.Add(s)
		require.NoError(t, err)
	}
	words := symtab.NewWordTable()
	for _, s := range []string{"ab", "a", symtab.UnknownWord} {
		_, err := words.Add(s)
		require.NoError(t, err)
	}
	return tokens, words
}

func TestPipelineCompile(t *testing.T) {
	tokens, words := pipelineTables(t)
	p := New(tokens, words)

	res, err := p.Compile()
	require.NoError(t, err)

	// "ab" and "a" are segmented; <UNK> gets the fallback pronunciation.
	require.Len(t, res.Lexicon, 3)
	assert.Equal(t, lexicon.Entry{Word: "ab", Tokens: []string{"a", "b"}}, res.Lexicon[0])
	assert.Equal(t, lexicon.Entry{Word: symtab.UnknownWord, Tokens: []string{symtab.UnknownToken}}, res.Lexicon[2])

	// "a" is a proper prefix of "a b", so it gets #1.
	assert.Equal(t, []string{"a", "#1"}, res.LexiconDisambig[1].Tokens)
	assert.Equal(t, 1, res.MaxDisambig)

	// Token table extended with #0..#1, word table with #0, <s>, </s>.
	assert.True(t, res.Tokens.Contains("#0"))
	assert.True(t, res.Tokens.Contains("#1"))
	assert.False(t, res.Tokens.Contains("#2"))
	for _, s := range []string{symtab.GlobalDisambig, symtab.SentenceStart, symtab.SentenceEnd} {
		assert.True(t, res.Words.Contains(s))
	}

	// Input tables stay untouched.
	assert.False(t, tokens.Contains("#0"))
	assert.False(t, words.Contains(symtab.SentenceStart))

	disambigToken, err := res.Tokens.ID(symtab.GlobalDisambig)
	require.NoError(t, err)
	disambigWord, err := res.Words.ID(symtab.GlobalDisambig)
	require.NoError(t, err)

	// L carries no disambiguation symbols; L_disambig has the #0 self-loop
	// on the loop state.
	for _, a := range res.L.Arcs {
		assert.NotEqual(t, disambigToken, a.ILabel)
	}
	assert.Contains(t, res.LDisambig.Arcs, fst.Arc{Src: 0, Dst: 0, ILabel: disambigToken, OLabel: disambigWord})

	for _, f := range []*fst.Fst{res.L, res.LDisambig} {
		for i := 1; i < len(f.Arcs); i++ {
			assert.LessOrEqual(t, f.Arcs[i-1].Src, f.Arcs[i].Src)
		}
	}
}

func TestPipelineCompileLexicon(t *testing.T) {
	tokens := symtab.NewTokenTable()
	_, err := tokens.Add("a")
	require.NoError(t, err)
	words := symtab.NewWordTable()
	for _, s := range []string{"A", "B"} {
		_, err := words.Add(s)
		require.NoError(t, err)
	}

	lex := lexicon.Lexicon{
		{Word: "A", Tokens: []string{"a"}},
		{Word: "B", Tokens: []string{"a"}},
	}

	res, err := New(tokens, words).CompileLexicon(lex)
	require.NoError(t, err)

	assert.Equal(t, 2, res.MaxDisambig)
	assert.Equal(t, []string{"a", "#1"}, res.LexiconDisambig[0].Tokens)
	assert.Equal(t, []string{"a", "#2"}, res.LexiconDisambig[1].Tokens)

	// Homophones collapse to identical paths in L but stay distinct in
	// L_disambig, which is the whole point of the pass.
	assert.Len(t, res.L.Arcs, 3)         // two word arcs + terminating arc
	assert.Len(t, res.LDisambig.Arcs, 6) // two 2-arc chains + #0 loop on the loop state + terminating arc
}

func TestPipelineCompileLexiconValidates(t *testing.T) {
	tokens, words := pipelineTables(t)

	lex := lexicon.Lexicon{
		{Word: "ab", Tokens: nil},
	}

	_, err := New(tokens, words).CompileLexicon(lex)
	require.Error(t, err)
	assert.ErrorContains(t, err, "ab")
}

func TestPipelineExcludedWords(t *testing.T) {
	tokens, words := pipelineTables(t)
	p := New(tokens, words, WithExcludedWords(append([]string{"ab"}, DefaultExcluded...)...))

	res, err := p.Compile()
	require.NoError(t, err)

	for _, e := range res.Lexicon {
		assert.NotEqual(t, "ab", e.Word)
	}
}
