package fst

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiomura/lexfst-go/lexicon"
)

func TestWriteTextFormat(t *testing.T) {
	tokens, words := catTables(t)
	lex := lexicon.Lexicon{
		{Word: "CAT", Tokens: []string{"k", "a", "t"}},
	}

	f, err := Build(lex, tokens, words, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	want := "0 1 1 1 0\n" +
		"0 3 -1 -1 0\n" +
		"1 2 2 0 0\n" +
		"2 0 3 0 0\n" +
		"3\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReadRoundTrip(t *testing.T) {
	f := &Fst{
		Arcs: []Arc{
			{Src: 0, Dst: 1, ILabel: 1, OLabel: 1},
			{Src: 0, Dst: 2, ILabel: -1, OLabel: -1},
			{Src: 1, Dst: 0, ILabel: 2, OLabel: 0},
		},
		FinalState: 2,
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	got, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestReadRejectsMalformedInput(t *testing.T) {
	for _, input := range []string{
		"",                     // no final state
		"0 1 1 1 0\n",          // missing final state line
		"0 1 1 1\n2\n",         // four fields
		"0 1 1 1 x\n2\n",       // bad weight
		"2\n0 1 1 1 0\n",       // arc after final state
		"x\n",                  // bad final state
	} {
		_, err := Read(strings.NewReader(input))
		assert.Error(t, err, "input %q", input)
	}
}
