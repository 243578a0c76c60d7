package segment

import (
	"github.com/shiomura/lexfst-go/lexicon"
	"github.com/shiomura/lexfst-go/symtab"
)

// Segmenter splits a word into sub-word tokens. Implementations typically
// wrap an external sub-word model such as a sentencepiece BPE model.
type Segmenter interface {
	Segment(word string) []string
}

// RuneSegmenter splits a word into single-rune tokens. It serves as the
// default when no external sub-word model is wired in.
type RuneSegmenter struct{}

func (RuneSegmenter) Segment(word string) []string {
	tokens := make([]string, 0, len(word))
	for _, r := range word {
		tokens = append(tokens, string(r))
	}
	return tokens
}

// Generate builds a lexicon by segmenting each word in order, then appends
// the fallback entry mapping the unknown-word placeholder to the unknown
// token.
func Generate(seg Segmenter, words []string) lexicon.Lexicon {
	lex := make(lexicon.Lexicon, 0, len(words)+1)
	for _, w := range words {
		lex = append(lex, lexicon.Entry{Word: w, Tokens: seg.Segment(w)})
	}
	lex = append(lex, lexicon.Entry{
		Word:   symtab.UnknownWord,
		Tokens: []string{symtab.UnknownToken},
	})
	return lex
}
