package lexfst

import (
	"fmt"

	"github.com/shiomura/lexfst-go/fst"
	"github.com/shiomura/lexfst-go/lexicon"
	"github.com/shiomura/lexfst-go/segment"
	"github.com/shiomura/lexfst-go/symtab"
)

// DefaultExcluded lists the special word symbols that are never segmented
// into a pronunciation.
var DefaultExcluded = []string{
	symtab.Epsilon,
	"!SIL",
	"<SPOKEN_NOISE>",
	symtab.UnknownWord,
	symtab.GlobalDisambig,
	symtab.SentenceStart,
	symtab.SentenceEnd,
}

// Pipeline compiles a pronunciation lexicon into the lexical transducers of
// a decoding graph: L (no disambiguation) and L_disambig (disambiguated,
// with #0 self-loops).
type Pipeline struct {
	Tokens    *symtab.Table
	Words     *symtab.Table
	Segmenter segment.Segmenter
	Excluded  []string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithSegmenter sets the sub-word segmenter used to generate pronunciations.
func WithSegmenter(seg segment.Segmenter) Option {
	return func(p *Pipeline) {
		p.Segmenter = seg
	}
}

// WithExcludedWords replaces the set of words skipped during segmentation.
func WithExcludedWords(words ...string) Option {
	return func(p *Pipeline) {
		p.Excluded = words
	}
}

// New creates a Pipeline over the given token and word tables. The tables
// are not modified; Compile returns extended copies.
func New(tokens, words *symtab.Table, opts ...Option) *Pipeline {
	p := &Pipeline{
		Tokens:    tokens,
		Words:     words,
		Segmenter: segment.RuneSegmenter{},
		Excluded:  DefaultExcluded,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result holds everything a compilation produces.
type Result struct {
	Lexicon         lexicon.Lexicon // as generated or supplied, with the <UNK> fallback
	LexiconDisambig lexicon.Lexicon // with #k tokens appended where needed
	MaxDisambig     int             // largest #k index assigned
	Tokens          *symtab.Table   // token table extended with #0..#max
	Words           *symtab.Table   // word table extended with #0, <s>, </s>
	L               *fst.Fst        // built from Lexicon, no self-loops
	LDisambig       *fst.Fst        // built from LexiconDisambig, with self-loops
}

// Compile segments every non-excluded word in the word table into a
// pronunciation and compiles the resulting lexicon.
func (p *Pipeline) Compile() (*Result, error) {
	excluded := make(map[string]bool, len(p.Excluded))
	for _, w := range p.Excluded {
		excluded[w] = true
	}

	var words []string
	for _, w := range p.Words.Symbols() {
		if !excluded[w] {
			words = append(words, w)
		}
	}

	return p.CompileLexicon(segment.Generate(p.Segmenter, words))
}

// CompileLexicon compiles an already-generated lexicon: assigns
// disambiguation symbols, extends copies of the symbol tables with the new
// symbols, and builds both transducers.
func (p *Pipeline) CompileLexicon(lex lexicon.Lexicon) (*Result, error) {
	disambig, maxDisambig, err := lexicon.AddDisambig(lex)
	if err != nil {
		return nil, fmt.Errorf("assign disambiguation symbols: %w", err)
	}

	tokens := p.Tokens.Clone()
	for i := 0; i <= maxDisambig; i++ {
		if _, err := tokens.Add(lexicon.DisambigSymbol(i)); err != nil {
			return nil, fmt.Errorf("extend token table: %w", err)
		}
	}

	words := p.Words.Clone()
	for _, sym := range []string{symtab.GlobalDisambig, symtab.SentenceStart, symtab.SentenceEnd} {
		if words.Contains(sym) {
			continue
		}
		if _, err := words.Add(sym); err != nil {
			return nil, fmt.Errorf("extend word table: %w", err)
		}
	}

	l, err := fst.Build(lex, tokens, words, false)
	if err != nil {
		return nil, fmt.Errorf("build L: %w", err)
	}
	lDisambig, err := fst.Build(disambig, tokens, words, true)
	if err != nil {
		return nil, fmt.Errorf("build L_disambig: %w", err)
	}

	return &Result{
		Lexicon:         lex,
		LexiconDisambig: disambig,
		MaxDisambig:     maxDisambig,
		Tokens:          tokens,
		Words:           words,
		L:               l,
		LDisambig:       lDisambig,
	}, nil
}
