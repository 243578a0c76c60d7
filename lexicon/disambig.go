package lexicon

import "strings"

// AddDisambig rewrites ambiguous pronunciations by appending disambiguation
// tokens #1, #2, ... so that in the returned lexicon no two pronunciations
// are identical and none is a proper prefix of another. That property is
// what makes the transducer built from the lexicon determinizable after
// composition.
//
// Indices start at 1 because #0 is reserved as the global disambiguation
// symbol. Repeated occurrences of the same phone sequence receive increasing
// indices in lexicon order. The input is not modified.
//
// Returns the rewritten lexicon and the largest index assigned (0 if every
// pronunciation was already unambiguous).
func AddDisambig(lex Lexicon) (Lexicon, int, error) {
	if err := lex.Validate(); err != nil {
		return nil, 0, err
	}

	// Occurrences of each phone sequence across the whole lexicon.
	count := make(map[string]int, len(lex))
	for _, e := range lex {
		count[phoneKey(e.Tokens)]++
	}

	// Every strict, non-empty proper prefix of every pronunciation.
	isPrefix := make(map[string]bool)
	for _, e := range lex {
		for n := len(e.Tokens) - 1; n > 0; n-- {
			isPrefix[phoneKey(e.Tokens[:n])] = true
		}
	}

	out := make(Lexicon, 0, len(lex))
	lastUsed := make(map[string]int)
	maxIndex := 0

	for _, e := range lex {
		key := phoneKey(e.Tokens)
		if count[key] == 1 && !isPrefix[key] {
			out = append(out, e)
			continue
		}

		idx := lastUsed[key] + 1
		lastUsed[key] = idx
		if idx > maxIndex {
			maxIndex = idx
		}

		tokens := make([]string, 0, len(e.Tokens)+1)
		tokens = append(tokens, e.Tokens...)
		tokens = append(tokens, DisambigSymbol(idx))
		out = append(out, Entry{Word: e.Word, Tokens: tokens})
	}

	return out, maxIndex, nil
}

func phoneKey(tokens []string) string {
	return strings.Join(tokens, " ")
}
