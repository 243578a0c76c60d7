package fst

import (
	"fmt"
	"sort"

	"github.com/shiomura/lexfst-go/lexicon"
	"github.com/shiomura/lexfst-go/symtab"
)

const (
	// EpsilonID is the null label id.
	EpsilonID = 0
	// FinalLabel marks both labels of the terminating arc.
	FinalLabel = -1
)

// Arc is a single transducer transition.
type Arc struct {
	Src    int
	Dst    int
	ILabel int     // token id, or -1 on the terminating arc
	OLabel int     // word id, 0 (epsilon), or -1 on the terminating arc
	Weight float32 // always 0 in this builder
}

// Fst is a lexicon transducer: an arc list sorted by source state plus the
// single final state. State 0 is the loop state through which every
// pronunciation starts and ends.
type Fst struct {
	Arcs       []Arc
	FinalState int
}

// ContractError reports a symbol table that breaks the reserved-id contract
// required by Build.
type ContractError struct {
	Symbol string
	Want   int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("fst: reserved symbol %q must have id %d", e.Symbol, e.Want)
}

// Build converts a lexicon into a transducer whose input labels are token
// ids and whose output labels are word ids. Each pronunciation starts and
// ends at the loop state; the first arc carries the word id, the rest carry
// epsilon. No prefix sharing is attempted: every pronunciation gets its own
// chain of intermediate states.
//
// When addSelfLoops is set, every state with an outgoing non-epsilon output
// arc also gets a self-loop carrying the global disambiguation symbol #0, so
// that later composition with graphs that consume #0 does not reject valid
// paths.
func Build(lex lexicon.Lexicon, tokens, words *symtab.Table, addSelfLoops bool) (*Fst, error) {
	if id, err := tokens.ID(symtab.UnknownToken); err != nil || id != 0 {
		return nil, &ContractError{Symbol: symtab.UnknownToken, Want: 0}
	}
	if id, err := words.ID(symtab.Epsilon); err != nil || id != 0 {
		return nil, &ContractError{Symbol: symtab.Epsilon, Want: 0}
	}

	const loopState = 0
	nextState := 1

	var arcs []Arc
	for _, e := range lex {
		if len(e.Tokens) == 0 {
			return nil, &lexicon.ValidationError{Word: e.Word}
		}

		word, err := words.ID(e.Word)
		if err != nil {
			return nil, fmt.Errorf("word %q: %w", e.Word, err)
		}
		ids := make([]int, len(e.Tokens))
		for i, tok := range e.Tokens {
			ids[i], err = tokens.ID(tok)
			if err != nil {
				return nil, fmt.Errorf("word %q: %w", e.Word, err)
			}
		}

		cur := loopState
		for i, id := range ids {
			olabel := EpsilonID
			if i == 0 {
				olabel = word
			}
			dst := loopState
			if i < len(ids)-1 {
				dst = nextState
				nextState++
			}
			arcs = append(arcs, Arc{Src: cur, Dst: dst, ILabel: id, OLabel: olabel})
			cur = dst
		}
	}

	if addSelfLoops {
		disambigToken, err := tokens.ID(symtab.GlobalDisambig)
		if err != nil {
			return nil, fmt.Errorf("token table: %w", err)
		}
		disambigWord, err := words.ID(symtab.GlobalDisambig)
		if err != nil {
			return nil, fmt.Errorf("word table: %w", err)
		}
		arcs = AddSelfLoops(arcs, disambigToken, disambigWord)
	}

	finalState := nextState
	arcs = append(arcs, Arc{Src: loopState, Dst: finalState, ILabel: FinalLabel, OLabel: FinalLabel})

	// The consuming automaton representation requires arcs grouped by
	// source state; stable so that arc order within a state is emission
	// order.
	sort.SliceStable(arcs, func(i, j int) bool { return arcs[i].Src < arcs[j].Src })

	return &Fst{Arcs: arcs, FinalState: finalState}, nil
}

// AddSelfLoops appends one self-loop per state that has at least one
// outgoing arc with a non-epsilon output label, excluding the terminating
// arc. Loops are emitted in ascending state order so the output is
// reproducible run to run.
func AddSelfLoops(arcs []Arc, disambigToken, disambigWord int) []Arc {
	need := make(map[int]bool)
	for _, a := range arcs {
		if a.OLabel != EpsilonID && a.ILabel != FinalLabel {
			need[a.Src] = true
		}
	}

	states := make([]int, 0, len(need))
	for s := range need {
		states = append(states, s)
	}
	sort.Ints(states)

	for _, s := range states {
		arcs = append(arcs, Arc{Src: s, Dst: s, ILabel: disambigToken, OLabel: disambigWord})
	}
	return arcs
}
