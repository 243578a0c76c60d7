package symtab

import (
	"fmt"
)

// Reserved symbols used across the language-preparation pipeline.
const (
	Epsilon        = "<eps>" // word id 0
	UnknownToken   = "<unk>" // token id 0
	UnknownWord    = "<UNK>"
	GlobalDisambig = "#0"
	SentenceStart  = "<s>"
	SentenceEnd    = "</s>"
)

// LookupError reports a symbol absent from a table.
type LookupError struct {
	Symbol string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("symtab: symbol %q not in table", e.Symbol)
}

// ContractError reports a violated table invariant, such as adding a symbol
// that is already present.
type ContractError struct {
	Symbol string
	ID     int
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("symtab: symbol %q already present with id %d", e.Symbol, e.ID)
}

// Table is a bidirectional symbol <-> integer id mapping. Ids are never
// reused or renumbered; symbols are enumerated in insertion order.
type Table struct {
	sym2id map[string]int
	id2sym map[int]string
	syms   []string
	nextID int
}

// New creates an empty table.
func New() *Table {
	return &Table{
		sym2id: make(map[string]int),
		id2sym: make(map[int]string),
	}
}

// NewWordTable creates a table with the epsilon word reserved at id 0.
func NewWordTable() *Table {
	t := New()
	t.Add(Epsilon)
	return t
}

// NewTokenTable creates a table with the unknown token reserved at id 0.
func NewTokenTable() *Table {
	t := New()
	t.Add(UnknownToken)
	return t
}

// Add inserts a new symbol and assigns it the next unused id.
func (t *Table) Add(sym string) (int, error) {
	return t.AddWithID(sym, t.nextID)
}

// AddWithID inserts a new symbol with an explicit id. Both the symbol and
// the id must be unused.
func (t *Table) AddWithID(sym string, id int) (int, error) {
	if prev, ok := t.sym2id[sym]; ok {
		return 0, &ContractError{Symbol: sym, ID: prev}
	}
	if prev, ok := t.id2sym[id]; ok {
		return 0, fmt.Errorf("symtab: id %d already assigned to %q", id, prev)
	}
	t.sym2id[sym] = id
	t.id2sym[id] = sym
	t.syms = append(t.syms, sym)
	if id >= t.nextID {
		t.nextID = id + 1
	}
	return id, nil
}

// ID returns the id of a symbol.
func (t *Table) ID(sym string) (int, error) {
	id, ok := t.sym2id[sym]
	if !ok {
		return 0, &LookupError{Symbol: sym}
	}
	return id, nil
}

// Symbol returns the symbol mapped to an id.
func (t *Table) Symbol(id int) (string, error) {
	sym, ok := t.id2sym[id]
	if !ok {
		return "", fmt.Errorf("symtab: id %d not in table", id)
	}
	return sym, nil
}

// Contains reports whether the symbol is in the table.
func (t *Table) Contains(sym string) bool {
	_, ok := t.sym2id[sym]
	return ok
}

// Symbols returns all symbols in insertion order.
func (t *Table) Symbols() []string {
	out := make([]string, len(t.syms))
	copy(out, t.syms)
	return out
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.syms)
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	c := &Table{
		sym2id: make(map[string]int, len(t.sym2id)),
		id2sym: make(map[int]string, len(t.id2sym)),
		syms:   make([]string, len(t.syms)),
		nextID: t.nextID,
	}
	for s, id := range t.sym2id {
		c.sym2id[s] = id
	}
	for id, s := range t.id2sym {
		c.id2sym[id] = s
	}
	copy(c.syms, t.syms)
	return c
}
