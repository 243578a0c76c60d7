package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Entry is a single pronunciation for a word.
type Entry struct {
	Word   string
	Tokens []string // sub-word token sequence, never empty
}

// Lexicon is an ordered list of entries. Order is significant: the
// disambiguation pass assigns indices in iteration order. Duplicate words
// with different pronunciations are permitted.
type Lexicon []Entry

// ValidationError reports a malformed lexicon entry.
type ValidationError struct {
	Word string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lexicon: word %q has an empty pronunciation", e.Word)
}

// Validate checks that every entry has a non-empty pronunciation.
func (l Lexicon) Validate() error {
	for _, e := range l {
		if len(e.Tokens) == 0 {
			return &ValidationError{Word: e.Word}
		}
	}
	return nil
}

// DisambigSymbol formats the k-th disambiguation symbol, "#k".
func DisambigSymbol(k int) string {
	return "#" + strconv.Itoa(k)
}

// Load reads a lexicon from the text format:
// one entry per line, WORD TOKEN1 TOKEN2 ... TOKENk, fields space-separated.
func Load(r io.Reader) (Lexicon, error) {
	var lex Lexicon
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: entry %q has no pronunciation", lineNum, fields[0])
		}
		lex = append(lex, Entry{Word: fields[0], Tokens: fields[1:]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lex, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Write emits the lexicon in the text format, one entry per line.
func (l Lexicon) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range l {
		if _, err := fmt.Fprintf(bw, "%s %s\n", e.Word, strings.Join(e.Tokens, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the lexicon to a file path.
func (l Lexicon) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := l.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
