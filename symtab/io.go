package symtab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read parses the text symbol-table format: one "SYMBOL ID" pair per line.
func Read(r io.Reader) (*Table, error) {
	t := New()
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 fields, got %d", lineNum, len(fields))
		}
		id, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad id %q: %w", lineNum, fields[1], err)
		}
		if id < 0 {
			return nil, fmt.Errorf("line %d: negative id %d", lineNum, id)
		}
		if _, err := t.AddWithID(fields[0], id); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadFile is a convenience wrapper that opens a file path.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write emits the table in the text format, one symbol per line in
// insertion order.
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, sym := range t.syms {
		if _, err := fmt.Fprintf(bw, "%s %d\n", sym, t.sym2id[sym]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the table to a file path.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
