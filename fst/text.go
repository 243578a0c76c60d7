package fst

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Write emits the transducer in the text arc-list format: one
// "SRC DST ILABEL OLABEL WEIGHT" line per arc, sorted by source state,
// terminated by a line holding only the final state id.
func (f *Fst) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, a := range f.Arcs {
		if _, err := fmt.Fprintf(bw, "%d %d %d %d %v\n", a.Src, a.Dst, a.ILabel, a.OLabel, a.Weight); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%d\n", f.FinalState); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteFile writes the transducer to a file path.
func (f *Fst) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// Read parses the text arc-list format produced by Write.
func Read(r io.Reader) (*Fst, error) {
	f := &Fst{FinalState: -1}
	scanner := bufio.NewScanner(r)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if f.FinalState >= 0 {
			return nil, fmt.Errorf("line %d: content after final state line", lineNum)
		}

		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			state, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad final state %q: %w", lineNum, fields[0], err)
			}
			f.FinalState = state
		case 5:
			var a Arc
			var nums [4]int
			for i := 0; i < 4; i++ {
				n, err := strconv.Atoi(fields[i])
				if err != nil {
					return nil, fmt.Errorf("line %d: bad field %q: %w", lineNum, fields[i], err)
				}
				nums[i] = n
			}
			weight, err := strconv.ParseFloat(fields[4], 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad weight %q: %w", lineNum, fields[4], err)
			}
			a.Src, a.Dst, a.ILabel, a.OLabel = nums[0], nums[1], nums[2], nums[3]
			a.Weight = float32(weight)
			f.Arcs = append(f.Arcs, a)
		default:
			return nil, fmt.Errorf("line %d: expected 1 or 5 fields, got %d", lineNum, len(fields))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if f.FinalState < 0 {
		return nil, fmt.Errorf("missing final state line")
	}
	return f, nil
}

// ReadFile is a convenience wrapper that opens a file path.
func ReadFile(path string) (*Fst, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	return Read(in)
}
