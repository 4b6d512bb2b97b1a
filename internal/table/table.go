package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table is a row-oriented tabular dataset. The header defines column
// order and is immutable after load; every row has exactly as many
// cells as the header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Width returns the cell count of the header row.
func (t *Table) Width() int { return len(t.Header) }

// Cell returns the value at (row, col), or "" when col is out of range
// for that row.
func (t *Table) Cell(row, col int) string {
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// ErrEmptyInput indicates a file with no header row.
var ErrEmptyInput = errors.New("empty input: no header row")

// ReadFile loads a tab-separated file into a Table. Every data row must
// carry the same cell count as the header; the error for a ragged file
// names the offending line numbers.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Read parses tab-separated content from r.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	t := &Table{Header: header}

	var ragged []int
	line := 1
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line %d: %w", line+1, err)
		}
		line++
		if len(rec) != len(header) {
			ragged = append(ragged, line)
			continue
		}
		row := make([]string, len(rec))
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	if len(ragged) > 0 {
		return nil, fmt.Errorf("inconsistent cell count on line(s) %s: expected %d cells per row",
			joinInts(ragged), len(header))
	}
	return t, nil
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
