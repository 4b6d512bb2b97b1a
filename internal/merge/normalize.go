// Package merge aligns the three input tables on their (entity code,
// year) composite key and inner-joins them into the fixed merged schema.
package merge

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/KaramelBytes/wellcorr/internal/table"
)

// Window restricts normalization to a year range, inclusive.
type Window struct {
	MinYear int
	MaxYear int
}

// DefaultWindow is the year range the three sources overlap on.
var DefaultWindow = Window{MinYear: 2011, MaxYear: 2021}

// KeyColumn is the header label of the prepended composite-key column.
const KeyColumn = "Key"

// Normalize annotates every row of t with a composite key column,
// `code + " " + year`, prepended as column 0. Rows with an empty entity
// code or a year outside the window are dropped; that is normal
// filtering, not an error. Output rows are sorted lexicographically by
// key so the join can run as a merge. A composite key appearing twice
// within one table is a validation error.
func Normalize(t *table.Table, kind table.Kind, w Window) (*table.Table, error) {
	sc := table.SchemaFor(kind)
	out := &table.Table{Header: append([]string{KeyColumn}, t.Header...)}
	for i := range t.Rows {
		code := t.Cell(i, sc.Code)
		if code == "" {
			continue
		}
		yearStr := t.Cell(i, sc.Year)
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < w.MinYear || year > w.MaxYear {
			continue
		}
		row := append([]string{code + " " + yearStr}, t.Rows[i]...)
		out.Rows = append(out.Rows, row)
	}
	sort.SliceStable(out.Rows, func(i, j int) bool {
		return out.Rows[i][0] < out.Rows[j][0]
	})
	for i := 1; i < len(out.Rows); i++ {
		if out.Rows[i][0] == out.Rows[i-1][0] {
			return nil, fmt.Errorf("%s table: duplicate composite key %q", kind, out.Rows[i][0])
		}
	}
	return out, nil
}
