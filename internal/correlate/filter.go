// Package correlate filters the merged table for statistical adequacy
// and computes per-entity Pearson correlations of each predictor
// against the Cantril ladder score.
package correlate

import (
	"regexp"

	"github.com/KaramelBytes/wellcorr/internal/merge"
	"github.com/KaramelBytes/wellcorr/internal/table"
)

// MinObservations is the default minimum number of valid target
// observations an entity needs to survive the filter, and the minimum
// number of valid pairs a correlation sample needs.
const MinObservations = 3

// Valid cells are nonnegative decimal numbers; anything else, empty
// and negative included, is excluded from counting and correlation.
var numericPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// Valid reports whether a cell holds a usable numeric observation.
func Valid(cell string) bool { return numericPattern.MatchString(cell) }

// Filter retains merged rows whose entity has at least minObs valid
// Cantril observations and whose own Cantril value is valid. Two
// passes: tally valid rows per entity, then replay in original order.
// The header passes through verbatim; a header-only input yields a
// header-only output. Filtering an already-filtered table is a no-op.
func Filter(m *table.Table, minObs int) *table.Table {
	if minObs <= 0 {
		minObs = MinObservations
	}
	counts := make(map[string]int)
	for i := range m.Rows {
		if Valid(m.Cell(i, merge.ColCantril)) {
			counts[m.Cell(i, merge.ColEntity)]++
		}
	}
	out := &table.Table{Header: m.Header}
	for i, row := range m.Rows {
		if !Valid(m.Cell(i, merge.ColCantril)) {
			continue
		}
		if counts[m.Cell(i, merge.ColEntity)] < minObs {
			continue
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}
