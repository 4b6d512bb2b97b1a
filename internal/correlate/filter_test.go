package correlate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/wellcorr/internal/merge"
	"github.com/KaramelBytes/wellcorr/internal/table"
)

// mergedRow builds an 8-column merged row with the given entity,
// year and correlated values.
func mergedRow(entity, year, gdp, pop, homicide, life, cantril string) []string {
	row := make([]string, merge.MergedWidth)
	row[merge.ColEntity] = entity
	row[merge.ColCode] = entity[:3]
	row[merge.ColYear] = year
	row[merge.ColGDP] = gdp
	row[merge.ColPopulation] = pop
	row[merge.ColHomicide] = homicide
	row[merge.ColLifeExp] = life
	row[merge.ColCantril] = cantril
	return row
}

func mergedTable(rows ...[]string) *table.Table {
	return &table.Table{Header: merge.MergedHeader, Rows: rows}
}

func TestValid(t *testing.T) {
	for _, ok := range []string{"0", "7", "4.5", "10700", "0.001"} {
		assert.True(t, Valid(ok), ok)
	}
	for _, bad := range []string{"", "-4.5", "4.", ".5", "4,5", "abc", "4.5e3", " 4.5", "NaN"} {
		assert.False(t, Valid(bad), bad)
	}
}

func TestFilterDropsUnderThreeObservations(t *testing.T) {
	m := mergedTable(
		mergedRow("Albania", "2015", "10700", "2890000", "2.9", "78.0", "4.6"),
		mergedRow("Albania", "2016", "11000", "2880000", "2.3", "78.3", "4.5"),
		mergedRow("Albania", "2017", "11500", "2870000", "2.2", "78.5", "4.7"),
		mergedRow("Fiji", "2015", "8000", "890000", "2.0", "67.0", "5.0"),
		mergedRow("Fiji", "2016", "8100", "895000", "2.1", "67.2", "5.1"),
	)
	out := Filter(m, MinObservations)
	require.Len(t, out.Rows, 3)
	for _, row := range out.Rows {
		assert.Equal(t, "Albania", row[merge.ColEntity])
	}
}

func TestFilterExcludesInvalidTargetRows(t *testing.T) {
	m := mergedTable(
		mergedRow("Albania", "2014", "10500", "2895000", "3.0", "77.8", ""),     // empty target
		mergedRow("Albania", "2015", "10700", "2890000", "2.9", "78.0", "-4.6"), // negative target
		mergedRow("Albania", "2016", "11000", "2880000", "2.3", "78.3", "4.5"),
		mergedRow("Albania", "2017", "11500", "2870000", "2.2", "78.5", "4.7"),
		mergedRow("Albania", "2018", "11800", "2866000", "2.1", "78.6", "4.9"),
	)
	out := Filter(m, MinObservations)
	// Invalid-target rows are excluded outright, not just from the count.
	require.Len(t, out.Rows, 3)
	for _, row := range out.Rows {
		assert.True(t, Valid(row[merge.ColCantril]))
	}
}

func TestFilterInvalidRowsDoNotCount(t *testing.T) {
	// Two valid + one invalid target: entity stays under the threshold.
	m := mergedTable(
		mergedRow("Fiji", "2015", "8000", "890000", "2.0", "67.0", "5.0"),
		mergedRow("Fiji", "2016", "8100", "895000", "2.1", "67.2", "5.1"),
		mergedRow("Fiji", "2017", "8200", "897000", "2.2", "67.4", "bad"),
	)
	out := Filter(m, MinObservations)
	assert.Empty(t, out.Rows)
}

func TestFilterPreservesOrderAndHeader(t *testing.T) {
	m := mergedTable(
		mergedRow("Zimbabwe", "2015", "1800", "14000000", "6.7", "59.5", "3.7"),
		mergedRow("Albania", "2015", "10700", "2890000", "2.9", "78.0", "4.6"),
		mergedRow("Zimbabwe", "2016", "1850", "14200000", "6.5", "60.0", "3.6"),
		mergedRow("Albania", "2016", "11000", "2880000", "2.3", "78.3", "4.5"),
		mergedRow("Zimbabwe", "2017", "1900", "14400000", "6.2", "60.5", "3.6"),
		mergedRow("Albania", "2017", "11500", "2870000", "2.2", "78.5", "4.7"),
	)
	out := Filter(m, MinObservations)
	require.Len(t, out.Rows, 6)
	assert.Equal(t, m.Header, out.Header)
	assert.Equal(t, m.Rows, out.Rows)
}

func TestFilterIdempotent(t *testing.T) {
	m := mergedTable(
		mergedRow("Albania", "2015", "10700", "2890000", "2.9", "78.0", "4.6"),
		mergedRow("Albania", "2016", "11000", "2880000", "2.3", "78.3", "4.5"),
		mergedRow("Albania", "2017", "11500", "2870000", "2.2", "78.5", "4.7"),
		mergedRow("Fiji", "2015", "8000", "890000", "2.0", "67.0", "5.0"),
	)
	once := Filter(m, MinObservations)
	twice := Filter(once, MinObservations)
	assert.Equal(t, once.Rows, twice.Rows)
	assert.Equal(t, once.Header, twice.Header)
}

func TestFilterHeaderOnlyInput(t *testing.T) {
	out := Filter(mergedTable(), MinObservations)
	assert.Empty(t, out.Rows)
	assert.Equal(t, merge.MergedHeader, out.Header)
}
