package merge

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/KaramelBytes/wellcorr/internal/table"
)

// Merged column positions, fixed output schema.
const (
	ColEntity = iota
	ColCode
	ColYear
	ColGDP
	ColPopulation
	ColHomicide
	ColLifeExp
	ColCantril
	MergedWidth
)

// MergedHeader is the fixed 8-column output schema of the join stage.
var MergedHeader = []string{
	"Entity",
	"Code",
	"Year",
	"GDP per capita, PPP (constant 2017 international $)",
	"Population (historical estimates)",
	"Homicide rate per 100,000 population - Both sexes - All ages",
	"Life expectancy - Sex: all - Age: at birth - Variant: estimates",
	"Cantril ladder score",
}

// Inputs are the three normalized, key-sorted tables in their fixed
// roles.
type Inputs struct {
	Happiness *table.Table
	Homicide  *table.Table
	LifeExp   *table.Table
}

// Join performs a strict three-way inner join on the composite-key
// column and projects the result into the MergedHeader schema. It is
// two sort-merge passes: happiness∧homicide, then that result∧life
// expectancy. Inputs must already be normalized (key in column 0,
// sorted, keys unique per table).
func Join(in Inputs) *table.Table {
	ab := innerJoin(in.Happiness, in.Homicide)
	abc := innerJoin(ab, in.LifeExp)
	return project(abc, in.Happiness.Width(), in.Homicide.Width())
}

// innerJoin merge-joins two key-sorted tables on column 0. The result
// keeps a single key column followed by both tables' remaining columns.
// With unique keys per table each key yields at most one output row.
func innerJoin(a, b *table.Table) *table.Table {
	out := &table.Table{
		Header: append(append([]string{KeyColumn}, a.Header[1:]...), b.Header[1:]...),
	}
	i, j := 0, 0
	for i < len(a.Rows) && j < len(b.Rows) {
		ka, kb := a.Rows[i][0], b.Rows[j][0]
		switch {
		case ka < kb:
			i++
		case ka > kb:
			j++
		default:
			row := make([]string, 0, len(out.Header))
			row = append(row, ka)
			row = append(row, a.Rows[i][1:]...)
			row = append(row, b.Rows[j][1:]...)
			out.Rows = append(out.Rows, row)
			i++
			j++
		}
	}
	return out
}

// project maps joined-column positions onto the fixed merged schema.
// The joined layout is: key, then the happiness table's columns, then
// the homicide table's, then life expectancy's; widths include each
// normalized table's own key column, which the join dropped.
func project(joined *table.Table, happinessWidth, homicideWidth int) *table.Table {
	hap := table.SchemaFor(table.KindHappiness)
	hom := table.SchemaFor(table.KindHomicide)
	life := table.SchemaFor(table.KindLifeExpectancy)

	happinessAt := 1
	homicideAt := happinessAt + happinessWidth - 1
	lifeAt := homicideAt + homicideWidth - 1

	out := &table.Table{Header: append([]string(nil), MergedHeader...)}
	for _, row := range joined.Rows {
		merged := make([]string, MergedWidth)
		merged[ColEntity] = row[happinessAt+hap.Entity]
		merged[ColCode] = row[happinessAt+hap.Code]
		merged[ColYear] = row[happinessAt+hap.Year]
		merged[ColGDP] = row[happinessAt+hap.GDP]
		merged[ColPopulation] = row[happinessAt+hap.Population]
		merged[ColHomicide] = row[homicideAt+hom.Homicide]
		merged[ColLifeExp] = row[lifeAt+life.LifeExp]
		merged[ColCantril] = row[happinessAt+hap.Cantril]
		out.Rows = append(out.Rows, merged)
	}
	return out
}

// WriteTSV emits a table as tab-separated values, header first.
func WriteTSV(w io.Writer, t *table.Table) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
