package table

import (
	"fmt"
	"strings"
)

// Kind identifies which of the three known input schemas a table carries.
type Kind int

const (
	KindUnknown Kind = iota
	// KindHappiness is the Cantril-ladder table that also carries GDP
	// per capita and population.
	KindHappiness
	// KindHomicide is the homicide-rate table.
	KindHomicide
	// KindLifeExpectancy is the life-expectancy table (it repeats the
	// Cantril score, which the pipeline ignores).
	KindLifeExpectancy
)

func (k Kind) String() string {
	switch k {
	case KindHappiness:
		return "happiness"
	case KindHomicide:
		return "homicide"
	case KindLifeExpectancy:
		return "life-expectancy"
	default:
		return "unknown"
	}
}

// Schema is the fixed column contract for one input kind. Downstream
// stages address columns by these indices and never re-parse headers.
type Schema struct {
	Kind   Kind
	Entity int
	Code   int
	Year   int
	// Value columns, by output field; -1 when the table does not carry
	// that field.
	Cantril    int
	GDP        int
	Population int
	Homicide   int
	LifeExp    int
}

var schemas = map[Kind]Schema{
	KindHappiness: {
		Kind: KindHappiness, Entity: 0, Code: 1, Year: 2,
		Cantril: 3, GDP: 4, Population: 5, Homicide: -1, LifeExp: -1,
	},
	KindHomicide: {
		Kind: KindHomicide, Entity: 0, Code: 1, Year: 2,
		Cantril: -1, GDP: -1, Population: -1, Homicide: 3, LifeExp: -1,
	},
	KindLifeExpectancy: {
		Kind: KindLifeExpectancy, Entity: 0, Code: 1, Year: 2,
		Cantril: -1, GDP: -1, Population: -1, Homicide: -1, LifeExp: 3,
	},
}

// SchemaFor returns the column contract for a known kind.
func SchemaFor(k Kind) Schema { return schemas[k] }

// Identify determines a table's kind by substring match on its header
// phrases. A header matching none of the three known schemas is a fatal
// identification error.
func Identify(t *Table) (Kind, error) {
	joined := strings.ToLower(strings.Join(t.Header, "\t"))
	switch {
	case strings.Contains(joined, "homicide rate"):
		return KindHomicide, nil
	case strings.Contains(joined, "life expectancy"):
		return KindLifeExpectancy, nil
	case strings.Contains(joined, "cantril") && strings.Contains(joined, "gdp per capita"):
		return KindHappiness, nil
	}
	return KindUnknown, fmt.Errorf("unrecognized header: %q matches no known input schema", strings.Join(t.Header, "\t"))
}
