package correlate

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// WriteReport prints one mean-correlation line per predictor followed
// by the best-predictor verdict.
func WriteReport(w io.Writer, results []Result, verdict Verdict) error {
	for _, r := range results {
		value := "N/A"
		if r.Defined {
			value = fmt.Sprintf("%.3f", r.Mean)
		}
		if _, err := fmt.Fprintf(w, "Mean correlation of %s with Cantril ladder is %s\n", r.Predictor, value); err != nil {
			return err
		}
	}
	if !verdict.Defined {
		_, err := fmt.Fprintln(w, "No predictor of the Cantril ladder could be determined")
		return err
	}
	_, err := fmt.Fprintf(w, "Most predictive feature for the Cantril ladder is %s (r = %.3f)\n", verdict.Predictor, verdict.Mean)
	return err
}

// WriteReportTable renders the same aggregates as a bordered table,
// marking the winning predictor.
func WriteReportTable(w io.Writer, results []Result, verdict Verdict) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Predictor", "Mean correlation", "Entities", "Best"})
	for _, r := range results {
		value := "N/A"
		if r.Defined {
			value = fmt.Sprintf("%.3f", r.Mean)
		}
		best := ""
		if verdict.Defined && r.Predictor == verdict.Predictor {
			best = "*"
		}
		t.AppendRow(table.Row{r.Predictor, value, r.Entities, best})
	}
	t.Render()
}
