package correlate

import (
	"context"
	"math"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/KaramelBytes/wellcorr/internal/merge"
	"github.com/KaramelBytes/wellcorr/internal/table"
)

// Predictor names a candidate explanatory column of the merged table.
type Predictor struct {
	Name string
	Col  int
}

// Predictors is the canonical predictor order; ties in best-predictor
// selection resolve to the earlier entry.
var Predictors = []Predictor{
	{Name: "GDP per capita", Col: merge.ColGDP},
	{Name: "Population", Col: merge.ColPopulation},
	{Name: "Homicide Rate", Col: merge.ColHomicide},
	{Name: "Life Expectancy", Col: merge.ColLifeExp},
}

// Result is one predictor's aggregate over all qualifying entities.
type Result struct {
	Predictor string
	Mean      float64
	Entities  int
	Defined   bool
}

// Verdict is the best-predictor selection across all defined results.
type Verdict struct {
	Predictor string
	Mean      float64
	Defined   bool
}

// Options tunes the engine. Parallelism > 1 computes entities
// concurrently; the default runs serially, which is always equivalent.
type Options struct {
	Parallelism int
}

type entityCorr struct {
	r  float64
	ok bool
}

// Run computes, for every distinct entity and every predictor, the
// Pearson correlation of the predictor against the Cantril score, then
// aggregates per predictor and folds the defined means into a verdict.
func Run(ctx context.Context, filtered *table.Table, opts Options) ([]Result, Verdict, error) {
	entities, rowsByEntity := groupByEntity(filtered)

	// corrs[e][p] is entity e's correlation for predictor p.
	corrs := make([][]entityCorr, len(entities))
	if opts.Parallelism > 1 {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(opts.Parallelism)
		for e := range entities {
			e := e
			g.Go(func() error {
				corrs[e] = entityCorrelations(filtered, rowsByEntity[entities[e]])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, Verdict{}, err
		}
	} else {
		for e := range entities {
			corrs[e] = entityCorrelations(filtered, rowsByEntity[entities[e]])
		}
	}

	results := make([]Result, len(Predictors))
	for p, pred := range Predictors {
		var sum float64
		var count int
		for e := range entities {
			if corrs[e][p].ok {
				sum += corrs[e][p].r
				count++
			}
		}
		results[p] = Result{Predictor: pred.Name, Entities: count}
		if count > 0 {
			results[p].Mean = sum / float64(count)
			results[p].Defined = true
		}
	}
	return results, selectBest(results), nil
}

// entityCorrelations computes one entity's correlation per predictor
// from its row indices. Pairs with an invalid predictor or target cell
// are discarded; fewer than MinObservations valid pairs yields no
// sample for that predictor.
func entityCorrelations(t *table.Table, rows []int) []entityCorr {
	out := make([]entityCorr, len(Predictors))
	for p, pred := range Predictors {
		var s Sample
		for _, i := range rows {
			xs, ys := t.Cell(i, pred.Col), t.Cell(i, merge.ColCantril)
			if !Valid(xs) || !Valid(ys) {
				continue
			}
			x, _ := strconv.ParseFloat(xs, 64)
			y, _ := strconv.ParseFloat(ys, 64)
			s.Add(x, y)
		}
		out[p].r, out[p].ok = s.R()
	}
	return out
}

func groupByEntity(t *table.Table) ([]string, map[string][]int) {
	var entities []string
	byEntity := make(map[string][]int)
	for i := range t.Rows {
		name := t.Cell(i, merge.ColEntity)
		if _, seen := byEntity[name]; !seen {
			entities = append(entities, name)
		}
		byEntity[name] = append(byEntity[name], i)
	}
	return entities, byEntity
}

// selectBest folds results in canonical order, carrying the largest
// absolute mean under strict greater-than. Comparison uses the
// unrounded magnitude; rounding happens only at report time.
func selectBest(results []Result) Verdict {
	var best Verdict
	bestAbs := math.Inf(-1)
	for _, r := range results {
		if !r.Defined {
			continue
		}
		if abs := math.Abs(r.Mean); abs > bestAbs {
			bestAbs = abs
			best = Verdict{Predictor: r.Predictor, Mean: r.Mean, Defined: true}
		}
	}
	return best
}
