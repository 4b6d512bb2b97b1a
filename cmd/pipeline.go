package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/wellcorr/internal/config"
	"github.com/KaramelBytes/wellcorr/internal/merge"
	"github.com/KaramelBytes/wellcorr/internal/table"
	"github.com/google/uuid"
)

// loadAndMerge reads the three input files, identifies each one's
// schema, normalizes them onto the composite key, and joins them into
// the merged 8-column table. Every failure here is fatal to the run.
func loadAndMerge(paths []string, c *cfgpkg.Global, runID string) (*table.Table, error) {
	byKind := make(map[table.Kind]*table.Table, 3)
	for _, path := range paths {
		t, err := table.ReadFile(path)
		if err != nil {
			return nil, err
		}
		kind, err := table.Identify(t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if _, dup := byKind[kind]; dup {
			return nil, fmt.Errorf("%s: second %s table; each schema must appear exactly once", path, kind)
		}
		byKind[kind] = t
		if debug {
			fmt.Fprintf(os.Stderr, "[%s] %s identified as %s (%d rows)\n", runID, path, kind, len(t.Rows))
		}
	}

	w := merge.Window{MinYear: c.MinYear, MaxYear: c.MaxYear}
	var in merge.Inputs
	var err error
	if in.Happiness, err = merge.Normalize(byKind[table.KindHappiness], table.KindHappiness, w); err != nil {
		return nil, err
	}
	if in.Homicide, err = merge.Normalize(byKind[table.KindHomicide], table.KindHomicide, w); err != nil {
		return nil, err
	}
	if in.LifeExp, err = merge.Normalize(byKind[table.KindLifeExpectancy], table.KindLifeExpectancy, w); err != nil {
		return nil, err
	}

	merged := merge.Join(in)
	if debug {
		fmt.Fprintf(os.Stderr, "[%s] merged table has %d rows\n", runID, len(merged.Rows))
	}
	return merged, nil
}

// newRunID tags one pipeline invocation for debug diagnostics.
func newRunID() string { return uuid.NewString() }
