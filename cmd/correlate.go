package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/wellcorr/internal/correlate"
	"github.com/spf13/cobra"
)

var corrFormat string

var correlateCmd = &cobra.Command{
	Use:   "correlate <file1> <file2> <file3>",
	Short: "Run the full pipeline and report the most predictive variable",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		format := c.OutputFormat
		if corrFormat != "" {
			format = corrFormat
		}
		switch format {
		case "lines", "table":
		default:
			return fmt.Errorf("unsupported --format: %s (use lines|table)", format)
		}

		runID := newRunID()
		merged, err := loadAndMerge(args, c, runID)
		if err != nil {
			return err
		}
		filtered := correlate.Filter(merged, c.MinObservations)
		if debug {
			fmt.Fprintf(os.Stderr, "[%s] %d of %d rows survive the entity filter\n", runID, len(filtered.Rows), len(merged.Rows))
		}
		results, verdict, err := correlate.Run(cmd.Context(), filtered, correlate.Options{Parallelism: c.Parallelism})
		if err != nil {
			return err
		}
		if format == "table" {
			correlate.WriteReportTable(os.Stdout, results, verdict)
			return nil
		}
		return correlate.WriteReport(os.Stdout, results, verdict)
	},
}

func init() {
	correlateCmd.Flags().StringVar(&corrFormat, "format", "", "report format: lines|table (default from config)")
	rootCmd.AddCommand(correlateCmd)
}
