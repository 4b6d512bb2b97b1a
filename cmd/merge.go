package cmd

import (
	"os"

	"github.com/KaramelBytes/wellcorr/internal/merge"
	"github.com/spf13/cobra"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <file1> <file2> <file3>",
	Short: "Join the three datasets on (code, year) and print the merged TSV",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		merged, err := loadAndMerge(args, effectiveConfig(), newRunID())
		if err != nil {
			return err
		}
		return merge.WriteTSV(os.Stdout, merged)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
