package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/wellcorr/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (wired to config/viper)
	cfgFile string
	debug   bool
	// Pipeline flags (override config if set)
	flagMinYear     int
	flagMaxYear     int
	flagMinObs      int
	flagParallelism int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "wellcorr",
	Short: "wellcorr: merge well-being datasets and report the best predictor",
	Long:  `wellcorr joins three tab-separated datasets on (country code, year), filters out entities with too few Cantril ladder observations, and reports which predictor correlates most strongly with well-being.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.wellcorr/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().IntVar(&flagMinYear, "min-year", 0, "lower bound of the year window (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagMaxYear, "max-year", 0, "upper bound of the year window (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagMinObs, "min-observations", 0, "minimum valid target observations per entity (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagParallelism, "parallelism", 0, "concurrent entity correlations, 0 for serial (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("min-year") {
		cfg.MinYear = flagMinYear
	}
	if f.Changed("max-year") {
		cfg.MaxYear = flagMaxYear
	}
	if f.Changed("min-observations") && flagMinObs > 0 {
		cfg.MinObservations = flagMinObs
	}
	if f.Changed("parallelism") && flagParallelism > 0 {
		cfg.Parallelism = flagParallelism
	}
}

// effectiveConfig returns the loaded config, falling back to defaults
// when loading was skipped or failed.
func effectiveConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{MinYear: 2011, MaxYear: 2021, MinObservations: 3, OutputFormat: "lines"}
}
