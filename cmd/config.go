package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/wellcorr/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set wellcorr configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := effectiveConfig()
		fmt.Printf("min_year: %d\n", c.MinYear)
		fmt.Printf("max_year: %d\n", c.MaxYear)
		fmt.Printf("min_observations: %d\n", c.MinObservations)
		fmt.Printf("parallelism: %d\n", c.Parallelism)
		fmt.Printf("output_format: %s\n", c.OutputFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "min_year", "max_year", "min_observations", "parallelism":
			i, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			switch key {
			case "min_year":
				cfg.MinYear = i
			case "max_year":
				cfg.MaxYear = i
			case "min_observations":
				if i < 1 {
					return fmt.Errorf("min_observations must be positive, got %d", i)
				}
				cfg.MinObservations = i
			case "parallelism":
				if i < 0 {
					return fmt.Errorf("parallelism must be nonnegative, got %d", i)
				}
				cfg.Parallelism = i
			}
		case "output_format":
			if val != "lines" && val != "table" {
				return fmt.Errorf("invalid output_format: %s (use lines or table)", val)
			}
			cfg.OutputFormat = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("✓ Saved")
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
