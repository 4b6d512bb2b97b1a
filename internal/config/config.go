package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	MinYear         int    `mapstructure:"min_year" yaml:"min_year"`
	MaxYear         int    `mapstructure:"max_year" yaml:"max_year"`
	MinObservations int    `mapstructure:"min_observations" yaml:"min_observations"`
	Parallelism     int    `mapstructure:"parallelism" yaml:"parallelism"`
	OutputFormat    string `mapstructure:"output_format" yaml:"output_format"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.wellcorr/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".wellcorr")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("WELLCORR")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("min_year", 2011)
	v.SetDefault("max_year", 2021)
	v.SetDefault("min_observations", 3)
	v.SetDefault("parallelism", 0)
	v.SetDefault("output_format", "lines")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".wellcorr")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.MinYear > c.MaxYear {
		return nil, fmt.Errorf("min_year %d exceeds max_year %d", c.MinYear, c.MaxYear)
	}
	return &c, nil
}
