// Package config loads analysis settings from file, environment and
// defaults, docloom-style precedence: flags > env > config file > defaults.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Analysis holds the knobs shared by the CLI commands. All of them have
// working defaults; a config file is optional.
type Analysis struct {
	Components        int     `mapstructure:"components" yaml:"components"`
	VarianceThreshold float64 `mapstructure:"variance_threshold" yaml:"variance_threshold"`
	MinCategoryCount  int     `mapstructure:"min_category_count" yaml:"min_category_count"`
	StopwordFile      string  `mapstructure:"stopword_file" yaml:"stopword_file"`
	PlotDir           string  `mapstructure:"plot_dir" yaml:"plot_dir"`
	Delimiter         string  `mapstructure:"delimiter" yaml:"delimiter"`
}

// Load reads configuration. cfgFile may be empty, in which case only a
// thesis.yaml in the working directory is considered, and silently skipped
// when absent. Environment variables use the THESIS_ prefix.
func Load(cfgFile string) (*Analysis, error) {
	v := viper.New()
	v.SetEnvPrefix("THESIS")
	v.AutomaticEnv()

	v.SetDefault("components", 0)
	v.SetDefault("variance_threshold", 0.80)
	v.SetDefault("min_category_count", 1)
	v.SetDefault("stopword_file", "")
	v.SetDefault("plot_dir", "")
	v.SetDefault("delimiter", ",")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("thesis")
		v.SetConfigType("yaml")
		_ = v.ReadInConfig() // optional
	}

	var c Analysis
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Comma returns the configured delimiter as a rune, ',' when unset.
func (c *Analysis) Comma() rune {
	if c.Delimiter == "" {
		return ','
	}
	return []rune(c.Delimiter)[0]
}

// Save writes the configuration to path as YAML.
func Save(c *Analysis, path string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
