// Package config loads domnix configuration from flags, environment
// variables, and an optional YAML config file. Precedence: flag > env
// (DOMNIX_*) > config file > default.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults for every configurable value.
const (
	DefaultOutput  = "text"
	DefaultWorkers = 10
	DefaultTimeout = 6 * time.Second
	DefaultTLD     = "com"
)

// Config is the fully-resolved domnix configuration.
type Config struct {
	// ConfigFile is the config file path that was consulted (may not exist).
	ConfigFile string `mapstructure:"-"`

	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`

	// Output format: text, json, plain.
	Output string `mapstructure:"output"`

	// Workers is the worker-pool size for bulk checks.
	Workers int `mapstructure:"workers"`

	// Timeout bounds each WHOIS query end to end.
	Timeout time.Duration `mapstructure:"timeout"`

	// TLD is appended to input tokens without an extension.
	TLD string `mapstructure:"tld"`
}

// RegisterFlags registers all config flags on the given flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file path (YAML)")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	flags.StringP("output", "o", DefaultOutput, "output format: text, json, plain")
	flags.IntP("workers", "w", DefaultWorkers, "number of parallel WHOIS workers")
	flags.DurationP("timeout", "t", DefaultTimeout, "per-query WHOIS timeout")
	flags.String("tld", DefaultTLD, "default TLD appended to domains without an extension")
}

// Load resolves the configuration from the given parsed flag set.
// A config file is only read when --config is set; a missing file is an error
// in that case because the user asked for it explicitly.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("verbose", false)
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("tld", DefaultTLD)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	v.SetEnvPrefix("domnix")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgFile := v.GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.ConfigFile = cfgFile

	return &cfg, nil
}
