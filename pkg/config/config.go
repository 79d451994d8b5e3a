// Package config loads builder and tool settings from a yaml file and
// STRBUILDER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"strbuilder-go/pkg/alloc"
	"strbuilder-go/pkg/strbuilder"
)

type Config struct {
	// Sizes accept plain byte counts or humanized values such as "4KiB".
	InitialCapacity string `mapstructure:"initial_capacity"`
	GrowthFactor    int    `mapstructure:"growth_factor"`
	MaxCapacity     string `mapstructure:"max_capacity"` // empty or "0" means unbounded
	Allocator       string `mapstructure:"allocator"`    // heap or mmap
	Compression     string `mapstructure:"compression"`  // noop, gzip or zstd
	LogLevel        string `mapstructure:"log_level"`
	LogDB           string `mapstructure:"log_db"` // SQLite log path, "default" for ~/.strbuilder-go, empty logs to stderr
}

func DefaultConfig() *Config {
	return &Config{
		InitialCapacity: humanize.IBytes(strbuilder.DefaultInitialCapacity),
		GrowthFactor:    strbuilder.DefaultGrowthFactor,
		MaxCapacity:     "0",
		Allocator:       "heap",
		Compression:     "noop",
		LogLevel:        "warn",
	}
}

// LoadConfig reads the file at path, or strbuilder.yaml from the working
// directory and ~/.strbuilder-go when path is empty, then applies
// STRBUILDER_* environment overrides. A missing default file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetDefault("initial_capacity", cfg.InitialCapacity)
	v.SetDefault("growth_factor", cfg.GrowthFactor)
	v.SetDefault("max_capacity", cfg.MaxCapacity)
	v.SetDefault("allocator", cfg.Allocator)
	v.SetDefault("compression", cfg.Compression)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("log_db", cfg.LogDB)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("strbuilder")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.strbuilder-go")
	}
	v.SetEnvPrefix("STRBUILDER")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

func parseSize(name, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if n > math.MaxInt {
		return 0, fmt.Errorf("%s %q is too large", name, s)
	}
	return int(n), nil
}

// Policy converts the sizing settings into a validated builder policy.
func (c *Config) Policy() (strbuilder.Policy, error) {
	initial, err := parseSize("initial_capacity", c.InitialCapacity)
	if err != nil {
		return strbuilder.Policy{}, err
	}
	maxCap, err := parseSize("max_capacity", c.MaxCapacity)
	if err != nil {
		return strbuilder.Policy{}, err
	}
	p := strbuilder.Policy{
		InitialCapacity: initial,
		GrowthFactor:    c.GrowthFactor,
		MaxCapacity:     maxCap,
	}
	if err := p.Validate(); err != nil {
		return strbuilder.Policy{}, err
	}
	return p, nil
}

// BuilderOptions returns the options New needs to honour this config.
func (c *Config) BuilderOptions() ([]strbuilder.Option, error) {
	p, err := c.Policy()
	if err != nil {
		return nil, err
	}
	a, err := alloc.ByName(c.Allocator)
	if err != nil {
		return nil, err
	}
	return []strbuilder.Option{strbuilder.WithPolicy(p), strbuilder.WithAllocator(a)}, nil
}

// Level parses LogLevel, defaulting to warn.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}
