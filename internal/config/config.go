package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Paths   []string `toml:"paths"`
	Rule    Rule     `toml:"rule"`
	Exclude Exclude  `toml:"exclude"`
	Watch   Watch    `toml:"watch"`
	Output  Output   `toml:"output"`
}

type Rule struct {
	Module      string `toml:"module"`
	Initializer string `toml:"initializer"`
	Memoizer    string `toml:"memoizer"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	// RescansPerSecond caps how often watch mode re-analyzes bursts of
	// changed files.
	RescansPerSecond float64 `toml:"rescans_per_second"`
}

type Output struct {
	Format string `toml:"format"` // text or sarif
	SARIF  string `toml:"sarif"`  // optional report path written alongside stdout
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"."}
	}
	if cfg.Rule.Module == "" {
		cfg.Rule.Module = "react"
	}
	if cfg.Rule.Initializer == "" {
		cfg.Rule.Initializer = "useState"
	}
	if cfg.Rule.Memoizer == "" {
		cfg.Rule.Memoizer = "useMemo"
	}
	if len(cfg.Exclude.Dirs) == 0 {
		cfg.Exclude.Dirs = []string{".git", "node_modules", "dist", "build"}
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.RescansPerSecond == 0 {
		cfg.Watch.RescansPerSecond = 2
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
}
