package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/scottcagno/strsearch/pkg/logger"
	"github.com/scottcagno/strsearch/pkg/search"
)

// Environment variables that override the config file.
const (
	EnvConfig    = "STRSEARCH_CONFIG"
	EnvAlgorithm = "STRSEARCH_ALGORITHM"
	EnvLogLevel  = "STRSEARCH_LOG_LEVEL"
)

var (
	ErrBadRounds     = errors.New("config: bench rounds must be at least 1")
	ErrBadMaxMatches = errors.New("config: grep max_matches must not be negative")
)

// Config represents the strsearch configuration.
type Config struct {
	Algorithm string      `yaml:"algorithm"` // kmp or bm
	LogLevel  string      `yaml:"log_level"` // trace, debug, info, warn, error, off
	Grep      GrepConfig  `yaml:"grep"`
	Bench     BenchConfig `yaml:"bench"`
}

// GrepConfig holds settings for the grep command.
type GrepConfig struct {
	ShowLineNumbers bool `yaml:"show_line_numbers"`
	MaxMatches      int  `yaml:"max_matches"` // 0 = unlimited
}

// BenchConfig holds settings for the bench command.
type BenchConfig struct {
	Rounds   int      `yaml:"rounds"`
	Patterns []string `yaml:"patterns"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Algorithm: "bm",
		LogLevel:  "info",
		Grep: GrepConfig{
			ShowLineNumbers: true,
		},
		Bench: BenchConfig{
			Rounds: 1,
			Patterns: []string{
				`So, till the judgment that yourself arise`,
				`gilded monuments`,
				`sluttish time`,
				`foo_DOES_NOT_EXIST`,
			},
		},
	}
}

// Load reads the config at path on top of the defaults and applies environment
// overrides. An empty path falls back to $STRSEARCH_CONFIG; a missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAlgorithm)); v != "" {
		c.Algorithm = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if _, err := search.ParseAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("config: algorithm %q: %w", c.Algorithm, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Bench.Rounds < 1 {
		return ErrBadRounds
	}
	if c.Grep.MaxMatches < 0 {
		return ErrBadMaxMatches
	}
	return nil
}

// SearchAlgorithm returns the configured algorithm. It must only be called on a
// validated Config.
func (c *Config) SearchAlgorithm() search.Algorithm {
	alg, _ := search.ParseAlgorithm(c.Algorithm)
	return alg
}

// Level returns the configured log level. It must only be called on a validated
// Config.
func (c *Config) Level() logger.Level {
	lvl, _ := logger.ParseLevel(c.LogLevel)
	return lvl
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
