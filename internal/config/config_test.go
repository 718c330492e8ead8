package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/strsearch/pkg/logger"
	"github.com/scottcagno/strsearch/pkg/search"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, search.BoyerMoore, cfg.SearchAlgorithm())
	assert.Equal(t, logger.LevelInfo, cfg.Level())
	assert.Equal(t, 1, cfg.Bench.Rounds)
	assert.NotEmpty(t, cfg.Bench.Patterns)
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvAlgorithm, "")
	t.Setenv(EnvLogLevel, "")

	path := writeConfig(t, `
algorithm: kmp
log_level: debug
grep:
  show_line_numbers: false
  max_matches: 10
bench:
  rounds: 3
  patterns: ["a b", "c"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, search.KnuthMorrisPratt, cfg.SearchAlgorithm())
	assert.Equal(t, logger.LevelDebug, cfg.Level())
	assert.False(t, cfg.Grep.ShowLineNumbers)
	assert.Equal(t, 10, cfg.Grep.MaxMatches)
	assert.Equal(t, 3, cfg.Bench.Rounds)
	assert.Equal(t, []string{"a b", "c"}, cfg.Bench.Patterns)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(EnvAlgorithm, "")
	t.Setenv(EnvLogLevel, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "algorithm: kmp\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvAlgorithm, "")
	t.Setenv(EnvLogLevel, "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, search.KnuthMorrisPratt, cfg.SearchAlgorithm())
	assert.Equal(t, logger.LevelWarn, cfg.Level())

	t.Setenv(EnvAlgorithm, "boyer-moore")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, search.BoyerMoore, cfg.SearchAlgorithm())
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv(EnvConfig, "")
	t.Setenv(EnvAlgorithm, "")
	t.Setenv(EnvLogLevel, "")

	_, err := Load(writeConfig(t, "algorithm: [not, a, string"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "algorithm: rabin-karp\n"))
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	_, err = Load(writeConfig(t, "log_level: loud\n"))
	assert.ErrorIs(t, err, logger.ErrBadLevel)

	_, err = Load(writeConfig(t, "bench:\n  rounds: 0\n"))
	assert.ErrorIs(t, err, ErrBadRounds)

	_, err = Load(writeConfig(t, "grep:\n  max_matches: -1\n"))
	assert.ErrorIs(t, err, ErrBadMaxMatches)
}

func TestMarshalRoundTrip(t *testing.T) {
	t.Setenv(EnvAlgorithm, "")
	t.Setenv(EnvLogLevel, "")
	cfg := DefaultConfig()
	cfg.Algorithm = "kmp"
	data, err := cfg.Marshal()
	require.NoError(t, err)
	got, err := Load(writeConfig(t, string(data)))
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
