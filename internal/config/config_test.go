package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hooklint.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"."}, cfg.Paths)
	assert.Equal(t, "react", cfg.Rule.Module)
	assert.Equal(t, "useState", cfg.Rule.Initializer)
	assert.Equal(t, "useMemo", cfg.Rule.Memoizer)
	assert.Contains(t, cfg.Exclude.Dirs, "node_modules")
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, 2.0, cfg.Watch.RescansPerSecond)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
paths = ["src", "lib"]

[rule]
module = "solid-js"
initializer = "createSignal"
memoizer = "createMemo"

[exclude]
dirs = ["vendor"]
files = ["*.min.js"]

[watch]
debounce = "250ms"
rescans_per_second = 5.0

[output]
format = "sarif"
sarif = "report.sarif"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"src", "lib"}, cfg.Paths)
	assert.Equal(t, "solid-js", cfg.Rule.Module)
	assert.Equal(t, "createSignal", cfg.Rule.Initializer)
	assert.Equal(t, "createMemo", cfg.Rule.Memoizer)
	assert.Equal(t, []string{"vendor"}, cfg.Exclude.Dirs)
	assert.Equal(t, []string{"*.min.js"}, cfg.Exclude.Files)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, 5.0, cfg.Watch.RescansPerSecond)
	assert.Equal(t, "sarif", cfg.Output.Format)
	assert.Equal(t, "report.sarif", cfg.Output.SARIF)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
[rule]
initializer = "useSignal"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	// Explicit value survives, everything else defaults.
	assert.Equal(t, "useSignal", cfg.Rule.Initializer)
	assert.Equal(t, "react", cfg.Rule.Module)
	assert.Equal(t, "useMemo", cfg.Rule.Memoizer)
	assert.Equal(t, []string{"."}, cfg.Paths)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, "paths = [unclosed")
	_, err := Load(path)
	require.Error(t, err)
}
