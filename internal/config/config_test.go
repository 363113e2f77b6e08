package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smython-lang/smython/internal/config"
)

func TestDefaultValues(t *testing.T) {
	cfg := config.Default()
	require.Equal(t, []string{"."}, cfg.ModulePaths)
	require.Equal(t, 1000, cfg.MaxCallDepth)
	require.True(t, *cfg.EnableCurses)
	require.True(t, *cfg.EnableRandom)
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	yamlBody := "max_call_depth: 50\nenable_random: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(yamlBody), 0o644))

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	require.Equal(t, 50, cfg.MaxCallDepth)
	require.False(t, *cfg.EnableRandom)
	require.True(t, *cfg.EnableCurses)
}

func TestLoadSearchesAncestorDirectories(t *testing.T) {
	root := t.TempDir()
	yamlBody := "max_call_depth: 7\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, config.FileName), []byte(yamlBody), 0o644))

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := config.Load(nested)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.MaxCallDepth)
}

func TestApplyFlagsOverridesLoadedConfig(t *testing.T) {
	base := config.Default()
	overrides := config.Config{MaxCallDepth: 10}
	merged := config.ApplyFlags(base, overrides)
	require.Equal(t, 10, merged.MaxCallDepth)
	require.Equal(t, base.ModulePaths, merged.ModulePaths)
}
