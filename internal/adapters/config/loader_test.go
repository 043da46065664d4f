package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/binit/internal/adapters/config"
	"go.trai.ch/binit/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	loader := &config.FileLoader{}

	cfg, err := loader.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
shredRuns: 3
recursive: true
trashDir: /tmp/custom-bin
progress: progrock
`)
	loader := &config.FileLoader{}

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.ShredRuns)
	assert.True(t, cfg.Recursive)
	assert.Equal(t, "/tmp/custom-bin", cfg.TrashDir)
	assert.Equal(t, domain.ProgressProgrock, cfg.Progress)
}

func TestLoad_ZeroShredRunsAccepted(t *testing.T) {
	path := writeConfig(t, "shredRuns: 0\n")
	loader := &config.FileLoader{}

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.ShredRuns)
}

func TestLoad_NegativeShredRunsRejected(t *testing.T) {
	path := writeConfig(t, "shredRuns: -1\n")
	loader := &config.FileLoader{}

	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoad_UnknownProgressModeRejected(t *testing.T) {
	path := writeConfig(t, "progress: dancing\n")
	loader := &config.FileLoader{}

	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "shredRuns: [not a number\n")
	loader := &config.FileLoader{}

	_, err := loader.Load(path)
	require.Error(t, err)
}

func TestLoad_PartialConfigKeepsOtherDefaults(t *testing.T) {
	path := writeConfig(t, "recursive: true\n")
	loader := &config.FileLoader{}

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Recursive)
	assert.Equal(t, 1, cfg.ShredRuns)
	assert.Equal(t, domain.ProgressConsole, cfg.Progress)
}
