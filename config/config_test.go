package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)

	assert.Equal(t, "stdio", cfg.Server.Transport)
	assert.Equal(t, "localhost:7658", cfg.Server.Addr)
	assert.False(t, cfg.Server.Debug)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, 50, cfg.Completion.MaxProposals)
	assert.False(t, cfg.Completion.OverwriteByDefault)
	assert.InDelta(t, 20.0, cfg.Completion.RequestsPerSecond, 0.001)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "slate.toml")
	content := `
[server]
transport = "websocket"
addr = "localhost:9000"

[completion]
max_proposals = 10
requests_per_second = 5.0
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := LoadFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "websocket", cfg.Server.Transport)
	assert.Equal(t, "localhost:9000", cfg.Server.Addr)
	assert.Equal(t, 10, cfg.Completion.MaxProposals)
	assert.InDelta(t, 5.0, cfg.Completion.RequestsPerSecond, 0.001)

	// Defaults still fill unset keys
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Completion.OverwriteByDefault)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}
