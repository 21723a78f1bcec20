package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultPacksDir, cfg.PacksDir)
	assert.Equal(t, filepath.Join(DefaultPacksDir, "registry.toml"), cfg.RegistryPath)
	assert.Equal(t, ChannelWebsocket, cfg.Channel.Kind)
	assert.Equal(t, "ws://127.0.0.1:8080/channels/ago.serverpacks", cfg.Channel.URL)
	assert.Equal(t, "ago.serverpacks", cfg.Channel.Name)
	assert.Equal(t, 4, cfg.Downloads.MaxConcurrent)
	assert.Equal(t, 5*time.Minute, cfg.Downloads.Timeout)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SERVERPACKS_PACKS_DIR", "/srv/packs")
	t.Setenv("SERVERPACKS_CHANNEL_KIND", "NATS")
	t.Setenv("SERVERPACKS_CHANNEL_URL", "nats://127.0.0.1:4222")
	t.Setenv("SERVERPACKS_DOWNLOADS_MAX_CONCURRENT", "2")
	t.Setenv("SERVERPACKS_DOWNLOADS_TIMEOUT", "30s")
	t.Setenv("SERVERPACKS_LOG_LEVEL", "debug")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "/srv/packs", cfg.PacksDir)
	assert.Equal(t, filepath.Join("/srv/packs", "registry.toml"), cfg.RegistryPath)
	assert.Equal(t, ChannelNATS, cfg.Channel.Kind)
	assert.Equal(t, "nats://127.0.0.1:4222", cfg.Channel.URL)
	assert.Equal(t, 2, cfg.Downloads.MaxConcurrent)
	assert.Equal(t, 30*time.Second, cfg.Downloads.Timeout)
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
}

func TestLoadReadsConfigFileFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".serverpacks")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[packs]
dir = "mods/packs"

[registry]
path = "state/registry.toml"

[downloads]
max_concurrent = 8
timeout = "1m"
`), 0o644))

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "mods/packs", cfg.PacksDir)
	assert.Equal(t, "state/registry.toml", cfg.RegistryPath)
	assert.Equal(t, 8, cfg.Downloads.MaxConcurrent)
	assert.Equal(t, time.Minute, cfg.Downloads.Timeout)
}

func TestLoadExplicitFileMustExist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "unknown channel kind", key: "SERVERPACKS_CHANNEL_KIND", val: "carrier-pigeon"},
		{name: "zero concurrency", key: "SERVERPACKS_DOWNLOADS_MAX_CONCURRENT", val: "0"},
		{name: "bad log level", key: "SERVERPACKS_LOG_LEVEL", val: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv(tt.key, tt.val)

			_, err := Load(viper.New(), "")
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
