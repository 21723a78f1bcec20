package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".serverpacks"
	envPrefix  = "SERVERPACKS"

	KeyPacksDir               = "packs.dir"
	KeyRegistryPath           = "registry.path"
	KeyChannelKind            = "channel.kind"
	KeyChannelURL             = "channel.url"
	KeyChannelName            = "channel.name"
	KeyDownloadsMaxConcurrent = "downloads.max_concurrent"
	KeyDownloadsTimeout       = "downloads.timeout"
	KeyMetricsAddr            = "metrics.addr"
	KeyLogLevel               = "log.level"

	ChannelWebsocket = "websocket"
	ChannelNATS      = "nats"

	DefaultPacksDir        = "packs"
	DefaultChannelName     = "ago.serverpacks"
	DefaultChannelURL      = "ws://127.0.0.1:8080/channels/" + DefaultChannelName
	DefaultMaxConcurrent   = 4
	DefaultDownloadTimeout = 5 * time.Minute
	registryFileName       = "registry.toml"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	PacksDir     string
	RegistryPath string
	Channel      ChannelConfig
	Downloads    DownloadsConfig
	MetricsAddr  string
	LogLevel     log.Level
}

type ChannelConfig struct {
	Kind string
	URL  string
	Name string
}

type DownloadsConfig struct {
	MaxConcurrent int
	Timeout       time.Duration
}

// Load reads configuration from file, environment and defaults. An explicit
// configFile must exist; the default location is optional.
func Load(v *viper.Viper, configFile string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	v.SetConfigType(configType)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, configDir))
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPacksDir, DefaultPacksDir)
	v.SetDefault(KeyRegistryPath, "")
	v.SetDefault(KeyChannelKind, ChannelWebsocket)
	v.SetDefault(KeyChannelURL, DefaultChannelURL)
	v.SetDefault(KeyChannelName, DefaultChannelName)
	v.SetDefault(KeyDownloadsMaxConcurrent, DefaultMaxConcurrent)
	v.SetDefault(KeyDownloadsTimeout, DefaultDownloadTimeout)
	v.SetDefault(KeyMetricsAddr, "")
	v.SetDefault(KeyLogLevel, "info")

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		PacksDir:     strings.TrimSpace(v.GetString(KeyPacksDir)),
		RegistryPath: strings.TrimSpace(v.GetString(KeyRegistryPath)),
		Channel: ChannelConfig{
			Kind: strings.ToLower(strings.TrimSpace(v.GetString(KeyChannelKind))),
			URL:  strings.TrimSpace(v.GetString(KeyChannelURL)),
			Name: strings.TrimSpace(v.GetString(KeyChannelName)),
		},
		Downloads: DownloadsConfig{
			MaxConcurrent: v.GetInt(KeyDownloadsMaxConcurrent),
			Timeout:       v.GetDuration(KeyDownloadsTimeout),
		},
		MetricsAddr: strings.TrimSpace(v.GetString(KeyMetricsAddr)),
	}

	level, err := log.ParseLevel(strings.TrimSpace(v.GetString(KeyLogLevel)))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyLogLevel, err)
	}
	cfg.LogLevel = level

	if cfg.RegistryPath == "" {
		cfg.RegistryPath = filepath.Join(cfg.PacksDir, registryFileName)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.PacksDir == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyPacksDir)
	}

	switch c.Channel.Kind {
	case ChannelWebsocket, ChannelNATS:
	default:
		return fmt.Errorf("%w: unknown %s %q", ErrInvalidConfig, KeyChannelKind, c.Channel.Kind)
	}

	if c.Channel.URL == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyChannelURL)
	}
	if c.Channel.Kind == ChannelNATS && c.Channel.Name == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyChannelName)
	}

	if c.Downloads.MaxConcurrent < 1 {
		return fmt.Errorf("%w: %s must be at least 1", ErrInvalidConfig, KeyDownloadsMaxConcurrent)
	}
	if c.Downloads.Timeout <= 0 {
		return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, KeyDownloadsTimeout)
	}

	return nil
}
