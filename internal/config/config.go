// Package config loads aigkit settings from an optional TOML file and
// AIGKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const appName = "aigkit"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Report ReportConfig `mapstructure:"report"`
	Render RenderConfig `mapstructure:"render"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ReportConfig holds defaults for the fanin/fanout commands.
type ReportConfig struct {
	Level int `mapstructure:"level"`
}

type RenderConfig struct {
	Detailed      bool `mapstructure:"detailed"`
	ReachableOnly bool `mapstructure:"reachable_only"`
}

type CacheConfig struct {
	Backend   string        `mapstructure:"backend"`
	Dir       string        `mapstructure:"dir"`
	RedisAddr string        `mapstructure:"redis_addr"`
	TTL       time.Duration `mapstructure:"ttl"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	return &Config{
		Log:    LogConfig{Level: "info"},
		Report: ReportConfig{Level: 1},
		Cache: CacheConfig{
			Backend:   BackendFile,
			RedisAddr: "localhost:6379",
			TTL:       7 * 24 * time.Hour,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/aigkit/config.toml, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if _, err := log.ParseLevel(c.Log.Level); c.Log.Level != "" && err != nil {
		warnings = append(warnings, fmt.Sprintf("log level %q is not recognized", c.Log.Level))
	}
	if c.Report.Level < 0 {
		warnings = append(warnings, fmt.Sprintf("report level %d is negative", c.Report.Level))
	}

	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			warnings = append(warnings, "cache backend 'redis' is configured but redis_addr is empty")
		}
	default:
		warnings = append(warnings, fmt.Sprintf("cache backend %q is unknown (want file, redis or none)", c.Cache.Backend))
	}
	if c.Cache.TTL < 0 {
		warnings = append(warnings, fmt.Sprintf("cache ttl %s is negative", c.Cache.TTL))
	}

	return warnings
}

// Load reads configuration from path and the environment. An empty path
// means the default location, which may be absent; an explicit path must
// exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("locating config: %w", err)
		}
		path = p
	}

	v := viper.New()
	setDefaults(v, Default())
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(strings.ToUpper(appName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys that
// the file does not mention.
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("report.level", d.Report.Level)
	v.SetDefault("render.detailed", d.Render.Detailed)
	v.SetDefault("render.reachable_only", d.Render.ReachableOnly)
	v.SetDefault("cache.backend", d.Cache.Backend)
	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("cache.redis_addr", d.Cache.RedisAddr)
	v.SetDefault("cache.ttl", d.Cache.TTL)
}
