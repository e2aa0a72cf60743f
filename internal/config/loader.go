package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/flowbox/pkg/pipeline"
)

const (
	envPrefix     = "FLOWBOX"
	configPathEnv = "FLOWBOX_CONFIG"
	appName       = "flowbox"
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{
			Backend:   BackendFile,
			TTL:       pipeline.DefaultTTL,
			RedisAddr: "localhost:6379",
		},
		Server: ServerConfig{
			Addr:     ":8080",
			MaxCells: pipeline.DefaultMaxCells,
		},
		Render: RenderConfig{
			Format: pipeline.DefaultFormat,
		},
	}
}

// Loader reads configuration through Viper.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment bindings set.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("cache.backend", cfg.Cache.Backend)
	v.SetDefault("cache.dir", cfg.Cache.Dir)
	v.SetDefault("cache.ttl", cfg.Cache.TTL)
	v.SetDefault("cache.redis_addr", cfg.Cache.RedisAddr)
	v.SetDefault("cache.redis_db", cfg.Cache.RedisDB)
	v.SetDefault("cache.redis_password", cfg.Cache.RedisPassword)
	v.SetDefault("server.addr", cfg.Server.Addr)
	v.SetDefault("server.max_cells", cfg.Server.MaxCells)
	v.SetDefault("render.format", cfg.Render.Format)
	v.SetDefault("render.detailed", cfg.Render.Detailed)
}

// Load reads the file named by FLOWBOX_CONFIG, or else the user config file
// if one exists, or else uses defaults only.
func (l *Loader) Load() (*Config, error) {
	if path := os.Getenv(configPathEnv); path != "" {
		return l.LoadFromFile(path)
	}
	if path, ok := userConfigFile(); ok {
		return l.LoadFromFile(path)
	}
	return l.unmarshal()
}

// LoadFromFile reads the given config file. Its syntax follows the file
// extension (yaml, yml, json or toml).
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	l.v.SetConfigFile(path)
	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that Viper cannot type-check.
func (c *Config) Validate() error {
	backends := []string{BackendFile, BackendRedis, BackendNone}
	if !slices.Contains(backends, c.Cache.Backend) {
		return fmt.Errorf("invalid cache.backend %q (must be one of: %s)", c.Cache.Backend, strings.Join(backends, ", "))
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("invalid cache.ttl %s: must not be negative", c.Cache.TTL)
	}
	if c.Server.MaxCells < 0 {
		return fmt.Errorf("invalid server.max_cells %d: must not be negative", c.Server.MaxCells)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errors.New("cache.redis_addr is required for the redis backend")
	}
	if err := pipeline.ValidateFormat(c.Render.Format); err != nil {
		return fmt.Errorf("invalid render.format: %w", err)
	}
	return nil
}

// userConfigFile returns the first existing config file in the platform
// config directory.
func userConfigFile() (string, bool) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	for _, name := range []string{"config.yaml", "config.yml", "config.toml", "config.json"} {
		path := filepath.Join(dir, appName, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", false
		}
	}
	return "", false
}

// CacheDir returns the configured file cache directory, defaulting to
// $XDG_CACHE_HOME/flowbox or ~/.cache/flowbox.
func (c *CacheConfig) CacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
