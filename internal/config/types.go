// Package config loads flowbox settings.
//
// Configuration is loaded using Viper from an optional YAML, JSON or TOML
// file, with environment variable overrides.
//
// Configuration priority (highest to lowest):
//  1. Environment variables (FLOWBOX_ prefix, e.g. FLOWBOX_CACHE_BACKEND)
//  2. Config file given by --config or FLOWBOX_CONFIG
//  3. User config file (e.g. ~/.config/flowbox/config.yaml on Linux)
//  4. [DefaultConfig] defaults
package config

import "time"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the root configuration.
type Config struct {
	Cache  CacheConfig  `mapstructure:"cache"`
	Server ServerConfig `mapstructure:"server"`
	Render RenderConfig `mapstructure:"render"`
}

// CacheConfig selects and tunes the artifact cache.
type CacheConfig struct {
	// Backend is one of "file", "redis" or "none".
	Backend string `mapstructure:"backend"`

	// Dir is the file cache directory. Empty means the XDG cache directory.
	Dir string `mapstructure:"dir"`

	// TTL is how long artifacts stay cached. Zero keeps them until cleared.
	TTL time.Duration `mapstructure:"ttl"`

	RedisAddr     string `mapstructure:"redis_addr"`
	RedisDB       int    `mapstructure:"redis_db"`
	RedisPassword string `mapstructure:"redis_password"`
}

// ServerConfig configures "flowbox serve".
type ServerConfig struct {
	Addr string `mapstructure:"addr"`

	// MaxCells caps the canvas size of a rendered document. Zero means
	// pipeline.DefaultMaxCells.
	MaxCells int `mapstructure:"max_cells"`
}

// RenderConfig holds render defaults used when flags are not given.
type RenderConfig struct {
	Format   string `mapstructure:"format"`
	Detailed bool   `mapstructure:"detailed"`
}
