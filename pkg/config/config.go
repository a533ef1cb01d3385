// Package config manages the TOML configuration for trieserve.
package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/kelsivan/trieserve/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
}

// ServerConfig bounds what the IPC surface accepts.
type ServerConfig struct {
	MaxLimit     int `toml:"max_limit"`
	MaxPrefix    int `toml:"max_prefix"`
	DefaultLimit int `toml:"default_limit"`
}

// CacheConfig controls the completion result cache.
type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	MaxEntries int  `toml:"max_entries"`
}

// DefaultConfig returns a Config with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:     64,
			MaxPrefix:    256,
			DefaultLimit: 10,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 4096,
		},
	}
}

// LoadConfig reads a TOML file over the defaults, so absent keys keep
// their built-in values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := utils.LoadTOMLFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// InitConfig loads the config at path, creating it with defaults when
// missing. Any failure degrades to defaults with a warning; config
// trouble never takes the process down.
func InitConfig(path string) *Config {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		log.Warnf("cannot create config directory for %s: %v, using defaults", path, err)
		return DefaultConfig()
	}
	if !utils.FileExists(path) {
		cfg := DefaultConfig()
		if err := SaveConfig(cfg, path); err != nil {
			log.Warnf("cannot write default config to %s: %v, using defaults", path, err)
		} else {
			log.Debugf("created default config at %s", path)
		}
		return cfg
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Warnf("cannot parse config %s: %v, using defaults", path, err)
		return DefaultConfig()
	}
	return cfg
}

// SaveConfig writes cfg to a TOML file.
func SaveConfig(cfg *Config, path string) error {
	return utils.SaveTOMLFile(cfg, path)
}
