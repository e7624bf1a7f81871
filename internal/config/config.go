// Package config loads rulesview settings from defaults, an optional YAML
// file and environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the complete rulesview configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
}

// ServerConfig configures the HTTP server
type ServerConfig struct {
	Port           string        `yaml:"port"`
	AssetsDir      string        `yaml:"assets_dir"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	ShutdownGrace  time.Duration `yaml:"shutdown_grace"`
}

// DataConfig locates the datasets. Locations are file paths or http(s) URLs.
type DataConfig struct {
	BattleProfiles string        `yaml:"battle_profiles"`
	FAQ            string        `yaml:"faq"`
	OverlayDir     string        `yaml:"overlay_dir"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout"`
}

// LogConfig configures logging
type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// OutputConfig configures the static site build
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			AssetsDir:      "assets",
			AllowedOrigins: []string{"http://localhost:*"},
			ShutdownGrace:  10 * time.Second,
		},
		Data: DataConfig{
			BattleProfiles: "data/battleprofile.json",
			FAQ:            "data/faq.json",
			FetchTimeout:   8 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
		Output: OutputConfig{
			Dir: "dist",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when path is empty), then environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}

	cfg.ApplyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML configuration file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Merge overlays non-zero values from other onto c
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Server.Port != "" {
		c.Server.Port = other.Server.Port
	}
	if other.Server.AssetsDir != "" {
		c.Server.AssetsDir = other.Server.AssetsDir
	}
	if len(other.Server.AllowedOrigins) > 0 {
		c.Server.AllowedOrigins = other.Server.AllowedOrigins
	}
	if other.Server.ShutdownGrace != 0 {
		c.Server.ShutdownGrace = other.Server.ShutdownGrace
	}

	if other.Data.BattleProfiles != "" {
		c.Data.BattleProfiles = other.Data.BattleProfiles
	}
	if other.Data.FAQ != "" {
		c.Data.FAQ = other.Data.FAQ
	}
	if other.Data.OverlayDir != "" {
		c.Data.OverlayDir = other.Data.OverlayDir
	}
	if other.Data.FetchTimeout != 0 {
		c.Data.FetchTimeout = other.Data.FetchTimeout
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Development {
		c.Log.Development = true
	}

	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}
}

// ApplyEnv applies environment overrides using getenv
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := getenv("BATTLE_PROFILES"); v != "" {
		c.Data.BattleProfiles = v
	}
	if v := getenv("FAQ_PATH"); v != "" {
		c.Data.FAQ = v
	}
	if v := getenv("OVERLAY_DIR"); v != "" {
		c.Data.OverlayDir = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := getenv("LOG_DEVELOPMENT"); v != "" {
		if dev, err := strconv.ParseBool(v); err == nil {
			c.Log.Development = dev
		}
	}
}

// Validate checks the configuration for errors
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("server.port must be numeric, got %q", c.Server.Port)
	}
	if c.Data.BattleProfiles == "" && c.Data.FAQ == "" {
		return errors.New("at least one of data.battle_profiles or data.faq is required")
	}
	if c.Data.FetchTimeout <= 0 {
		return errors.New("data.fetch_timeout must be positive")
	}
	return nil
}
