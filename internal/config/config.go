// Package config provides configuration loading and structs for the Atsumeru server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug   bool          `yaml:"debug"`
	Server  ServerConfig  `yaml:"server"`
	Cache   CacheConfig   `yaml:"cache"`
	Sources SourcesConfig `yaml:"sources"`
	Curated CuratedConfig `yaml:"curated"`
	UI      UIConfig      `yaml:"ui"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// CacheConfig holds result-cache settings.
type CacheConfig struct {
	Capacity   int `yaml:"capacity"`
	TTLMinutes int `yaml:"ttl_minutes"`
}

// TTL returns the cache expiry window.
func (c *CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

// SourceConfig holds one adapter's settings.
type SourceConfig struct {
	BaseURL string `yaml:"base_url"`
	Enabled *bool  `yaml:"enabled"`
}

// EnabledOrDefault returns whether the source is enabled; defaults to true when unset.
func (s *SourceConfig) EnabledOrDefault() bool {
	if s.Enabled != nil {
		return *s.Enabled
	}
	return true
}

// SourcesConfig holds per-source adapter settings.
type SourcesConfig struct {
	TimeoutSeconds int          `yaml:"timeout_seconds"`
	Documentation  SourceConfig `yaml:"documentation"`
	Community      SourceConfig `yaml:"community"`
	DevSite        SourceConfig `yaml:"devsite"`
	Blog           SourceConfig `yaml:"blog"`
	GitHub         SourceConfig `yaml:"github"`
	GitHubTopic    string       `yaml:"github_topic"`
	Video          SourceConfig `yaml:"video"`
	VideoAPIKey    string       `yaml:"video_api_key"`
	Gated          SourceConfig `yaml:"gated"`
}

// Timeout returns the per-adapter fetch timeout.
func (s *SourcesConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// CuratedConfig holds the verified catalog settings.
type CuratedConfig struct {
	CatalogPath string `yaml:"catalog_path"`
	Watch       *bool  `yaml:"watch"`
}

// WatchOrDefault returns whether to hot-reload the catalog; defaults to true
// when a catalog path is set.
func (c *CuratedConfig) WatchOrDefault() bool {
	if c.Watch != nil {
		return *c.Watch
	}
	return c.CatalogPath != ""
}

// UIConfig holds settings the frontend reads but the core does not act on.
type UIConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// Load reads and parses the config file at path, expands paths, applies
// defaults, and resolves environment placeholders.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	if cfg.Curated.CatalogPath != "" {
		cfg.Curated.CatalogPath = expandPath(cfg.Curated.CatalogPath, configDir)
	}
	cfg.Sources.VideoAPIKey = expandEnv(cfg.Sources.VideoAPIKey)

	return &cfg, nil
}

// expandEnv resolves "${VAR}" placeholders so API keys can live in the
// environment (or a .env file) instead of the config file.
func expandEnv(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		return os.Getenv(strings.TrimSuffix(strings.TrimPrefix(value, "${"), "}"))
	}
	return value
}

// expandPath converts a path to absolute. Paths starting with "./" are relative
// to configDir; other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
