package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/minecraft1024a/mofox-market/internal/catalog"
)

// SourceConfig describes where plugin_details.json is fetched from
type SourceConfig struct {
	APIBaseURL     string `json:"api"`            // GitHub API root
	Owner          string `json:"owner"`          // repository owner
	Repo           string `json:"repo"`           // repository name
	Path           string `json:"path"`           // manifest path inside the repository
	TimeoutSeconds int    `json:"timeoutSeconds"` // HTTP timeout (default: 30)
	File           string `json:"file,omitempty"` // local plugin_details.json used instead of GitHub
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level"` // "debug", "info", "warn", "error" (default: warn)
}

// Config represents the main configuration file structure
type Config struct {
	Locale string       `json:"locale"` // "auto" or ISO format (e.g., "zh-CN", "en-US")
	Source SourceConfig `json:"source"`
	Log    LogConfig    `json:"log"`
}

var (
	cfg     *Config
	cfgOnce sync.Once
	cfgMu   sync.RWMutex
)

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Locale: "auto", // default: auto-detect system locale
		Source: SourceConfig{
			APIBaseURL:     catalog.DefaultAPIBaseURL,
			Owner:          catalog.DefaultOwner,
			Repo:           catalog.DefaultRepo,
			Path:           catalog.DefaultPath,
			TimeoutSeconds: 30,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// applyDefaults fills empty fields with their default values
func (c *Config) applyDefaults() {
	defaults := NewConfig()

	if c.Locale == "" {
		c.Locale = defaults.Locale
	}
	if c.Source.APIBaseURL == "" {
		c.Source.APIBaseURL = defaults.Source.APIBaseURL
	}
	if c.Source.Owner == "" {
		c.Source.Owner = defaults.Source.Owner
	}
	if c.Source.Repo == "" {
		c.Source.Repo = defaults.Source.Repo
	}
	if c.Source.Path == "" {
		c.Source.Path = defaults.Source.Path
	}
	if c.Source.TimeoutSeconds <= 0 {
		c.Source.TimeoutSeconds = defaults.Source.TimeoutSeconds
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// ClientConfig returns the catalogue client configuration for this config
func (c *Config) ClientConfig() catalog.ClientConfig {
	cc := catalog.DefaultClientConfig()
	cc.APIBaseURL = c.Source.APIBaseURL
	cc.Owner = c.Source.Owner
	cc.Repo = c.Source.Repo
	cc.Path = c.Source.Path
	cc.Timeout = time.Duration(c.Source.TimeoutSeconds) * time.Second
	return cc
}

// Set updates a configuration value by its dotted key
func (c *Config) Set(key, value string) error {
	switch key {
	case "locale":
		c.Locale = value
	case "source.api":
		c.Source.APIBaseURL = value
	case "source.owner":
		c.Source.Owner = value
	case "source.repo":
		c.Source.Repo = value
	case "source.path":
		c.Source.Path = value
	case "source.file":
		c.Source.File = value
	case "source.timeout":
		seconds, err := strconv.Atoi(value)
		if err != nil || seconds <= 0 {
			return fmt.Errorf("invalid value '%s' for %s. Expected a positive number of seconds", value, key)
		}
		c.Source.TimeoutSeconds = seconds
	case "log.level":
		switch value {
		case "debug", "info", "warn", "error":
			c.Log.Level = value
		default:
			return fmt.Errorf("invalid value '%s' for %s. Valid values: debug, info, warn, error", value, key)
		}
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

// LoadFrom loads the configuration from path. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	config.applyDefaults()
	return &config, nil
}

// SaveTo writes the configuration to path
func SaveTo(path string, config *Config) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Load loads the configuration from the default config file
func Load() (*Config, error) {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return LoadFrom(ConfigPath())
}

// Save saves the configuration to the default config file
func Save(config *Config) error {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	return SaveTo(ConfigPath(), config)
}

// Get returns the current configuration (singleton)
func Get() *Config {
	cfgOnce.Do(func() {
		var err error
		cfg, err = Load()
		if err != nil {
			cfg = NewConfig()
		}
	})
	return cfg
}

// GetLocale returns the configured locale
func GetLocale() string {
	return Get().Locale
}

// SetValue sets a configuration value by key and saves
func SetValue(key, value string) error {
	config := Get()
	if err := config.Set(key, value); err != nil {
		return err
	}
	return Save(config)
}
