package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minecraft1024a/mofox-market/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	assert.Equal(t, "auto", cfg.Locale)
	assert.Equal(t, catalog.DefaultAPIBaseURL, cfg.Source.APIBaseURL)
	assert.Equal(t, catalog.DefaultOwner, cfg.Source.Owner)
	assert.Equal(t, catalog.DefaultRepo, cfg.Source.Repo)
	assert.Equal(t, catalog.DefaultPath, cfg.Source.Path)
	assert.Equal(t, 30, cfg.Source.TimeoutSeconds)
	assert.Empty(t, cfg.Source.File)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFrom_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	assert.Equal(t, NewConfig(), cfg)
}

func TestLoadFrom_PartialAppliesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"locale":"zh-CN","source":{"owner":"me"}}`), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "zh-CN", cfg.Locale)
	assert.Equal(t, "me", cfg.Source.Owner)
	assert.Equal(t, catalog.DefaultRepo, cfg.Source.Repo)
	assert.Equal(t, 30, cfg.Source.TimeoutSeconds)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadFrom_Invalid(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveTo_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := NewConfig()
	require.NoError(t, cfg.Set("source.file", "/tmp/plugins.json"))
	require.NoError(t, cfg.Set("log.level", "debug"))

	require.NoError(t, SaveTo(path, cfg))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_Set(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		value   string
		wantErr bool
		check   func(t *testing.T, c *Config)
	}{
		{key: "locale", value: "en-US", check: func(t *testing.T, c *Config) { assert.Equal(t, "en-US", c.Locale) }},
		{key: "source.api", value: "http://localhost", check: func(t *testing.T, c *Config) { assert.Equal(t, "http://localhost", c.Source.APIBaseURL) }},
		{key: "source.owner", value: "o", check: func(t *testing.T, c *Config) { assert.Equal(t, "o", c.Source.Owner) }},
		{key: "source.repo", value: "r", check: func(t *testing.T, c *Config) { assert.Equal(t, "r", c.Source.Repo) }},
		{key: "source.path", value: "p.json", check: func(t *testing.T, c *Config) { assert.Equal(t, "p.json", c.Source.Path) }},
		{key: "source.timeout", value: "5", check: func(t *testing.T, c *Config) { assert.Equal(t, 5, c.Source.TimeoutSeconds) }},
		{key: "source.timeout", value: "0", wantErr: true},
		{key: "source.timeout", value: "soon", wantErr: true},
		{key: "log.level", value: "info", check: func(t *testing.T, c *Config) { assert.Equal(t, "info", c.Log.Level) }},
		{key: "log.level", value: "verbose", wantErr: true},
		{key: "nope", value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			c := NewConfig()
			err := c.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestConfig_ClientConfig(t *testing.T) {
	t.Parallel()

	c := NewConfig()
	c.Source.Owner = "someone"
	c.Source.TimeoutSeconds = 7

	cc := c.ClientConfig()
	assert.Equal(t, "someone", cc.Owner)
	assert.Equal(t, 7*time.Second, cc.Timeout)
	assert.Equal(t, "mofox-market", cc.UserAgent)
	assert.Contains(t, cc.URL(), "/repos/someone/")
}
