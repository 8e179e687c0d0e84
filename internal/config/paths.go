package config

import (
	"os"
	"path/filepath"
)

var (
	homeDir string
)

func init() {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
}

// AppDir returns the mofox-market config directory path
// ~/.config/mofox-market/
func AppDir() string {
	return filepath.Join(homeDir, ".config", "mofox-market")
}

// ConfigPath returns the config.json file path
// ~/.config/mofox-market/config.json
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.json")
}

// PluginsDir returns the default download directory for plugins
// ~/.config/mofox-market/plugins/
func PluginsDir() string {
	return filepath.Join(AppDir(), "plugins")
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
