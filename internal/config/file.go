package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configFileName is the optional TOML config file looked up in the user's
// config directory (the same directory that holds the snapshot by default).
const configFileName = "config.toml"

// FindConfigFile returns the path of the config file to load, or "" when no
// file applies. TODO_CONFIG overrides the default location explicitly.
func FindConfigFile() string {
	if path := os.Getenv("TODO_CONFIG"); path != "" {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(homeDir, ".todo", configFileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// LoadFromFile overlays the configuration with values from a TOML file.
// Keys absent from the file keep their current values.
func (c *Config) LoadFromFile(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	return nil
}
