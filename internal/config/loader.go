package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from all available sources
// Hierarchy (lowest to highest precedence):
// 1. Built-in defaults
// 2. User config (~/.config/terminalist/config.toml)
// 3. User dotfile (~/.terminalist.toml)
// 4. Environment variables (TERMINALIST_*)
func Load() (*Config, error) {
	// Start with defaults
	cfg := GetDefaultConfig()

	// Load from config files (in order)
	for _, path := range GetConfigPaths() {
		if err := loadConfigFile(cfg, path); err != nil {
			// Only return error if file exists but can't be parsed
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
			}
			// File doesn't exist - that's OK, skip it
		}
	}

	// Load from environment variables
	loadFromEnv(cfg)

	return cfg, nil
}

// loadConfigFile decodes a TOML config file over cfg. Keys absent from the
// file leave the corresponding fields untouched, so earlier sources win
// only where the file is silent.
func loadConfigFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}

	return nil
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) {
	if env := os.Getenv("TERMINALIST_SOURCE_URL"); env != "" {
		cfg.Update.SourceURL = env
	}

	if env := os.Getenv("TERMINALIST_COLOR"); env != "" {
		cfg.UI.Color = env
	}

	if env := os.Getenv("TERMINALIST_CHECK_RELEASE"); env == "false" || env == "0" {
		cfg.Update.CheckRelease = false
	}
}

// WriteExample writes an example config file to the specified path
func WriteExample(path string) error {
	example := `# terminalist configuration
# See: https://github.com/dshahbaz/terminalist

[update]
# Where --self-update downloads the latest binary from.
source_url = "https://github.com/dshahbaz/terminalist/releases/latest/download/terminalist"
# Repository consulted for the informational release check.
github_owner = "dshahbaz"
github_repo = "terminalist"
# Set to false to skip the release check during --self-update.
check_release = true

[ui]
# "auto" (default) or "never". NO_COLOR always disables color.
color = "auto"
`

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(example), 0o644)
}
