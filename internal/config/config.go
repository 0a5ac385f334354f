package config

import (
	"os"
	"path/filepath"
)

// Config represents the complete configuration
type Config struct {
	Update UpdateConfig `toml:"update"`
	UI     UIConfig     `toml:"ui"`
}

// UpdateConfig contains self-update settings
type UpdateConfig struct {
	// SourceURL is where --self-update fetches the latest binary from.
	SourceURL string `toml:"source_url"`
	// GitHubOwner and GitHubRepo identify the release repository used for
	// the informational "new version available" check.
	GitHubOwner string `toml:"github_owner"`
	GitHubRepo  string `toml:"github_repo"`
	// CheckRelease disables the GitHub release check when false.
	CheckRelease bool `toml:"check_release"`
}

// UIConfig contains output settings
type UIConfig struct {
	Color string `toml:"color"` // "auto" (default) or "never"
}

// GetDefaultConfig returns the default configuration
func GetDefaultConfig() *Config {
	return &Config{
		Update: UpdateConfig{
			SourceURL:    "https://github.com/dshahbaz/terminalist/releases/latest/download/terminalist",
			GitHubOwner:  "dshahbaz",
			GitHubRepo:   "terminalist",
			CheckRelease: true,
		},
		UI: UIConfig{
			Color: "auto",
		},
	}
}

// GetConfigPaths returns config file paths in order of increasing precedence
func GetConfigPaths() []string {
	paths := []string{}

	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(homeDir, ".config", "terminalist", "config.toml"),
			filepath.Join(homeDir, ".terminalist.toml"),
		)
	}

	return paths
}

