package config

import (
	"testing"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	if cfg == nil {
		t.Fatal("Expected default config, got nil")
	}

	if cfg.Update.SourceURL == "" {
		t.Error("Expected source_url to be set")
	}

	if cfg.Update.GitHubOwner != "dshahbaz" {
		t.Errorf("Expected github_owner 'dshahbaz', got '%s'", cfg.Update.GitHubOwner)
	}

	if cfg.Update.GitHubRepo != "terminalist" {
		t.Errorf("Expected github_repo 'terminalist', got '%s'", cfg.Update.GitHubRepo)
	}

	if !cfg.Update.CheckRelease {
		t.Error("Expected check_release to default to true")
	}

	if cfg.UI.Color != "auto" {
		t.Errorf("Expected color 'auto', got '%s'", cfg.UI.Color)
	}
}
