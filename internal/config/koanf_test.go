// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Security.AuthMode != "jwt" {
		t.Errorf("Security.AuthMode = %q, want jwt", cfg.Security.AuthMode)
	}
	if cfg.Providers.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("TMDB.BaseURL = %q", cfg.Providers.TMDB.BaseURL)
	}
	if cfg.Providers.TMDB.ImageBaseURL != "https://image.tmdb.org/t/p/w500" {
		t.Errorf("TMDB.ImageBaseURL = %q", cfg.Providers.TMDB.ImageBaseURL)
	}
	if cfg.Providers.YouTube.BaseURL != "https://www.googleapis.com/youtube/v3" {
		t.Errorf("YouTube.BaseURL = %q", cfg.Providers.YouTube.BaseURL)
	}
	if cfg.Providers.Yelp.SearchTerm != "therapist" {
		t.Errorf("Yelp.SearchTerm = %q, want therapist", cfg.Providers.Yelp.SearchTerm)
	}
	if cfg.Aggregator.SourceTimeout != 5*time.Second {
		t.Errorf("Aggregator.SourceTimeout = %v, want 5s", cfg.Aggregator.SourceTimeout)
	}
	if cfg.Aggregator.ItemsPerSource != 3 {
		t.Errorf("Aggregator.ItemsPerSource = %d, want 3", cfg.Aggregator.ItemsPerSource)
	}
	if cfg.Aggregator.DefaultLocation != "New York, NY" {
		t.Errorf("Aggregator.DefaultLocation = %q", cfg.Aggregator.DefaultLocation)
	}
	if cfg.Providers.TMDB.Enabled() || cfg.Providers.YouTube.Enabled() || cfg.Providers.Yelp.Enabled() {
		t.Error("providers should be disabled without API keys")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"TMDB_API_KEY", "providers.tmdb.api_key"},
		{"YOUTUBE_API_KEY", "providers.youtube.api_key"},
		{"YELP_API_KEY", "providers.yelp.api_key"},
		{"HTTP_PORT", "server.port"},
		{"AUTH_MODE", "security.auth_mode"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"SOURCE_TIMEOUT", "aggregator.source_timeout"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9999\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(tmpDir, "missing.yaml"))
	wd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer func() { _ = os.Chdir(wd) }()

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	os.Clearenv()
	t.Setenv("AUTH_MODE", "jwt")
	t.Setenv("JWT_SECRET", testJWTSecret)
	t.Setenv("TMDB_API_KEY", "tmdb-key")
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("YELP_API_KEY", "yelp-key")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SOURCE_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("DISABLE_RATE_LIMIT", "true")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Providers.TMDB.APIKey != "tmdb-key" || !cfg.Providers.TMDB.Enabled() {
		t.Errorf("TMDB.APIKey = %q", cfg.Providers.TMDB.APIKey)
	}
	if cfg.Providers.YouTube.APIKey != "yt-key" {
		t.Errorf("YouTube.APIKey = %q", cfg.Providers.YouTube.APIKey)
	}
	if cfg.Providers.Yelp.APIKey != "yelp-key" {
		t.Errorf("Yelp.APIKey = %q", cfg.Providers.Yelp.APIKey)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Aggregator.SourceTimeout != 2*time.Second {
		t.Errorf("Aggregator.SourceTimeout = %v, want 2s", cfg.Aggregator.SourceTimeout)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("RateLimitDisabled should be true")
	}

	// Defaults survive for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Aggregator.DefaultLocation != "New York, NY" {
		t.Errorf("DefaultLocation = %q (default)", cfg.Aggregator.DefaultLocation)
	}
}

// TestLoadWithKoanfConfigFile tests loading configuration from a YAML file
func TestLoadWithKoanfConfigFile(t *testing.T) {
	os.Clearenv()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	configContent := `
server:
  port: 7070
security:
  auth_mode: none
providers:
  tmdb:
    api_key: file-tmdb-key
    language: en-US
aggregator:
  source_timeout: 3s
  default_location: "Boston, MA"
  cache_enabled: false
logging:
  format: console
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Security.AuthMode != "none" {
		t.Errorf("AuthMode = %q, want none", cfg.Security.AuthMode)
	}
	if cfg.Providers.TMDB.APIKey != "file-tmdb-key" || cfg.Providers.TMDB.Language != "en-US" {
		t.Errorf("TMDB = %+v", cfg.Providers.TMDB)
	}
	if cfg.Aggregator.SourceTimeout != 3*time.Second {
		t.Errorf("SourceTimeout = %v, want 3s", cfg.Aggregator.SourceTimeout)
	}
	if cfg.Aggregator.DefaultLocation != "Boston, MA" {
		t.Errorf("DefaultLocation = %q", cfg.Aggregator.DefaultLocation)
	}
	if cfg.Aggregator.CacheEnabled {
		t.Error("CacheEnabled should be false from file")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	os.Clearenv()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("security:\n  auth_mode: none\nserver:\n  port: 7070\n"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "9191")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Server.Port = %d, want 9191 (env beats file)", cfg.Server.Port)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"jwt without secret", map[string]string{"AUTH_MODE": "jwt"}},
		{"short secret", map[string]string{"AUTH_MODE": "jwt", "JWT_SECRET": "short"}},
		{"invalid auth mode", map[string]string{"AUTH_MODE": "basic"}},
		{"none in production", map[string]string{"AUTH_MODE": "none", "ENVIRONMENT": "production"}},
		{"bad port", map[string]string{"AUTH_MODE": "none", "HTTP_PORT": "70000"}},
		{"bad items per source", map[string]string{"AUTH_MODE": "none", "ITEMS_PER_SOURCE": "5"}},
		{"bad log level", map[string]string{"AUTH_MODE": "none", "LOG_LEVEL": "chatty"}},
		{"bad tmdb url", map[string]string{"AUTH_MODE": "none", "TMDB_BASE_URL": "ftp://tmdb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := LoadWithKoanf(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestWatchConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: info\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	changed := make(chan struct{}, 1)
	if err := WatchConfigFile(path, func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}); err != nil {
		t.Fatalf("WatchConfigFile() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Skip("file watcher did not fire; filesystem may not support notifications")
	}
}
