// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/moodlight/config.yaml",
	"/etc/moodlight/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			Timeout:         30 * time.Second,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			AuthMode:        "jwt",
			SessionTimeout:  24 * time.Hour,
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
		},
		Providers: ProvidersConfig{
			TMDB: TMDBConfig{
				BaseURL:           "https://api.themoviedb.org/3",
				ImageBaseURL:      "https://image.tmdb.org/t/p/w500",
				SiteURL:           "https://www.themoviedb.org/movie",
				RequestsPerSecond: 20,
				Timeout:           10 * time.Second,
			},
			YouTube: YouTubeConfig{
				BaseURL:           "https://www.googleapis.com/youtube/v3",
				WatchURL:          "https://www.youtube.com/watch",
				RequestsPerSecond: 5,
				Timeout:           10 * time.Second,
			},
			Yelp: YelpConfig{
				BaseURL:           "https://api.yelp.com/v3",
				SearchTerm:        "therapist",
				RequestsPerSecond: 5,
				Timeout:           10 * time.Second,
			},
		},
		Aggregator: AggregatorConfig{
			SourceTimeout:   5 * time.Second,
			ItemsPerSource:  3,
			DefaultLocation: "New York, NY",
			CacheEnabled:    true,
			CacheTTL:        5 * time.Minute,
			CacheMaxEntries: 1000,
			BreakerEnabled:  true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration using Koanf with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// TMDB_API_KEY -> providers.tmdb.api_key, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// ConfigFilePath returns the config file LoadWithKoanf reads, or "" when
// none exists.
func ConfigFilePath() string {
	return findConfigFile()
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_host":        "server.host",
	"http_port":        "server.port",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Security
	"auth_mode":           "security.auth_mode",
	"jwt_secret":          "security.jwt_secret",
	"session_timeout":     "security.session_timeout",
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Providers
	"tmdb_api_key":                "providers.tmdb.api_key",
	"tmdb_base_url":               "providers.tmdb.base_url",
	"tmdb_language":               "providers.tmdb.language",
	"tmdb_requests_per_second":    "providers.tmdb.requests_per_second",
	"youtube_api_key":             "providers.youtube.api_key",
	"youtube_base_url":            "providers.youtube.base_url",
	"youtube_requests_per_second": "providers.youtube.requests_per_second",
	"yelp_api_key":                "providers.yelp.api_key",
	"yelp_base_url":               "providers.yelp.base_url",
	"yelp_requests_per_second":    "providers.yelp.requests_per_second",

	// Aggregator
	"source_timeout":    "aggregator.source_timeout",
	"items_per_source":  "aggregator.items_per_source",
	"default_location":  "aggregator.default_location",
	"cache_enabled":     "aggregator.cache_enabled",
	"cache_ttl":         "aggregator.cache_ttl",
	"cache_max_entries": "aggregator.cache_max_entries",
	"breaker_enabled":   "aggregator.breaker_enabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}

// WatchConfigFile calls callback whenever the file at path changes. The
// caller owns any locking around the reloaded configuration.
func WatchConfigFile(path string, callback func()) error {
	return file.Provider(path).Watch(func(_ interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
