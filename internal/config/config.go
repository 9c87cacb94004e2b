// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Providers  ProvidersConfig  `koanf:"providers"`
	Aggregator AggregatorConfig `koanf:"aggregator"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// Addr returns host:port for http.Server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// SecurityConfig holds caller authentication and inbound limits
type SecurityConfig struct {
	AuthMode          string        `koanf:"auth_mode"`
	JWTSecret         string        `koanf:"jwt_secret"`
	SessionTimeout    time.Duration `koanf:"session_timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// ProvidersConfig groups the upstream content providers
type ProvidersConfig struct {
	TMDB    TMDBConfig    `koanf:"tmdb"`
	YouTube YouTubeConfig `koanf:"youtube"`
	Yelp    YelpConfig    `koanf:"yelp"`
}

// TMDBConfig configures the movie discovery provider
type TMDBConfig struct {
	BaseURL           string        `koanf:"base_url"`
	APIKey            string        `koanf:"api_key"`
	ImageBaseURL      string        `koanf:"image_base_url"`
	SiteURL           string        `koanf:"site_url"`
	Language          string        `koanf:"language"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Timeout           time.Duration `koanf:"timeout"`
}

// Enabled reports whether an API key is configured.
func (c TMDBConfig) Enabled() bool { return c.APIKey != "" }

// YouTubeConfig configures the video search provider
type YouTubeConfig struct {
	BaseURL           string        `koanf:"base_url"`
	APIKey            string        `koanf:"api_key"`
	WatchURL          string        `koanf:"watch_url"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Timeout           time.Duration `koanf:"timeout"`
}

func (c YouTubeConfig) Enabled() bool { return c.APIKey != "" }

// YelpConfig configures the local-business directory provider
type YelpConfig struct {
	BaseURL           string        `koanf:"base_url"`
	APIKey            string        `koanf:"api_key"`
	SearchTerm        string        `koanf:"search_term"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Timeout           time.Duration `koanf:"timeout"`
}

func (c YelpConfig) Enabled() bool { return c.APIKey != "" }

// AggregatorConfig controls the scatter-gather and its resilience layers
type AggregatorConfig struct {
	// SourceTimeout bounds each source call; 0 disables the bound.
	SourceTimeout   time.Duration `koanf:"source_timeout"`
	ItemsPerSource  int           `koanf:"items_per_source"`
	DefaultLocation string        `koanf:"default_location"`
	CacheEnabled    bool          `koanf:"cache_enabled"`
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
	BreakerEnabled  bool          `koanf:"breaker_enabled"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, then validates it. See LoadWithKoanf.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
