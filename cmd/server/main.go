// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/tomtom215/moodlight/internal/api"
	"github.com/tomtom215/moodlight/internal/auth"
	"github.com/tomtom215/moodlight/internal/config"
	"github.com/tomtom215/moodlight/internal/logging"
	"github.com/tomtom215/moodlight/internal/recommend"
	"github.com/tomtom215/moodlight/internal/supervisor"
	"github.com/tomtom215/moodlight/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("auth_mode", cfg.Security.AuthMode).
		Dur("source_timeout", cfg.Aggregator.SourceTimeout).
		Msg("Starting Moodlight with supervisor tree")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows every origin; set CORS_ORIGINS in production")
	}

	set := buildSources(cfg)

	orchestrator, err := recommend.NewOrchestrator(
		orchestratorConfig(&cfg.Aggregator),
		set.sources,
		logging.Logger(),
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create orchestrator")
	}
	// Resolved per request so watchLogLevel reloads reach the orchestrator.
	orchestrator.SetLoggerFunc(func() zerolog.Logger { return logging.WithComponent("recommend") })

	authMiddleware := newAuthMiddleware(&cfg.Security)

	handler := api.NewHandler(orchestrator, set.status)
	if set.cache != nil {
		handler.SetCacheStats(set.cache)
	}

	router := api.NewRouter(
		handler,
		authMiddleware,
		api.NewChiMiddlewareFromConfig(&cfg.Security),
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if set.cache != nil {
		tree.AddDataService(set.cache)
		logging.Info().Msg("Response cache janitor added to supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	watchLogLevel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newAuthMiddleware resolves callers per AUTH_MODE. Config validation has
// already rejected unknown modes and short secrets.
func newAuthMiddleware(sec *config.SecurityConfig) *auth.Middleware {
	mode, err := auth.ParseAuthMode(sec.AuthMode)
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid auth mode")
	}

	if mode == auth.AuthModeNone {
		logging.Warn().Msg("============================================================")
		logging.Warn().Msg("  SECURITY WARNING: Authentication is DISABLED (AUTH_MODE=none)")
		logging.Warn().Msg("  Every request is attributed to the anonymous caller.")
		logging.Warn().Msg("  NEVER use AUTH_MODE=none in production!")
		logging.Warn().Msg("============================================================")
		return auth.NewMiddleware(mode, nil)
	}

	jwtManager, err := auth.NewJWTManager(sec)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	logging.Info().Msg("JWT authentication enabled")
	return auth.NewMiddleware(mode, auth.NewJWTAuthenticator(jwtManager))
}

// watchLogLevel re-reads the config file on change and applies the new
// logging settings. Other settings need a restart.
func watchLogLevel() {
	path := config.ConfigFilePath()
	if path == "" {
		return
	}

	err := config.WatchConfigFile(path, func() {
		reloaded, err := config.Load()
		if err != nil {
			logging.Warn().Err(err).Str("path", path).Msg("Ignoring invalid config change")
			return
		}
		logging.Init(logging.Config{
			Level:     reloaded.Logging.Level,
			Format:    reloaded.Logging.Format,
			Caller:    reloaded.Logging.Caller,
			Timestamp: true,
		})
		logging.Info().Str("level", reloaded.Logging.Level).Msg("Logging configuration reloaded")
	})
	if err != nil {
		logging.Warn().Err(err).Str("path", path).Msg("Config file watch unavailable")
		return
	}
	logging.Info().Str("path", path).Msg("Watching config file for logging changes")
}
