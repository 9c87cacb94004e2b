// Moodlight - Mood-Driven Recommendation Aggregator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodlight

/*
Package supervisor runs Moodlight's long-lived services under a
suture/v4 supervision tree.

Tree layout:

	moodlight (root)
	├── data-layer   response cache janitor
	└── api-layer    HTTP server

A service that returns an error or panics is restarted by its layer
supervisor with suture's backoff. Cancelling the context passed to Serve
stops every layer, which is how SIGINT/SIGTERM trigger graceful shutdown.

Supervisor events are logged through the zerolog-backed slog handler from
internal/logging via sutureslog.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddDataService(responseCache)
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
