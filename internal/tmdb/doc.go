// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// Package tmdb is the client for The Movie Database v3 API.
//
// Client performs the HTTP calls; CircuitBreakerClient wraps any API with a
// sony/gobreaker circuit breaker. Production wiring:
//
//	api := tmdb.NewCircuitBreakerClient(tmdb.NewClient(&cfg.TMDB), tmdb.DefaultBreakerSettings())
//
// Every failure satisfies errors.Is(err, tmdb.ErrRemote).
package tmdb
