// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// Package main is the Reelpick server.
//
// Reelpick browses The Movie Database (TMDB) by genre and title, remembers
// liked movies, and recommends movies sharing the most genres with them.
//
// # Startup
//
//  1. Configuration: defaults, config.yaml, .env and environment (koanf)
//  2. Logging: zerolog, level and format from configuration
//  3. TMDB client behind a circuit breaker, with a connection test
//  4. Preferences store: JSON file (default) or BadgerDB
//  5. Recommendation scorer and catalog service
//  6. Chi router, HTTP server and supervisor tree
//
// # Configuration
//
// TMDB_API_KEY is required. Other common settings:
//
//	HTTP_PORT=8080
//	PREFERENCES_PATH=user_preferences.json
//	PREFERENCES_BACKEND=badger PREFERENCES_BADGER_DIR=data/preferences
//	LOG_LEVEL=debug LOG_FORMAT=console
//
// # Signals
//
// SIGINT and SIGTERM stop the supervisor tree. The HTTP server finishes
// in-flight requests within HTTP_SHUTDOWN_TIMEOUT before the preferences
// store is closed.
package main
