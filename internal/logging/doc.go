// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// Package logging provides the zerolog-based structured logger used across Reelpick.
//
// A global logger is configured once from main:
//
//	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
//
//	logging.Info().Int("movie_id", id).Msg("Movie liked")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Discovery query failed")
//
// Ctx attaches the request_id and correlation_id that the HTTP middleware
// stores in the request context. NewSlogLogger bridges the global logger
// to slog for the suture supervisor event hook.
//
// Always terminate event chains with Msg or Send, otherwise nothing is written.
package logging
