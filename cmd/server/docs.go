// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// General API information for swag. Regenerate the docs package with:
//
//	swag init -g cmd/server/docs.go -o docs
//
// @title Reelpick API
// @version 1.0
// @description Genre-based movie discovery and recommendations backed by The Movie Database (TMDB).
// @description
// @description ## Error Responses
// @description
// @description All responses share one envelope:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {"code": "NO_LIKED_MOVIES", "message": "Please like at least one movie to get recommendations!"},
// @description   "meta": {"request_id": "...", "timestamp": "2026-01-01T12:00:00Z"}
// @description }
// @description ```
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelpick/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness and TMDB connectivity
//
// @tag.name Movies
// @tag.description Genre browsing, title search and trailers
//
// @tag.name Likes
// @tag.description Liked movies
//
// @tag.name Recommendations
// @tag.description Genre-overlap recommendations
package main
