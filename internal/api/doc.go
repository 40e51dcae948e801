// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

/*
Package api exposes the catalog service over a JSON HTTP API.

Routes (all under /api/v1):

	GET  /health                 liveness
	GET  /health/tmdb            TMDB connection test
	GET  /genres                 genre table
	GET  /movies/random?genre=   three random popular movies in a genre
	GET  /movies/search?q=       title search, at most five results
	GET  /movies/{id}/trailer    random YouTube trailer or teaser
	GET  /likes                  liked movies
	POST /likes                  like a movie, body {"movie_id": 603}
	GET  /recommendations        top five genre-overlap recommendations

Every response uses the same envelope:

	{"success": true, "data": ..., "meta": {"request_id": "...", "timestamp": "..."}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "..."}, "meta": {...}}

Service errors are mapped to status codes in errors.go. Prometheus metrics
are served at /metrics and the OpenAPI document at /swagger/.
*/
package api
