// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

/*
Package middleware provides HTTP middleware shared by the API router.

  - RequestID: request and correlation ids for structured logging
  - PrometheusMetrics: request count, latency and in-flight gauge per route

Both have the func(http.Handler) http.Handler shape expected by chi:

	r.Use(middleware.RequestID)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	})
*/
package middleware
