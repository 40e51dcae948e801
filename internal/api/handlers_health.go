// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package api

import (
	"net/http"
	"time"
)

// HealthStatus is the liveness payload.
type HealthStatus struct {
	Status  string  `json:"status"`
	Version string  `json:"version"`
	Uptime  float64 `json:"uptime_seconds"`
}

// TMDBStatus is the connection test payload.
type TMDBStatus struct {
	Connected bool `json:"connected"`
}

// Health handles liveness checks
//
// @Summary Liveness check
// @Description Returns ok while the process is serving requests. Does not contact TMDB.
// @Tags Health
// @Produce json
// @Success 200 {object} api.APIResponse{data=api.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(HealthStatus{
		Status:  "ok",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Seconds(),
	})
}

// HealthTMDB tests the TMDB connection with the configured API key
//
// @Summary TMDB connection test
// @Description Calls the TMDB configuration endpoint. 502 when TMDB is unreachable, rejects the key, or the circuit breaker is open.
// @Tags Health
// @Produce json
// @Success 200 {object} api.APIResponse{data=api.TMDBStatus}
// @Failure 502 {object} api.APIResponse
// @Router /health/tmdb [get]
func (h *Handler) HealthTMDB(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx, cancel := h.requestContext(r)
	defer cancel()

	if err := h.catalog.CheckConnection(ctx); err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.Success(TMDBStatus{Connected: true})
}
