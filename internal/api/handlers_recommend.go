// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package api

import (
	"net/http"
)

// Recommendations ranks movies against the liked set
//
// @Summary Recommendations
// @Description Up to five movies sharing the most genres with the liked movies, ties broken by popularity. An empty list carries a hint in meta.message.
// @Tags Recommendations
// @Produce json
// @Success 200 {object} api.APIResponse{data=[]models.Candidate}
// @Failure 422 {object} api.APIResponse "No liked movies"
// @Failure 502 {object} api.APIResponse
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx, cancel := h.requestContext(r)
	defer cancel()

	recs, err := h.catalog.Recommend(ctx)
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.List(recs.Movies, len(recs.Movies), recs.Message)
}
