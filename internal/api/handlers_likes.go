// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelpick/internal/catalog"
	"github.com/tomtom215/reelpick/internal/logging"
)

// Likes lists the liked movies
//
// @Summary Liked movies
// @Description Liked movies in the order they were liked.
// @Tags Likes
// @Produce json
// @Success 200 {object} api.APIResponse{data=[]models.LikedMovie}
// @Router /likes [get]
func (h *Handler) Likes(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx, cancel := h.requestContext(r)
	defer cancel()

	movies, err := h.catalog.Likes(ctx)
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.List(movies, len(movies), "")
}

// LikeMovie adds a movie to the liked set
//
// @Summary Like a movie
// @Description Fetches the movie's details (genres, directors, cast, keywords) and stores it as liked.
// @Tags Likes
// @Accept json
// @Produce json
// @Param request body catalog.LikeRequest true "Movie to like"
// @Success 201 {object} api.APIResponse{data=models.LikedMovie}
// @Failure 400 {object} api.APIResponse
// @Failure 404 {object} api.APIResponse "Unknown movie"
// @Failure 409 {object} api.APIResponse "Already liked"
// @Failure 500 {object} api.APIResponse "Liked but not persisted"
// @Failure 502 {object} api.APIResponse
// @Router /likes [post]
func (h *Handler) LikeMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req catalog.LikeRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("Invalid request body")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	movie, err := h.catalog.Like(ctx, req)
	switch {
	case err != nil && movie != nil:
		// Liked in memory, the preferences file could not be written.
		logging.Ctx(ctx).Error().Err(err).Int("movie_id", movie.ID).Msg("Failed to save preferences")
		rw.ErrorWithDetails(http.StatusInternalServerError, ErrCodePreferencesNotSaved,
			"Failed to save user data", movie)
	case err != nil:
		respondServiceError(rw, r, err)
	default:
		rw.Created(movie)
	}
}
