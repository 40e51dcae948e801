// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelpick/internal/catalog"
	"github.com/tomtom215/reelpick/internal/models/tmdbapi"
)

// Genres lists the supported genres
//
// @Summary List genres
// @Description Returns the genre names accepted by /movies/random with their TMDB ids.
// @Tags Movies
// @Produce json
// @Success 200 {object} api.APIResponse{data=[]recommend.Genre}
// @Router /genres [get]
func (h *Handler) Genres(w http.ResponseWriter, r *http.Request) {
	genres := h.catalog.Genres()
	NewResponseWriter(w, r).List(genres, len(genres), "")
}

// RandomMovies returns random popular movies in a genre
//
// @Summary Random movies by genre
// @Description Picks a random page of popular movies (at least 100 votes) in the genre and returns up to three of them at random.
// @Tags Movies
// @Produce json
// @Param genre query string true "Genre name, case-insensitive (e.g. Action, Sci-Fi)"
// @Success 200 {object} api.APIResponse{data=[]tmdbapi.Movie}
// @Failure 400 {object} api.APIResponse
// @Failure 502 {object} api.APIResponse
// @Router /movies/random [get]
func (h *Handler) RandomMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx, cancel := h.requestContext(r)
	defer cancel()

	movies, err := h.catalog.RandomByGenre(ctx, catalog.RandomRequest{
		Genre: r.URL.Query().Get("genre"),
	})
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.List(movies, len(movies), emptyMessage(movies, catalog.MsgNoMovies))
}

// SearchMovies searches TMDB by title
//
// @Summary Search movies
// @Description Title search, at most five results.
// @Tags Movies
// @Produce json
// @Param q query string true "Title query"
// @Success 200 {object} api.APIResponse{data=[]tmdbapi.Movie}
// @Failure 400 {object} api.APIResponse
// @Failure 502 {object} api.APIResponse
// @Router /movies/search [get]
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	ctx, cancel := h.requestContext(r)
	defer cancel()

	movies, err := h.catalog.Search(ctx, catalog.SearchRequest{
		Query: r.URL.Query().Get("q"),
	})
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.List(movies, len(movies), emptyMessage(movies, catalog.MsgNoSearchResults))
}

// Trailer returns a random YouTube trailer or teaser
//
// @Summary Movie trailer
// @Description Picks one of the movie's YouTube trailers or teasers at random.
// @Tags Movies
// @Produce json
// @Param id path int true "TMDB movie id"
// @Success 200 {object} api.APIResponse{data=models.Trailer}
// @Failure 400 {object} api.APIResponse
// @Failure 404 {object} api.APIResponse "Unknown movie or no trailer"
// @Failure 502 {object} api.APIResponse
// @Router /movies/{id}/trailer [get]
func (h *Handler) Trailer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		rw.BadRequest("Invalid movie id")
		return
	}

	ctx, cancel := h.requestContext(r)
	defer cancel()

	trailer, err := h.catalog.Trailer(ctx, catalog.TrailerRequest{MovieID: id})
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.Success(trailer)
}

func emptyMessage(movies []tmdbapi.Movie, msg string) string {
	if len(movies) == 0 {
		return msg
	}
	return ""
}
