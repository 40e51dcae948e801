// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/reelpick/internal/catalog"
	"github.com/tomtom215/reelpick/internal/logging"
	"github.com/tomtom215/reelpick/internal/preferences"
	"github.com/tomtom215/reelpick/internal/tmdb"
)

// respondServiceError maps a catalog error to a status code and writes it.
//
//	input error             400
//	TMDB 404                404
//	no trailer              404
//	already liked           409
//	nothing liked           422
//	deadline exceeded       504 (also when wrapped by the TMDB client)
//	TMDB / circuit open     502
//	anything else           500
func respondServiceError(rw *ResponseWriter, r *http.Request, err error) {
	var inputErr *catalog.InputError
	var statusErr *tmdb.StatusError

	switch {
	case errors.As(err, &inputErr):
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, inputErr.Message, fieldDetails(inputErr.Field))
	case errors.Is(err, preferences.ErrAlreadyLiked):
		rw.Conflict("Movie is already liked")
	case errors.Is(err, catalog.ErrNoLikedMovies):
		rw.Error(http.StatusUnprocessableEntity, ErrCodeNoLikedMovies, catalog.MsgNoLikedMovies)
	case errors.Is(err, catalog.ErrNoTrailer):
		rw.Error(http.StatusNotFound, ErrCodeNoTrailer, catalog.MsgNoTrailer)
	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound:
		rw.NotFound("Movie not found")
	// Client timeouts arrive wrapped in ErrRemote, so this must come first.
	case errors.Is(err, context.DeadlineExceeded):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Request timed out")
		rw.Error(http.StatusGatewayTimeout, ErrCodeTimeout, "Request timed out")
	case errors.Is(err, tmdb.ErrRemote):
		rw.ExternalServiceError("tmdb", err)
	default:
		logging.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
		rw.InternalError("Internal server error")
	}
}

func fieldDetails(field string) map[string]string {
	if field == "" {
		return nil
	}
	return map[string]string{"field": field}
}
