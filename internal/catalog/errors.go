// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package catalog

import (
	"errors"

	"github.com/tomtom215/reelpick/internal/validation"
)

// User-facing messages.
const (
	MsgSelectGenre       = "Please select a genre!"
	MsgEnterTitle        = "Please enter a movie title!"
	MsgNoLikedMovies     = "Please like at least one movie to get recommendations!"
	MsgNoRecommendations = "Couldn't find any recommendations. Try liking more movies with different genres!"
	MsgNoTrailer         = "No trailer available for this movie."
	MsgNoMovies          = "No movies found!"
	MsgNoSearchResults   = "No movies found matching your search."
)

var (
	// ErrInvalidInput matches every *InputError.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoLikedMovies is returned by Recommend before any remote call.
	ErrNoLikedMovies = errors.New("no liked movies")

	// ErrNoTrailer means no YouTube trailer or teaser exists for the movie.
	ErrNoTrailer = errors.New("no trailer available")
)

// InputError carries a message that can be shown to the user as is.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrInvalidInput) true.
func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func inputError(field, message string) error {
	return &InputError{Field: field, Message: message}
}

// fromValidation converts the first failed field to an InputError.
// fallback replaces the generic validator message when set.
func fromValidation(verr *validation.RequestValidationError, fallback string) error {
	errs := verr.Errors()
	if len(errs) == 0 {
		return inputError("", verr.Error())
	}
	msg := errs[0].Error()
	if fallback != "" {
		msg = fallback
	}
	return inputError(errs[0].Field(), msg)
}
