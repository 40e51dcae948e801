// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// Package validation validates request structs with go-playground/validator.
//
// A single validator instance is shared (it caches struct metadata). Errors
// name fields by their json or query tag so that messages match what the
// client sent:
//
//	type LikeRequest struct {
//	    MovieID int `json:"movie_id" validate:"required,gt=0"`
//	}
//
//	err := validation.ValidateStruct(&LikeRequest{})
//	// err.Error() == "movie_id is required"
package validation
