// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package catalog

// RandomRequest asks for a few random popular movies of a genre.
type RandomRequest struct {
	Genre string `query:"genre" validate:"required,genre"`
}

// SearchRequest is a title search.
type SearchRequest struct {
	Query string `query:"q" validate:"required,notblank,max=500"`
}

// LikeRequest marks a movie as liked. Title is the title the user saw; the
// TMDB title is used when it is empty.
type LikeRequest struct {
	MovieID int    `json:"movie_id" validate:"required,gt=0"`
	Title   string `json:"title,omitempty" validate:"omitempty,max=500"`
}

// TrailerRequest looks up a trailer by movie id.
type TrailerRequest struct {
	MovieID int `json:"movie_id" validate:"required,gt=0"`
}
