// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// Package catalog implements the user actions of Reelpick on top of the
// TMDB client, the preference store and the recommendation scorer: random
// movies by genre, title search, liking a movie, trailer lookup and
// recommendations.
//
// Each action is one synchronous call. Remote requests inside an action run
// one after another under their own timeout and are never retried.
//
// Errors:
//   - *InputError (errors.Is ErrInvalidInput) for bad user input
//   - preferences.ErrAlreadyLiked when liking a movie twice
//   - ErrNoLikedMovies when recommendations are asked for with nothing liked
//   - ErrNoTrailer when a movie has no YouTube trailer or teaser
//   - tmdb.ErrRemote for every remote failure
package catalog
