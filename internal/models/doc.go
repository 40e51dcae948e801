// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

/*
Package models defines the application's own data structures.

  - LikedMovie: a liked movie as persisted by the preferences store
  - Candidate: a TMDB movie with its genre match score
  - Trailer: a playable YouTube trailer or teaser

The TMDB wire types live in the tmdbapi subpackage.
*/
package models
