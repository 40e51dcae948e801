// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// Package tmdbapi holds the wire types of The Movie Database v3 API responses
// consumed by Reelpick: discover/search lists, the genre list and movie
// details with the credits, keywords and videos sub-resources.
package tmdbapi
