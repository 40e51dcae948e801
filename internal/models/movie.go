// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package models

import (
	"github.com/tomtom215/reelpick/internal/models/tmdbapi"
)

// MaxLikedCast is the number of billed cast members kept on a LikedMovie.
const MaxLikedCast = 5

// LikedMovie is a movie the user marked as liked. It is created once from
// the TMDB details of the movie and never mutated afterwards; the id is
// unique within a preference store. The JSON field names are the on-disk
// format of the preference file.
type LikedMovie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres"`
	VoteAverage float64  `json:"vote_average"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date"`
	Keywords    []string `json:"keywords"`
	Directors   []string `json:"directors"`
	Cast        []string `json:"cast"`
}

// NewLikedMovie builds a LikedMovie from details fetched with the credits and
// keywords sub-resources. title is the title the user saw when liking.
func NewLikedMovie(id int, title string, d *tmdbapi.MovieDetails) LikedMovie {
	if title == "" {
		title = d.Title
	}
	return LikedMovie{
		ID:          id,
		Title:       title,
		Genres:      d.GenreNames(),
		VoteAverage: d.VoteAverage,
		Overview:    d.Overview,
		ReleaseDate: d.ReleaseDate,
		Keywords:    d.KeywordNames(),
		Directors:   d.DirectorNames(),
		Cast:        d.CastNames(MaxLikedCast),
	}
}

// ReleaseYear returns the YYYY prefix of ReleaseDate, or "N/A".
func (m LikedMovie) ReleaseYear() string {
	if len(m.ReleaseDate) >= 4 {
		return m.ReleaseDate[:4]
	}
	return "N/A"
}

// Candidate is a discovery result scored against the liked genres. It lives
// for a single recommendation call; MatchScore is never persisted.
type Candidate struct {
	tmdbapi.Movie
	MatchScore int `json:"match_score"`
}

// Trailer is a playable YouTube trailer or teaser for a movie.
type Trailer struct {
	MovieID int    `json:"movie_id"`
	Name    string `json:"name"`
	Key     string `json:"key"`
	Site    string `json:"site"`
	Type    string `json:"type"`
	URL     string `json:"url"`
}

// YouTubeWatchURL is the public watch page for a YouTube video key.
func YouTubeWatchURL(key string) string {
	return "https://www.youtube.com/watch?v=" + key
}
