// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package models

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelpick/internal/models/tmdbapi"
)

func TestNewLikedMovie(t *testing.T) {
	details := &tmdbapi.MovieDetails{
		ID:          27205,
		Title:       "Inception",
		Overview:    "Cobb steals secrets.",
		ReleaseDate: "2010-07-15",
		VoteAverage: 8.4,
		Genres:      []tmdbapi.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		Credits: &tmdbapi.Credits{
			Cast: []tmdbapi.CastMember{
				{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "D"}, {Name: "E"}, {Name: "F"},
			},
			Crew: []tmdbapi.CrewMember{{Name: "Christopher Nolan", Job: "Director"}, {Name: "X", Job: "Producer"}},
		},
		Keywords: &tmdbapi.Keywords{Keywords: []tmdbapi.Keyword{{Name: "dream"}}},
	}

	m := NewLikedMovie(27205, "", details)

	if m.Title != "Inception" {
		t.Errorf("Title = %q, want details title when none given", m.Title)
	}
	if len(m.Cast) != MaxLikedCast {
		t.Errorf("len(Cast) = %d, want %d", len(m.Cast), MaxLikedCast)
	}
	if len(m.Directors) != 1 || m.Directors[0] != "Christopher Nolan" {
		t.Errorf("Directors = %v", m.Directors)
	}
	if len(m.Genres) != 2 || m.Genres[1] != "Science Fiction" {
		t.Errorf("Genres = %v", m.Genres)
	}
	if m.ReleaseYear() != "2010" {
		t.Errorf("ReleaseYear() = %q, want 2010", m.ReleaseYear())
	}

	if got := NewLikedMovie(1, "Shown Title", details).Title; got != "Shown Title" {
		t.Errorf("Title = %q, want the title passed by the caller", got)
	}
}

func TestLikedMovie_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(LikedMovie{ID: 1, Title: "T"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, field := range []string{`"id"`, `"title"`, `"genres"`, `"vote_average"`, `"overview"`,
		`"release_date"`, `"keywords"`, `"directors"`, `"cast"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("encoded LikedMovie missing %s: %s", field, data)
		}
	}
}

func TestReleaseYear_Empty(t *testing.T) {
	if got := (LikedMovie{}).ReleaseYear(); got != "N/A" {
		t.Errorf("ReleaseYear() = %q, want N/A", got)
	}
}

func TestCandidate_FlattensMovie(t *testing.T) {
	c := Candidate{Movie: tmdbapi.Movie{ID: 7, Title: "X", Popularity: 1.5}, MatchScore: 2}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"id":7`) || !strings.Contains(s, `"match_score":2`) {
		t.Errorf("Candidate JSON = %s, want embedded movie fields and match_score", s)
	}
}

func TestYouTubeWatchURL(t *testing.T) {
	if got := YouTubeWatchURL("abc123"); got != "https://www.youtube.com/watch?v=abc123" {
		t.Errorf("YouTubeWatchURL() = %q", got)
	}
}
