// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package preferences

import (
	"reflect"
	"testing"

	"github.com/tomtom215/reelpick/internal/models"
)

func sampleMovie(id int, title string) models.LikedMovie {
	return models.LikedMovie{
		ID:          id,
		Title:       title,
		Genres:      []string{"Action", "Science Fiction"},
		VoteAverage: 8.1,
		Overview:    "A hacker learns the truth.",
		ReleaseDate: "1999-03-30",
		Keywords:    []string{"simulation"},
		Directors:   []string{"Lana Wachowski", "Lilly Wachowski"},
		Cast:        []string{"Keanu Reeves", "Carrie-Anne Moss"},
	}
}

func assertMovies(t *testing.T, got, want []models.LikedMovie) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("movies mismatch\n got: %+v\nwant: %+v", got, want)
	}
}
