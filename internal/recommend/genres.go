// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package recommend

import (
	"strings"

	"github.com/tomtom215/reelpick/internal/models"
)

// Genre is an entry of the genre table.
type Genre struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// genreTable is ordered as presented to users.
var genreTable = []Genre{
	{Name: "Action", ID: 28},
	{Name: "Adventure", ID: 12},
	{Name: "Animation", ID: 16},
	{Name: "Comedy", ID: 35},
	{Name: "Crime", ID: 80},
	{Name: "Drama", ID: 18},
	{Name: "Fantasy", ID: 14},
	{Name: "Horror", ID: 27},
	{Name: "Romance", ID: 10749},
	{Name: "Sci-Fi", ID: 878},
}

// genreAliases maps the names TMDB itself uses where they differ from the
// table. Liked movies store TMDB genre names.
var genreAliases = map[string]int{
	"science fiction": 878,
}

var genreIndex = buildGenreIndex()

func buildGenreIndex() map[string]int {
	idx := make(map[string]int, len(genreTable)+len(genreAliases))
	for _, g := range genreTable {
		idx[strings.ToLower(g.Name)] = g.ID
	}
	for name, id := range genreAliases {
		idx[name] = id
	}
	return idx
}

// Resolve returns the TMDB id for a genre name, ignoring case and
// surrounding whitespace.
func Resolve(name string) (int, bool) {
	id, ok := genreIndex[strings.ToLower(strings.TrimSpace(name))]
	return id, ok
}

// Genres returns a copy of the genre table.
func Genres() []Genre {
	out := make([]Genre, len(genreTable))
	copy(out, genreTable)
	return out
}

// Names returns the genre names in table order.
func Names() []string {
	names := make([]string, len(genreTable))
	for i, g := range genreTable {
		names[i] = g.Name
	}
	return names
}

// IDs resolves names in order, skipping unknown names and repeated ids.
func IDs(names []string) []int {
	ids := make([]int, 0, len(names))
	seen := make(map[int]struct{}, len(names))
	for _, name := range names {
		id, ok := Resolve(name)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// LikedGenreNames collects genre names across liked movies in first-seen
// order. Names are deduplicated exactly; resolution handles case.
func LikedGenreNames(liked []models.LikedMovie) []string {
	var names []string
	seen := make(map[string]struct{})
	for i := range liked {
		for _, name := range liked[i].Genres {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}
