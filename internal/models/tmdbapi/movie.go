// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package tmdbapi

// Movie is a list entry returned by /discover/movie and /search/movie.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	GenreIDs    []int   `json:"genre_ids"`
	PosterPath  string  `json:"poster_path"`
}

// MovieList is the paginated envelope shared by discover and search.
type MovieList struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Genre is an entry of /genre/movie/list and of MovieDetails.Genres.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is the /genre/movie/list response.
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// MovieDetails is the /movie/{id} response. Credits, Keywords and Videos are
// only populated when requested through append_to_response.
type MovieDetails struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	ReleaseDate string    `json:"release_date"`
	VoteAverage float64   `json:"vote_average"`
	VoteCount   int       `json:"vote_count"`
	Popularity  float64   `json:"popularity"`
	Runtime     int       `json:"runtime"`
	PosterPath  string    `json:"poster_path"`
	Genres      []Genre   `json:"genres"`
	Credits     *Credits  `json:"credits,omitempty"`
	Keywords    *Keywords `json:"keywords,omitempty"`
	Videos      *Videos   `json:"videos,omitempty"`
}

// Credits is the append_to_response=credits section.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// CastMember is ordered by billing in the TMDB response.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is a credited crew member. Job is e.g. "Director".
type CrewMember struct {
	Name       string `json:"name"`
	Job        string `json:"job"`
	Department string `json:"department"`
}

// Keywords is the append_to_response=keywords section.
type Keywords struct {
	Keywords []Keyword `json:"keywords"`
}

// Keyword is a TMDB keyword tag.
type Keyword struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Videos is the append_to_response=videos section.
type Videos struct {
	Results []Video `json:"results"`
}

// Video is a trailer, teaser or clip hosted on Site under Key.
type Video struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// GenreNames returns the genre names in response order.
func (d *MovieDetails) GenreNames() []string {
	names := make([]string, 0, len(d.Genres))
	for _, g := range d.Genres {
		names = append(names, g.Name)
	}
	return names
}

// DirectorNames returns crew members whose job is "Director".
func (d *MovieDetails) DirectorNames() []string {
	names := []string{}
	if d.Credits == nil {
		return names
	}
	for _, c := range d.Credits.Crew {
		if c.Job == "Director" {
			names = append(names, c.Name)
		}
	}
	return names
}

// CastNames returns up to limit names in billing order.
func (d *MovieDetails) CastNames(limit int) []string {
	names := []string{}
	if d.Credits == nil {
		return names
	}
	for _, c := range d.Credits.Cast {
		if len(names) >= limit {
			break
		}
		names = append(names, c.Name)
	}
	return names
}

// KeywordNames returns keyword names in response order.
func (d *MovieDetails) KeywordNames() []string {
	names := []string{}
	if d.Keywords == nil {
		return names
	}
	for _, k := range d.Keywords.Keywords {
		names = append(names, k.Name)
	}
	return names
}
