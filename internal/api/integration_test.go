// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package api

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelpick/internal/catalog"
	"github.com/tomtom215/reelpick/internal/config"
	"github.com/tomtom215/reelpick/internal/logging"
	"github.com/tomtom215/reelpick/internal/models"
	"github.com/tomtom215/reelpick/internal/models/tmdbapi"
	"github.com/tomtom215/reelpick/internal/preferences"
	"github.com/tomtom215/reelpick/internal/recommend"
	"github.com/tomtom215/reelpick/internal/tmdb"
)

// stubTMDB serves the subset of the TMDB API the application uses.
func stubTMDB(t *testing.T) *httptest.Server {
	t.Helper()

	discover := map[string][]tmdbapi.Movie{
		"28": {
			{ID: 603, Title: "The Matrix", GenreIDs: []int{28, 878}, Popularity: 80},
			{ID: 101, Title: "Action Only", GenreIDs: []int{28}, Popularity: 90},
			{ID: 102, Title: "Action Sci-Fi", GenreIDs: []int{28, 878}, Popularity: 40},
		},
		"878": {
			{ID: 102, Title: "Action Sci-Fi", GenreIDs: []int{28, 878}, Popularity: 40},
			{ID: 103, Title: "Sci-Fi Only", GenreIDs: []int{878}, Popularity: 60},
		},
	}
	matrix := tmdbapi.MovieDetails{
		ID:          603,
		Title:       "The Matrix",
		ReleaseDate: "1999-03-30",
		VoteAverage: 8.2,
		Genres:      []tmdbapi.Genre{{ID: 28, Name: "Action"}, {ID: 878, Name: "Science Fiction"}},
		Credits: &tmdbapi.Credits{
			Cast: []tmdbapi.CastMember{{Name: "Keanu Reeves"}},
			Crew: []tmdbapi.CrewMember{{Name: "Lana Wachowski", Job: "Director"}},
		},
		Keywords: &tmdbapi.Keywords{Keywords: []tmdbapi.Keyword{{ID: 1, Name: "simulated reality"}}},
		Videos: &tmdbapi.Videos{Results: []tmdbapi.Video{
			{Key: "vKQi3bBA1y8", Name: "Official Trailer", Site: "YouTube", Type: "Trailer"},
		}},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api_key") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")

		var body interface{}
		switch {
		case r.URL.Path == "/discover/movie":
			body = tmdbapi.MovieList{Page: 1, Results: discover[r.URL.Query().Get("with_genres")]}
		case r.URL.Path == "/search/movie":
			body = tmdbapi.MovieList{Page: 1, Results: []tmdbapi.Movie{{ID: 603, Title: "The Matrix"}}}
		case r.URL.Path == "/movie/603":
			body = matrix
		case r.URL.Path == "/genre/movie/list":
			body = tmdbapi.GenreList{Genres: []tmdbapi.Genre{{ID: 28, Name: "Action"}}}
		case strings.HasPrefix(r.URL.Path, "/movie/"):
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
			return
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newIntegrationServer(t *testing.T) (http.Handler, string) {
	t.Helper()
	return newIntegrationStack(t, stubTMDB(t).URL, 5*time.Second)
}

// newIntegrationStack wires the real client, breaker, store, scorer and
// router against baseURL.
func newIntegrationStack(t *testing.T, baseURL string, requestTimeout time.Duration) (http.Handler, string) {
	t.Helper()

	client := tmdb.NewClient(&config.TMDBConfig{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Language:       "en-US",
		Timeout:        2 * time.Second,
		TrailerTimeout: 2 * time.Second,
	})
	api := tmdb.NewCircuitBreakerClient(client, tmdb.DefaultBreakerSettings())

	path := filepath.Join(t.TempDir(), "user_preferences.json")
	store := preferences.NewFileStore(path)

	scorer, err := recommend.NewScorer(api, recommend.DefaultConfig(), logging.Logger())
	if err != nil {
		t.Fatal(err)
	}

	svc := catalog.NewService(api, store, scorer, catalog.Options{})
	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitDisabled = true
	return NewRouter(NewHandler(svc, requestTimeout, "test"), mw).SetupChi(), path
}

func TestIntegration_LikeThenRecommend(t *testing.T) {
	h, path := newIntegrationServer(t)

	rec, env := do(t, h, http.MethodGet, "/api/v1/recommendations", nil)
	if rec.Code != http.StatusUnprocessableEntity || env.Error.Message != catalog.MsgNoLikedMovies {
		t.Fatalf("before liking: status = %d, error = %+v", rec.Code, env.Error)
	}

	rec, env = do(t, h, http.MethodPost, "/api/v1/likes", strings.NewReader(`{"movie_id": 603}`))
	if rec.Code != http.StatusCreated {
		t.Fatalf("like: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var liked models.LikedMovie
	if err := json.Unmarshal(env.Data, &liked); err != nil {
		t.Fatal(err)
	}
	if liked.Title != "The Matrix" || len(liked.Directors) != 1 || liked.Keywords[0] != "simulated reality" {
		t.Errorf("liked = %+v", liked)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("preferences file not written: %v", err)
	}
	if !strings.Contains(string(raw), `"id": 603`) {
		t.Errorf("preferences file = %s", raw)
	}

	rec, _ = do(t, h, http.MethodPost, "/api/v1/likes", strings.NewReader(`{"movie_id": 603}`))
	if rec.Code != http.StatusConflict {
		t.Errorf("second like: status = %d, want 409", rec.Code)
	}

	rec, env = do(t, h, http.MethodGet, "/api/v1/recommendations", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("recommend: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got []models.Candidate
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}

	// 603 is liked and excluded. 102 is returned by both genre queries but
	// listed once; 101 and 103 tie on score and are ordered by popularity.
	wantIDs := []int{102, 101, 103}
	wantScores := []int{2, 1, 1}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d candidates, want %d: %+v", len(got), len(wantIDs), got)
	}
	for i := range wantIDs {
		if got[i].ID != wantIDs[i] || got[i].MatchScore != wantScores[i] {
			t.Errorf("candidate %d = (%d, score %d), want (%d, score %d)",
				i, got[i].ID, got[i].MatchScore, wantIDs[i], wantScores[i])
		}
	}
}

func TestIntegration_TrailerAndUnknownMovie(t *testing.T) {
	h, _ := newIntegrationServer(t)

	rec, env := do(t, h, http.MethodGet, "/api/v1/movies/603/trailer", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("trailer: status = %d", rec.Code)
	}
	var trailer models.Trailer
	if err := json.Unmarshal(env.Data, &trailer); err != nil {
		t.Fatal(err)
	}
	if trailer.URL != "https://www.youtube.com/watch?v=vKQi3bBA1y8" {
		t.Errorf("url = %q", trailer.URL)
	}

	rec, env = do(t, h, http.MethodGet, "/api/v1/movies/999/trailer", nil)
	if rec.Code != http.StatusNotFound || env.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown movie: status = %d, error = %+v", rec.Code, env.Error)
	}
}

func TestIntegration_InputErrors(t *testing.T) {
	h, _ := newIntegrationServer(t)

	tests := []struct {
		target  string
		message string
	}{
		{"/api/v1/movies/random", catalog.MsgSelectGenre},
		{"/api/v1/movies/random?genre=Western", ""},
		{"/api/v1/movies/search?q=%20%20", catalog.MsgEnterTitle},
	}
	for _, tt := range tests {
		rec, env := do(t, h, http.MethodGet, tt.target, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tt.target, rec.Code)
			continue
		}
		if tt.message != "" && env.Error.Message != tt.message {
			t.Errorf("%s: message = %q, want %q", tt.target, env.Error.Message, tt.message)
		}
	}
}

func TestIntegration_HealthTMDB(t *testing.T) {
	h, _ := newIntegrationServer(t)

	rec, env := do(t, h, http.MethodGet, "/api/v1/health/tmdb", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var status TMDBStatus
	if err := json.Unmarshal(env.Data, &status); err != nil {
		t.Fatal(err)
	}
	if !status.Connected {
		t.Error("expected connected")
	}
}

func TestIntegration_SlowTMDBTimesOut(t *testing.T) {
	release := make(chan struct{})
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(slow.Close)
	t.Cleanup(func() { close(release) }) // runs before slow.Close

	h, _ := newIntegrationStack(t, slow.URL, 100*time.Millisecond)

	start := time.Now()
	rec, env := do(t, h, http.MethodGet, "/api/v1/movies/search?q=matrix", nil)
	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504, body = %s", rec.Code, rec.Body.String())
	}
	if env.Error == nil || env.Error.Code != ErrCodeTimeout {
		t.Errorf("error = %+v, want %s", env.Error, ErrCodeTimeout)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("request took %v, the handler deadline is 100ms", elapsed)
	}
}

func TestIntegration_UnknownMoviesDoNotOpenBreaker(t *testing.T) {
	h, _ := newIntegrationServer(t)

	for i := 0; i < 2*int(tmdb.DefaultBreakerSettings().MinRequests); i++ {
		rec, _ := do(t, h, http.MethodGet, "/api/v1/movies/999999/trailer", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("lookup %d: status = %d, want 404", i, rec.Code)
		}
	}

	rec, _ := do(t, h, http.MethodGet, "/api/v1/movies/search?q=matrix", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("search after unknown ids: status = %d, want 200", rec.Code)
	}
}
