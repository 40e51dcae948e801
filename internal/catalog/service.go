// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package catalog

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelpick/internal/config"
	"github.com/tomtom215/reelpick/internal/logging"
	"github.com/tomtom215/reelpick/internal/metrics"
	"github.com/tomtom215/reelpick/internal/models"
	"github.com/tomtom215/reelpick/internal/models/tmdbapi"
	"github.com/tomtom215/reelpick/internal/preferences"
	"github.com/tomtom215/reelpick/internal/recommend"
	"github.com/tomtom215/reelpick/internal/tmdb"
	"github.com/tomtom215/reelpick/internal/validation"
)

// Recommender ranks candidates for a liked set. *recommend.Scorer implements it.
type Recommender interface {
	Recommend(ctx context.Context, liked []models.LikedMovie) ([]models.Candidate, error)
}

// Options tunes browsing. Zero values fall back to the defaults below.
type Options struct {
	// RandomMinVotes is the vote_count.gte floor for random browsing (100).
	RandomMinVotes int
	// RandomMaxPage is the highest discovery page picked at random (5).
	RandomMaxPage int
	// RandomSample is the number of movies returned (3).
	RandomSample int
	// SearchLimit caps search results (5).
	SearchLimit int
	// Rand overrides the random source, for tests.
	Rand *rand.Rand
}

// OptionsFrom converts the TMDB configuration section.
func OptionsFrom(cfg *config.TMDBConfig) Options {
	return Options{
		RandomMinVotes: cfg.RandomMinVotes,
		RandomMaxPage:  cfg.RandomMaxPage,
		RandomSample:   cfg.RandomSample,
		SearchLimit:    cfg.SearchLimit,
	}
}

func (o *Options) applyDefaults() {
	if o.RandomMinVotes <= 0 {
		o.RandomMinVotes = 100
	}
	if o.RandomMaxPage <= 0 {
		o.RandomMaxPage = 5
	}
	if o.RandomSample <= 0 {
		o.RandomSample = 3
	}
	if o.SearchLimit <= 0 {
		o.SearchLimit = 5
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)) //nolint:gosec // browsing randomness only
	}
}

// Recommendations is the result of Recommend. Message is set when Movies is
// empty.
type Recommendations struct {
	Movies  []models.Candidate `json:"movies"`
	Message string             `json:"message,omitempty"`
}

// Service implements the user actions. It is safe for concurrent use.
type Service struct {
	api         tmdb.API
	store       preferences.Store
	recommender Recommender
	opts        Options
	logger      zerolog.Logger

	// rngMu guards opts.Rand, which is not safe for concurrent use.
	rngMu sync.Mutex
}

// NewService creates a catalog service.
func NewService(api tmdb.API, store preferences.Store, recommender Recommender, opts Options) *Service {
	opts.applyDefaults()
	return &Service{
		api:         api,
		store:       store,
		recommender: recommender,
		opts:        opts,
		logger:      logging.WithComponent("catalog"),
	}
}

// RandomByGenre returns up to RandomSample distinct movies picked at random
// from a random page of popular movies in the genre.
func (s *Service) RandomByGenre(ctx context.Context, req RandomRequest) ([]tmdbapi.Movie, error) {
	if strings.TrimSpace(req.Genre) == "" {
		return nil, inputError("genre", MsgSelectGenre)
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fromValidation(verr, "")
	}
	genreID, _ := recommend.Resolve(req.Genre)

	page := s.intN(s.opts.RandomMaxPage) + 1
	list, err := s.api.Discover(ctx, tmdb.DiscoverQuery{
		GenreID:      genreID,
		SortBy:       tmdb.SortPopularityDesc,
		MinVoteCount: s.opts.RandomMinVotes,
		Page:         page,
	})
	if err != nil {
		return nil, fmt.Errorf("discover %s movies: %w", req.Genre, err)
	}

	picked := s.sample(list.Results, s.opts.RandomSample)
	logging.Ctx(ctx).Debug().
		Str("genre", req.Genre).
		Int("page", page).
		Int("available", len(list.Results)).
		Int("picked", len(picked)).
		Msg("Random movies selected")
	return picked, nil
}

// Search returns at most SearchLimit movies matching the title.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]tmdbapi.Movie, error) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return nil, inputError("q", MsgEnterTitle)
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fromValidation(verr, "")
	}

	list, err := s.api.Search(ctx, req.Query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", req.Query, err)
	}

	results := list.Results
	if len(results) > s.opts.SearchLimit {
		results = results[:s.opts.SearchLimit]
	}
	if results == nil {
		results = []tmdbapi.Movie{}
	}
	return results, nil
}

// Like fetches details for the movie and stores it as liked. A failed save
// is returned, but the movie stays liked in memory.
func (s *Service) Like(ctx context.Context, req LikeRequest) (*models.LikedMovie, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fromValidation(verr, "")
	}

	liked, err := s.store.Contains(ctx, req.MovieID)
	if err != nil {
		metrics.RecordLike("error")
		return nil, fmt.Errorf("check liked movies: %w", err)
	}
	if liked {
		metrics.RecordLike("duplicate")
		return nil, preferences.ErrAlreadyLiked
	}

	details, err := s.api.MovieDetails(ctx, req.MovieID, tmdb.AppendCredits, tmdb.AppendKeywords)
	if err != nil {
		metrics.RecordLike("error")
		return nil, fmt.Errorf("fetch movie %d details: %w", req.MovieID, err)
	}

	movie := models.NewLikedMovie(req.MovieID, req.Title, details)
	if err := s.store.Add(ctx, movie); err != nil {
		if errors.Is(err, preferences.ErrAlreadyLiked) {
			metrics.RecordLike("duplicate")
		} else {
			metrics.RecordLike("error")
		}
		return nil, err
	}
	metrics.RecordLike("added")

	if err := s.store.Save(ctx); err != nil {
		return &movie, err
	}

	logging.Ctx(ctx).Info().Int("movie_id", movie.ID).Str("title", movie.Title).Msg("Movie liked")
	return &movie, nil
}

// Likes returns the liked movies in the order they were liked.
func (s *Service) Likes(ctx context.Context) ([]models.LikedMovie, error) {
	movies, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list liked movies: %w", err)
	}
	return movies, nil
}

// Trailer picks a random YouTube trailer or teaser of the movie.
func (s *Service) Trailer(ctx context.Context, req TrailerRequest) (*models.Trailer, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, fromValidation(verr, "")
	}

	details, err := s.api.MovieDetails(ctx, req.MovieID, tmdb.AppendVideos)
	if err != nil {
		return nil, fmt.Errorf("fetch movie %d videos: %w", req.MovieID, err)
	}

	var trailers []tmdbapi.Video
	if details.Videos != nil {
		for _, v := range details.Videos.Results {
			if v.Site == "YouTube" && (v.Type == "Trailer" || v.Type == "Teaser") {
				trailers = append(trailers, v)
			}
		}
	}
	if len(trailers) == 0 {
		return nil, ErrNoTrailer
	}

	v := trailers[s.intN(len(trailers))]
	name := v.Name
	if name == "" {
		name = "Trailer"
	}
	return &models.Trailer{
		MovieID: req.MovieID,
		Name:    name,
		Key:     v.Key,
		Site:    v.Site,
		Type:    v.Type,
		URL:     models.YouTubeWatchURL(v.Key),
	}, nil
}

// Recommend ranks candidates against the liked movies. With nothing liked it
// returns ErrNoLikedMovies without contacting TMDB.
func (s *Service) Recommend(ctx context.Context) (*Recommendations, error) {
	liked, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list liked movies: %w", err)
	}
	if len(liked) == 0 {
		return nil, ErrNoLikedMovies
	}

	movies, err := s.recommender.Recommend(ctx, liked)
	if err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}

	recs := &Recommendations{Movies: movies}
	if len(movies) == 0 {
		recs.Movies = []models.Candidate{}
		recs.Message = MsgNoRecommendations
	}
	return recs, nil
}

// Genres returns the genre table.
func (s *Service) Genres() []recommend.Genre {
	return recommend.Genres()
}

// CheckConnection verifies that TMDB is reachable with the configured key.
func (s *Service) CheckConnection(ctx context.Context) error {
	if err := s.api.Ping(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("TMDB connection test failed")
		return err
	}
	return nil
}

func (s *Service) intN(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.opts.Rand.IntN(n)
}

// sample returns up to k distinct movies in random order.
func (s *Service) sample(movies []tmdbapi.Movie, k int) []tmdbapi.Movie {
	if k > len(movies) {
		k = len(movies)
	}
	s.rngMu.Lock()
	perm := s.opts.Rand.Perm(len(movies))
	s.rngMu.Unlock()

	out := make([]tmdbapi.Movie, 0, k)
	for _, i := range perm[:k] {
		out = append(out, movies[i])
	}
	return out
}
