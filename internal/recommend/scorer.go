// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelpick/internal/logging"
	"github.com/tomtom215/reelpick/internal/metrics"
	"github.com/tomtom215/reelpick/internal/models"
	"github.com/tomtom215/reelpick/internal/models/tmdbapi"
	"github.com/tomtom215/reelpick/internal/tmdb"
)

// Discoverer issues discovery queries. Every tmdb.API satisfies it.
type Discoverer interface {
	Discover(ctx context.Context, q tmdb.DiscoverQuery) (*tmdbapi.MovieList, error)
}

// Scorer produces genre-overlap recommendations. It holds no mutable state
// and is safe for concurrent use.
type Scorer struct {
	discoverer Discoverer
	config     Config
	logger     zerolog.Logger
}

// NewScorer creates a scorer.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewScorer(d Discoverer, cfg Config, logger zerolog.Logger) (*Scorer, error) {
	if d == nil {
		return nil, errors.New("discoverer is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Scorer{
		discoverer: d,
		config:     cfg,
		logger:     logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend returns at most Config.Limit candidates for the liked set,
// none of which is already liked. An empty result is not an error.
func (s *Scorer) Recommend(ctx context.Context, liked []models.LikedMovie) ([]models.Candidate, error) {
	start := time.Now()
	logger := s.logger.With().
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Int("liked", len(liked)).
		Logger()

	genreIDs := IDs(LikedGenreNames(liked))

	pool, err := s.discover(ctx, genreIDs, logger)
	if err != nil {
		return nil, err
	}

	exclude := make(map[int]struct{}, len(liked))
	for i := range liked {
		exclude[liked[i].ID] = struct{}{}
	}

	candidates, considered := Rank(pool, genreIDs, exclude, s.config.Limit)
	metrics.RecordRecommendation(time.Since(start), considered, len(candidates))

	logger.Debug().
		Ints("genre_ids", genreIDs).
		Int("candidates", considered).
		Int("returned", len(candidates)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return candidates, nil
}

// discover runs the per-genre queries, or the popular fallback when no genre
// resolved, and concatenates results in query order.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (s *Scorer) discover(ctx context.Context, genreIDs []int, logger zerolog.Logger) ([]tmdbapi.Movie, error) {
	base := tmdb.DiscoverQuery{
		SortBy:       tmdb.SortPopularityDesc,
		MinVoteCount: s.config.MinVoteCount,
		Page:         1,
	}

	if len(genreIDs) == 0 {
		logger.Debug().Msg("no liked genre resolved, using popular movies")
		list, err := s.discoverer.Discover(ctx, base)
		if err != nil {
			return nil, fmt.Errorf("discover popular movies: %w", err)
		}
		return list.Results, nil
	}

	queried := genreIDs
	if len(queried) > s.config.MaxGenres {
		queried = queried[:s.config.MaxGenres]
	}

	var (
		pool    []tmdbapi.Movie
		lastErr error
		failed  int
	)
	for _, id := range queried {
		q := base
		q.GenreID = id
		list, err := s.discoverer.Discover(ctx, q)
		if err != nil {
			failed++
			lastErr = err
			metrics.RecommendGenreQueryFailures.Inc()
			logger.Warn().Err(err).Int("genre_id", id).Msg("genre discovery failed, skipping")
			continue
		}
		pool = append(pool, list.Results...)
	}

	if failed == len(queried) {
		return nil, fmt.Errorf("all %d genre queries failed: %w", failed, lastErr)
	}
	return pool, nil
}

// Rank scores movies against genreIDs, drops excluded ids, orders by
// (match score, popularity) descending with a stable sort, keeps the first
// occurrence of each id and truncates to limit. It also returns the number
// of movies considered after exclusion.
func Rank(movies []tmdbapi.Movie, genreIDs []int, exclude map[int]struct{}, limit int) ([]models.Candidate, int) {
	genreSet := make(map[int]struct{}, len(genreIDs))
	for _, id := range genreIDs {
		genreSet[id] = struct{}{}
	}

	scored := make([]models.Candidate, 0, len(movies))
	for i := range movies {
		if _, liked := exclude[movies[i].ID]; liked {
			continue
		}
		scored = append(scored, models.Candidate{
			Movie:      movies[i],
			MatchScore: MatchScore(movies[i].GenreIDs, genreSet),
		})
	}
	considered := len(scored)

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].MatchScore != scored[j].MatchScore {
			return scored[i].MatchScore > scored[j].MatchScore
		}
		return scored[i].Popularity > scored[j].Popularity
	})

	out := make([]models.Candidate, 0, min(limit, len(scored)))
	seen := make(map[int]struct{}, len(scored))
	for i := range scored {
		if len(out) == limit {
			break
		}
		if _, dup := seen[scored[i].ID]; dup {
			continue
		}
		seen[scored[i].ID] = struct{}{}
		out = append(out, scored[i])
	}
	return out, considered
}

// MatchScore counts the genre ids present in genreSet.
func MatchScore(genreIDs []int, genreSet map[int]struct{}) int {
	score := 0
	for _, id := range genreIDs {
		if _, ok := genreSet[id]; ok {
			score++
		}
	}
	return score
}
