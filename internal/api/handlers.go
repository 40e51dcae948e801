// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/reelpick/internal/catalog"
	"github.com/tomtom215/reelpick/internal/models"
	"github.com/tomtom215/reelpick/internal/models/tmdbapi"
	"github.com/tomtom215/reelpick/internal/recommend"
)

// Catalog is the service behind the handlers. *catalog.Service implements it.
type Catalog interface {
	RandomByGenre(ctx context.Context, req catalog.RandomRequest) ([]tmdbapi.Movie, error)
	Search(ctx context.Context, req catalog.SearchRequest) ([]tmdbapi.Movie, error)
	Like(ctx context.Context, req catalog.LikeRequest) (*models.LikedMovie, error)
	Likes(ctx context.Context) ([]models.LikedMovie, error)
	Trailer(ctx context.Context, req catalog.TrailerRequest) (*models.Trailer, error)
	Recommend(ctx context.Context) (*catalog.Recommendations, error)
	Genres() []recommend.Genre
	CheckConnection(ctx context.Context) error
}

// DefaultRequestTimeout bounds a handler's calls into the catalog.
const DefaultRequestTimeout = 30 * time.Second

// maxBodyBytes caps POST bodies.
const maxBodyBytes = 64 << 10

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_health.go: liveness and TMDB connectivity
//   - handlers_movies.go: genres, random browsing, search, trailers
//   - handlers_likes.go: liked movies
//   - handlers_recommend.go: recommendations
type Handler struct {
	catalog   Catalog
	timeout   time.Duration
	version   string
	startTime time.Time
}

// NewHandler creates a handler. A non-positive timeout uses DefaultRequestTimeout.
func NewHandler(c Catalog, timeout time.Duration, version string) *Handler {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Handler{
		catalog:   c,
		timeout:   timeout,
		version:   version,
		startTime: time.Now(),
	}
}

func (h *Handler) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}
