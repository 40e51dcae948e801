// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

/*
client.go - TMDB v3 HTTP client

Every call:
  - waits on the outbound rate limiter (if configured)
  - runs under its own timeout (tmdb.timeout, tmdb.trailer_timeout for video lookups)
  - sends the API credential as the api_key query parameter
  - treats any non-200 status as a failure
  - is never retried

Resilience against a failing upstream lives in CircuitBreakerClient.
*/

//nolint:staticcheck // File documentation, not package doc
package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelpick/internal/config"
	"github.com/tomtom215/reelpick/internal/metrics"
	"github.com/tomtom215/reelpick/internal/models/tmdbapi"
)

// Sub-resources accepted by append_to_response.
const (
	AppendCredits  = "credits"
	AppendKeywords = "keywords"
	AppendVideos   = "videos"
)

// SortPopularityDesc orders discovery results by popularity, highest first.
const SortPopularityDesc = "popularity.desc"

// maxErrorBodySize limits how much of an error response is kept for diagnostics.
const maxErrorBodySize = 64 * 1024

func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// API is the set of TMDB operations Reelpick consumes.
//
// Implemented by Client, by CircuitBreakerClient for production use and by
// fakes in tests. All methods are safe for concurrent use.
type API interface {
	Discover(ctx context.Context, q DiscoverQuery) (*tmdbapi.MovieList, error)
	Search(ctx context.Context, query string) (*tmdbapi.MovieList, error)
	MovieDetails(ctx context.Context, id int, appends ...string) (*tmdbapi.MovieDetails, error)
	Genres(ctx context.Context) (*tmdbapi.GenreList, error)
	Ping(ctx context.Context) error
}

// DiscoverQuery holds the /discover/movie parameters. A zero GenreID queries
// across all genres; a zero Page requests page 1.
type DiscoverQuery struct {
	GenreID      int
	SortBy       string
	MinVoteCount int
	Page         int
}

func (q DiscoverQuery) values() url.Values {
	params := url.Values{}
	if q.GenreID != 0 {
		params.Set("with_genres", strconv.Itoa(q.GenreID))
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = SortPopularityDesc
	}
	params.Set("sort_by", sortBy)
	if q.MinVoteCount > 0 {
		params.Set("vote_count.gte", strconv.Itoa(q.MinVoteCount))
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	return params
}

// Client talks to the TMDB v3 REST API.
type Client struct {
	baseURL        string
	apiKey         string
	language       string
	client         *http.Client
	timeout        time.Duration
	trailerTimeout time.Duration
	limiter        *rate.Limiter
}

// NewClient creates a client from configuration. A zero RateLimit disables
// outbound rate limiting.
func NewClient(cfg *config.TMDBConfig) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		language:       cfg.Language,
		client:         &http.Client{},
		timeout:        cfg.Timeout,
		trailerTimeout: cfg.TrailerTimeout,
		limiter:        limiter,
	}
}

// Discover queries /discover/movie.
func (c *Client) Discover(ctx context.Context, q DiscoverQuery) (*tmdbapi.MovieList, error) {
	params := q.values()
	params.Set("language", c.language)

	var result tmdbapi.MovieList
	if err := c.makeRequest(ctx, "discover", "/discover/movie", params, c.timeout, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Search queries /search/movie by title.
func (c *Client) Search(ctx context.Context, query string) (*tmdbapi.MovieList, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("language", c.language)

	var result tmdbapi.MovieList
	if err := c.makeRequest(ctx, "search", "/search/movie", params, c.timeout, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MovieDetails fetches /movie/{id} with the given sub-resources appended.
// No language is sent so that videos in every language are returned.
// Requests that include videos use the shorter trailer timeout.
func (c *Client) MovieDetails(ctx context.Context, id int, appends ...string) (*tmdbapi.MovieDetails, error) {
	params := url.Values{}
	if len(appends) > 0 {
		params.Set("append_to_response", strings.Join(appends, ","))
	}

	timeout := c.timeout
	if slices.Contains(appends, AppendVideos) {
		timeout = c.trailerTimeout
	}

	var result tmdbapi.MovieDetails
	if err := c.makeRequest(ctx, "movie", "/movie/"+strconv.Itoa(id), params, timeout, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Genres fetches /genre/movie/list.
func (c *Client) Genres(ctx context.Context) (*tmdbapi.GenreList, error) {
	params := url.Values{}
	params.Set("language", c.language)

	var result tmdbapi.GenreList
	if err := c.makeRequest(ctx, "genres", "/genre/movie/list", params, c.timeout, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping verifies connectivity and the API credential.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.Genres(ctx); err != nil {
		return fmt.Errorf("failed to ping TMDB: %w", err)
	}
	return nil
}

func (c *Client) makeRequest(ctx context.Context, endpoint, path string, params url.Values, timeout time.Duration, result interface{}) error {
	if c.limiter != nil {
		if c.limiter.Tokens() < 1 {
			metrics.TMDBRateLimitWaits.Inc()
		}
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %s rate limit wait: %w", ErrRemote, endpoint, err)
		}
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	params.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.RecordTMDBRequest(endpoint, 0, time.Since(start))
		return fmt.Errorf("%w: %s request: %w", ErrRemote, endpoint, c.redact(err, path))
	}
	defer resp.Body.Close()
	metrics.RecordTMDBRequest(endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode %s response: %w", ErrRemote, endpoint, err)
	}
	return nil
}

// redact strips the query string (and with it the api_key) from transport errors.
func (c *Client) redact(err error, path string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = c.baseURL + path
	}
	return err
}
