// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package recommend

import (
	"fmt"

	"github.com/tomtom215/reelpick/internal/config"
)

// Config holds the scorer tunables.
type Config struct {
	// MaxGenres bounds the number of per-genre discovery queries.
	MaxGenres int `json:"max_genres"`

	// Limit is the maximum number of candidates returned.
	Limit int `json:"limit"`

	// MinVoteCount filters out obscure titles (vote_count.gte).
	MinVoteCount int `json:"min_vote_count"`
}

// DefaultConfig returns 3 genre queries, 5 results and a 200 vote floor.
func DefaultConfig() Config {
	return Config{
		MaxGenres:    3,
		Limit:        5,
		MinVoteCount: 200,
	}
}

// ConfigFrom converts the application configuration section.
func ConfigFrom(cfg *config.RecommendConfig) Config {
	return Config{
		MaxGenres:    cfg.MaxGenres,
		Limit:        cfg.Limit,
		MinVoteCount: cfg.MinVoteCount,
	}
}

// Validate checks that every tunable is usable.
func (c Config) Validate() error {
	if c.MaxGenres < 1 {
		return fmt.Errorf("max_genres must be at least 1, got %d", c.MaxGenres)
	}
	if c.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", c.Limit)
	}
	if c.MinVoteCount < 0 {
		return fmt.Errorf("min_vote_count must be non-negative, got %d", c.MinVoteCount)
	}
	return nil
}
