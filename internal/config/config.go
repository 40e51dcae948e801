// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package config

import (
	"time"
)

// Config is the root configuration. Every field is reachable through a
// koanf path (section.key) and most have an environment variable alias,
// see envMappings.
type Config struct {
	TMDB        TMDBConfig        `koanf:"tmdb"`
	Preferences PreferencesConfig `koanf:"preferences"`
	Recommend   RecommendConfig   `koanf:"recommend"`
	Server      ServerConfig      `koanf:"server"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// TMDBConfig configures the remote movie metadata client.
//
// Environment Variables:
//   - TMDB_API_KEY: API credential sent as the api_key query parameter (required)
//   - TMDB_BASE_URL: default https://api.themoviedb.org/3
//   - TMDB_LANGUAGE: default en-US
//   - TMDB_TIMEOUT: per-call timeout (default 10s)
//   - TMDB_TRAILER_TIMEOUT: timeout for trailer lookups (default 5s)
//   - TMDB_RATE_LIMIT / TMDB_RATE_BURST: outbound requests per second and burst
type TMDBConfig struct {
	BaseURL        string        `koanf:"base_url"`
	APIKey         string        `koanf:"api_key"`
	Language       string        `koanf:"language"`
	Timeout        time.Duration `koanf:"timeout"`
	TrailerTimeout time.Duration `koanf:"trailer_timeout"`
	RateLimit      float64       `koanf:"rate_limit"`
	RateBurst      int           `koanf:"rate_burst"`

	// Random-by-genre browsing.
	RandomMinVotes int `koanf:"random_min_votes"`
	RandomMaxPage  int `koanf:"random_max_page"`
	RandomSample   int `koanf:"random_sample"`

	// SearchLimit caps the number of search results returned.
	SearchLimit int `koanf:"search_limit"`
}

// PreferencesConfig selects where liked movies are persisted.
type PreferencesConfig struct {
	// Backend is "json" (flat file at Path) or "badger" (database in BadgerDir).
	Backend   string `koanf:"backend"`
	Path      string `koanf:"path"`
	BadgerDir string `koanf:"badger_dir"`
}

// RecommendConfig holds the scorer tunables.
type RecommendConfig struct {
	// MaxGenres bounds the number of discovery queries per recommendation.
	MaxGenres    int `koanf:"max_genres"`
	Limit        int `koanf:"limit"`
	MinVoteCount int `koanf:"min_vote_count"`
}

// ServerConfig holds HTTP listener and middleware settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	Timeout           time.Duration `koanf:"timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Load reads configuration from defaults, an optional YAML file, an optional
// .env file and the environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
