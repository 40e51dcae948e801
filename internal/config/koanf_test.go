// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv points the loader at an empty directory so that no stray
// config.yaml or .env from the working tree leaks into a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	t.Setenv(DotEnvPathEnvVar, "")
	t.Chdir(dir)
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.TMDB.BaseURL != "https://api.themoviedb.org/3" {
		t.Errorf("TMDB.BaseURL = %q", cfg.TMDB.BaseURL)
	}
	if cfg.TMDB.Language != "en-US" {
		t.Errorf("TMDB.Language = %q, want en-US", cfg.TMDB.Language)
	}
	if cfg.TMDB.Timeout != 10*time.Second {
		t.Errorf("TMDB.Timeout = %v, want 10s", cfg.TMDB.Timeout)
	}
	if cfg.TMDB.TrailerTimeout != 5*time.Second {
		t.Errorf("TMDB.TrailerTimeout = %v, want 5s", cfg.TMDB.TrailerTimeout)
	}
	if cfg.TMDB.RandomMinVotes != 100 || cfg.TMDB.RandomMaxPage != 5 || cfg.TMDB.RandomSample != 3 {
		t.Errorf("random browsing defaults = %+v", cfg.TMDB)
	}
	if cfg.Preferences.Backend != "json" || cfg.Preferences.Path != "user_preferences.json" {
		t.Errorf("Preferences = %+v", cfg.Preferences)
	}
	if cfg.Recommend.MaxGenres != 3 || cfg.Recommend.Limit != 5 || cfg.Recommend.MinVoteCount != 200 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.TMDB.APIKey != "" {
		t.Error("TMDB.APIKey must not have a default")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"TMDB_API_KEY", "tmdb.api_key"},
		{"TMDB_TRAILER_TIMEOUT", "tmdb.trailer_timeout"},
		{"PREFERENCES_BACKEND", "preferences.backend"},
		{"RECOMMEND_LIMIT", "recommend.limit"},
		{"HTTP_PORT", "server.port"},
		{"DISABLE_RATE_LIMIT", "server.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TMDB_API_KEY", "env_key")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TMDB_TIMEOUT", "7s")
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local")
	t.Setenv("RECOMMEND_MAX_GENRES", "2")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.TMDB.APIKey != "env_key" {
		t.Errorf("TMDB.APIKey = %q, want env_key", cfg.TMDB.APIKey)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.TMDB.Timeout != 7*time.Second {
		t.Errorf("TMDB.Timeout = %v, want 7s", cfg.TMDB.Timeout)
	}
	if cfg.Recommend.MaxGenres != 2 {
		t.Errorf("Recommend.MaxGenres = %d, want 2", cfg.Recommend.MaxGenres)
	}
	if len(cfg.Server.CORSOrigins) != 2 || cfg.Server.CORSOrigins[1] != "http://b.local" {
		t.Errorf("Server.CORSOrigins = %v", cfg.Server.CORSOrigins)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default 0.0.0.0", cfg.Server.Host)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	dir := isolateEnv(t)

	content := `
tmdb:
  api_key: "file_key"
  language: "de-DE"
preferences:
  backend: badger
  badger_dir: "/tmp/prefs"
server:
  port: 8888
logging:
  level: "warn"
`
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.TMDB.APIKey != "file_key" || cfg.TMDB.Language != "de-DE" {
		t.Errorf("TMDB = %+v", cfg.TMDB)
	}
	if cfg.Preferences.Backend != "badger" || cfg.Preferences.BadgerDir != "/tmp/prefs" {
		t.Errorf("Preferences = %+v", cfg.Preferences)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, env must override file", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfDotEnv(t *testing.T) {
	dir := isolateEnv(t)

	envPath := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envPath, []byte("TMDB_API_KEY=dotenv_key\nTMDB_SEARCH_LIMIT=8\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(DotEnvPathEnvVar, envPath)
	for _, key := range []string{"TMDB_API_KEY", "TMDB_SEARCH_LIMIT"} {
		os.Unsetenv(key)
		t.Cleanup(func() { os.Unsetenv(key) })
	}

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.TMDB.APIKey != "dotenv_key" {
		t.Errorf("TMDB.APIKey = %q, want dotenv_key", cfg.TMDB.APIKey)
	}
	if cfg.TMDB.SearchLimit != 8 {
		t.Errorf("TMDB.SearchLimit = %d, want 8", cfg.TMDB.SearchLimit)
	}
}

func TestLoadWithKoanfMissingDotEnv(t *testing.T) {
	dir := isolateEnv(t)
	t.Setenv(DotEnvPathEnvVar, filepath.Join(dir, "nope.env"))
	t.Setenv("TMDB_API_KEY", "k")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected error for explicitly configured but missing env file")
	}
}

func TestLoadWithKoanfRequiresAPIKey(t *testing.T) {
	isolateEnv(t)
	t.Setenv("TMDB_API_KEY", "")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("expected validation error without TMDB_API_KEY")
	}
	if !strings.Contains(err.Error(), "TMDB_API_KEY") {
		t.Errorf("error = %v, want mention of TMDB_API_KEY", err)
	}
}
