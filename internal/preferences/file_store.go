// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package preferences

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelpick/internal/logging"
	"github.com/tomtom215/reelpick/internal/metrics"
	"github.com/tomtom215/reelpick/internal/models"
)

// FileStore keeps liked movies in a JSON array file.
type FileStore struct {
	path string

	mu     sync.RWMutex
	movies []models.LikedMovie

	// saveMu orders snapshot and rename so an older snapshot never lands
	// on disk after a newer one.
	saveMu sync.Mutex
}

// NewFileStore returns an empty store bound to path. Call Load to read it.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, movies: []models.LikedMovie{}}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load replaces the in-memory list with the file contents. A missing file
// or one that does not decode as a list of movies yields an empty list.
func (s *FileStore) Load(ctx context.Context) ([]models.LikedMovie, error) {
	movies := s.readFile(ctx)

	s.mu.Lock()
	s.movies = movies
	s.mu.Unlock()

	metrics.LikedMovies.Set(float64(len(movies)))
	return slices.Clone(movies), nil
}

func (s *FileStore) readFile(ctx context.Context) []models.LikedMovie {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Ctx(ctx).Warn().Err(err).Str("path", s.path).Msg("Failed to read preferences, starting empty")
		}
		return []models.LikedMovie{}
	}

	var movies []models.LikedMovie
	if err := json.Unmarshal(data, &movies); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("path", s.path).Msg("Malformed preferences file, starting empty")
		return []models.LikedMovie{}
	}
	if movies == nil {
		movies = []models.LikedMovie{}
	}
	return movies
}

// Add appends movie in memory. Call Save to persist.
func (s *FileStore) Add(_ context.Context, movie models.LikedMovie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(movie.ID) >= 0 {
		return ErrAlreadyLiked
	}
	s.movies = append(s.movies, movie)
	metrics.LikedMovies.Set(float64(len(s.movies)))
	return nil
}

// Save writes the full list, replacing the file atomically.
func (s *FileStore) Save(ctx context.Context) error {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.RLock()
	data, err := json.MarshalIndent(s.movies, "", "    ")
	s.mu.RUnlock()
	if err != nil {
		metrics.PreferenceSaveErrors.Inc()
		return fmt.Errorf("encode preferences: %w", err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		metrics.PreferenceSaveErrors.Inc()
		logging.Ctx(ctx).Error().Err(err).Str("path", s.path).Msg("Failed to save preferences")
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Contains reports whether id is liked.
func (s *FileStore) Contains(_ context.Context, id int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id) >= 0, nil
}

// List returns a copy of the liked movies.
func (s *FileStore) List(_ context.Context) ([]models.LikedMovie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.movies), nil
}

// Close is a no-op.
func (s *FileStore) Close() error {
	return nil
}

// indexOf must be called with mu held.
func (s *FileStore) indexOf(id int) int {
	return slices.IndexFunc(s.movies, func(m models.LikedMovie) bool { return m.ID == id })
}

// writeFileAtomic writes to a temp file in the target directory and renames
// it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil { //nolint:gosec // preferences are not secret
		return err
	}
	return os.Rename(tmpName, path)
}
