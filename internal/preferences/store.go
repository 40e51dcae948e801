// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package preferences

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/reelpick/internal/config"
	"github.com/tomtom215/reelpick/internal/models"
)

// ErrAlreadyLiked is returned by Add when the movie id is already stored.
var ErrAlreadyLiked = errors.New("movie already liked")

// Store is the liked-movie repository.
type Store interface {
	// Load (re)reads persisted state and returns it in insertion order.
	Load(ctx context.Context) ([]models.LikedMovie, error)

	// Add appends movie unless its id is present (ErrAlreadyLiked).
	Add(ctx context.Context, movie models.LikedMovie) error

	// Save persists the full list.
	Save(ctx context.Context) error

	// Contains reports whether id is liked.
	Contains(ctx context.Context, id int) (bool, error)

	// List returns a copy of the liked movies in insertion order.
	List(ctx context.Context) ([]models.LikedMovie, error)

	// Close releases resources held by the backend.
	Close() error
}

// Backend names accepted by preferences.backend.
const (
	BackendJSON   = "json"
	BackendBadger = "badger"
)

// New opens the configured backend and loads its state.
func New(ctx context.Context, cfg *config.PreferencesConfig) (Store, error) {
	var (
		store Store
		err   error
	)

	switch cfg.Backend {
	case BackendJSON, "":
		store = NewFileStore(cfg.Path)
	case BackendBadger:
		store, err = OpenBadgerStore(cfg.BadgerDir)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown preferences backend %q", cfg.Backend)
	}

	if _, err := store.Load(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return store, nil
}
