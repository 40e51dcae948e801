// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelpick/internal/logging"
)

// ValueLogCollector is satisfied by *preferences.BadgerStore.
type ValueLogCollector interface {
	RunValueLogGC(discardRatio float64) (int, error)
}

// StoreGCService periodically reclaims value log space of the badger
// preferences backend. It is only added when that backend is selected.
type StoreGCService struct {
	store        ValueLogCollector
	interval     time.Duration
	discardRatio float64
	logger       zerolog.Logger
}

// NewStoreGCService creates the service. Non-positive arguments fall back to
// 10 minutes and a 0.5 discard ratio.
func NewStoreGCService(store ValueLogCollector, interval time.Duration, discardRatio float64) *StoreGCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = 0.5
	}
	return &StoreGCService{
		store:        store,
		interval:     interval,
		discardRatio: discardRatio,
		logger:       logging.WithComponent("store-gc"),
	}
}

// Serve implements suture.Service. A GC failure is returned so that the
// supervisor applies its backoff.
func (s *StoreGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rewrites, err := s.store.RunValueLogGC(s.discardRatio)
			if err != nil {
				s.logger.Warn().Err(err).Msg("Preferences value log GC failed")
				return err
			}
			if rewrites > 0 {
				s.logger.Debug().Int("rewrites", rewrites).Msg("Preferences value log GC")
			}
		}
	}
}

// String names the service in supervisor logs.
func (s *StoreGCService) String() string {
	return "preferences-gc"
}
