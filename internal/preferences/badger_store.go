// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package preferences

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/reelpick/internal/logging"
	"github.com/tomtom215/reelpick/internal/metrics"
	"github.com/tomtom215/reelpick/internal/models"
)

// Key prefixes for BadgerDB storage
const (
	likedKeyPrefix   = "liked:"
	likedIDKeyPrefix = "liked_id:"
)

// BadgerStore keeps liked movies in BadgerDB. Movies are stored under
// liked:{seq} so that prefix iteration yields insertion order, with a
// liked_id:{id} index enforcing uniqueness.
type BadgerStore struct {
	db     *badger.DB
	ownsDB bool

	// mu serializes sequence allocation; badger handles the rest.
	mu      sync.Mutex
	nextSeq uint64
}

// OpenBadgerStore opens (or creates) a database in dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for preferences: %w", err)
	}

	s := &BadgerStore{db: db, ownsDB: true}
	if err := s.initSequence(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewBadgerStore uses an already open database. Close leaves it open.
func NewBadgerStore(db *badger.DB) (*BadgerStore, error) {
	s := &BadgerStore{db: db}
	if err := s.initSequence(); err != nil {
		return nil, err
	}
	return s, nil
}

func likedKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("%s%020d", likedKeyPrefix, seq))
}

func likedIDKey(id int) []byte {
	return []byte(likedIDKeyPrefix + strconv.Itoa(id))
}

// initSequence continues numbering after the highest stored key.
func (s *BadgerStore) initSequence() error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past every liked:{seq} key when iterating in reverse.
		prefix := []byte(likedKeyPrefix)
		it.Seek(append([]byte(likedKeyPrefix), 0xFF))
		if !it.ValidForPrefix(prefix) {
			return nil
		}
		key := string(it.Item().Key())
		seq, err := strconv.ParseUint(key[len(likedKeyPrefix):], 10, 64)
		if err != nil {
			return fmt.Errorf("parse preference key %q: %w", key, err)
		}
		s.nextSeq = seq + 1
		return nil
	})
}

// Load returns every stored movie in insertion order. Entries that fail to
// decode are logged and skipped.
func (s *BadgerStore) Load(ctx context.Context) ([]models.LikedMovie, error) {
	movies := []models.LikedMovie{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(likedKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var m models.LikedMovie
				if err := json.Unmarshal(val, &m); err != nil {
					logging.Ctx(ctx).Warn().Err(err).Str("key", string(item.Key())).Msg("Skipping malformed preference entry")
					return nil
				}
				movies = append(movies, m)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}

	metrics.LikedMovies.Set(float64(len(movies)))
	return movies, nil
}

// List is Load; the database is the only copy of the state.
func (s *BadgerStore) List(ctx context.Context) ([]models.LikedMovie, error) {
	return s.Load(ctx)
}

// Add commits movie and its id index in one transaction.
func (s *BadgerStore) Add(_ context.Context, movie models.LikedMovie) error {
	data, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("marshal liked movie: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.nextSeq
	err = s.db.Update(func(txn *badger.Txn) error {
		idKey := likedIDKey(movie.ID)
		if _, err := txn.Get(idKey); err == nil {
			return ErrAlreadyLiked
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check liked id: %w", err)
		}

		if err := txn.Set(likedKey(seq), data); err != nil {
			return fmt.Errorf("set liked movie: %w", err)
		}
		if err := txn.Set(idKey, []byte(strconv.FormatUint(seq, 10))); err != nil {
			return fmt.Errorf("set liked id index: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.nextSeq++
	metrics.LikedMovies.Inc()
	return nil
}

// Save flushes to disk. Every Add is already committed.
func (s *BadgerStore) Save(_ context.Context) error {
	if err := s.db.Sync(); err != nil {
		metrics.PreferenceSaveErrors.Inc()
		return fmt.Errorf("sync preferences: %w", err)
	}
	return nil
}

// Contains reports whether id is liked.
func (s *BadgerStore) Contains(_ context.Context, id int) (bool, error) {
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(likedIDKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("lookup liked id: %w", err)
	}
	return found, nil
}

// RunValueLogGC reclaims value log space until badger finds nothing left
// to rewrite. The supervisor calls it periodically.
func (s *BadgerStore) RunValueLogGC(discardRatio float64) (int, error) {
	rewrites := 0
	for {
		err := s.db.RunValueLogGC(discardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrRejected) {
			return rewrites, nil
		}
		if err != nil {
			return rewrites, fmt.Errorf("value log gc: %w", err)
		}
		rewrites++
	}
}

// Close closes the database when the store opened it.
func (s *BadgerStore) Close() error {
	if s.ownsDB {
		return s.db.Close()
	}
	return nil
}
