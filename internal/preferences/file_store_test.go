// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package preferences

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/tomtom215/reelpick/internal/models"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "user_preferences.json"))
}

func TestFileStore_LoadMissingFile(t *testing.T) {
	t.Parallel()
	store := newFileStore(t)

	movies, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if movies == nil || len(movies) != 0 {
		t.Errorf("Load() = %#v, want empty non-nil slice", movies)
	}
}

func TestFileStore_LoadMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `[{"id": 1, "title": "Al`},
		{"object instead of list", `{"id": 1}`},
		{"wrong field type", `[{"id": "one"}]`},
		{"garbage", `not json at all`},
		{"empty file", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newFileStore(t)
			if err := os.WriteFile(store.Path(), []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}

			movies, err := store.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v, malformed files must load as empty", err)
			}
			if len(movies) != 0 {
				t.Errorf("Load() returned %d movies, want 0", len(movies))
			}
		})
	}
}

func TestFileStore_LoadNullIsEmpty(t *testing.T) {
	t.Parallel()
	store := newFileStore(t)
	if err := os.WriteFile(store.Path(), []byte("null"), 0o600); err != nil {
		t.Fatal(err)
	}
	movies, _ := store.Load(context.Background())
	if movies == nil {
		t.Error("Load() returned nil slice")
	}
}

func TestFileStore_AddUniqueness(t *testing.T) {
	t.Parallel()
	store := newFileStore(t)
	ctx := context.Background()

	if err := store.Add(ctx, sampleMovie(603, "The Matrix")); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	err := store.Add(ctx, sampleMovie(603, "The Matrix (again)"))
	if !errors.Is(err, ErrAlreadyLiked) {
		t.Fatalf("second Add() error = %v, want ErrAlreadyLiked", err)
	}

	movies, _ := store.List(ctx)
	if len(movies) != 1 || movies[0].Title != "The Matrix" {
		t.Errorf("List() = %+v, want the original entry only", movies)
	}

	ok, err := store.Contains(ctx, 603)
	if err != nil || !ok {
		t.Errorf("Contains(603) = %v, %v", ok, err)
	}
	ok, _ = store.Contains(ctx, 604)
	if ok {
		t.Error("Contains(604) = true")
	}
}

func TestFileStore_SaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFileStore(t)

	want := []models.LikedMovie{
		sampleMovie(603, "The Matrix"),
		{ID: 27205, Title: "Inception", Genres: []string{}, Keywords: []string{}, Directors: []string{}, Cast: []string{}},
		sampleMovie(1, "Zzz"),
	}
	for _, m := range want {
		if err := store.Add(ctx, m); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}
	if err := store.Save(ctx); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	first, err := NewFileStore(store.Path()).Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	assertMovies(t, first, want)

	// save(load()) reproduces the same file.
	before, _ := os.ReadFile(store.Path())
	reloaded := NewFileStore(store.Path())
	if _, err := reloaded.Load(ctx); err != nil {
		t.Fatal(err)
	}
	if err := reloaded.Save(ctx); err != nil {
		t.Fatal(err)
	}
	after, _ := os.ReadFile(store.Path())
	if string(before) != string(after) {
		t.Errorf("round trip changed the file\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestFileStore_SaveFormat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFileStore(t)

	if err := store.Save(ctx); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(store.Path())
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty store saved as %q, want []", data)
	}

	_ = store.Add(ctx, sampleMovie(603, "The Matrix"))
	if err := store.Save(ctx); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(store.Path())
	for _, field := range []string{`"id"`, `"title"`, `"genres"`, `"vote_average"`, `"overview"`, `"release_date"`, `"keywords"`, `"directors"`, `"cast"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("saved file missing field %s", field)
		}
	}
	if !strings.Contains(string(data), "\n        \"id\"") {
		t.Errorf("expected four-space indented output, got:\n%s", data)
	}

	entries, _ := os.ReadDir(filepath.Dir(store.Path()))
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestFileStore_SaveFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewFileStore(filepath.Join(t.TempDir(), "missing-dir", "prefs.json"))

	_ = store.Add(ctx, sampleMovie(1, "A"))
	if err := store.Save(ctx); err == nil {
		t.Fatal("Save() into a missing directory should fail")
	}

	movies, _ := store.List(ctx)
	if len(movies) != 1 {
		t.Error("failed Save must keep the movie in memory")
	}
}

func TestFileStore_ListReturnsCopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFileStore(t)
	_ = store.Add(ctx, sampleMovie(1, "A"))

	movies, _ := store.List(ctx)
	movies[0].Title = "mutated"

	again, _ := store.List(ctx)
	if again[0].Title != "A" {
		t.Error("List() exposed internal state")
	}
}

func TestFileStore_ConcurrentAdds(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := newFileStore(t)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		added   int
		repeats int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			err := store.Add(ctx, sampleMovie(id%10, "M"))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				added++
			case errors.Is(err, ErrAlreadyLiked):
				repeats++
			}
		}(i)
	}
	wg.Wait()

	if added != 10 || repeats != 40 {
		t.Errorf("added=%d repeats=%d, want 10 and 40", added, repeats)
	}
}

func TestFileStore_ConcurrentLikesAllReachDisk(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for round := 0; round < 20; round++ {
		store := newFileStore(t)

		var wg sync.WaitGroup
		errs := make(chan error, 20)
		for id := 1; id <= 20; id++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				if err := store.Add(ctx, sampleMovie(id, "M")); err != nil {
					errs <- err
					return
				}
				if err := store.Save(ctx); err != nil {
					errs <- err
				}
			}(id)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Fatalf("round %d: %v", round, err)
		}

		reloaded, err := NewFileStore(store.Path()).Load(ctx)
		if err != nil {
			t.Fatalf("round %d: Load() error = %v", round, err)
		}
		if len(reloaded) != 20 {
			t.Fatalf("round %d: file holds %d of 20 liked movies", round, len(reloaded))
		}
	}
}
