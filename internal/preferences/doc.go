// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// Package preferences persists the movies a user liked.
//
// Two backends implement Store:
//
//   - FileStore keeps the liked list in memory and rewrites a JSON array
//     file in full on Save. A missing or malformed file loads as an empty
//     list; the problem is logged, never returned.
//   - BadgerStore commits every Add to an embedded BadgerDB. Save only
//     syncs to disk.
//
// Ids are unique within a store: Add returns ErrAlreadyLiked for a repeat.
// Both backends preserve insertion order and are safe for concurrent use.
package preferences
