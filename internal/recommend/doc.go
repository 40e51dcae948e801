// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// Package recommend ranks TMDB discovery results by genre overlap with the
// movies a user liked.
//
// # Algorithm
//
// For a liked set L:
//
//  1. Genre names across L are collected in first-seen order and resolved
//     to TMDB ids through the static genre table (case-insensitive).
//  2. One discovery query (popularity.desc, minimum vote count) is issued
//     per resolved id, for at most Config.MaxGenres ids. When nothing
//     resolves a single query across all genres is issued instead.
//  3. Results are concatenated in query order and movies already in L are
//     dropped.
//  4. Each remaining movie scores the number of its genre_ids that appear
//     in the full resolved id set, not only the queried ones.
//  5. A stable sort orders by (score, popularity) descending, duplicates
//     keep their first occurrence and the list is cut to Config.Limit.
//
// Queries run sequentially. A failing per-genre query is logged and
// skipped; Recommend only fails when every query failed.
//
// # Usage
//
//	scorer, err := recommend.NewScorer(api, recommend.DefaultConfig(), logging.Logger())
//	candidates, err := scorer.Recommend(ctx, liked)
//
// The caller is expected to refuse an empty liked set before calling.
package recommend
