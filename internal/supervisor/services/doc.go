// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

// Package services adapts components to suture.Service.
//
//   - HTTPServerService: ListenAndServe with graceful Shutdown (api layer)
//   - StoreGCService: periodic badger value log GC (data layer)
//
// Each type also implements fmt.Stringer so supervisor events name it.
package services
