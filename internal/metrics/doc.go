// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

/*
Package metrics defines the Prometheus collectors exported at /metrics.

Collectors are registered on the default registry through promauto, so
importing the package is enough to expose them.

Groups:
  - tmdb_*: remote calls by endpoint and status, outbound limiter waits
  - circuit_breaker_*: state, outcomes and transitions of the TMDB breaker
  - recommend_*: scorer latency, candidate counts, empty results
  - preferences_*: like outcomes, store size, save failures
  - api_*: inbound HTTP requests
*/
package metrics
