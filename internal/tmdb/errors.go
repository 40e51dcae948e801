// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

package tmdb

import (
	"errors"
	"fmt"
)

var (
	// ErrRemote marks every failed remote call: transport errors, timeouts,
	// non-200 responses and undecodable bodies.
	ErrRemote = errors.New("tmdb request failed")

	// ErrCircuitOpen is returned without contacting TMDB while the breaker is open.
	ErrCircuitOpen = errors.New("tmdb circuit open")
)

// StatusError is a non-200 response.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request failed with status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Is makes errors.Is(err, ErrRemote) true for status errors.
func (e *StatusError) Is(target error) bool {
	return target == ErrRemote
}
