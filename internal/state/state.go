// Package state holds the client-side caches that mirror backend state:
// a normalized job store, a per-job activity store, and a Tracker that
// owns both and coordinates cross-store operations.
//
// Every cache mutation happens only after the backend confirmed the
// corresponding call, so the caches never hold unconfirmed data. A store
// constructed without an API client runs in local-only mode and resolves
// mutations synchronously with client-generated ids.
package state

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by local-only stores when the id is not cached.
// Network-backed stores surface the backend's 404 instead.
var ErrNotFound = errors.New("record not found")

// FetchStatus describes the most recent fetch for a store (or, for
// activities, for one job's list).
type FetchStatus string

const (
	FetchIdle      FetchStatus = "idle"
	FetchLoading   FetchStatus = "loading"
	FetchSucceeded FetchStatus = "succeeded"
	FetchFailed    FetchStatus = "failed"
)

// ValidationError is returned when a required field is missing. It is
// raised before any network call is made.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
