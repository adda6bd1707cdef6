package store

import "errors"

var (
	// ErrNotFound indicates the referenced content does not exist at the
	// store. Distinct from ErrTransport: retrying will not help.
	ErrNotFound = errors.New("content not found")

	// ErrTransport indicates a network-level failure. Retryable with
	// backoff.
	ErrTransport = errors.New("storage transport error")
)
