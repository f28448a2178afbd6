package repository

import "errors"

// Store error taxonomy. Callers roll back local state on any of these; none
// is fatal to the process.
var (
	ErrNotFound    = errors.New("event not found in store")
	ErrRejected    = errors.New("store rejected the request")
	ErrUnreachable = errors.New("store unreachable")
)
