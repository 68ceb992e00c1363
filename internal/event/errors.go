package event

import "errors"

var (
	// ErrStoreFailed wraps any store failure surfaced to the caller.
	ErrStoreFailed = errors.New("event store failed")
)
