package rest

import "errors"

// Sentinel kinds for remote-call errors.
var (
	// ErrUnavailable marks transport failures: the service could not be
	// reached at all. Callers use it to flip the offline flag.
	ErrUnavailable = errors.New("attendance service unavailable")

	// ErrRemote marks responses with an unexpected status code.
	ErrRemote = errors.New("attendance service error")
)
