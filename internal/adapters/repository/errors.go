package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound = errors.New("user not found")
	ErrPersist  = errors.New("persist database file")
)
