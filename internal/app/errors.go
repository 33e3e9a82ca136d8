package app

import "errors"

// Sentinel kinds for tracker errors.
var (
	// ErrBlankName rejects profile saves with an empty display name before
	// any network call is made.
	ErrBlankName = errors.New("display name must not be blank")
)
