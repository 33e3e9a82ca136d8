package absence

import "errors"

// Sentinel kinds for absence errors.
var (
	ErrMalformedID = errors.New("malformed absence id")
)
