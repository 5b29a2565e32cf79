package matching

import "errors"

// ErrInvalidInput indicates the requester profile or candidate pool was nil.
var ErrInvalidInput = errors.New("matching: requester and candidate pool are required")
