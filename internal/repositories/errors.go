package repositories

import "errors"

// ErrNotFound is returned when a looked-up record does not exist, regardless
// of which store backs the repository.
var ErrNotFound = errors.New("record not found")
