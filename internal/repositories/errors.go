package repositories

import "errors"

// ErrNotFound is wrapped by every repository when a record does not exist, so
// callers can match it with errors.Is regardless of the entity.
var ErrNotFound = errors.New("record not found")
