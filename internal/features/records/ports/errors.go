package ports

import "errors"

// ErrRecordNotFound is returned when the store has no record with the requested id.
var ErrRecordNotFound = errors.New("record not found")
