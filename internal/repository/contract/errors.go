package contract

import "errors"

var (
	// ErrNotFound is returned by mutating operations that matched no row.
	ErrNotFound = errors.New("record not found")

	// ErrNoFields is returned by partial updates called with nothing to set.
	ErrNoFields = errors.New("no fields to update")
)
