package companies

import "errors"

// ErrNotFound is returned when a company id has no row.
var ErrNotFound = errors.New("company not found")
