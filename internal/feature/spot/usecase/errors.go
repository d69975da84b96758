package usecase

import "errors"

var (
	// ErrNoQuotes is returned when every upstream quote fetch failed and
	// no earlier snapshot is cached.
	ErrNoQuotes = errors.New("no spot quotes available")
)
