package usecase

import "errors"

var (
	// ErrNoData is returned when a symbol has no cached series and the
	// upstream fetch failed as well, leaving nothing to serve.
	ErrNoData = errors.New("no historical data available")
)
