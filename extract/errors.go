package extract

import "errors"

var (
	// ErrOutputRequired is returned when an extractor has no output directory.
	ErrOutputRequired = errors.New("output directory required")
)
