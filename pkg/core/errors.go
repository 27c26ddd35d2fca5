package core

import "errors"

// Common errors.
var (
	// ErrSectorNotFound is returned when a sector assignment references an
	// unknown sector id.
	ErrSectorNotFound = errors.New("sector not found")

	// ErrStreetNotFound is returned when a street id is unknown.
	ErrStreetNotFound = errors.New("street not found")

	// ErrParse is returned when an imported file is not well-formed JSON.
	ErrParse = errors.New("document is not well-formed JSON")

	// ErrInvalidDocument is returned when an imported document is parseable
	// but does not have an object at the top level.
	ErrInvalidDocument = errors.New("invalid document format")

	// ErrInvalidRange is returned when a manual house-number range is not a
	// pair of integers with end >= start.
	ErrInvalidRange = errors.New("invalid house-number range")
)
