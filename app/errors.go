package app

import "errors"

var (
	// ErrInvalidViewMode is returned when a view mode string is not
	// "list" or "grid".
	ErrInvalidViewMode = errors.New("invalid view mode")

	// ErrSortKeyUnavailable is returned when the configured sort profile
	// does not offer the requested sort key.
	ErrSortKeyUnavailable = errors.New("sort key not available under the configured sort profile")

	// ErrNoFormTarget is returned when a form submission needs a target
	// todo but the form has none.
	ErrNoFormTarget = errors.New("form has no target todo")
)
