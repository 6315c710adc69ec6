package todo

import "errors"

var (
	// ErrTodoNotFound is returned when a todo with the given ID doesn't exist.
	ErrTodoNotFound = errors.New("todo not found")

	// ErrEmptyTitle is returned when a todo title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a todo title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidCategory is returned when an unknown category is provided.
	ErrInvalidCategory = errors.New("invalid category")

	// ErrInvalidStatusFilter is returned when an unknown status filter is provided.
	ErrInvalidStatusFilter = errors.New("invalid status filter")

	// ErrInvalidSortKey is returned when an unknown sort key is provided.
	ErrInvalidSortKey = errors.New("invalid sort key")

	// ErrInvalidSortDirection is returned when an unknown sort direction is provided.
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)
