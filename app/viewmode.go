package app

import (
	"fmt"

	internalstrings "github.com/ameitner/tick/internal/strings"
)

// ViewMode selects how the todo list is laid out.
type ViewMode string

const (
	// ViewList renders todos as table rows.
	ViewList ViewMode = "list"

	// ViewGrid renders todos as cards.
	ViewGrid ViewMode = "grid"
)

// IsValid returns true if the view mode is a known valid value.
func (m ViewMode) IsValid() bool {
	return m == ViewList || m == ViewGrid
}

// Toggle returns the other view mode.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewGrid {
		return ViewList
	}
	return ViewGrid
}

// ParseViewMode normalizes case-insensitive view mode input.
func ParseViewMode(value string) (ViewMode, error) {
	normalized := ViewMode(internalstrings.NormalizeLowerTrimSpace(value))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: list, grid)", ErrInvalidViewMode, value)
	}
	return normalized, nil
}

// UIStateKey is the storage key UI preferences are persisted under,
// separate from the todo list.
const UIStateKey = "ui"

// uiState is the persisted shape of the UI preferences. The view mode is
// the only preference that survives across sessions; filter criteria
// deliberately do not.
type uiState struct {
	ViewMode ViewMode `json:"view_mode"`
}
