package todo

import (
	"fmt"
	"strings"
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateTodo checks if a todo struct is valid.
func ValidateTodo(t *Todo) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if t.Category != "" && !t.Category.IsValid() {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidCategory, t.Category, formatValues(Categories()))
	}
	return nil
}

// ParseCategory normalizes case-insensitive category input. Empty input
// and "none" both mean uncategorized.
func ParseCategory(value string) (Category, error) {
	normalized := Category(strings.ToUpper(strings.TrimSpace(value)))
	if normalized == "" || normalized == CategoryNone {
		return "", nil
	}
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidCategory, value, formatValues(Categories()))
	}
	return normalized, nil
}

func formatValues[T ~string](values []T) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, string(value))
	}
	return strings.Join(formatted, ", ")
}
