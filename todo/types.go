// Package todo implements the task model and state container behind tick.
//
// A Store owns the canonical todo list and is the only writer of persisted
// state: every mutation rewrites the full list through its storage adapter.
// Filtering and sorting are pure functions of (todos, Criteria) — see Apply.
//
// The public API mirrors the app's actions:
//   - Create, Update, Delete, ToggleCompleted for the todo lifecycle
//   - All, Get for reading
//   - Apply, CountByStatus for derived views
package todo

import "strings"

// Category assigns a todo to one of a fixed set of buckets.
type Category string

const (
	// CategoryWork is for job-related tasks.
	CategoryWork Category = "WORK"

	// CategoryPersonal is for personal errands.
	CategoryPersonal Category = "PERSONAL"

	// CategorySchool is for coursework.
	CategorySchool Category = "SCHOOL"

	// CategoryHealth is for health and fitness tasks.
	CategoryHealth Category = "HEALTH"

	// CategoryNone is the selectable "no category" bucket. A todo stored
	// without a category has the empty string, not CategoryNone.
	CategoryNone Category = "NONE"
)

// Categories returns all valid category values in display order.
func Categories() []Category {
	return []Category{CategoryWork, CategoryPersonal, CategorySchool, CategoryHealth, CategoryNone}
}

// IsValid returns true if the category is a known valid value.
func (c Category) IsValid() bool {
	for _, valid := range Categories() {
		if c == valid {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name like "Personal".
func (c Category) DisplayName() string {
	value := string(c)
	if value == "" {
		return ""
	}
	return value[:1] + strings.ToLower(value[1:])
}

// MaxTitleLength is the maximum allowed length for a todo title.
const MaxTitleLength = 500
