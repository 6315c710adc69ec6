package todo

import "time"

// Todo represents a single task.
type Todo struct {
	// ID is a unique identifier assigned at creation (milliseconds since
	// the epoch, bumped past the last assigned ID on collision). It is
	// never reassigned.
	ID int64 `json:"id"`

	// Title is the short summary of the todo (max 500 chars, never empty).
	Title string `json:"title"`

	// Description provides additional context about the todo.
	Description string `json:"description,omitempty"`

	// Completed marks the todo as done.
	Completed bool `json:"completed"`

	// Category assigns the todo to one of the fixed categories.
	// Empty means uncategorized.
	Category Category `json:"category,omitempty"`

	// DueDate is the deadline (nil when the todo has none).
	DueDate *time.Time `json:"due_date,omitempty"`

	// CreatedAt is when the todo was created. It never changes.
	CreatedAt time.Time `json:"created_at"`
}

// HasDueDate reports whether the todo has a deadline.
func (t Todo) HasDueDate() bool {
	return t.DueDate != nil
}
