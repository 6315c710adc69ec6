package todo

import (
	"fmt"
	"time"
)

// TodosKey is the storage key the todo list persists under.
const TodosKey = "todos"

// Storage persists named values. Implementations must round-trip all Todo
// fields, including dates, without precision loss.
type Storage interface {
	// Load reads the value stored under key into out, returning false
	// when the key has never been written.
	Load(key string, out any) (bool, error)

	// Save overwrites the stored value for key with a full serialization
	// of value.
	Save(key string, value any) error
}

// Store owns the canonical todo list. It is the only writer of persisted
// todo state: every mutation rewrites the complete list through the
// storage adapter, then bumps the revision.
//
// A Store is constructed per session and passed by reference; there is no
// package-level instance.
type Store struct {
	storage  Storage
	todos    []Todo
	lastID   int64
	revision uint64
}

// OpenOptions configures how the store is opened.
type OpenOptions struct {
	// Seed is persisted as the initial list when no todos have ever been
	// written. Leave nil to start empty.
	Seed []Todo
}

// Open loads the todo list from storage. On first run the seed list, if
// any, is written and becomes the initial state.
func Open(storage Storage, opts OpenOptions) (*Store, error) {
	store := &Store{storage: storage}

	var todos []Todo
	found, err := storage.Load(TodosKey, &todos)
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}

	if !found && len(opts.Seed) > 0 {
		todos = cloneTodos(opts.Seed)
		if err := storage.Save(TodosKey, todos); err != nil {
			return nil, fmt.Errorf("seed todos: %w", err)
		}
	}

	store.todos = todos
	for _, item := range todos {
		if item.ID > store.lastID {
			store.lastID = item.ID
		}
	}
	return store, nil
}

// All returns a copy of the canonical list in insertion order.
func (s *Store) All() []Todo {
	return cloneTodos(s.todos)
}

// Len returns the number of todos in the list.
func (s *Store) Len() int {
	return len(s.todos)
}

// Revision increases by one on every successful mutation. Derived views
// use it to detect that the list changed.
func (s *Store) Revision() uint64 {
	return s.revision
}

// Get returns a copy of the todo with the given ID.
func (s *Store) Get(id int64) (*Todo, error) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			found := s.todos[i]
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrTodoNotFound, id)
}

// CreateOptions configures a new todo.
type CreateOptions struct {
	// Description provides additional context.
	Description string

	// Category assigns the todo to a category. Empty means uncategorized.
	Category Category

	// DueDate sets the deadline. Nil means no deadline.
	DueDate *time.Time

	// Completed marks the todo done from the start. Defaults to false.
	Completed bool
}

// Create appends a new todo with the given title and persists the list.
// The new todo's ID and CreatedAt are assigned here and never change.
func (s *Store) Create(title string, opts CreateOptions) (*Todo, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if opts.Category != "" && !opts.Category.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, opts.Category)
	}

	now := time.Now()
	created := Todo{
		ID:          s.nextID(now),
		Title:       title,
		Description: opts.Description,
		Completed:   opts.Completed,
		Category:    opts.Category,
		CreatedAt:   now,
	}
	if opts.DueDate != nil {
		due := *opts.DueDate
		created.DueDate = &due
	}

	next := append(cloneTodos(s.todos), created)
	if err := s.persist(next); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateOptions configures fields to update on a todo.
// Nil pointers mean "don't update this field".
type UpdateOptions struct {
	Title       *string
	Description *string
	Completed   *bool
	Category    *Category
	DueDate     *time.Time

	// ClearDueDate removes the deadline. Takes precedence over DueDate.
	ClearDueDate bool
}

// Update merges the given options into the todo with the given ID and
// persists the list. Unspecified fields are retained; ID and CreatedAt
// cannot be changed.
func (s *Store) Update(id int64, opts UpdateOptions) (*Todo, error) {
	if opts.Title != nil {
		if err := ValidateTitle(*opts.Title); err != nil {
			return nil, err
		}
	}
	if opts.Category != nil && *opts.Category != "" && !opts.Category.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *opts.Category)
	}

	index, err := s.indexOf(id)
	if err != nil {
		return nil, err
	}

	next := cloneTodos(s.todos)
	item := &next[index]
	if opts.Title != nil {
		item.Title = *opts.Title
	}
	if opts.Description != nil {
		item.Description = *opts.Description
	}
	if opts.Completed != nil {
		item.Completed = *opts.Completed
	}
	if opts.Category != nil {
		item.Category = *opts.Category
	}
	if opts.ClearDueDate {
		item.DueDate = nil
	} else if opts.DueDate != nil {
		due := *opts.DueDate
		item.DueDate = &due
	}

	if err := s.persist(next); err != nil {
		return nil, err
	}
	updated := s.todos[index]
	return &updated, nil
}

// Delete removes the todo with the given ID entirely and persists the
// list. There is no tombstone; the record is gone.
func (s *Store) Delete(id int64) error {
	index, err := s.indexOf(id)
	if err != nil {
		return err
	}

	next := make([]Todo, 0, len(s.todos)-1)
	next = append(next, s.todos[:index]...)
	next = append(next, s.todos[index+1:]...)
	return s.persist(next)
}

// ToggleCompleted flips the completed flag of the todo with the given ID
// and persists the list. No other field is touched.
func (s *Store) ToggleCompleted(id int64) (*Todo, error) {
	index, err := s.indexOf(id)
	if err != nil {
		return nil, err
	}

	next := cloneTodos(s.todos)
	next[index].Completed = !next[index].Completed

	if err := s.persist(next); err != nil {
		return nil, err
	}
	toggled := s.todos[index]
	return &toggled, nil
}

func (s *Store) indexOf(id int64) (int, error) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %d", ErrTodoNotFound, id)
}

// persist writes the complete list, then commits it in memory. On write
// failure the in-memory list is unchanged.
func (s *Store) persist(next []Todo) error {
	if err := s.storage.Save(TodosKey, next); err != nil {
		return fmt.Errorf("save todos: %w", err)
	}
	s.todos = next
	s.revision++
	return nil
}

// nextID derives a unique ID from the current time in milliseconds,
// bumping past the last assigned ID when two creations land in the same
// millisecond.
func (s *Store) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func cloneTodos(todos []Todo) []Todo {
	if len(todos) == 0 {
		return nil
	}
	cloned := make([]Todo, len(todos))
	copy(cloned, todos)
	for i := range cloned {
		if cloned[i].DueDate != nil {
			due := *cloned[i].DueDate
			cloned[i].DueDate = &due
		}
	}
	return cloned
}
