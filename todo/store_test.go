package todo

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestStore_Create(t *testing.T) {
	store, storage := openTestStore(t)

	created := mustCreate(t, store, "Buy milk", CreateOptions{})

	if created.Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %q", created.Title)
	}
	if created.Completed {
		t.Error("expected completed to default to false")
	}
	if created.Category != "" {
		t.Errorf("expected no category, got %q", created.Category)
	}
	if created.DueDate != nil {
		t.Errorf("expected no due date, got %v", created.DueDate)
	}
	if created.ID == 0 {
		t.Error("expected a non-zero ID")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}
	if storage.saveCalls != 1 {
		t.Errorf("expected exactly one persistence write, got %d", storage.saveCalls)
	}
}

func TestStore_Create_WithOptions(t *testing.T) {
	store, _ := openTestStore(t)

	due := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	created := mustCreate(t, store, "Finish report", CreateOptions{
		Description: "Quarterly numbers",
		Category:    CategoryWork,
		DueDate:     &due,
	})

	if created.Description != "Quarterly numbers" {
		t.Errorf("expected description, got %q", created.Description)
	}
	if created.Category != CategoryWork {
		t.Errorf("expected WORK category, got %q", created.Category)
	}
	if created.DueDate == nil || !created.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, created.DueDate)
	}
}

func TestStore_Create_EmptyTitle(t *testing.T) {
	store, storage := openTestStore(t)

	_, err := store.Create("", CreateOptions{})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if storage.saveCalls != 0 {
		t.Errorf("expected no persistence write on validation failure, got %d", storage.saveCalls)
	}
}

func TestStore_Create_TitleTooLong(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Create(strings.Repeat("x", MaxTitleLength+1), CreateOptions{})
	if !errors.Is(err, ErrTitleTooLong) {
		t.Errorf("expected ErrTitleTooLong, got %v", err)
	}
}

func TestStore_Create_InvalidCategory(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.Create("Buy milk", CreateOptions{Category: "CHORES"})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestStore_Create_UniqueIDs(t *testing.T) {
	store, _ := openTestStore(t)

	// Several creations land in the same millisecond; IDs must still be
	// unique and strictly increasing.
	var last int64
	for i := 0; i < 50; i++ {
		created := mustCreate(t, store, "Task", CreateOptions{})
		if created.ID <= last {
			t.Fatalf("expected strictly increasing IDs, got %d after %d", created.ID, last)
		}
		last = created.ID
	}
}

func TestStore_Update(t *testing.T) {
	store, storage := openTestStore(t)
	created := mustCreate(t, store, "Buy milk", CreateOptions{Description: "2 liters"})
	storage.saveCalls = 0

	title := "Buy oat milk"
	updated, err := store.Update(created.ID, UpdateOptions{Title: &title})
	if err != nil {
		t.Fatalf("failed to update: %v", err)
	}

	if updated.Title != "Buy oat milk" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
	// Unspecified fields are retained.
	if updated.Description != "2 liters" {
		t.Errorf("expected description retained, got %q", updated.Description)
	}
	if updated.ID != created.ID {
		t.Errorf("expected ID unchanged, got %d", updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("expected created_at unchanged, got %v", updated.CreatedAt)
	}
	if storage.saveCalls != 1 {
		t.Errorf("expected exactly one persistence write, got %d", storage.saveCalls)
	}
}

func TestStore_Update_DueDate(t *testing.T) {
	store, _ := openTestStore(t)
	created := mustCreate(t, store, "Buy milk", CreateOptions{})

	due := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	updated, err := store.Update(created.ID, UpdateOptions{DueDate: &due})
	if err != nil {
		t.Fatalf("failed to set due date: %v", err)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Errorf("expected due date %v, got %v", due, updated.DueDate)
	}

	cleared, err := store.Update(created.ID, UpdateOptions{ClearDueDate: true})
	if err != nil {
		t.Fatalf("failed to clear due date: %v", err)
	}
	if cleared.DueDate != nil {
		t.Errorf("expected due date cleared, got %v", cleared.DueDate)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	store, storage := openTestStore(t)
	mustCreate(t, store, "Buy milk", CreateOptions{})
	storage.saveCalls = 0

	title := "nope"
	_, err := store.Update(42, UpdateOptions{Title: &title})
	if !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
	if storage.saveCalls != 0 {
		t.Errorf("expected no persistence write, got %d", storage.saveCalls)
	}
}

func TestStore_Delete(t *testing.T) {
	store, _ := openTestStore(t)
	first := mustCreate(t, store, "First", CreateOptions{})
	second := mustCreate(t, store, "Second", CreateOptions{})

	if err := store.Delete(first.ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	todos := store.All()
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo after delete, got %d", len(todos))
	}
	if todos[0].ID != second.ID {
		t.Errorf("expected the other todo to survive, got %d", todos[0].ID)
	}
	if _, err := store.Get(first.ID); !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("expected deleted todo to be gone, got %v", err)
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	store, storage := openTestStore(t)
	mustCreate(t, store, "Buy milk", CreateOptions{})
	before := store.All()
	storage.saveCalls = 0

	err := store.Delete(42)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}

	// The list is unchanged in length and contents.
	after := store.All()
	if len(after) != len(before) {
		t.Fatalf("expected list length unchanged, got %d", len(after))
	}
	for i := range before {
		if after[i].ID != before[i].ID || after[i].Title != before[i].Title {
			t.Errorf("expected list contents unchanged at %d", i)
		}
	}
	if storage.saveCalls != 0 {
		t.Errorf("expected no persistence write, got %d", storage.saveCalls)
	}
}

func TestStore_ToggleCompleted(t *testing.T) {
	store, _ := openTestStore(t)
	created := mustCreate(t, store, "Buy milk", CreateOptions{Description: "2 liters"})

	toggled, err := store.ToggleCompleted(created.ID)
	if err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if !toggled.Completed {
		t.Error("expected completed=true after toggle")
	}
	// Toggling never affects other fields.
	if toggled.Title != created.Title || toggled.Description != created.Description {
		t.Error("expected toggle to leave other fields untouched")
	}
	if !toggled.CreatedAt.Equal(created.CreatedAt) {
		t.Error("expected created_at untouched by toggle")
	}

	// Toggling twice restores the original value.
	again, err := store.ToggleCompleted(created.ID)
	if err != nil {
		t.Fatalf("failed to toggle back: %v", err)
	}
	if again.Completed {
		t.Error("expected completed=false after double toggle")
	}
}

func TestStore_ToggleCompleted_NotFound(t *testing.T) {
	store, _ := openTestStore(t)

	_, err := store.ToggleCompleted(42)
	if !errors.Is(err, ErrTodoNotFound) {
		t.Errorf("expected ErrTodoNotFound, got %v", err)
	}
}

func TestStore_Revision(t *testing.T) {
	store, _ := openTestStore(t)

	if store.Revision() != 0 {
		t.Errorf("expected revision 0 on open, got %d", store.Revision())
	}

	created := mustCreate(t, store, "Buy milk", CreateOptions{})
	if store.Revision() != 1 {
		t.Errorf("expected revision 1 after create, got %d", store.Revision())
	}

	if _, err := store.ToggleCompleted(created.ID); err != nil {
		t.Fatalf("failed to toggle: %v", err)
	}
	if store.Revision() != 2 {
		t.Errorf("expected revision 2 after toggle, got %d", store.Revision())
	}

	// Failed mutations don't bump the revision.
	if err := store.Delete(42); err == nil {
		t.Fatal("expected delete of missing todo to fail")
	}
	if store.Revision() != 2 {
		t.Errorf("expected revision unchanged after failed delete, got %d", store.Revision())
	}
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	storage := newMemStorage()
	store, err := Open(storage, OpenOptions{})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	due := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	created := mustCreate(t, store, "Buy milk", CreateOptions{
		Description: "2 liters",
		Category:    CategoryPersonal,
		DueDate:     &due,
	})

	// A second store over the same storage sees the identical list.
	reopened, err := Open(storage, OpenOptions{})
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}

	todos := reopened.All()
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo after reopen, got %d", len(todos))
	}
	got := todos[0]
	if got.ID != created.ID || got.Title != created.Title || got.Description != created.Description || got.Category != created.Category {
		t.Errorf("todo did not round-trip: %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("due date did not round-trip: %v", got.DueDate)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("created_at did not round-trip: %v vs %v", got.CreatedAt, created.CreatedAt)
	}
}

func TestOpen_SeedsFirstRunOnly(t *testing.T) {
	storage := newMemStorage()

	store, err := Open(storage, OpenOptions{Seed: StarterTodos()})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 seeded todos, got %d", store.Len())
	}

	if err := store.Delete(store.All()[0].ID); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}

	// Reopening must not reseed over the user's data.
	reopened, err := Open(storage, OpenOptions{Seed: StarterTodos()})
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	if reopened.Len() != 2 {
		t.Errorf("expected 2 todos after reopen, got %d", reopened.Len())
	}
}

func TestStore_All_ReturnsCopy(t *testing.T) {
	store, _ := openTestStore(t)
	mustCreate(t, store, "Buy milk", CreateOptions{})

	todos := store.All()
	todos[0].Title = "mutated"

	fresh := store.All()
	if fresh[0].Title != "Buy milk" {
		t.Errorf("expected canonical list unaffected by caller mutation, got %q", fresh[0].Title)
	}
}
