package main

import (
	"testing"
	"time"

	"github.com/ameitner/tick/todo"
)

func TestParseTodoID(t *testing.T) {
	id, err := parseTodoID("1706000000000")
	if err != nil {
		t.Fatalf("parseTodoID returned error: %v", err)
	}
	if id != 1706000000000 {
		t.Fatalf("expected id 1706000000000, got %d", id)
	}

	if _, err := parseTodoID("abc"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}
	if _, err := parseTodoID(""); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestParseDueFlag(t *testing.T) {
	due, err := parseDueFlag("2031-06-01")
	if err != nil {
		t.Fatalf("parseDueFlag returned error: %v", err)
	}
	if due == nil {
		t.Fatal("expected a due date")
	}
	want := time.Date(2031, time.June, 1, 0, 0, 0, 0, time.Local)
	if !due.Equal(want) {
		t.Fatalf("expected %v, got %v", want, *due)
	}

	empty, err := parseDueFlag("")
	if err != nil {
		t.Fatalf("parseDueFlag(\"\") returned error: %v", err)
	}
	if empty != nil {
		t.Fatalf("expected nil for empty value, got %v", *empty)
	}

	if _, err := parseDueFlag("06/01/2031"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestParseCategoryFlags(t *testing.T) {
	categories, err := parseCategoryFlags([]string{"work", "NONE"})
	if err != nil {
		t.Fatalf("parseCategoryFlags returned error: %v", err)
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(categories))
	}
	if categories[0] != todo.CategoryWork {
		t.Fatalf("expected work, got %q", categories[0])
	}
	if categories[1] != todo.CategoryNone {
		t.Fatalf("expected the uncategorized bucket for \"none\", got %q", categories[1])
	}

	if got, err := parseCategoryFlags(nil); err != nil || got != nil {
		t.Fatalf("expected nil, nil for no flags, got %v, %v", got, err)
	}

	if _, err := parseCategoryFlags([]string{"chores"}); err == nil {
		t.Fatal("expected error for unknown category")
	}
}
