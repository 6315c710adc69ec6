package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ameitner/tick/internal/ui"
	"github.com/ameitner/tick/todo"
)

func parseTodoID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid todo id %q", value)
	}
	return id, nil
}

func parseDueFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := ui.ParseDate(value)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q (expected %s)", value, ui.DateInputLayout)
	}
	return &parsed, nil
}

func parseCategoryFlags(values []string) ([]todo.Category, error) {
	if len(values) == 0 {
		return nil, nil
	}
	categories := make([]todo.Category, 0, len(values))
	for _, value := range values {
		category, err := todo.ParseCategory(value)
		if err != nil {
			return nil, err
		}
		if category == "" {
			// "none" selects the uncategorized bucket in filters.
			category = todo.CategoryNone
		}
		categories = append(categories, category)
	}
	return categories, nil
}
