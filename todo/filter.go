package todo

import (
	"fmt"
	"sort"
	"strings"

	internalstrings "github.com/ameitner/tick/internal/strings"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StatusFilter narrows a view to completed or not-yet-completed todos.
type StatusFilter string

const (
	// StatusAll keeps every todo regardless of completion.
	StatusAll StatusFilter = "all"

	// StatusUpcoming keeps todos that aren't completed yet.
	StatusUpcoming StatusFilter = "upcoming"

	// StatusArchived keeps completed todos.
	StatusArchived StatusFilter = "archived"
)

// StatusFilters returns all valid status filter values.
func StatusFilters() []StatusFilter {
	return []StatusFilter{StatusAll, StatusUpcoming, StatusArchived}
}

// IsValid returns true if the status filter is a known valid value.
func (f StatusFilter) IsValid() bool {
	for _, valid := range StatusFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// ParseStatusFilter normalizes case-insensitive status filter input.
func ParseStatusFilter(value string) (StatusFilter, error) {
	normalized := StatusFilter(internalstrings.NormalizeLowerTrimSpace(value))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidStatusFilter, value, formatValues(StatusFilters()))
	}
	return normalized, nil
}

// SortKey selects which field a view orders by.
type SortKey string

const (
	// SortDueDate orders by deadline; todos without one go last.
	SortDueDate SortKey = "due"

	// SortCreatedAt orders by creation time.
	SortCreatedAt SortKey = "created"

	// SortTitle orders by title, locale-aware.
	SortTitle SortKey = "title"
)

// SortKeys returns all valid sort key values.
func SortKeys() []SortKey {
	return []SortKey{SortDueDate, SortCreatedAt, SortTitle}
}

// IsValid returns true if the sort key is a known valid value.
func (k SortKey) IsValid() bool {
	for _, valid := range SortKeys() {
		if k == valid {
			return true
		}
	}
	return false
}

// ParseSortKey normalizes case-insensitive sort key input.
func ParseSortKey(value string) (SortKey, error) {
	normalized := SortKey(internalstrings.NormalizeLowerTrimSpace(value))
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortKey, value, formatValues(SortKeys()))
	}
	return normalized, nil
}

// SortDirection orders a view ascending or descending.
type SortDirection string

const (
	// SortAscending orders smallest first.
	SortAscending SortDirection = "asc"

	// SortDescending orders largest first.
	SortDescending SortDirection = "desc"
)

// ParseSortDirection normalizes case-insensitive sort direction input.
func ParseSortDirection(value string) (SortDirection, error) {
	switch internalstrings.NormalizeLowerTrimSpace(value) {
	case string(SortAscending), "ascending":
		return SortAscending, nil
	case string(SortDescending), "descending":
		return SortDescending, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: asc, desc)", ErrInvalidSortDirection, value)
	}
}

// Toggle returns the opposite direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortDescending {
		return SortAscending
	}
	return SortDescending
}

// Criteria describes which todos a view shows and how they're ordered.
// Criteria are session state; they are never persisted.
type Criteria struct {
	// Search is matched case-insensitively against title and description.
	// Blank means no search restriction.
	Search string

	// Categories is the category multi-select. An empty or full selection
	// means no category restriction.
	Categories []Category

	// Status keeps all, upcoming, or archived todos.
	Status StatusFilter

	// Sort selects the ordering field.
	Sort SortKey

	// Direction orders ascending or descending.
	Direction SortDirection
}

// DefaultCriteria returns the view criteria a new session starts with:
// upcoming todos, all categories, due date ascending.
func DefaultCriteria() Criteria {
	return Criteria{
		Categories: Categories(),
		Status:     StatusUpcoming,
		Sort:       SortDueDate,
		Direction:  SortAscending,
	}
}

// Reset restores the default criteria but shows all statuses.
func (c *Criteria) Reset() {
	*c = Criteria{
		Categories: Categories(),
		Status:     StatusAll,
		Sort:       SortDueDate,
		Direction:  SortAscending,
	}
}

// ToggleCategory adds or removes a category from the selection.
// Deselecting the last remaining category resets the selection to the
// full set, so the filter can never reach a state that shows nothing.
func (c *Criteria) ToggleCategory(category Category) {
	for i, selected := range c.Categories {
		if selected != category {
			continue
		}
		next := append([]Category(nil), c.Categories[:i]...)
		next = append(next, c.Categories[i+1:]...)
		if len(next) == 0 {
			next = Categories()
		}
		c.Categories = next
		return
	}
	c.Categories = append(append([]Category(nil), c.Categories...), category)
}

// SelectAllCategories clears the category restriction.
func (c *Criteria) SelectAllCategories() {
	c.Categories = Categories()
}

// CategorySelected reports whether the category is in the selection.
func (c Criteria) CategorySelected(category Category) bool {
	for _, selected := range c.Categories {
		if selected == category {
			return true
		}
	}
	return false
}

// AllCategoriesSelected reports whether the selection imposes no
// category restriction.
func (c Criteria) AllCategoriesSelected() bool {
	return !c.categoryFilterActive()
}

// categoryFilterActive reports whether the selection actually restricts
// the view. Empty and full selections both mean "no filter".
func (c Criteria) categoryFilterActive() bool {
	return len(c.Categories) > 0 && len(c.Categories) < len(Categories())
}

// Equal reports whether two criteria produce the same view.
func (c Criteria) Equal(other Criteria) bool {
	if c.Search != other.Search || c.Status != other.Status || c.Sort != other.Sort || c.Direction != other.Direction {
		return false
	}
	if len(c.Categories) != len(other.Categories) {
		return false
	}
	for i := range c.Categories {
		if c.Categories[i] != other.Categories[i] {
			return false
		}
	}
	return true
}

// Matches reports whether a todo passes the search, category, and status
// predicates. The three predicates are independent and ANDed together.
func (c Criteria) Matches(t Todo) bool {
	return c.matchesSearch(t) && c.matchesCategory(t) && c.matchesStatus(t)
}

func (c Criteria) matchesSearch(t Todo) bool {
	term := internalstrings.NormalizeLowerTrimSpace(c.Search)
	if term == "" {
		return true
	}
	if strings.Contains(internalstrings.NormalizeLower(t.Title), term) {
		return true
	}
	return t.Description != "" && strings.Contains(internalstrings.NormalizeLower(t.Description), term)
}

func (c Criteria) matchesCategory(t Todo) bool {
	if !c.categoryFilterActive() {
		return true
	}
	// Uncategorized todos belong to the NONE bucket.
	if t.Category == "" {
		return c.CategorySelected(CategoryNone)
	}
	return c.CategorySelected(t.Category)
}

func (c Criteria) matchesStatus(t Todo) bool {
	switch c.Status {
	case StatusUpcoming:
		return !t.Completed
	case StatusArchived:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the todos matching the criteria, sorted. It is a pure
// function: the input list is never modified and the result is always a
// subset of it. Sorting is stable, so reversing the direction yields the
// exact reverse ordering among todos with distinct keys.
func Apply(todos []Todo, criteria Criteria) []Todo {
	result := make([]Todo, 0, len(todos))
	for _, item := range todos {
		if criteria.Matches(item) {
			result = append(result, item)
		}
	}

	less := lessFunc(criteria)
	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})
	return result
}

func lessFunc(criteria Criteria) func(a, b Todo) bool {
	descending := criteria.Direction == SortDescending

	switch criteria.Sort {
	case SortCreatedAt:
		return func(a, b Todo) bool {
			if descending {
				return b.CreatedAt.Before(a.CreatedAt)
			}
			return a.CreatedAt.Before(b.CreatedAt)
		}
	case SortTitle:
		collator := collate.New(language.English)
		return func(a, b Todo) bool {
			cmp := collator.CompareString(a.Title, b.Title)
			if descending {
				return cmp > 0
			}
			return cmp < 0
		}
	default:
		// Due date. Todos without a due date sort after all todos with
		// one regardless of direction; only dated-vs-dated comparisons
		// honor the direction.
		return func(a, b Todo) bool {
			switch {
			case a.DueDate == nil && b.DueDate == nil:
				return false
			case a.DueDate == nil:
				return false
			case b.DueDate == nil:
				return true
			}
			if descending {
				return b.DueDate.Before(*a.DueDate)
			}
			return a.DueDate.Before(*b.DueDate)
		}
	}
}

// Counts summarizes the canonical list by completion status. The sidebar
// shows these independent of any active filter.
type Counts struct {
	Upcoming int
	Archived int
	Total    int
}

// CountByStatus tallies upcoming, archived, and total todos.
func CountByStatus(todos []Todo) Counts {
	counts := Counts{Total: len(todos)}
	for _, item := range todos {
		if item.Completed {
			counts.Archived++
		} else {
			counts.Upcoming++
		}
	}
	return counts
}
