package tui

import (
	"fmt"
	"strings"

	"github.com/ameitner/tick/app"
	"github.com/ameitner/tick/internal/ui"
	"github.com/ameitner/tick/todo"
)

// renderSidebar shows the search box and the filter controls, mirroring
// the filter panel of the main pane's list.
func (m model) renderSidebar() string {
	var lines []string

	searchLabel := "Search"
	if m.focus == focusSearch {
		searchLabel = activeFilterStyle.Render("Search")
	} else {
		searchLabel = labelStyle.Render(searchLabel)
	}
	lines = append(lines, searchLabel)
	lines = append(lines, m.search.View())
	lines = append(lines, "")

	counts := m.app.Counts()
	criteria := m.app.Criteria()

	lines = append(lines, labelStyle.Render("Status"))
	for _, status := range todo.StatusFilters() {
		label := fmt.Sprintf("%s (%d)", status, statusCount(counts, status))
		if status == criteria.Status {
			label = activeFilterStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		lines = append(lines, label)
	}
	lines = append(lines, "")

	lines = append(lines, labelStyle.Render("Categories"))
	for i, category := range todo.Categories() {
		marker := "[ ]"
		if criteria.CategorySelected(category) {
			marker = "[x]"
		}
		lines = append(lines, fmt.Sprintf("%d %s %s", i+1, marker, category.DisplayName()))
	}

	lines = append(lines, "")
	sortLine := fmt.Sprintf("Sort: %s %s", criteria.Sort, criteria.Direction)
	lines = append(lines, valueMuted.Render(sortLine))
	lines = append(lines, valueMuted.Render(fmt.Sprintf("View: %s", m.app.ViewMode())))

	return strings.Join(lines, "\n")
}

func statusCount(counts todo.Counts, status todo.StatusFilter) int {
	switch status {
	case todo.StatusUpcoming:
		return counts.Upcoming
	case todo.StatusArchived:
		return counts.Archived
	default:
		return counts.Total
	}
}

// renderMain shows the visible todos in the active view mode.
func (m model) renderMain(width int) string {
	visible := m.app.Visible()
	if len(visible) == 0 {
		return valueMuted.Render("No todos match the current filters.")
	}
	if m.app.ViewMode() == app.ViewGrid {
		return m.renderGrid(visible, width)
	}
	return m.renderRows(visible, width)
}

func (m model) renderRows(visible []todo.Todo, width int) string {
	lines := make([]string, 0, len(visible))
	for i, item := range visible {
		line := formatListRow(item, width)
		switch {
		case i == m.selection:
			line = selectedRowStyle.Render(line)
		case item.Completed:
			line = doneRowStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatListRow(item todo.Todo, width int) string {
	checkbox := "[ ]"
	if item.Completed {
		checkbox = "[x]"
	}
	meta := ui.FormatDate(item.DueDate)
	if item.Category != "" {
		meta += "  " + item.Category.DisplayName()
	}
	line := fmt.Sprintf("%s %s  %s", checkbox, item.Title, valueMuted.Render(meta))
	return truncateLine(line, width)
}

func (m model) renderGrid(visible []todo.Todo, width int) string {
	cards := make([]ui.Card, 0, len(visible))
	for _, item := range visible {
		cards = append(cards, todoCard(item))
	}
	return ui.FormatCards(cards, width)
}

func todoCard(item todo.Todo) ui.Card {
	return ui.Card{
		Title:       item.Title,
		Description: item.Description,
		Category:    item.Category.DisplayName(),
		Due:         ui.FormatDate(item.DueDate),
		Completed:   item.Completed,
	}
}
