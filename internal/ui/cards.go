package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Card is one todo rendered as a bordered tile in the grid view.
type Card struct {
	Title       string
	Description string
	Category    string
	Due         string
	Completed   bool
}

const (
	cardInnerWidth = 26
	cardGap        = 2

	// Matches the original card layout: descriptions clamp to two lines.
	cardDescriptionLines = 2
)

var (
	cardBorder = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	cardStyle          = lipgloss.NewStyle().Border(cardBorder).BorderForeground(lipgloss.Color("238")).Padding(0, 1).Width(cardInnerWidth + 2)
	cardTitleStyle     = lipgloss.NewStyle().Bold(true)
	cardDoneTitleStyle = lipgloss.NewStyle().Bold(true).Strikethrough(true).Faint(true)
	cardMutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cardCategoryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
)

// FormatCards lays cards out in as many columns as fit the given width.
// A width of zero or less renders a single column.
func FormatCards(cards []Card, width int) string {
	if len(cards) == 0 {
		return ""
	}

	perRow := 1
	if width > 0 {
		perRow = width / (cardInnerWidth + 4 + cardGap)
		if perRow < 1 {
			perRow = 1
		}
	}

	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		rendered = append(rendered, renderCard(card))
	}

	var rows []string
	for start := 0; start < len(rendered); start += perRow {
		end := start + perRow
		if end > len(rendered) {
			end = len(rendered)
		}
		row := rendered[start:end]
		spaced := make([]string, 0, len(row)*2-1)
		for i, card := range row {
			if i > 0 {
				spaced = append(spaced, strings.Repeat(" ", cardGap))
			}
			spaced = append(spaced, card)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, spaced...))
	}

	return strings.Join(rows, "\n")
}

func renderCard(card Card) string {
	var lines []string

	checkbox := "[ ]"
	if card.Completed {
		checkbox = "[x]"
	}
	header := checkbox
	if card.Category != "" {
		badge := cardCategoryStyle.Render(card.Category)
		gap := cardInnerWidth - displayWidth(checkbox) - displayWidth(card.Category)
		if gap < 1 {
			gap = 1
		}
		header += strings.Repeat(" ", gap) + badge
	}
	lines = append(lines, header)

	titleStyle := cardTitleStyle
	if card.Completed {
		titleStyle = cardDoneTitleStyle
	}
	title := wordwrap.String(card.Title, cardInnerWidth)
	for _, line := range strings.Split(title, "\n") {
		lines = append(lines, titleStyle.Render(line))
	}

	if card.Description != "" {
		wrapped := strings.Split(wordwrap.String(normalizeTableCell(card.Description), cardInnerWidth), "\n")
		if len(wrapped) > cardDescriptionLines {
			wrapped = wrapped[:cardDescriptionLines]
			wrapped[cardDescriptionLines-1] += tableCellEllipsis
		}
		for _, line := range wrapped {
			lines = append(lines, cardMutedStyle.Render(line))
		}
	}

	if card.Due != "" && card.Due != "-" {
		lines = append(lines, cardMutedStyle.Render("due "+card.Due))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}
