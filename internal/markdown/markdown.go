// Package markdown renders todo descriptions for terminal output.
package markdown

import (
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	internalstrings "github.com/ameitner/tick/internal/strings"
)

type renderer interface {
	Render(string) (string, error)
}

var (
	rendererMu sync.Mutex
	renderers  = map[int]renderer{}
)

// Render formats markdown text word-wrapped to the given width. Blank
// input renders as empty; render failures fall back to the plain text.
func Render(width int, input string) string {
	value := internalstrings.NormalizeNewlines(input)
	value = internalstrings.TrimTrailingNewlines(value)
	if internalstrings.IsBlank(value) {
		return ""
	}
	if width < 1 {
		width = 1
	}

	formatted, ok := safeRender(rendererFor(width), value)
	if !ok {
		return value
	}
	formatted = internalstrings.TrimTrailingNewlines(formatted)
	if internalstrings.IsBlank(formatted) {
		return ""
	}
	return formatted
}

// safeRender shields callers from glamour panics on malformed input.
func safeRender(r renderer, value string) (out string, ok bool) {
	if r == nil {
		return "", false
	}
	defer func() {
		if recovered := recover(); recovered != nil {
			out, ok = "", false
		}
	}()
	formatted, err := r.Render(value)
	if err != nil {
		return "", false
	}
	return formatted, true
}

// Renderers are cached per width; the TUI re-renders on every resize.
func rendererFor(width int) renderer {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if cached, ok := renderers[width]; ok {
		return cached
	}
	style := styles.ASCIIStyleConfig
	style.Item.BlockPrefix = "- "
	created, err := glamour.NewTermRenderer(
		glamour.WithStyles(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	renderers[width] = created
	return created
}
