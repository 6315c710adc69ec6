// Package tui is the interactive terminal UI behind `tick ui`. It is a
// single-screen app: a filter sidebar next to the todo list, with a
// modal form for adding, editing, and viewing todos.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ameitner/tick/app"
	"github.com/ameitner/tick/internal/config"
	"github.com/ameitner/tick/todo"
)

type focusArea int

const (
	focusList focusArea = iota
	focusSearch
)

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

// searchCommittedMsg delivers a debounced search term back onto the
// program loop; the debouncer itself fires on a timer goroutine.
type searchCommittedMsg struct {
	term string
}

type confirmDelete struct {
	active bool
	id     int64
	title  string
}

type model struct {
	app *app.App

	width  int
	height int

	focus     focusArea
	selection int
	search    textinput.Model
	form      formModel
	confirm   confirmDelete

	status      string
	statusLevel statusLevel
}

// Run opens the store-backed UI and blocks until the user quits.
func Run(store *todo.Store, storage todo.Storage, cfg *config.Config) error {
	var defaultView app.ViewMode
	if cfg.UI.ViewMode != "" {
		mode, err := app.ParseViewMode(cfg.UI.ViewMode)
		if err != nil {
			return err
		}
		defaultView = mode
	}

	application, err := app.New(store, storage, app.Options{
		SortProfile:     cfg.SortProfile(),
		SearchDebounce:  cfg.SearchDebounce(),
		DefaultViewMode: defaultView,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize UI state: %w", err)
	}

	program := tea.NewProgram(newModel(application), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func newModel(application *app.App) model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"

	return model{
		app:    application,
		search: search,
		form:   newFormModel(),
	}
}

func (m model) Init() tea.Cmd {
	return m.waitForSearchCmd()
}

func (m model) waitForSearchCmd() tea.Cmd {
	commits := m.app.SearchCommits()
	return func() tea.Msg {
		return searchCommittedMsg{term: <-commits}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case searchCommittedMsg:
		m.app.SetSearch(msg.term)
		m.clampSelection()
		return m, m.waitForSearchCmd()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.formOpen() {
		var cmd tea.Cmd
		m.form, cmd, _ = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm.active {
		return m.updateConfirm(msg)
	}
	if m.formOpen() {
		return m.updateForm(msg)
	}
	if m.focus == focusSearch {
		return m.updateSearch(msg)
	}
	return m.updateList(msg)
}

func (m model) formOpen() bool {
	return m.app.Form().Mode() != app.FormClosed
}

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		return m.moveSelection(-1), nil
	case "down", "j":
		return m.moveSelection(1), nil
	case "home":
		return m.moveSelection(-len(m.app.Visible())), nil
	case "end":
		return m.moveSelection(len(m.app.Visible())), nil
	case "/":
		m.focus = focusSearch
		m.search.Focus()
		return m, nil
	case "a":
		m.app.Form().OpenAdd()
		m.form.Load(app.FormAdd, nil)
		return m, nil
	case "enter", "o":
		if current, ok := m.selected(); ok {
			m.app.Form().OpenView(current)
			m.form.Load(app.FormView, &current)
		}
		return m, nil
	case "e":
		if current, ok := m.selected(); ok {
			m.app.Form().OpenEdit(current)
			m.form.Load(app.FormEdit, &current)
		}
		return m, nil
	case " ", "x":
		if current, ok := m.selected(); ok {
			if _, err := m.app.Toggle(current.ID); err != nil {
				m.setStatus(fmt.Sprintf("Toggle failed: %v", err), statusError)
			}
			m.clampSelection()
		}
		return m, nil
	case "d":
		if current, ok := m.selected(); ok {
			m.confirm = confirmDelete{active: true, id: current.ID, title: current.Title}
		}
		return m, nil
	case "v":
		if err := m.app.ToggleViewMode(); err != nil {
			m.setStatus(fmt.Sprintf("View mode save failed: %v", err), statusError)
		}
		return m, nil
	case "s":
		m.cycleSortKey()
		return m, nil
	case "r":
		m.app.ToggleSortDirection()
		return m, nil
	case "f":
		m.cycleStatusFilter()
		m.clampSelection()
		return m, nil
	case "0":
		m.app.SelectAllCategories()
		m.clampSelection()
		return m, nil
	case "1", "2", "3", "4", "5":
		categories := todo.Categories()
		index := int(msg.String()[0] - '1')
		if index < len(categories) {
			m.app.ToggleCategory(categories[index])
			m.clampSelection()
		}
		return m, nil
	case "R":
		m.app.ResetFilters()
		m.search.SetValue("")
		m.clampSelection()
		return m, nil
	}
	return m, nil
}

func (m model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.app.FlushSearch()
		m.focus = focusList
		m.search.Blur()
		m.clampSelection()
		return m, nil
	case "esc":
		m.app.CancelSearch()
		m.search.SetValue(m.app.SearchInput())
		m.focus = focusList
		m.search.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.app.SetSearchInput(m.search.Value())
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	var cmd tea.Cmd
	var action formAction
	m.form, cmd, action = m.form.Update(msg)

	switch action {
	case formActionClose:
		m.app.Form().Close()
	case formActionRequestEdit:
		m.app.Form().RequestEdit()
		m.form.Load(app.FormEdit, m.app.Form().Target())
	case formActionSubmit:
		m.submitForm()
	}
	return m, cmd
}

func (m *model) submitForm() {
	switch m.app.Form().Mode() {
	case app.FormAdd:
		title, opts, err := m.form.BuildCreate()
		if err == nil {
			_, err = m.app.Create(title, opts)
		}
		if err != nil {
			m.setStatus(fmt.Sprintf("Create failed: %v", err), statusError)
			return
		}
		m.setStatus("Todo created", statusInfo)
	case app.FormEdit:
		opts, err := m.form.BuildUpdate()
		if err == nil {
			_, err = m.app.SubmitUpdate(opts)
		}
		if err != nil {
			m.setStatus(fmt.Sprintf("Save failed: %v", err), statusError)
			return
		}
		m.setStatus("Todo saved", statusInfo)
	default:
		return
	}
	m.clampSelection()
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.confirm.id
		m.confirm = confirmDelete{}
		if err := m.app.Delete(id); err != nil {
			m.setStatus(fmt.Sprintf("Delete failed: %v", err), statusError)
			return m, nil
		}
		m.setStatus("Todo deleted", statusInfo)
		m.clampSelection()
		return m, nil
	case "n", "esc":
		m.confirm = confirmDelete{}
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) selected() (todo.Todo, bool) {
	visible := m.app.Visible()
	if m.selection < 0 || m.selection >= len(visible) {
		return todo.Todo{}, false
	}
	return visible[m.selection], true
}

func (m model) moveSelection(delta int) model {
	visible := m.app.Visible()
	if len(visible) == 0 {
		m.selection = 0
		return m
	}
	next := m.selection + delta
	if next < 0 {
		next = 0
	}
	if next >= len(visible) {
		next = len(visible) - 1
	}
	m.selection = next
	return m
}

func (m *model) clampSelection() {
	visible := m.app.Visible()
	if m.selection >= len(visible) {
		m.selection = len(visible) - 1
	}
	if m.selection < 0 {
		m.selection = 0
	}
}

func (m *model) cycleSortKey() {
	keys := m.app.SortKeys()
	if len(keys) < 2 {
		return
	}
	current := m.app.Criteria().Sort
	for i, key := range keys {
		if key == current {
			next := keys[(i+1)%len(keys)]
			if err := m.app.SetSortKey(next); err != nil {
				m.setStatus(fmt.Sprintf("Sort failed: %v", err), statusError)
			}
			return
		}
	}
}

func (m *model) cycleStatusFilter() {
	filters := todo.StatusFilters()
	current := m.app.Criteria().Status
	for i, filter := range filters {
		if filter == current {
			if err := m.app.SetStatusFilter(filters[(i+1)%len(filters)]); err != nil {
				m.setStatus(fmt.Sprintf("Filter failed: %v", err), statusError)
			}
			return
		}
	}
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

func (m *model) resize() {
	sidebarWidth, mainWidth := m.splitWidths()
	m.search.Width = sidebarWidth - 8
	if m.search.Width < 10 {
		m.search.Width = 10
	}
	m.form.SetWidth(mainWidth)
}

func (m model) splitWidths() (int, int) {
	sidebar := 30
	if sidebar > m.width/2 {
		sidebar = m.width / 2
	}
	if sidebar < 20 {
		sidebar = 20
	}
	return sidebar, m.width - sidebar
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading tick..."
	}

	contentHeight := m.height - 3
	if contentHeight < 1 {
		contentHeight = 1
	}
	sidebarWidth, mainWidth := m.splitWidths()

	sidebar := paneStyle.Width(sidebarWidth - 2).Height(contentHeight).Render(m.renderSidebar())
	mainStyle := paneStyle
	if m.focus == focusList && !m.formOpen() && !m.confirm.active {
		mainStyle = paneActiveStyle
	}
	main := mainStyle.Width(mainWidth - 2).Height(contentHeight).Render(m.renderMain(mainWidth - 6))

	content := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	view := content + "\n" + m.renderHelpLine() + "\n" + m.renderStatusLine()

	if m.confirm.active {
		return m.overlay(m.confirmView())
	}
	if m.formOpen() {
		return m.overlay(m.form.View())
	}
	return view
}

func (m model) overlay(modal string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m model) confirmView() string {
	message := fmt.Sprintf("Delete %q?", m.confirm.title)
	return modalStyle.Render(message + "\n\n" + valueMuted.Render("y delete | n keep"))
}

func (m model) renderHelpLine() string {
	var text string
	switch {
	case m.focus == focusSearch:
		text = "Keys: type to search | enter apply | esc cancel"
	default:
		text = "Keys: j/k move | enter view | a add | e edit | x toggle | d delete | / search | f status | 1-5 category | s sort | r reverse | v view | R reset | q quit"
	}
	return helpBarStyle.Width(m.width).Render(truncateLine(text, m.width))
}

func (m model) renderStatusLine() string {
	if m.status == "" {
		return ""
	}
	style := valueMuted
	switch m.statusLevel {
	case statusError:
		style = statusErrorStyle
	case statusInfo:
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func truncateLine(value string, width int) string {
	if width <= 0 {
		return value
	}
	return runewidth.Truncate(value, width, "...")
}
