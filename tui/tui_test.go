package tui

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/ameitner/tick/app"
	"github.com/ameitner/tick/internal/config"
	"github.com/ameitner/tick/todo"
)

type memStorage struct {
	values map[string]json.RawMessage
}

func newMemStorage() *memStorage {
	return &memStorage{values: map[string]json.RawMessage{}}
}

func (m *memStorage) Load(key string, out any) (bool, error) {
	raw, ok := m.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *memStorage) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func useASCIIRenderer(t *testing.T) {
	t.Helper()
	originalProfile := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(originalProfile)
	})
}

func newTestModel(t *testing.T, titles ...string) model {
	t.Helper()
	storage := newMemStorage()
	store, err := todo.Open(storage, todo.OpenOptions{})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	for _, title := range titles {
		if _, err := store.Create(title, todo.CreateOptions{}); err != nil {
			t.Fatalf("failed to create %q: %v", title, err)
		}
	}

	application, err := app.New(store, storage, app.Options{SearchDebounce: time.Hour})
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}

	m := newModel(application)
	m.width = 100
	m.height = 30
	m.resize()
	return m
}

func keyMsg(value string) tea.KeyMsg {
	switch value {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)}
}

func update(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, key := range keys {
		updated, _ := m.Update(keyMsg(key))
		next, ok := updated.(model)
		if !ok {
			t.Fatalf("expected model back from Update, got %T", updated)
		}
		m = next
	}
	return m
}

func TestAddFlow(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, "a")
	if m.app.Form().Mode() != app.FormAdd {
		t.Fatalf("expected add form, got %q", m.app.Form().Mode())
	}

	m.form.fields[0].input.SetValue("Buy milk")
	m = update(t, m, "ctrl+s")

	if m.app.Form().Mode() != app.FormClosed {
		t.Errorf("expected form closed after submit, got %q", m.app.Form().Mode())
	}
	if m.app.Store().Len() != 1 {
		t.Errorf("expected 1 stored todo, got %d", m.app.Store().Len())
	}
	if m.statusLevel != statusInfo {
		t.Errorf("expected success status, got %q", m.status)
	}
}

func TestAddFlow_EmptyTitleRejected(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, "a", "ctrl+s")

	if m.app.Form().Mode() != app.FormAdd {
		t.Errorf("expected form kept open on validation failure, got %q", m.app.Form().Mode())
	}
	if m.app.Store().Len() != 0 {
		t.Errorf("expected no stored todos, got %d", m.app.Store().Len())
	}
	if m.statusLevel != statusError {
		t.Errorf("expected error status, got %q", m.status)
	}
}

func TestViewThenRequestEdit(t *testing.T) {
	m := newTestModel(t, "Study for exam")

	m = update(t, m, "enter")
	if m.app.Form().Mode() != app.FormView {
		t.Fatalf("expected view form, got %q", m.app.Form().Mode())
	}

	m = update(t, m, "e")
	if m.app.Form().Mode() != app.FormEdit {
		t.Fatalf("expected edit form after e, got %q", m.app.Form().Mode())
	}
	target := m.app.Form().Target()
	if target == nil || target.Title != "Study for exam" {
		t.Error("expected edit to keep the viewed target")
	}

	m.form.fields[0].input.SetValue("Study hard")
	m = update(t, m, "ctrl+s")

	if m.app.Form().Mode() != app.FormClosed {
		t.Errorf("expected form closed, got %q", m.app.Form().Mode())
	}
	if got := m.app.Todos()[0].Title; got != "Study hard" {
		t.Errorf("expected renamed todo, got %q", got)
	}
}

func TestEscClosesForm(t *testing.T) {
	m := newTestModel(t, "Task")

	m = update(t, m, "e", "esc")
	if m.app.Form().Mode() != app.FormClosed {
		t.Errorf("expected form closed after esc, got %q", m.app.Form().Mode())
	}
}

func TestToggleKey(t *testing.T) {
	m := newTestModel(t, "Task")

	m = update(t, m, "x")
	// The default status filter hides completed todos once toggled.
	if got := len(m.app.Visible()); got != 0 {
		t.Errorf("expected toggled todo to leave the upcoming view, got %d", got)
	}
	if !m.app.Todos()[0].Completed {
		t.Error("expected todo completed")
	}
}

func TestDeleteConfirmFlow(t *testing.T) {
	m := newTestModel(t, "Task")

	m = update(t, m, "d")
	if !m.confirm.active {
		t.Fatal("expected delete confirmation")
	}

	// Declining keeps the todo.
	m = update(t, m, "n")
	if m.confirm.active || m.app.Store().Len() != 1 {
		t.Fatalf("expected cancelled delete, len=%d", m.app.Store().Len())
	}

	m = update(t, m, "d", "y")
	if m.app.Store().Len() != 0 {
		t.Errorf("expected todo deleted, got %d", m.app.Store().Len())
	}
}

func TestSearchFlow(t *testing.T) {
	m := newTestModel(t, "Buy milk", "Study for exam")

	m = update(t, m, "/")
	if m.focus != focusSearch {
		t.Fatal("expected search focus")
	}

	m = update(t, m, "e", "x", "a", "m")
	if m.app.SearchInput() != "exam" {
		t.Fatalf("expected raw input %q, got %q", "exam", m.app.SearchInput())
	}
	// Still uncommitted.
	if m.app.Criteria().Search != "" {
		t.Fatalf("expected uncommitted search, got %q", m.app.Criteria().Search)
	}

	m = update(t, m, "enter")
	if m.focus != focusList {
		t.Error("expected focus back on the list")
	}
	if m.app.Criteria().Search != "exam" {
		t.Errorf("expected committed search, got %q", m.app.Criteria().Search)
	}
	if got := len(m.app.Visible()); got != 1 {
		t.Errorf("expected 1 visible todo, got %d", got)
	}
}

func TestSearchEscCancels(t *testing.T) {
	m := newTestModel(t, "Buy milk")

	m = update(t, m, "/", "m", "i", "esc")
	if m.app.Criteria().Search != "" {
		t.Errorf("expected no committed search, got %q", m.app.Criteria().Search)
	}
	if m.focus != focusList {
		t.Error("expected focus back on the list")
	}
}

func TestSearchCommittedMsg(t *testing.T) {
	m := newTestModel(t, "Buy milk", "Study for exam")

	updated, cmd := m.Update(searchCommittedMsg{term: "milk"})
	m = updated.(model)

	if m.app.Criteria().Search != "milk" {
		t.Errorf("expected committed term, got %q", m.app.Criteria().Search)
	}
	if cmd == nil {
		t.Error("expected the wait command to re-arm")
	}
}

func TestFilterKeys(t *testing.T) {
	m := newTestModel(t, "Task")

	m = update(t, m, "f")
	if m.app.Criteria().Status == todo.StatusUpcoming {
		t.Error("expected status filter to cycle away from upcoming")
	}

	m = update(t, m, "1")
	if m.app.Criteria().CategorySelected(todo.CategoryWork) {
		t.Error("expected WORK toggled off")
	}

	m = update(t, m, "0")
	if !m.app.Criteria().AllCategoriesSelected() {
		t.Error("expected all categories selected")
	}

	m = update(t, m, "r")
	if m.app.Criteria().Direction != todo.SortDescending {
		t.Errorf("expected descending, got %q", m.app.Criteria().Direction)
	}

	m = update(t, m, "R")
	criteria := m.app.Criteria()
	if criteria.Status != todo.StatusAll || criteria.Direction != todo.SortAscending {
		t.Errorf("expected reset criteria, got %+v", criteria)
	}
}

func TestViewModeKeyPersists(t *testing.T) {
	m := newTestModel(t, "Task")

	m = update(t, m, "v")
	if m.app.ViewMode() != app.ViewGrid {
		t.Errorf("expected grid view, got %q", m.app.ViewMode())
	}
}

func TestSortKeyCycles(t *testing.T) {
	m := newTestModel(t, "Task")

	m = update(t, m, "s")
	if m.app.Criteria().Sort != todo.SortCreatedAt {
		t.Errorf("expected created sort, got %q", m.app.Criteria().Sort)
	}
}

func TestView_RendersPanes(t *testing.T) {
	useASCIIRenderer(t)
	m := newTestModel(t, "Buy milk")

	view := m.View()
	for _, want := range []string{"Search", "Status", "Categories", "Buy milk", "upcoming (1)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestView_GridMode(t *testing.T) {
	useASCIIRenderer(t)
	m := newTestModel(t, "Buy milk")
	if err := m.app.SetViewMode(app.ViewGrid); err != nil {
		t.Fatalf("failed to switch view: %v", err)
	}

	view := m.View()
	if !strings.Contains(view, "Buy milk") {
		t.Error("expected card content in grid view")
	}
}

func TestView_ConfirmOverlay(t *testing.T) {
	useASCIIRenderer(t)
	m := newTestModel(t, "Buy milk")

	m = update(t, m, "d")
	view := m.View()
	if !strings.Contains(view, `Delete "Buy milk"?`) {
		t.Errorf("expected delete prompt, got:\n%s", view)
	}
}

func TestBuildCreate_InvalidDueDate(t *testing.T) {
	var form formModel
	form.Load(app.FormAdd, nil)
	form.fields[0].input.SetValue("Task")
	form.fields[3].input.SetValue("tomorrow")

	if _, _, err := form.BuildCreate(); err == nil {
		t.Fatal("expected invalid due date error")
	}
}

func TestBuildUpdate_ClearsDueDate(t *testing.T) {
	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	target := todo.Todo{ID: 1, Title: "Task", DueDate: &due}

	var form formModel
	form.Load(app.FormEdit, &target)
	form.fields[3].input.SetValue("")

	opts, err := form.BuildUpdate()
	if err != nil {
		t.Fatalf("failed to build update: %v", err)
	}
	if !opts.ClearDueDate {
		t.Error("expected cleared due date")
	}
}

func TestRunConfigDefaults(t *testing.T) {
	// The zero config still supplies the ambient defaults Run relies on.
	cfg := &config.Config{}
	if cfg.SearchDebounce() != config.DefaultDebounce {
		t.Errorf("expected default debounce, got %v", cfg.SearchDebounce())
	}
	if cfg.SortProfile() != config.SortProfileAll {
		t.Errorf("expected default sort profile, got %q", cfg.SortProfile())
	}
}
