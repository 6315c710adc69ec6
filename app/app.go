// Package app composes the todo store, the view criteria, and the form
// state machine into the single surface the CLI and TUI drive.
//
// All methods are meant to be called from one goroutine. The only
// asynchronous piece is the search debouncer, which fires on a timer
// goroutine; it never touches App state directly. Committed terms are
// queued on the SearchCommits channel, and the owning goroutine applies
// them with SetSearch.
package app

import (
	"time"

	"github.com/ameitner/tick/internal/config"
	"github.com/ameitner/tick/internal/debounce"
	"github.com/ameitner/tick/todo"
)

// Options configures a new App.
type Options struct {
	// SortProfile restricts the available sort keys. Empty means
	// config.SortProfileAll.
	SortProfile string

	// DefaultViewMode is used when no view mode has been persisted yet.
	// Zero means ViewList.
	DefaultViewMode ViewMode

	// SearchDebounce is the quiet period before typed search input
	// commits. Zero means config.DefaultDebounce.
	SearchDebounce time.Duration
}

// App is the facade over the todo store and all session state.
type App struct {
	store   *todo.Store
	storage todo.Storage

	criteria todo.Criteria
	form     Form
	viewMode ViewMode

	sortProfile   string
	search        *debounce.Debouncer[string]
	searchCommits chan string
	searchInput   string

	// Memoized derived view, keyed by the store revision and the
	// criteria that produced it.
	visible         []todo.Todo
	visibleRevision uint64
	visibleCriteria todo.Criteria
	visibleValid    bool
}

// New builds an App around an opened store. UI preferences are loaded
// from storage under UIStateKey; a missing record leaves the defaults.
func New(store *todo.Store, storage todo.Storage, opts Options) (*App, error) {
	a := &App{
		store:       store,
		storage:     storage,
		criteria:    todo.DefaultCriteria(),
		viewMode:    ViewList,
		sortProfile: opts.SortProfile,
	}
	if a.sortProfile == "" {
		a.sortProfile = config.SortProfileAll
	}
	if opts.DefaultViewMode.IsValid() {
		a.viewMode = opts.DefaultViewMode
	}

	interval := opts.SearchDebounce
	if interval <= 0 {
		interval = config.DefaultDebounce
	}
	a.searchCommits = make(chan string, 1)
	a.search = debounce.New(interval, a.queueSearchCommit)

	var ui uiState
	found, err := storage.Load(UIStateKey, &ui)
	if err != nil {
		return nil, err
	}
	if found && ui.ViewMode.IsValid() {
		a.viewMode = ui.ViewMode
	}

	return a, nil
}

// Store exposes the underlying todo store.
func (a *App) Store() *todo.Store {
	return a.store
}

// Todos returns the full canonical list, unfiltered.
func (a *App) Todos() []todo.Todo {
	return a.store.All()
}

// Visible returns the todos the active criteria allow, in order. The
// derived list is recomputed only when the store or the criteria have
// changed since the last call; form and view-mode changes never
// invalidate it.
func (a *App) Visible() []todo.Todo {
	revision := a.store.Revision()
	if a.visibleValid && a.visibleRevision == revision && a.visibleCriteria.Equal(a.criteria) {
		return a.visible
	}

	a.visible = todo.Apply(a.store.All(), a.criteria)
	a.visibleRevision = revision
	a.visibleCriteria = a.criteria
	a.visibleCriteria.Categories = append([]todo.Category(nil), a.criteria.Categories...)
	a.visibleValid = true
	return a.visible
}

// Counts tallies the canonical list by status, ignoring the active
// filters.
func (a *App) Counts() todo.Counts {
	return todo.CountByStatus(a.store.All())
}

// Criteria returns the active view criteria.
func (a *App) Criteria() todo.Criteria {
	c := a.criteria
	c.Categories = append([]todo.Category(nil), a.criteria.Categories...)
	return c
}

// Form returns the form state machine.
func (a *App) Form() *Form {
	return &a.form
}

// ViewMode returns the active view mode.
func (a *App) ViewMode() ViewMode {
	return a.viewMode
}

// Create validates and stores a new todo. On success the form closes.
func (a *App) Create(title string, opts todo.CreateOptions) (*todo.Todo, error) {
	created, err := a.store.Create(title, opts)
	if err != nil {
		return nil, err
	}
	a.form.Close()
	return created, nil
}

// Update applies changes to an existing todo. On success the form closes.
func (a *App) Update(id int64, opts todo.UpdateOptions) (*todo.Todo, error) {
	updated, err := a.store.Update(id, opts)
	if err != nil {
		return nil, err
	}
	a.form.Close()
	return updated, nil
}

// SubmitUpdate applies changes to the todo the form is open on.
func (a *App) SubmitUpdate(opts todo.UpdateOptions) (*todo.Todo, error) {
	target := a.form.Target()
	if target == nil {
		return nil, ErrNoFormTarget
	}
	return a.Update(target.ID, opts)
}

// Delete removes a todo. On success the form closes.
func (a *App) Delete(id int64) error {
	if err := a.store.Delete(id); err != nil {
		return err
	}
	a.form.Close()
	return nil
}

// Toggle flips a todo's completed flag. The form is left alone so a
// toggle from the list view doesn't dismiss an open modal.
func (a *App) Toggle(id int64) (*todo.Todo, error) {
	return a.store.ToggleCompleted(id)
}

// SetSearchInput records raw typed search input. The value shows
// immediately via SearchInput, but the committed search term the view
// uses updates only after the debounce quiet period.
func (a *App) SetSearchInput(value string) {
	a.searchInput = value
	a.search.Set(value)
}

// SearchInput returns the raw, possibly uncommitted search input.
func (a *App) SearchInput() string {
	return a.searchInput
}

// SearchCommits returns the channel debounced search terms arrive on.
// The goroutine that owns the App receives a term and applies it with
// SetSearch; the channel holds at most the latest term.
func (a *App) SearchCommits() <-chan string {
	return a.searchCommits
}

// queueSearchCommit runs on the debounce timer goroutine. It replaces
// any queued term rather than blocking, so only the latest commit is
// ever delivered.
func (a *App) queueSearchCommit(term string) {
	for {
		select {
		case a.searchCommits <- term:
			return
		default:
		}
		select {
		case <-a.searchCommits:
		default:
		}
	}
}

func (a *App) drainSearchCommits() {
	select {
	case <-a.searchCommits:
	default:
	}
}

// FlushSearch commits any pending search input immediately, applying it
// on the calling goroutine.
func (a *App) FlushSearch() {
	a.search.Flush()
	for {
		select {
		case term := <-a.searchCommits:
			a.SetSearch(term)
		default:
			return
		}
	}
}

// CancelSearch discards any pending search input without committing.
func (a *App) CancelSearch() {
	a.search.Cancel()
	a.drainSearchCommits()
	a.searchInput = a.criteria.Search
}

// SetSearch sets the committed search term directly, bypassing the
// debouncer.
func (a *App) SetSearch(term string) {
	a.searchInput = term
	a.criteria.Search = term
}

// ToggleCategory adds or removes a category from the filter selection.
func (a *App) ToggleCategory(category todo.Category) {
	a.criteria.ToggleCategory(category)
}

// SelectAllCategories clears the category restriction.
func (a *App) SelectAllCategories() {
	a.criteria.SelectAllCategories()
}

// SetStatusFilter keeps all, upcoming, or archived todos.
func (a *App) SetStatusFilter(status todo.StatusFilter) error {
	if !status.IsValid() {
		return todo.ErrInvalidStatusFilter
	}
	a.criteria.Status = status
	return nil
}

// SortKeys returns the sort keys the configured sort profile offers.
func (a *App) SortKeys() []todo.SortKey {
	if a.sortProfile == config.SortProfileDueDate {
		return []todo.SortKey{todo.SortDueDate}
	}
	return todo.SortKeys()
}

// SetSortKey changes the ordering field, if the sort profile offers it.
func (a *App) SetSortKey(key todo.SortKey) error {
	if !key.IsValid() {
		return todo.ErrInvalidSortKey
	}
	for _, allowed := range a.SortKeys() {
		if key == allowed {
			a.criteria.Sort = key
			return nil
		}
	}
	return ErrSortKeyUnavailable
}

// SetSortDirection changes the ordering direction.
func (a *App) SetSortDirection(direction todo.SortDirection) {
	a.criteria.Direction = direction
}

// ToggleSortDirection flips the ordering direction.
func (a *App) ToggleSortDirection() {
	a.criteria.Direction = a.criteria.Direction.Toggle()
}

// ResetFilters restores the default criteria with all statuses shown and
// drops any uncommitted search input.
func (a *App) ResetFilters() {
	a.search.Cancel()
	a.drainSearchCommits()
	a.criteria.Reset()
	a.searchInput = ""
}

// SetViewMode switches between the list and grid layouts and persists
// the choice.
func (a *App) SetViewMode(mode ViewMode) error {
	if !mode.IsValid() {
		return ErrInvalidViewMode
	}
	a.viewMode = mode
	return a.storage.Save(UIStateKey, uiState{ViewMode: mode})
}

// ToggleViewMode switches to the other layout and persists the choice.
func (a *App) ToggleViewMode() error {
	return a.SetViewMode(a.viewMode.Toggle())
}
