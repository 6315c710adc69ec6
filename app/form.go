package app

import "github.com/ameitner/tick/todo"

// FormMode names which modal interaction is active.
type FormMode string

const (
	// FormClosed means no form is showing.
	FormClosed FormMode = "closed"

	// FormAdd is the blank create form.
	FormAdd FormMode = "add"

	// FormEdit is the populated edit form for one todo.
	FormEdit FormMode = "edit"

	// FormView is the read-only detail view for one todo.
	FormView FormMode = "view"
)

// Form tracks the modal form state machine. It never holds authoritative
// todo data; the target is a snapshot taken when the form opened, and the
// store remains the source of truth.
type Form struct {
	mode   FormMode
	target *todo.Todo
}

// Mode returns the active form mode. A zero Form is closed.
func (f *Form) Mode() FormMode {
	if f.mode == "" {
		return FormClosed
	}
	return f.mode
}

// Target returns a copy of the todo the form was opened on, or nil for
// the closed and add modes.
func (f *Form) Target() *todo.Todo {
	if f.target == nil {
		return nil
	}
	copied := *f.target
	return &copied
}

// OpenAdd switches to the blank create form from any state.
func (f *Form) OpenAdd() {
	f.mode = FormAdd
	f.target = nil
}

// OpenEdit switches to the edit form for the given todo from any state.
func (f *Form) OpenEdit(t todo.Todo) {
	f.mode = FormEdit
	f.target = &t
}

// OpenView switches to the read-only detail view from any state.
func (f *Form) OpenView(t todo.Todo) {
	f.mode = FormView
	f.target = &t
}

// RequestEdit promotes the detail view to the edit form, keeping the
// same target. It does nothing from any other state.
func (f *Form) RequestEdit() {
	if f.mode != FormView {
		return
	}
	f.mode = FormEdit
}

// Close returns to the closed state and drops the target.
func (f *Form) Close() {
	f.mode = FormClosed
	f.target = nil
}
