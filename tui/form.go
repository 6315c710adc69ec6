package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ameitner/tick/app"
	"github.com/ameitner/tick/internal/markdown"
	"github.com/ameitner/tick/internal/ui"
	"github.com/ameitner/tick/todo"
)

type formFieldKind int

const (
	fieldTitle formFieldKind = iota
	fieldDescription
	fieldCategory
	fieldDue
)

type formField struct {
	kind      formFieldKind
	label     string
	input     textinput.Model
	textarea  textarea.Model
	multiLine bool
}

func newFormField(kind formFieldKind, label, value string) formField {
	field := formField{kind: kind, label: label}
	if kind == fieldDescription {
		area := textarea.New()
		area.SetValue(value)
		area.ShowLineNumbers = false
		area.Prompt = ""
		area.SetHeight(4)
		field.textarea = area
		field.multiLine = true
		return field
	}
	input := textinput.New()
	input.SetValue(value)
	input.Prompt = ""
	switch kind {
	case fieldTitle:
		input.CharLimit = todo.MaxTitleLength
	case fieldCategory:
		input.Placeholder = "work, personal, school, health, none"
	case fieldDue:
		input.Placeholder = ui.DateInputLayout
	}
	field.input = input
	return field
}

func (field formField) Value() string {
	if field.multiLine {
		return field.textarea.Value()
	}
	return field.input.Value()
}

func (field formField) Focus() formField {
	if field.multiLine {
		field.textarea.Focus()
		return field
	}
	field.input.Focus()
	return field
}

func (field formField) Blur() formField {
	if field.multiLine {
		field.textarea.Blur()
		return field
	}
	field.input.Blur()
	return field
}

func (field formField) Update(msg tea.Msg) (formField, tea.Cmd) {
	var cmd tea.Cmd
	if field.multiLine {
		field.textarea, cmd = field.textarea.Update(msg)
		return field, cmd
	}
	field.input, cmd = field.input.Update(msg)
	return field, cmd
}

func (field formField) View() string {
	if field.multiLine {
		return field.textarea.View()
	}
	return field.input.View()
}

// formAction is what the form wants the outer model to do after a key.
type formAction int

const (
	formActionNone formAction = iota
	formActionSubmit
	formActionClose
	formActionRequestEdit
)

// formModel renders the add/edit/view modal. In view mode the fields are
// not shown; the target's values render read-only instead.
type formModel struct {
	mode       app.FormMode
	target     *todo.Todo
	fields     []formField
	fieldIndex int
	width      int
}

func newFormModel() formModel {
	return formModel{mode: app.FormClosed}
}

// Load rebuilds the form for the given mode and target snapshot.
func (form *formModel) Load(mode app.FormMode, target *todo.Todo) {
	form.mode = mode
	form.target = target
	form.fieldIndex = 0

	var source todo.Todo
	if target != nil {
		source = *target
	}
	due := ""
	if source.DueDate != nil {
		due = source.DueDate.Format(ui.DateInputLayout)
	}
	form.fields = []formField{
		newFormField(fieldTitle, "Title", source.Title),
		newFormField(fieldDescription, "Description", source.Description),
		newFormField(fieldCategory, "Category", strings.ToLower(string(source.Category))),
		newFormField(fieldDue, "Due", due),
	}
	if mode == app.FormAdd || mode == app.FormEdit {
		form.fields[0] = form.fields[0].Focus()
	}
	form.setFieldWidths()
}

func (form *formModel) SetWidth(width int) {
	form.width = width
	form.setFieldWidths()
}

func (form *formModel) setFieldWidths() {
	inputWidth := form.width - 4
	if inputWidth < 10 {
		inputWidth = 10
	}
	for i, field := range form.fields {
		if field.multiLine {
			field.textarea.SetWidth(inputWidth)
		} else {
			field.input.Width = inputWidth
		}
		form.fields[i] = field
	}
}

func (form formModel) Update(msg tea.Msg) (formModel, tea.Cmd, formAction) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return form, nil, formActionNone
	}

	if form.mode == app.FormView {
		switch key.String() {
		case "e":
			return form, nil, formActionRequestEdit
		case "esc", "q":
			return form, nil, formActionClose
		}
		return form, nil, formActionNone
	}

	switch key.String() {
	case "esc":
		return form, nil, formActionClose
	case "tab", "down":
		form = form.advanceField(1)
		return form, nil, formActionNone
	case "shift+tab", "backtab", "up":
		form = form.advanceField(-1)
		return form, nil, formActionNone
	case "ctrl+s":
		return form, nil, formActionSubmit
	case "enter":
		// Enter inserts a newline in the description; everywhere else
		// it submits.
		if !form.currentFieldIsMultiline() {
			return form, nil, formActionSubmit
		}
	}

	if len(form.fields) == 0 {
		return form, nil, formActionNone
	}
	var cmd tea.Cmd
	form.fields[form.fieldIndex], cmd = form.fields[form.fieldIndex].Update(msg)
	return form, cmd, formActionNone
}

func (form formModel) advanceField(delta int) formModel {
	if len(form.fields) == 0 {
		return form
	}
	form.fields[form.fieldIndex] = form.fields[form.fieldIndex].Blur()
	form.fieldIndex = (form.fieldIndex + delta + len(form.fields)) % len(form.fields)
	form.fields[form.fieldIndex] = form.fields[form.fieldIndex].Focus()
	return form
}

func (form formModel) currentFieldIsMultiline() bool {
	if len(form.fields) == 0 {
		return false
	}
	return form.fields[form.fieldIndex].multiLine
}

// BuildCreate translates the fields into store create arguments.
func (form formModel) BuildCreate() (string, todo.CreateOptions, error) {
	title, category, due, err := form.parseFields()
	if err != nil {
		return "", todo.CreateOptions{}, err
	}
	return title, todo.CreateOptions{
		Description: form.valueOf(fieldDescription),
		Category:    category,
		DueDate:     due,
	}, nil
}

// BuildUpdate translates the fields into store update arguments. A
// cleared due field on a todo that had one clears the date.
func (form formModel) BuildUpdate() (todo.UpdateOptions, error) {
	title, category, due, err := form.parseFields()
	if err != nil {
		return todo.UpdateOptions{}, err
	}
	description := form.valueOf(fieldDescription)
	opts := todo.UpdateOptions{
		Title:       &title,
		Description: &description,
		Category:    &category,
		DueDate:     due,
	}
	if due == nil && form.target != nil && form.target.DueDate != nil {
		opts.ClearDueDate = true
	}
	return opts, nil
}

func (form formModel) parseFields() (string, todo.Category, *time.Time, error) {
	title := strings.TrimSpace(form.valueOf(fieldTitle))

	category, err := todo.ParseCategory(form.valueOf(fieldCategory))
	if err != nil {
		return "", "", nil, err
	}

	var due *time.Time
	if raw := strings.TrimSpace(form.valueOf(fieldDue)); raw != "" {
		parsed, err := ui.ParseDate(raw)
		if err != nil {
			return "", "", nil, fmt.Errorf("invalid due date %q (expected %s)", raw, ui.DateInputLayout)
		}
		due = &parsed
	}

	return title, category, due, nil
}

func (form formModel) valueOf(kind formFieldKind) string {
	for _, field := range form.fields {
		if field.kind == kind {
			return field.Value()
		}
	}
	return ""
}

func (form formModel) View() string {
	var lines []string
	switch form.mode {
	case app.FormAdd:
		lines = append(lines, labelStyle.Render("New todo"))
	case app.FormEdit:
		lines = append(lines, labelStyle.Render("Edit todo"))
	case app.FormView:
		lines = append(lines, labelStyle.Render("Todo"))
	default:
		return ""
	}
	lines = append(lines, "")

	if form.mode == app.FormView {
		lines = append(lines, form.viewLines()...)
		lines = append(lines, "", valueMuted.Render("e edit | esc close"))
	} else {
		for _, field := range form.fields {
			if field.multiLine {
				lines = append(lines, fmt.Sprintf("%s:", labelStyle.Render(field.label)))
				lines = append(lines, field.View())
				continue
			}
			lines = append(lines, fmt.Sprintf("%s: %s", labelStyle.Render(field.label), field.View()))
		}
		lines = append(lines, "", valueMuted.Render("enter/ctrl+s save | tab next field | esc cancel"))
	}

	return modalStyle.Render(strings.Join(lines, "\n"))
}

func (form formModel) viewLines() []string {
	if form.target == nil {
		return []string{valueMuted.Render("No todo selected")}
	}
	t := *form.target

	checkbox := "[ ]"
	if t.Completed {
		checkbox = "[x]"
	}
	lines := []string{
		fmt.Sprintf("%s %s", checkbox, labelStyle.Render(t.Title)),
		formatDetailRow("Category", string(t.Category)),
		formatDetailRow("Due", ui.FormatDate(t.DueDate)),
		formatDetailRow("Created", t.CreatedAt.Format("2006-01-02 15:04:05")),
	}
	if strings.TrimSpace(t.Description) != "" {
		descWidth := form.width - 6
		if descWidth < 20 {
			descWidth = 20
		}
		lines = append(lines, "")
		lines = append(lines, strings.Split(markdown.Render(descWidth, t.Description), "\n")...)
	}
	return lines
}

func formatDetailRow(label, value string) string {
	if strings.TrimSpace(value) == "" {
		value = "-"
	}
	return fmt.Sprintf("%s: %s", labelStyle.Render(label), valueMuted.Render(value))
}
