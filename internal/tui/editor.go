package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/thelist/internal/listing"
)

type editorField struct {
	label string
	get   func(listing.Item) string
	set   func(*listing.Item, string)
}

var itemFields = []editorField{
	{
		label: "Name",
		get:   func(it listing.Item) string { return it.Name },
		set:   func(it *listing.Item, v string) { it.Name = v },
	},
	{
		label: "Title",
		get:   func(it listing.Item) string { return it.Title },
		set:   func(it *listing.Item, v string) { it.Title = v },
	},
}

// ItemEditor is the creation form. It starts from item and hands the edited
// candidate to onSave; navigation away is left to the caller.
type ItemEditor struct {
	item   listing.Item
	inputs []textinput.Model
	focus  int
	saving bool
	hint   string
	onSave func(listing.Item) tea.Cmd
}

func newTextInput(prompt, value string) textinput.Model {
	inp := textinput.New()
	inp.Prompt = prompt
	inp.SetValue(value)
	inp.Cursor.SetMode(cursor.CursorStatic)
	return inp
}

func NewItemEditor(item listing.Item, onSave func(listing.Item) tea.Cmd) *ItemEditor {
	inputs := make([]textinput.Model, 0, len(itemFields))
	for i, f := range itemFields {
		inp := newTextInput(f.label+": ", f.get(item))
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return &ItemEditor{item: item, inputs: inputs, onSave: onSave}
}

// Candidate returns the item as currently typed.
func (e *ItemEditor) Candidate() listing.Item {
	out := e.item
	for i, f := range itemFields {
		f.set(&out, strings.TrimSpace(e.inputs[i].Value()))
	}
	return out
}

// Saving reports whether the form was submitted and is waiting on the backend.
func (e *ItemEditor) Saving() bool { return e.saving }

// Update handles a message. The bool result asks the caller to close the form.
func (e *ItemEditor) Update(msg tea.Msg) (tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return nil, true
		case "tab", "shift+tab", "down", "up":
			if e.saving {
				return nil, false
			}
			dir := 1
			if k.String() == "shift+tab" || k.String() == "up" {
				dir = -1
			}
			e.inputs[e.focus].Blur()
			e.focus = (e.focus + dir + len(e.inputs)) % len(e.inputs)
			e.inputs[e.focus].Focus()
			return nil, false
		case "enter":
			if e.saving {
				return nil, false
			}
			candidate := e.Candidate()
			if candidate.Name == "" {
				e.hint = "name is required"
				return nil, false
			}
			e.hint = ""
			e.saving = true
			if e.onSave == nil {
				return nil, false
			}
			return e.onSave(candidate), false
		}
	}
	if e.saving {
		return nil, false
	}
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	return cmd, false
}

func (e *ItemEditor) View() string {
	lines := []string{titleStyle.Render("New item")}
	for _, in := range e.inputs {
		lines = append(lines, in.View())
	}
	switch {
	case e.saving:
		lines = append(lines, "", mutedStyle.Render("saving..."))
	case e.hint != "":
		lines = append(lines, "", snackbarStyle.Render(e.hint))
	}
	lines = append(lines, "", mutedStyle.Render("enter: save  esc: cancel  tab: next field"))
	return modalStyle.Render(strings.Join(lines, "\n"))
}
