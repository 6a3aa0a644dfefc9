package envform

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"opsdeck/internal/app/api"
	"opsdeck/internal/app/forms"
	"opsdeck/internal/app/ui/components"
	"opsdeck/internal/config/logger"
)

// field indices, matching the form's declared field order
const (
	fieldKey = iota
	fieldValue
	fieldCount
)

// submittedMsg signals a finished submission attempt
type submittedMsg struct {
	err error
}

// ClosedMsg asks the root model to leave the editor
type ClosedMsg struct {
	Saved bool
}

// KeyMap defines the key bindings for the env-var editor
type KeyMap struct {
	NextField key.Binding
	Submit    key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default key bindings for the editor
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// Model is the env-var editor view bound to one service. Validation
// errors from the backend render inline under their field, and focus
// jumps to the first invalid field after a failed submission.
type Model struct {
	form    *forms.EnvVarForm
	factory *forms.Factory
	inputs  [fieldCount]textinput.Model
	focused int
	keys    KeyMap
	log     logger.Logger
}

// NewModel creates an env-var editor
func NewModel(factory *forms.Factory, log logger.Logger) *Model {
	m := &Model{
		factory: factory,
		keys:    DefaultKeyMap(),
		log:     log.WithComponent("envform"),
	}

	keyInput := textinput.New()
	keyInput.Placeholder = "KEY"
	keyInput.CharLimit = 256

	valueInput := textinput.New()
	valueInput.Placeholder = "value"

	m.inputs[fieldKey] = keyInput
	m.inputs[fieldValue] = valueInput

	return m
}

// Open binds the editor to a service and starts editing
func (m *Model) Open(ref api.ServiceRef) {
	m.form = m.factory.EnvVar(ref)
	_ = m.form.BeginEdit(context.Background())

	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}

	m.focused = fieldKey
	m.inputs[fieldKey].Focus()
}

// setFocus moves focus to the given field
func (m *Model) setFocus(index int) {
	m.focused = index

	for i := range m.inputs {
		if i == index {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// submitCmd runs the submission; the form machine guards re-entry
func (m *Model) submitCmd() tea.Cmd {
	m.form.Value = api.EnvVariable{
		Key:   m.inputs[fieldKey].Value(),
		Value: m.inputs[fieldValue].Value(),
	}

	form := m.form

	return func() tea.Msg {
		return submittedMsg{err: form.Submit(context.Background())}
	}
}

// Update handles messages for the editor
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case submittedMsg:
		if msg.err == nil {
			return func() tea.Msg { return ClosedMsg{Saved: true} }
		}

		// Field errors stay on screen; focus the first invalid field.
		m.setFocus(m.form.FocusedField())
		_ = m.form.BeginEdit(context.Background())

		return nil
	}

	return m.updateInputs(msg)
}

// handleKeyPress processes keyboard input for the editor
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.form.Reset(context.Background())

		return func() tea.Msg { return ClosedMsg{} }

	case key.Matches(msg, m.keys.NextField):
		m.setFocus((m.focused + 1) % fieldCount)

		return nil

	case key.Matches(msg, m.keys.Submit):
		if m.form.IsSubmitting() {
			return nil
		}

		return m.submitCmd()
	}

	return m.updateInputs(msg)
}

// updateInputs forwards a message to the focused text input
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)

	return cmd
}

// Help returns the rendered key help for this view
func (m *Model) Help() string {
	return components.HelpStyle.Render("tab next field · enter save · esc cancel")
}
