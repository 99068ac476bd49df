// Package forminput wraps a bubbles text input with a label and an inline
// validation message.
package forminput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Kind is the input type
type Kind int

const (
	KindText Kind = iota
	KindEmail
	KindPassword
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	focusColor = lipgloss.Color("62")
	errorColor = lipgloss.Color("203")
)

// Model is a labelled text field
type Model struct {
	name  string
	label string
	kind  Kind
	input textinput.Model
	err   string
}

// New creates an input. width is the visible width of the text area.
func New(name, label string, kind Kind, placeholder string, width int) *Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = width
	if kind == KindPassword {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return &Model{name: name, label: label, kind: kind, input: ti}
}

func (m *Model) Name() string   { return m.name }
func (m *Model) Label() string  { return m.label }
func (m *Model) Kind() Kind     { return m.kind }
func (m *Model) Value() string  { return m.input.Value() }
func (m *Model) Error() string  { return m.err }
func (m *Model) Focused() bool  { return m.input.Focused() }
func (m *Model) Blur()          { m.input.Blur() }
func (m *Model) Focus() tea.Cmd { return m.input.Focus() }

// SetValue replaces the text
func (m *Model) SetValue(v string) { m.input.SetValue(v) }

// SetError sets the message shown under the field; "" clears it
func (m *Model) SetError(msg string) { m.err = msg }

// Reset clears the text and the error
func (m *Model) Reset() {
	m.input.Reset()
	m.err = ""
}

// Update forwards msg to the text input. An edit clears the error.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.err = ""
	}
	return cmd
}

// View renders label, boxed input and the error line when present
func (m *Model) View() string {
	box := boxStyle
	switch {
	case m.err != "":
		box = box.BorderForeground(errorColor)
	case m.input.Focused():
		box = box.BorderForeground(focusColor)
	}

	var b strings.Builder
	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("\n")
	b.WriteString(box.Render(m.input.View()))
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err))
	}
	return b.String()
}
