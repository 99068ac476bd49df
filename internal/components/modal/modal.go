// Package modal implements a dismissable dialog drawn over the screen.
package modal

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model holds the modal state
type Model struct {
	title string
	body  string
	open  bool
	width int

	boxStyle   lipgloss.Style
	titleStyle lipgloss.Style
	hintStyle  lipgloss.Style
}

// New creates a closed modal whose content wraps at width cells
func New(width int) *Model {
	return &Model{
		width: width,
		boxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		titleStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		hintStyle:  lipgloss.NewStyle().Faint(true),
	}
}

// Open shows the modal with the given title and body
func (m *Model) Open(title, body string) {
	m.title = title
	m.body = body
	m.open = true
}

// Close hides the modal and keeps its content
func (m *Model) Close() {
	m.open = false
}

func (m *Model) IsOpen() bool  { return m.open }
func (m *Model) Title() string { return m.title }
func (m *Model) Body() string  { return m.body }

// Update handles dismissal keys while open and reports whether the modal
// was closed by msg
func (m *Model) Update(msg tea.Msg) bool {
	if !m.open {
		return false
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "q", "x", "enter":
			m.Close()
			return true
		}
	}
	return false
}

// Contains reports whether the cell at x, y lies inside the dialog box as
// drawn by Overlay on a screen of the given size
func (m *Model) Contains(x, y, width, height int) bool {
	if !m.open {
		return false
	}
	view := m.View()
	popupW, popupH := lipgloss.Width(view), lipgloss.Height(view)
	left, top := origin(popupW, popupH, width, height, height)
	return x >= left && x < left+popupW && y >= top && y < top+popupH
}

// View renders the dialog box, or "" while closed
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(m.width).Render(m.body))
	b.WriteString("\n\n")
	b.WriteString(m.hintStyle.Render("esc/q/x/enter close"))
	return m.boxStyle.Render(b.String())
}
