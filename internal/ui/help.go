package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"uikit/internal/table"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// appKeyMap merges the app bindings with the table bindings for bubbles/help
type appKeyMap struct {
	table     table.KeyMap
	Focus     key.Binding
	Press     key.Binding
	Copy      key.Binding
	Help      key.Binding
	HelpPager key.Binding
	Quit      key.Binding
}

func newAppKeyMap(tk table.KeyMap) appKeyMap {
	return appKeyMap{
		table:     tk,
		Focus:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next focus")),
		Press:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "press")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy row")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		HelpPager: key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "help in pager")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.table.Sort, k.table.Activate, k.Help, k.Quit}
}

func (k appKeyMap) FullHelp() [][]key.Binding {
	return append(k.table.FullHelp(), []key.Binding{k.Focus, k.Press, k.Copy, k.Help, k.HelpPager, k.Quit})
}

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContentPlain generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContentPlain() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(k, desc string) string {
		return fmt.Sprintf("  %-14s %s\n", keyStyle.Render(k), descStyle.Render(desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render("uikit Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Focus"))
	help.WriteString("\n")
	help.WriteString(line("Tab", "Focus next element"))
	help.WriteString(line("Shift+Tab", "Focus previous element"))
	help.WriteString(line("←/→, h/l", "Move along the button row"))
	help.WriteString(line("Enter/Space", "Press the focused button"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Form"))
	help.WriteString("\n")
	help.WriteString(line("Enter", "Sign in (validates the form)"))
	help.WriteString(line("Esc", "Clear validation messages"))
	help.WriteString(line("↑/↓", "Previous/next field"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Table"))
	help.WriteString("\n")
	help.WriteString(line("↑/↓, j/k", "Move row cursor"))
	help.WriteString(line("←/→, h/l", "Move header focus"))
	help.WriteString(line("g/G", "First/last row"))
	help.WriteString(line("s", "Sort by focused column"))
	help.WriteString(line("Enter", "Open row details"))
	help.WriteString(line("y", "Copy row to clipboard"))
	help.WriteString(line("Mouse", "Click a header to sort, a row to open it"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Modal"))
	help.WriteString("\n")
	help.WriteString(line("Esc/q/x", "Close"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line("?", "Toggle inline help"))
	help.WriteString(line("H", "Show this help in a pager"))
	help.WriteString(line("q", "Quit"))

	return help.String()
}

// pagerCommand runs the ov pager through tea.Exec, which releases the
// terminal for the duration of the run
type pagerCommand struct {
	content string
}

func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// Run shows the content in ov. ov opens the tty itself.
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return fmt.Errorf("failed to create pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// showHelpInPager returns the command that opens the full help in ov
func showHelpInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
