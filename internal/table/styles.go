package table

import "github.com/charmbracelet/lipgloss"

// Styles contains the lipgloss styles the table renders with
type Styles struct {
	Header        lipgloss.Style
	HeaderFocused lipgloss.Style
	SortActive    lipgloss.Style
	SortInactive  lipgloss.Style
	Separator     lipgloss.Style
	Cell          lipgloss.Style
	Cursor        lipgloss.Style
}

// DefaultStyles returns the stock table styles
func DefaultStyles() Styles {
	return Styles{
		Header:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		HeaderFocused: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("99")),
		SortActive:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		SortInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Separator:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Cell:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}
