package views

import (
	"github.com/charmbracelet/lipgloss"

	"uikit/internal/config"
	"uikit/internal/table"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Section       lipgloss.Style
	SectionTitle  lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	BadgeActive   lipgloss.Style
	BadgeInactive lipgloss.Style
	DetailKey     lipgloss.Style
}

// NewStyles creates the styles for a theme
func NewStyles(theme config.Theme) *Styles {
	accent := lipgloss.Color(theme.Accent)
	muted := lipgloss.Color(theme.Muted)
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Subtitle: lipgloss.NewStyle().Foreground(muted),
		Section: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		SectionTitle:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Dim:           lipgloss.NewStyle().Faint(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Status:        lipgloss.NewStyle().Foreground(muted),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)),
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success)),
		BadgeActive:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Success)).Bold(true),
		BadgeInactive: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Error)).Bold(true),
		DetailKey:     lipgloss.NewStyle().Bold(true),
	}
}

// TableStyles derives the table styles from the theme
func TableStyles(theme config.Theme) table.Styles {
	s := table.DefaultStyles()
	s.HeaderFocused = s.HeaderFocused.Foreground(lipgloss.Color(theme.Accent))
	s.SortInactive = s.SortInactive.Foreground(lipgloss.Color(theme.Muted))
	s.Cursor = s.Cursor.Foreground(lipgloss.Color(theme.Highlight))
	return s
}
