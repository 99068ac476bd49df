package views

import (
	"fmt"
	"strings"

	"uikit/internal/domain"
)

// StatusBadge is the custom cell of the status column
func (s *Styles) StatusBadge(u domain.User) string {
	if u.Status == domain.StatusActive {
		return s.BadgeActive.Render("● " + string(u.Status))
	}
	return s.BadgeInactive.Render("○ " + string(u.Status))
}

// UserDetails renders the body of the user details modal
func (s *Styles) UserDetails(u domain.User) string {
	rows := []struct {
		key   string
		value string
	}{
		{"ID", fmt.Sprint(u.ID)},
		{"Name", u.Name},
		{"Email", u.Email},
		{"Role", string(u.Role)},
		{"Status", string(u.Status)},
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = s.DetailKey.Render(r.key+":") + " " + r.value
	}
	return strings.Join(lines, "\n")
}

// RenderSection draws a titled, bordered block
func (s *Styles) RenderSection(title, body string) string {
	return s.Section.Render(s.SectionTitle.Render(title) + "\n\n" + body)
}
