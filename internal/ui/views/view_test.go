package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"uikit/internal/config"
	"uikit/internal/domain"
)

func TestStatusBadge(t *testing.T) {
	s := NewStyles(config.DefaultConfig().Theme)

	assert.Equal(t, "● Active", ansi.Strip(s.StatusBadge(domain.User{Status: domain.StatusActive})))
	assert.Equal(t, "○ Inactive", ansi.Strip(s.StatusBadge(domain.User{Status: domain.StatusInactive})))
}

func TestUserDetails(t *testing.T) {
	s := NewStyles(config.DefaultConfig().Theme)
	u := domain.User{ID: 3, Name: "Charlie Brown", Email: "charlie@example.com", Role: domain.RoleEditor, Status: domain.StatusInactive}

	lines := strings.Split(ansi.Strip(s.UserDetails(u)), "\n")
	assert.Equal(t, []string{
		"ID: 3",
		"Name: Charlie Brown",
		"Email: charlie@example.com",
		"Role: Editor",
		"Status: Inactive",
	}, lines)
}

func TestRenderSection(t *testing.T) {
	s := NewStyles(config.DefaultConfig().Theme)
	out := strings.Split(ansi.Strip(s.RenderSection("Title", "body")), "\n")

	// border, title, blank line, body, border
	assert.Len(t, out, 5)
	assert.Contains(t, out[1], "Title")
	assert.Contains(t, out[3], "body")
}
