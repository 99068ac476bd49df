package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Overlay draws the modal centered over base, which is greyed out.
// base is returned unchanged while the modal is closed.
func (m *Model) Overlay(base string, width, height int) string {
	if !m.open {
		return base
	}
	return Place(base, m.View(), width, height)
}

// Place centers popup on a desaturated copy of base
func Place(base, popup string, width, height int) string {
	popupLines := strings.Split(popup, "\n")
	popupW := lipgloss.Width(popup)
	popupH := len(popupLines)

	baseLines := strings.Split(ansi.Strip(base), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	x, y := origin(popupW, popupH, width, height, len(baseLines))

	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		pi := i - y
		if pi < 0 || pi >= popupH {
			out[i] = dimStyle.Render(line)
			continue
		}
		left := runewidth.FillRight(runewidth.Truncate(line, x, ""), x)
		right := skipCells(line, x+lipgloss.Width(popupLines[pi]))
		out[i] = dimStyle.Render(left) + popupLines[pi] + dimStyle.Render(right)
	}
	for i := len(baseLines) - y; i < popupH; i++ {
		out = append(out, strings.Repeat(" ", x)+popupLines[i])
	}
	return strings.Join(out, "\n")
}

// origin returns the top left cell of a popup centered horizontally in
// width and vertically in the first height lines of a base that is lines
// tall
func origin(popupW, popupH, width, height, lines int) (int, int) {
	x := max(0, (width-popupW)/2)
	y := (lines - popupH) / 2
	if height > 0 && height < lines {
		y = (height - popupH) / 2
	}
	return x, max(0, y)
}

// skipCells drops the first n display cells of a plain string
func skipCells(s string, n int) string {
	w := 0
	for i, r := range s {
		if w >= n {
			return s[i:]
		}
		w += runewidth.RuneWidth(r)
	}
	return ""
}
