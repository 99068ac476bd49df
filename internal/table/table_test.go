package table

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peopleColumns() []ColumnDef[testRow] {
	return []ColumnDef[testRow]{
		{Key: "name", Header: "Name", Sortable: true},
		{Key: "email", Header: "Email", Sortable: true},
		{Key: "note", Header: "Note"},
	}
}

func people() []testRow {
	return []testRow{
		row(1, map[string]any{"name": "Charlie", "email": "charlie@example.com", "note": "c"}),
		row(2, map[string]any{"name": "Alice", "email": "alice@example.com", "note": "a"}),
		row(3, map[string]any{"name": "Bob", "email": "bob@example.com", "note": "b"}),
	}
}

func plainLines(t *Table[testRow]) []string {
	return strings.Split(ansi.Strip(t.View()), "\n")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func leftClick(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestRequestSortCycle(t *testing.T) {
	tbl := New(peopleColumns(), people())
	require.False(t, tbl.Sort().Active(), "new table should be unsorted")
	assert.Equal(t, []int{1, 2, 3}, ids(tbl.SortedRows()))

	tbl.RequestSort("name")
	assert.Equal(t, SortConfig{Key: "name", Direction: Ascending}, tbl.Sort())
	assert.Equal(t, []int{2, 3, 1}, ids(tbl.SortedRows()))

	tbl.RequestSort("name")
	assert.Equal(t, SortConfig{Key: "name", Direction: Descending}, tbl.Sort())
	assert.Equal(t, []int{1, 3, 2}, ids(tbl.SortedRows()))

	tbl.RequestSort("email")
	assert.Equal(t, SortConfig{Key: "email", Direction: Ascending}, tbl.Sort())
	assert.Equal(t, []int{2, 3, 1}, ids(tbl.SortedRows()))
}

func TestRequestSortTriStateReturnsToProviderOrder(t *testing.T) {
	tbl := New(peopleColumns(), people(), WithSortCycle(CycleTriState))

	tbl.RequestSort("name")
	tbl.RequestSort("name")
	tbl.RequestSort("name")

	assert.False(t, tbl.Sort().Active())
	assert.Equal(t, []int{1, 2, 3}, ids(tbl.SortedRows()))
}

func TestRequestSortIgnoresUnknownAndNonSortableKeys(t *testing.T) {
	tbl := New(peopleColumns(), people())
	tbl.RequestSort("name")

	tbl.RequestSort("note")
	tbl.RequestSort("missing")
	assert.Equal(t, SortConfig{Key: "name", Direction: Ascending}, tbl.Sort())
}

func TestProviderRowsAreNotReordered(t *testing.T) {
	rows := people()
	tbl := New(peopleColumns(), rows)
	tbl.RequestSort("name")
	_ = tbl.View()

	assert.Equal(t, []int{1, 2, 3}, ids(rows))
}

func TestHeaderShowsSortIcons(t *testing.T) {
	tbl := New(peopleColumns(), people())

	header := plainLines(tbl)[0]
	assert.Contains(t, header, "Name ↕")
	assert.Contains(t, header, "Email ↕")
	assert.Contains(t, header, "Note")
	assert.Equal(t, 2, strings.Count(header, "↕"), "non-sortable column has no icon")

	tbl.RequestSort("name")
	header = plainLines(tbl)[0]
	assert.Contains(t, header, "Name ▲")
	assert.Contains(t, header, "Email ↕")

	tbl.RequestSort("name")
	header = plainLines(tbl)[0]
	assert.Contains(t, header, "Name ▼")
}

func TestViewRendersRowsInSortedOrder(t *testing.T) {
	tbl := New(peopleColumns(), people())
	tbl.RequestSort("name")

	lines := plainLines(tbl)
	require.Len(t, lines, 5, "header, separator and three rows")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "Alice")
	assert.Contains(t, lines[3], "Bob")
	assert.Contains(t, lines[4], "Charlie")
}

func TestCustomCellTakesPrecedence(t *testing.T) {
	cols := peopleColumns()
	cols[0].Cell = func(r testRow) string {
		return "<" + r.fields["name"].(string) + ">"
	}
	tbl := New(cols, people())

	view := ansi.Strip(tbl.View())
	assert.Contains(t, view, "<Alice>")
	assert.Contains(t, view, "<Charlie>")
	assert.NotContains(t, view, "  Alice ")
}

func TestFixedWidthTruncates(t *testing.T) {
	cols := []ColumnDef[testRow]{{Key: "name", Header: "Name", Width: 5}}
	tbl := New(cols, []testRow{row(1, map[string]any{"name": "Bartholomew"})})

	lines := plainLines(tbl)
	assert.Equal(t, "  Bart…", lines[2])
}

func TestMissingFieldRendersEmpty(t *testing.T) {
	cols := []ColumnDef[testRow]{{Key: "name", Header: "Name"}}
	r := row(1, map[string]any{})
	assert.Equal(t, "", cols[0].Render(r))

	r = row(2, map[string]any{"name": nil})
	assert.Equal(t, "", cols[0].Render(r))

	r = row(3, map[string]any{"name": 42})
	assert.Equal(t, "42", cols[0].Render(r))
}

func TestEmptyRows(t *testing.T) {
	tbl := New(peopleColumns(), nil)
	tbl.SetOnRowClick(func(testRow) { t.Fatal("handler must not run without rows") })

	lines := plainLines(tbl)
	require.Len(t, lines, 2, "only header and separator")
	assert.Contains(t, lines[0], "Name")

	assert.Nil(t, tbl.ClickRow(0))
	_, ok := tbl.CursorRow()
	assert.False(t, ok)

	tbl.Focus()
	assert.Nil(t, tbl.Update(keyMsg("enter")))
	tbl.Update(keyMsg("G"))
	assert.Equal(t, 0, tbl.Cursor())
}

func TestEmptyColumns(t *testing.T) {
	tbl := New[testRow](nil, people())

	assert.NotPanics(t, func() { _ = tbl.View() })
	assert.Nil(t, tbl.ClickHeader(0))
	tbl.RequestSort("name")
	assert.False(t, tbl.Sort().Active())

	tbl.Focus()
	assert.NotPanics(t, func() { tbl.Update(keyMsg("l")) })
	assert.Nil(t, tbl.Update(keyMsg("s")))
}

func TestClickHeader(t *testing.T) {
	tbl := New(peopleColumns(), people())

	cmd := tbl.ClickHeader(1)
	require.NotNil(t, cmd)
	msg, ok := cmd().(SortChangedMsg)
	require.True(t, ok, "header click should emit SortChangedMsg")
	assert.Equal(t, SortConfig{Key: "email", Direction: Ascending}, msg.Sort)
	assert.Equal(t, 1, tbl.FocusedColumn())

	// Non-sortable and out-of-range headers do nothing
	assert.Nil(t, tbl.ClickHeader(2))
	assert.Nil(t, tbl.ClickHeader(-1))
	assert.Nil(t, tbl.ClickHeader(3))
	assert.Equal(t, SortConfig{Key: "email", Direction: Ascending}, tbl.Sort())
}

func TestClickRowInvokesHandlerOnce(t *testing.T) {
	tbl := New(peopleColumns(), people())
	var clicked []int
	tbl.SetOnRowClick(func(r testRow) { clicked = append(clicked, r.id) })
	tbl.RequestSort("name")

	// Charlie is the last row once sorted by name
	cmd := tbl.ClickRow(2)
	require.NotNil(t, cmd)
	assert.Equal(t, []int{1}, clicked)
	assert.Equal(t, 2, tbl.Cursor())

	msg, ok := cmd().(RowClickedMsg[testRow])
	require.True(t, ok)
	assert.Equal(t, 1, msg.Row.id)
	assert.Equal(t, []int{1}, clicked, "running the command must not call the handler again")

	assert.Nil(t, tbl.ClickRow(5))
	assert.Nil(t, tbl.ClickRow(-1))
	assert.Len(t, clicked, 1)
}

func TestClickRowWithoutHandler(t *testing.T) {
	tbl := New(peopleColumns(), people())

	assert.Nil(t, tbl.ClickRow(0))
	for _, line := range plainLines(tbl) {
		assert.NotContains(t, line, "›", "no cursor marker without a handler")
	}
}

func TestCursorMarkerWithHandler(t *testing.T) {
	tbl := New(peopleColumns(), people())
	tbl.SetOnRowClick(func(testRow) {})

	lines := plainLines(tbl)
	assert.True(t, strings.HasPrefix(lines[2], "› "))
	assert.True(t, strings.HasPrefix(lines[3], "  "))
}

func TestKeyboardNavigation(t *testing.T) {
	tbl := New(peopleColumns(), people())
	var clicked []int
	tbl.SetOnRowClick(func(r testRow) { clicked = append(clicked, r.id) })

	// Keys are ignored while blurred
	tbl.Update(keyMsg("down"))
	assert.Equal(t, 0, tbl.Cursor())

	tbl.Focus()
	require.True(t, tbl.Focused())

	tbl.Update(keyMsg("down"))
	tbl.Update(keyMsg("j"))
	assert.Equal(t, 2, tbl.Cursor())
	tbl.Update(keyMsg("down"))
	assert.Equal(t, 2, tbl.Cursor(), "cursor stops at the last row")

	tbl.Update(keyMsg("g"))
	assert.Equal(t, 0, tbl.Cursor())
	tbl.Update(keyMsg("up"))
	assert.Equal(t, 0, tbl.Cursor(), "cursor stops at the first row")
	tbl.Update(keyMsg("G"))
	assert.Equal(t, 2, tbl.Cursor())

	// Header focus wraps around
	tbl.Update(keyMsg("l"))
	assert.Equal(t, 1, tbl.FocusedColumn())
	tbl.Update(keyMsg("h"))
	tbl.Update(keyMsg("h"))
	assert.Equal(t, 2, tbl.FocusedColumn())

	// Sorting the non-sortable note column does nothing
	assert.Nil(t, tbl.Update(keyMsg("s")))
	tbl.Update(keyMsg("l"))
	cmd := tbl.Update(keyMsg("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, SortConfig{Key: "name", Direction: Ascending}, tbl.Sort())

	cmd = tbl.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, []int{1}, clicked, "cursor row 2 is Charlie after sorting by name")

	tbl.Blur()
	assert.False(t, tbl.Focused())
}

func TestMouseClicks(t *testing.T) {
	tbl := New(peopleColumns(), people())
	var clicked []int
	tbl.SetOnRowClick(func(r testRow) { clicked = append(clicked, r.id) })
	tbl.SetOrigin(10, 5)

	// Name column starts after the two-cell gutter
	cmd := tbl.Update(leftClick(12, 5))
	require.NotNil(t, cmd)
	assert.Equal(t, SortConfig{Key: "name", Direction: Ascending}, tbl.Sort())

	// Name is 7 cells wide (Charlie), then a two-cell gap
	cmd = tbl.Update(leftClick(21, 5))
	require.NotNil(t, cmd)
	assert.Equal(t, SortConfig{Key: "email", Direction: Ascending}, tbl.Sort())

	// Gaps, the gutter and the separator line do nothing
	assert.Nil(t, tbl.Update(leftClick(19, 5)))
	assert.Nil(t, tbl.Update(leftClick(10, 5)))
	assert.Nil(t, tbl.Update(leftClick(12, 6)))

	// First body line is alice@ once sorted by email
	cmd = tbl.Update(leftClick(14, 7))
	require.NotNil(t, cmd)
	assert.Equal(t, []int{2}, clicked)

	// Releases and other buttons are ignored
	release := leftClick(14, 8)
	release.Action = tea.MouseActionRelease
	assert.Nil(t, tbl.Update(release))
	wheel := tea.MouseMsg{X: 14, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}
	assert.Nil(t, tbl.Update(wheel))
	assert.Len(t, clicked, 1)
}

func TestSetRowsKeepsSortAndClampsCursor(t *testing.T) {
	tbl := New(peopleColumns(), people())
	tbl.SetOnRowClick(func(testRow) {})
	tbl.RequestSort("name")
	tbl.ClickRow(2)
	require.Equal(t, 2, tbl.Cursor())

	tbl.SetRows(people()[:1])
	assert.Equal(t, 0, tbl.Cursor())
	assert.Equal(t, SortConfig{Key: "name", Direction: Ascending}, tbl.Sort())

	r, ok := tbl.CursorRow()
	require.True(t, ok)
	assert.Equal(t, 1, r.id)
}

func TestNarrowSortableColumnKeepsHeaderAligned(t *testing.T) {
	cols := []ColumnDef[testRow]{
		{Key: "a", Header: "A", Sortable: true, Width: 1},
		{Key: "b", Header: "Bee", Sortable: true},
	}
	rows := []testRow{
		row(1, map[string]any{"a": "x", "b": "2"}),
		row(2, map[string]any{"a": "y", "b": "1"}),
	}
	tbl := New(cols, rows)

	lines := plainLines(tbl)
	assert.Equal(t, "   ↕  Bee ↕", lines[0])
	assert.Equal(t, ansi.StringWidth(lines[1]), ansi.StringWidth(lines[0]), "header and separator have the same width")

	// The second header starts after the gutter, the clamped first column and the gap
	x := strings.Index(lines[0], "Bee")
	require.NotNil(t, tbl.Update(leftClick(ansi.StringWidth(lines[0][:x]), 0)))
	assert.Equal(t, SortConfig{Key: "b", Direction: Ascending}, tbl.Sort())
	assert.Equal(t, []int{2, 1}, ids(tbl.SortedRows()))
}
