package table

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	gutterWidth    = 2
	columnGap      = "  "
	maxColumnWidth = 40
	ellipsis       = "…"
)

// A sortable header label is followed by a space and the sort icon
const sortIconWidth = 2

// Body lines start below the header and the separator
const bodyOffset = 2

// RowClickedMsg is emitted when a row is activated by enter or a click
type RowClickedMsg[T Row] struct {
	Row T
}

// SortChangedMsg is emitted after a header interaction replaced the sort
type SortChangedMsg struct {
	Sort SortConfig
}

type options struct {
	cycle  SortCycle
	styles Styles
	keys   KeyMap
}

// Option configures a Table
type Option func(*options)

// WithSortCycle sets what happens on a click on a descending column
func WithSortCycle(c SortCycle) Option {
	return func(o *options) { o.cycle = c }
}

// WithStyles replaces the default styles
func WithStyles(s Styles) Option {
	return func(o *options) { o.styles = s }
}

// WithKeyMap replaces the default key bindings
func WithKeyMap(k KeyMap) Option {
	return func(o *options) { o.keys = k }
}

// Table is a sortable table over rows of type T. The rows handed in are
// never reordered; sorting works on a copy derived at render time.
type Table[T Row] struct {
	columns    []ColumnDef[T]
	rows       []T
	sort       SortConfig
	onRowClick func(T)

	cycle  SortCycle
	styles Styles
	keys   KeyMap

	cursor   int
	focusCol int
	focused  bool

	// screen position of the first header cell, for mouse hit testing
	originX int
	originY int
}

// New creates a table with no active sort
func New[T Row](columns []ColumnDef[T], rows []T, opts ...Option) *Table[T] {
	o := options{
		cycle:  CycleToggle,
		styles: DefaultStyles(),
		keys:   DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Table[T]{
		columns: columns,
		rows:    rows,
		cycle:   o.cycle,
		styles:  o.styles,
		keys:    o.keys,
	}
}

// SetOnRowClick sets the row activation handler. nil disables row clicks.
func (t *Table[T]) SetOnRowClick(fn func(T)) {
	t.onRowClick = fn
}

// SetRows replaces the provider rows and keeps the current sort
func (t *Table[T]) SetRows(rows []T) {
	t.rows = rows
	t.clampCursor()
}

// SetOrigin tells the table where its first line is drawn on screen
func (t *Table[T]) SetOrigin(x, y int) {
	t.originX = x
	t.originY = y
}

func (t *Table[T]) Columns() []ColumnDef[T] { return t.columns }
func (t *Table[T]) Sort() SortConfig        { return t.sort }
func (t *Table[T]) Cursor() int             { return t.cursor }
func (t *Table[T]) FocusedColumn() int      { return t.focusCol }
func (t *Table[T]) KeyMap() KeyMap          { return t.keys }

func (t *Table[T]) Focus()        { t.focused = true }
func (t *Table[T]) Blur()         { t.focused = false }
func (t *Table[T]) Focused() bool { return t.focused }

// SortedRows returns the rows in display order
func (t *Table[T]) SortedRows() []T {
	return SortRows(t.rows, t.sort)
}

// CursorRow returns the row under the cursor, if any
func (t *Table[T]) CursorRow() (T, bool) {
	rows := t.SortedRows()
	if t.cursor < 0 || t.cursor >= len(rows) {
		var zero T
		return zero, false
	}
	return rows[t.cursor], true
}

// RequestSort advances the sort state for key. Keys that no sortable
// column uses are ignored.
func (t *Table[T]) RequestSort(key string) {
	if !t.sortable(key) {
		return
	}
	t.sort = t.sort.Next(key, t.cycle)
}

// ClickHeader performs a header click on column col
func (t *Table[T]) ClickHeader(col int) tea.Cmd {
	if col < 0 || col >= len(t.columns) || !t.columns[col].Sortable {
		return nil
	}
	t.focusCol = col
	t.RequestSort(t.columns[col].Key)
	cfg := t.sort
	return func() tea.Msg { return SortChangedMsg{Sort: cfg} }
}

// ClickRow activates the i-th displayed row
func (t *Table[T]) ClickRow(i int) tea.Cmd {
	if t.onRowClick == nil {
		return nil
	}
	rows := t.SortedRows()
	if i < 0 || i >= len(rows) {
		return nil
	}
	t.cursor = i
	row := rows[i]
	t.onRowClick(row)
	return func() tea.Msg { return RowClickedMsg[T]{Row: row} }
}

// Update handles keyboard input while focused and mouse clicks always
func (t *Table[T]) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !t.focused {
			return nil
		}
		switch {
		case key.Matches(msg, t.keys.Up):
			t.moveCursor(-1)
		case key.Matches(msg, t.keys.Down):
			t.moveCursor(1)
		case key.Matches(msg, t.keys.Top):
			t.cursor = 0
		case key.Matches(msg, t.keys.Bottom):
			t.cursor = len(t.rows) - 1
			t.clampCursor()
		case key.Matches(msg, t.keys.Left):
			t.moveFocusColumn(-1)
		case key.Matches(msg, t.keys.Right):
			t.moveFocusColumn(1)
		case key.Matches(msg, t.keys.Sort):
			return t.ClickHeader(t.focusCol)
		case key.Matches(msg, t.keys.Activate):
			return t.ClickRow(t.cursor)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		return t.clickAt(msg.X-t.originX, msg.Y-t.originY)
	}
	return nil
}

// clickAt dispatches a click at table-local coordinates
func (t *Table[T]) clickAt(x, y int) tea.Cmd {
	switch {
	case y == 0:
		widths := t.columnWidths(t.SortedRows())
		return t.ClickHeader(columnAt(widths, x))
	case y >= bodyOffset:
		return t.ClickRow(y - bodyOffset)
	}
	return nil
}

// View renders the header, a separator line and one line per row
func (t *Table[T]) View() string {
	rows := t.SortedRows()
	widths := t.columnWidths(rows)

	var b strings.Builder
	b.WriteString(t.renderHeader(widths))
	b.WriteString("\n")
	b.WriteString(t.renderSeparator(widths))
	for i, row := range rows {
		b.WriteString("\n")
		b.WriteString(t.renderRow(i, row, widths))
	}
	return b.String()
}

func (t *Table[T]) renderHeader(widths []int) string {
	cells := make([]string, len(t.columns))
	for i, c := range t.columns {
		labelStyle := t.styles.Header
		if t.focused && i == t.focusCol {
			labelStyle = t.styles.HeaderFocused
		}
		if !c.Sortable {
			cells[i] = labelStyle.Render(fit(c.Header, widths[i]))
			continue
		}
		dir := None
		if t.sort.Active() && t.sort.Key == c.Key {
			dir = t.sort.Direction
		}
		iconStyle := t.styles.SortInactive
		if dir != None {
			iconStyle = t.styles.SortActive
		}
		labelWidth := widths[i] - sortIconWidth
		label := ""
		if labelWidth > 0 {
			label = runewidth.Truncate(c.Header, labelWidth, ellipsis)
		}
		pad := max(0, labelWidth-runewidth.StringWidth(label))
		cells[i] = labelStyle.Render(label) + " " + iconStyle.Render(SortIcon(dir)) + strings.Repeat(" ", pad)
	}
	return strings.Repeat(" ", gutterWidth) + strings.Join(cells, columnGap)
}

func (t *Table[T]) renderSeparator(widths []int) string {
	total := 0
	for i, w := range widths {
		if i > 0 {
			total += len(columnGap)
		}
		total += w
	}
	if total == 0 {
		return ""
	}
	return strings.Repeat(" ", gutterWidth) + t.styles.Separator.Render(strings.Repeat("─", total))
}

func (t *Table[T]) renderRow(i int, row T, widths []int) string {
	gutter := strings.Repeat(" ", gutterWidth)
	cellStyle := t.styles.Cell
	if t.onRowClick != nil && i == t.cursor {
		gutter = t.styles.Cursor.Render("›") + " "
		if t.focused {
			cellStyle = t.styles.Cursor
		}
	}
	cells := make([]string, len(t.columns))
	for j, c := range t.columns {
		cells[j] = cellStyle.Render(fit(c.Render(row), widths[j]))
	}
	return gutter + strings.Join(cells, columnGap)
}

func (t *Table[T]) columnWidths(rows []T) []int {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		if c.Width > 0 {
			widths[i] = c.Width
			if c.Sortable {
				// the header needs room for the space and the icon
				widths[i] = max(c.Width, sortIconWidth)
			}
			continue
		}
		w := textWidth(c.Header)
		if c.Sortable {
			w += sortIconWidth
		}
		for _, row := range rows {
			if cw := textWidth(c.Render(row)); cw > w {
				w = cw
			}
		}
		if w > maxColumnWidth {
			w = maxColumnWidth
		}
		widths[i] = w
	}
	return widths
}

func (t *Table[T]) sortable(key string) bool {
	for _, c := range t.columns {
		if c.Sortable && c.Key == key {
			return true
		}
	}
	return false
}

func (t *Table[T]) moveCursor(delta int) {
	t.cursor += delta
	t.clampCursor()
}

func (t *Table[T]) clampCursor() {
	if t.cursor >= len(t.rows) {
		t.cursor = len(t.rows) - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *Table[T]) moveFocusColumn(delta int) {
	if len(t.columns) == 0 {
		return
	}
	t.focusCol = (t.focusCol + delta + len(t.columns)) % len(t.columns)
}

// columnAt maps a table-local x to a column index, -1 on gutters and gaps
func columnAt(widths []int, x int) int {
	pos := gutterWidth
	for i, w := range widths {
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + len(columnGap)
	}
	return -1
}

func textWidth(s string) int {
	if strings.IndexByte(s, ansi.ESC) >= 0 {
		return ansi.StringWidth(s)
	}
	return runewidth.StringWidth(s)
}

// fit truncates s to w cells and pads it on the right
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if strings.IndexByte(s, ansi.ESC) < 0 {
		return runewidth.FillRight(runewidth.Truncate(s, w, ellipsis), w)
	}
	s = ansi.Truncate(s, w, ellipsis)
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
