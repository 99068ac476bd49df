package table

import "fmt"

// Row is a record the table can display. RowID must be unique within one
// data set. Field returns false when the row has nothing stored under key.
type Row interface {
	RowID() int
	Field(key string) (any, bool)
}

// ColumnDef describes one column: which field it shows, its header label,
// whether the header sorts, and an optional custom cell renderer.
type ColumnDef[T Row] struct {
	Key      string
	Header   string
	Sortable bool
	// Cell, when set, replaces the raw field value in the body.
	Cell func(row T) string
	// Width fixes the column width in cells. Zero means fit to content.
	Width int
}

// Render returns the body text for row in this column.
func (c ColumnDef[T]) Render(row T) string {
	if c.Cell != nil {
		return c.Cell(row)
	}
	v, ok := row.Field(c.Key)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
