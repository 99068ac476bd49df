package table

const (
	iconAscending  = "▲"
	iconDescending = "▼"
	iconNeutral    = "↕"
)

// SortIcon returns the header glyph for a sort direction
func SortIcon(d Direction) string {
	switch d {
	case Ascending:
		return iconAscending
	case Descending:
		return iconDescending
	default:
		return iconNeutral
	}
}
