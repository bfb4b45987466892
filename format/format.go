package format

// RecordCount returns how many complete records fit in size bytes and how
// many bytes are left over at the end.
func RecordCount(size int64) (records int, trailing int) {
	if size <= 0 {
		return 0, 0
	}
	return int(size / RecordSize), int(size % RecordSize)
}

// TileIndex converts a grid coordinate into a linear tile index.
func TileIndex(row, col int) int {
	return row*Columns + col
}

// RowCol converts a linear tile index back into a grid coordinate.
func RowCol(index int) (row, col int) {
	return index / Columns, index % Columns
}

// InGrid reports whether index addresses a tile of the grid.
func InGrid(index int) bool {
	return index >= 0 && index < TileCount
}
