package types

import "sokodat/format"

// Level is one decoded record.
type Level struct {
	// PlayerPosition is a linear index into Tiles. It is not validated and may
	// point outside the grid.
	PlayerPosition uint16
	Tiles          [format.TileCount]byte
}

// Tile returns the tile code at the given grid coordinate.
func (l Level) Tile(row, col int) byte {
	return l.Tiles[format.TileIndex(row, col)]
}

// HasPlayer reports whether the player position lies inside the grid.
func (l Level) HasPlayer() bool {
	return format.InGrid(int(l.PlayerPosition))
}

type Config struct {
	VerboseOutput bool
}

type DecoderResult struct {
	Text  string
	Level Level
}
