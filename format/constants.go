package format

// Record layout of a level file. Records are packed back to back with no
// header, footer or record count.
//
//	offset 0-1    player position, uint16 little-endian
//	offset 2-305  tile codes, 16 rows of 19 columns, row-major
const (
	PlayerOffset = 0
	PlayerSize   = 2
	TilesOffset  = PlayerOffset + PlayerSize

	Rows      = 16
	Columns   = 19
	TileCount = Rows * Columns // 304

	RecordSize = TilesOffset + TileCount // 306
)

// Tile codes
const (
	TileEmpty       = 0x00
	TileWall        = 0x01
	TileTarget      = 0x03
	TileBox         = 0x14
	TileBoxOnTarget = 0x17
)
