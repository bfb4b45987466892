package sokoban

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"sokodat/decoders/types"
	"sokodat/format"
)

// ErrShortRecord is returned when fewer than format.RecordSize bytes are
// available. It marks the end of the usable data, not a corrupt level.
var ErrShortRecord = errors.New("short record")

const playerGlyph = "@@"

var glyphs = map[byte]string{
	format.TileEmpty:       "  ",
	format.TileWall:        "##",
	format.TileTarget:      "..",
	format.TileBox:         "[]",
	format.TileBoxOnTarget: "{}",
}

// DecodeLevel parses one record. Bytes past format.RecordSize are ignored.
func DecodeLevel(record []byte) (types.Level, error) {
	if len(record) < format.RecordSize {
		return types.Level{}, fmt.Errorf("%w: got %d bytes, need %d", ErrShortRecord, len(record), format.RecordSize)
	}

	var level types.Level
	level.PlayerPosition = binary.LittleEndian.Uint16(record[format.PlayerOffset : format.PlayerOffset+format.PlayerSize])
	copy(level.Tiles[:], record[format.TilesOffset:format.RecordSize])
	return level, nil
}

// Glyph returns the two-character cell for a tile code. Unknown codes map to "??".
func Glyph(code byte) string {
	if g, ok := glyphs[code]; ok {
		return g
	}
	return "??"
}

// RenderLevel draws the grid. A line break precedes every row, the first one
// included, and one more follows the last row. The player is drawn over
// whatever tile sits at its position.
func RenderLevel(level types.Level) string {
	var sb strings.Builder
	sb.Grow(format.Rows*(format.Columns*2+1) + 1)

	for i, code := range level.Tiles {
		if i%format.Columns == 0 {
			sb.WriteByte('\n')
		}
		if i == int(level.PlayerPosition) {
			sb.WriteString(playerGlyph)
		} else {
			sb.WriteString(Glyph(code))
		}
	}
	sb.WriteByte('\n')

	return sb.String()
}

// RenderHeader returns the blank-line framed title of map number n.
func RenderHeader(n int) string {
	return fmt.Sprintf("\nMap %d\n\n", n)
}

// RenderMap returns the header followed by the rendered grid.
func RenderMap(n int, level types.Level) string {
	return RenderHeader(n) + RenderLevel(level)
}

// Decode decodes a record and renders it as map number n.
func Decode(record []byte, n int, config types.Config) (types.DecoderResult, error) {
	level, err := DecodeLevel(record)
	if err != nil {
		return types.DecoderResult{}, err
	}

	if config.VerboseOutput {
		entry := log.WithFields(log.Fields{"map": n, "player": level.PlayerPosition})
		if !level.HasPlayer() {
			entry.Debug("player position outside grid")
		} else {
			row, col := format.RowCol(int(level.PlayerPosition))
			entry.WithFields(log.Fields{
				"row":   row,
				"col":   col,
				"under": Glyph(level.Tile(row, col)),
			}).Debug("decoded level")
		}
	}

	return types.DecoderResult{
		Text:  RenderMap(n, level),
		Level: level,
	}, nil
}
