package converter

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sokodat/format"
)

func level(player uint16, fill byte) []byte {
	data := make([]byte, format.RecordSize)
	data[0] = byte(player)
	data[1] = byte(player >> 8)
	for i := format.TilesOffset; i < format.RecordSize; i++ {
		data[i] = fill
	}
	return data
}

func writeLevels(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sokoban.dat")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func convert(t *testing.T, data []byte) (string, *Converter, error) {
	t.Helper()
	var out bytes.Buffer
	c := NewConverter()
	err := c.Convert(ConvertOptions{InputFile: writeLevels(t, data), Output: &out})
	return out.String(), c, err
}

func TestConvert_SingleMap(t *testing.T) {
	out, c, err := convert(t, level(0, format.TileEmpty))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Maps())

	expected := "\nMap 1\n\n\n" +
		"@@" + strings.Repeat("  ", format.Columns-1) + "\n" +
		strings.Repeat(strings.Repeat("  ", format.Columns)+"\n", format.Rows-1)
	assert.Equal(t, expected, out)
}

func TestConvert_MapsInFileOrder(t *testing.T) {
	data := append(level(1, format.TileWall), level(2, format.TileBox)...)

	out, c, err := convert(t, data)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Maps())

	first := strings.Index(out, "\nMap 1\n")
	second := strings.Index(out, "\nMap 2\n")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	assert.Contains(t, out[first:second], "##@@##")
	assert.Contains(t, out[second:], "[][]@@[]")
}

func TestConvert_TrailingBytesIgnored(t *testing.T) {
	tests := []struct {
		name string
		size int
		maps int
	}{
		{name: "empty file", size: 0, maps: 0},
		{name: "partial record only", size: 100, maps: 0},
		{name: "one and a half", size: format.RecordSize + 153, maps: 1},
		{name: "three minus one byte", size: 3*format.RecordSize - 1, maps: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, c, err := convert(t, make([]byte, tt.size))
			require.NoError(t, err)
			assert.Equal(t, tt.maps, c.Maps())
			assert.Equal(t, tt.maps, strings.Count(out, "\nMap "))
		})
	}
}

func TestConvert_InvalidInput(t *testing.T) {
	c := NewConverter()

	err := c.Convert(ConvertOptions{InputFile: filepath.Join(t.TempDir(), "missing.dat")})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	err = c.Convert(ConvertOptions{InputFile: t.TempDir()})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
	assert.Equal(t, 0, c.Maps())
}

func TestConvert_DebugLog(t *testing.T) {
	hook := test.NewGlobal()
	prev := log.GetLevel()
	log.SetLevel(log.DebugLevel)
	defer func() {
		log.SetLevel(prev)
		hook.Reset()
	}()

	_, c, err := convert(t, make([]byte, 2*format.RecordSize+10))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Maps())

	var reading *log.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Message == "reading level file" {
			reading = entry
		}
	}

	require.NotNil(t, reading)
	assert.Equal(t, 2, reading.Data["records"])
	assert.Equal(t, 10, reading.Data["trailing"])
}
