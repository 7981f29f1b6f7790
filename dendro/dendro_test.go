package dendro

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maplegrove-lab/station-summary/timestamp"
)

func eastern(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func writeRaw(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadFile(t *testing.T) {
	loc := eastern(t)

	t.Run("skips the device row and converts timestamps", func(t *testing.T) {
		path := writeRaw(t, t.TempDir(), "92231001_2023.csv",
			"device info;fw 1.2\n"+
				"1;2023.07.04 16:00;0;20;21;22;4120;55;4.1;0\n"+
				"1;2023.07.04 17:00;0;20;21;22;4121;55;4.1;0\n")

		records, err := ReadFile(path, loc)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, 12, records[0].Timestamp.Hour())
		require.NotNil(t, records[0].Size)
		assert.Equal(t, 4120.0, *records[0].Size)
		assert.Equal(t, "1", records[0].Sensor)
		assert.Equal(t, "4.1", records[0].Battery)
	})

	t.Run("sorts rows by converted timestamp", func(t *testing.T) {
		path := writeRaw(t, t.TempDir(), "s.csv",
			"device\n"+
				"1;2023.07.04 17:00;;;;;2;;;\n"+
				"1;2023.07.04 16:00;;;;;1;;;\n")

		records, err := ReadFile(path, loc)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, 1.0, *records[0].Size)
		assert.Equal(t, 2.0, *records[1].Size)
	})

	t.Run("non-numeric size becomes missing", func(t *testing.T) {
		path := writeRaw(t, t.TempDir(), "s.csv",
			"device\n"+
				"1;2023.07.04 16:00;;;;;err;;;\n")

		records, err := ReadFile(path, loc)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].Size)
	})

	t.Run("short rows are padded", func(t *testing.T) {
		path := writeRaw(t, t.TempDir(), "s.csv",
			"device\n"+
				"1;2023.07.04 16:00;0;20\n")

		records, err := ReadFile(path, loc)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].Size)
		assert.Empty(t, records[0].Battery)
	})

	t.Run("only the device row yields no records", func(t *testing.T) {
		path := writeRaw(t, t.TempDir(), "s.csv", "device info;fw 1.2\n")
		records, err := ReadFile(path, loc)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("malformed timestamp fails the file", func(t *testing.T) {
		path := writeRaw(t, t.TempDir(), "s.csv",
			"device\n"+
				"1;yesterday;;;;;1;;;\n")

		_, err := ReadFile(path, loc)
		require.Error(t, err)

		var perr *timestamp.ParseError
		assert.ErrorAs(t, err, &perr)
	})
}
