package climate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maplegrove-lab/station-summary/timestamp"
)

func TestParseRecords(t *testing.T) {
	t.Run("maps measurement columns by header name", func(t *testing.T) {
		rows := [][]string{
			{"Timestamp", "T1", "T2", "T3", "SM", "SH"},
			{"2023.07.04 16:00", "21.5", "20.1", "19.9", "2400", "0"},
		}
		records, err := ParseRecords(rows)
		require.NoError(t, err)
		require.Len(t, records, 1)

		rec := records[0]
		assert.Equal(t, time.Date(2023, 7, 4, 16, 0, 0, 0, time.UTC), rec.Timestamp)
		require.NotNil(t, rec.T1)
		assert.Equal(t, 21.5, *rec.T1)
		require.NotNil(t, rec.Soil)
		assert.Equal(t, 2400.0, *rec.Soil)
	})

	t.Run("tolerates reordered and extra columns", func(t *testing.T) {
		rows := [][]string{
			{"SH", "Timestamp", "T1", "Extra"},
			{"3", "2023.07.04 16:00", "21.5", "ignored"},
		}
		records, err := ParseRecords(rows)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.NotNil(t, records[0].Shake)
		assert.Equal(t, 3.0, *records[0].Shake)
		assert.Nil(t, records[0].T2)
	})

	t.Run("non-numeric and empty measurements become missing", func(t *testing.T) {
		rows := [][]string{
			{"Timestamp", "T1", "T2"},
			{"2023.07.04 16:00", "err", ""},
		}
		records, err := ParseRecords(rows)
		require.NoError(t, err)
		assert.Nil(t, records[0].T1)
		assert.Nil(t, records[0].T2)
	})

	t.Run("climate timestamps are not timezone converted", func(t *testing.T) {
		rows := [][]string{
			{"Timestamp", "T1"},
			{"2023.07.04 16:00", "1"},
		}
		records, err := ParseRecords(rows)
		require.NoError(t, err)
		assert.Equal(t, 16, records[0].Timestamp.Hour())
	})

	t.Run("malformed timestamp fails the file", func(t *testing.T) {
		rows := [][]string{
			{"Timestamp", "T1"},
			{"2023.07.04 16:00", "1"},
			{"not a time", "2"},
		}
		_, err := ParseRecords(rows)
		require.Error(t, err)

		var perr *timestamp.ParseError
		assert.ErrorAs(t, err, &perr)
	})

	t.Run("missing Timestamp column is an error", func(t *testing.T) {
		_, err := ParseRecords([][]string{{"T1", "T2"}})
		require.Error(t, err)
	})

	t.Run("header-only input yields zero records", func(t *testing.T) {
		records, err := ParseRecords([][]string{{"Timestamp", "T1"}})
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
