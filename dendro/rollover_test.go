package dendro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sizes(values ...float64) []Record {
	records := make([]Record, len(values))
	base := time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)
	for i, v := range values {
		size := v
		records[i] = Record{Timestamp: base.Add(time.Duration(i) * time.Hour), Size: &size}
	}
	return records
}

func sizeValues(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, rec := range records {
		if rec.Size != nil {
			out[i] = *rec.Size
		}
	}
	return out
}

func TestSplitPoint(t *testing.T) {
	t.Run("finds the last record at the threshold", func(t *testing.T) {
		records := sizes(100, 8890, 50, 8890, 300)
		index, occurrences := SplitPoint(records, 8890)
		assert.Equal(t, 3, index)
		assert.Equal(t, 2, occurrences)
	})

	t.Run("reports no split when the threshold never appears", func(t *testing.T) {
		index, occurrences := SplitPoint(sizes(100, 500, 8889), 8890)
		assert.Equal(t, -1, index)
		assert.Zero(t, occurrences)
	})

	t.Run("skips missing sizes", func(t *testing.T) {
		records := sizes(100, 8890, 300)
		records[1].Size = nil
		index, _ := SplitPoint(records, 8890)
		assert.Equal(t, -1, index)
	})
}

func TestApplyBaseline(t *testing.T) {
	t.Run("shifts records strictly after the split", func(t *testing.T) {
		records := sizes(100, 500, 8890, 50, 300)
		ApplyBaseline(records, 2, 8890)
		assert.Equal(t, []float64{100, 500, 8890, 8940, 9190}, sizeValues(records))
	})

	t.Run("split of -1 leaves records untouched", func(t *testing.T) {
		records := sizes(100, 500)
		ApplyBaseline(records, -1, 8890)
		assert.Equal(t, []float64{100, 500}, sizeValues(records))
	})

	t.Run("missing sizes stay missing", func(t *testing.T) {
		records := sizes(8890, 10, 20)
		records[1].Size = nil
		ApplyBaseline(records, 0, 8890)
		assert.Nil(t, records[1].Size)
		assert.Equal(t, 8910.0, *records[2].Size)
	})
}

func TestCorrectRollover(t *testing.T) {
	t.Run("reconstructs a monotonic series across the wrap", func(t *testing.T) {
		records := sizes(100, 500, 8890, 50, 300)
		occurrences := CorrectRollover(records, 8890)
		assert.Equal(t, 1, occurrences)
		assert.Equal(t, []float64{100, 500, 8890, 8940, 9190}, sizeValues(records))
	})

	t.Run("no threshold reading leaves sizes unchanged", func(t *testing.T) {
		records := sizes(100, 500, 8889, 50)
		occurrences := CorrectRollover(records, 8890)
		assert.Zero(t, occurrences)
		assert.Equal(t, []float64{100, 500, 8889, 50}, sizeValues(records))
	})

	t.Run("multiple wraps correct from the last occurrence only", func(t *testing.T) {
		records := sizes(8890, 10, 8890, 20)
		occurrences := CorrectRollover(records, 8890)
		assert.Equal(t, 2, occurrences)
		assert.Equal(t, []float64{8890, 10, 8890, 8910}, sizeValues(records))
	})

	t.Run("threshold is configurable", func(t *testing.T) {
		records := sizes(90, 100, 5)
		require.Equal(t, 1, CorrectRollover(records, 100))
		assert.Equal(t, []float64{90, 100, 105}, sizeValues(records))
	})
}
