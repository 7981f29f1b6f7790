// Package dendro corrects raw dendrometer (DBH) logger files for the
// encoder rollover artifact and aggregates them into one combined daily
// growth table.
package dendro

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/maplegrove-lab/station-summary/tables"
	"github.com/maplegrove-lab/station-summary/timestamp"
)

// Column positions of a raw dendrometer row. The files carry no header;
// the first row is a device metadata artifact and is skipped.
const (
	colSensor = iota
	colTimestamp
	colX3
	colT1
	colT2
	colT3
	colSize
	colHumidity
	colBattery
	colX
	columnCount
)

// Record is one dendrometer reading with its timestamp already converted
// to local time. Size is the cumulative growth reading; nil when the
// logger emitted a non-numeric token. Channels the pipeline does not
// aggregate are kept as raw text.
type Record struct {
	SensorID  string
	Sensor    string
	Timestamp time.Time
	X3        string
	T1        string
	T2        string
	T3        string
	Size      *float64
	Humidity  string
	Battery   string
	X         string
}

// ReadFile reads one raw dendrometer CSV (semicolon-delimited), skips
// the device metadata row, converts timestamps from UTC into loc, and
// returns the records sorted by local timestamp. The sort is stable so
// duplicate timestamps keep their file order.
func ReadFile(path string, loc *time.Location) ([]Record, error) {
	rows, err := tables.ReadCSVFile(path, ';')
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		row = padRow(row)

		ts, err := timestamp.ParseUTC(strings.TrimSpace(row[colTimestamp]), loc)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		records = append(records, Record{
			Sensor:    row[colSensor],
			Timestamp: ts,
			X3:        row[colX3],
			T1:        row[colT1],
			T2:        row[colT2],
			T3:        row[colT3],
			Size:      parseSize(row[colSize]),
			Humidity:  row[colHumidity],
			Battery:   row[colBattery],
			X:         row[colX],
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp.Before(records[j].Timestamp)
	})
	return records, nil
}

// padRow extends a short row to the full column count so positional
// access never goes out of range. Missing trailing fields read as empty.
func padRow(row []string) []string {
	if len(row) >= columnCount {
		return row
	}
	padded := make([]string, columnCount)
	copy(padded, row)
	return padded
}

// parseSize coerces the raw Size token to a number. Non-numeric tokens
// become a missing value, not an error; downstream aggregation skips
// them.
func parseSize(value string) *float64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &v
}
