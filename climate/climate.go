// Package climate summarizes raw TMS climate logger files into per-day,
// per-station min/max tables.
package climate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/maplegrove-lab/station-summary/timestamp"
)

// Record is one TMS reading: three temperature channels, soil moisture
// and the shake counter. Missing or non-numeric measurements are nil and
// stay out of every aggregate.
type Record struct {
	Timestamp time.Time
	T1        *float64
	T2        *float64
	T3        *float64
	Soil      *float64
	Shake     *float64
}

// ParseRecords parses the rows of one climate CSV file. The first row
// is the header; measurement columns are located by name so column
// order and extra columns do not matter. A malformed timestamp fails
// the whole file.
func ParseRecords(rows [][]string) ([]Record, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		columns[strings.TrimSpace(name)] = i
	}

	tsCol, ok := columns["Timestamp"]
	if !ok {
		return nil, fmt.Errorf("missing Timestamp column")
	}

	records := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if tsCol >= len(row) {
			return nil, fmt.Errorf("row %d: missing timestamp field", i+2)
		}

		ts, err := timestamp.ParseNaive(strings.TrimSpace(row[tsCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}

		records = append(records, Record{
			Timestamp: ts,
			T1:        fieldValue(row, columns, "T1"),
			T2:        fieldValue(row, columns, "T2"),
			T3:        fieldValue(row, columns, "T3"),
			Soil:      fieldValue(row, columns, "SM"),
			Shake:     fieldValue(row, columns, "SH"),
		})
	}
	return records, nil
}

// fieldValue reads a named measurement from a row. Absent columns,
// short rows and non-numeric tokens all yield nil.
func fieldValue(row []string, columns map[string]int, name string) *float64 {
	col, ok := columns[name]
	if !ok || col >= len(row) {
		return nil
	}
	value := strings.TrimSpace(row[col])
	if value == "" {
		return nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return &v
}
