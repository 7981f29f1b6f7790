package climate

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/maplegrove-lab/station-summary/config"
	"github.com/maplegrove-lab/station-summary/tables"
	"github.com/maplegrove-lab/station-summary/timestamp"
)

// DailySummary is one output row: min/max per channel over one calendar
// day at one station. A channel with no valid readings that day has nil
// aggregates.
type DailySummary struct {
	Date     string
	T1Min    *float64
	T1Max    *float64
	T2Min    *float64
	T2Max    *float64
	T3Min    *float64
	T3Max    *float64
	SoilMin  *float64
	SoilMax  *float64
	ShakeMax *float64
	Rows     int
}

// summaryHeader is the column order of the per-station daily files.
var summaryHeader = []string{
	"Date",
	"T1_Min", "T1_Max",
	"T2_Min", "T2_Max",
	"T3_Min", "T3_Max",
	"Soil_Min", "Soil_Max",
	"Shake_Max",
	"Rows",
}

// Summarize groups records by calendar date and computes the per-day
// aggregates. The sort is stable so records with equal timestamps keep
// their file order.
func Summarize(records []Record) []DailySummary {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	var days []DailySummary
	index := make(map[string]int)

	for _, rec := range sorted {
		date := timestamp.Date(rec.Timestamp)
		i, ok := index[date]
		if !ok {
			i = len(days)
			index[date] = i
			days = append(days, DailySummary{Date: date})
		}

		day := &days[i]
		day.Rows++
		day.T1Min = minValue(day.T1Min, rec.T1)
		day.T1Max = maxValue(day.T1Max, rec.T1)
		day.T2Min = minValue(day.T2Min, rec.T2)
		day.T2Max = maxValue(day.T2Max, rec.T2)
		day.T3Min = minValue(day.T3Min, rec.T3)
		day.T3Max = maxValue(day.T3Max, rec.T3)
		day.SoilMin = minValue(day.SoilMin, rec.Soil)
		day.SoilMax = maxValue(day.SoilMax, rec.Soil)
		day.ShakeMax = maxValue(day.ShakeMax, rec.Shake)
	}
	return days
}

// minValue folds a reading into a running minimum, ignoring nil.
func minValue(current, value *float64) *float64 {
	if value == nil {
		return current
	}
	if current == nil || *value < *current {
		v := *value
		return &v
	}
	return current
}

// maxValue folds a reading into a running maximum, ignoring nil.
func maxValue(current, value *float64) *float64 {
	if value == nil {
		return current
	}
	if current == nil || *value > *current {
		v := *value
		return &v
	}
	return current
}

// WriteDaily writes the daily summary table for one station into
// destFolder as {station}_daily.csv. Zero days still produce a
// header-only file.
func WriteDaily(destFolder, stationID string, days []DailySummary) error {
	rows := make([][]string, 0, len(days))
	for _, day := range days {
		rows = append(rows, []string{
			day.Date,
			formatValue(day.T1Min), formatValue(day.T1Max),
			formatValue(day.T2Min), formatValue(day.T2Max),
			formatValue(day.T3Min), formatValue(day.T3Max),
			formatValue(day.SoilMin), formatValue(day.SoilMax),
			formatValue(day.ShakeMax),
			strconv.Itoa(day.Rows),
		})
	}

	path := filepath.Join(destFolder, stationID+"_daily.csv")
	return tables.WriteCSV(path, summaryHeader, rows)
}

// formatValue renders an aggregate for CSV output; missing aggregates
// become empty cells.
func formatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// SummarizeFolder processes every climate CSV under the extract folder
// and writes one daily summary per station into the summaries folder.
// The station identifier comes from the filename prefix.
func SummarizeFolder(cfg config.Config) error {
	files, err := tables.WalkCSV(cfg.ExtractFolder)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Extract folder does not exist, nothing to summarize",
			slog.String("folder", cfg.ExtractFolder))
		return nil
	}
	if err != nil {
		return err
	}

	for _, path := range files {
		slog.Info("Summarizing climate file", slog.String("file", filepath.Base(path)))

		rows, err := tables.ReadCSVFile(path, ',')
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		records, err := ParseRecords(rows)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		stationID := tables.StationID(path)
		if err := WriteDaily(cfg.SummariesFolder, stationID, Summarize(records)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
