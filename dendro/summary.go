package dendro

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/maplegrove-lab/station-summary/config"
	"github.com/maplegrove-lab/station-summary/tables"
	"github.com/maplegrove-lab/station-summary/timestamp"
)

// SummaryFilename is the combined output table, one row per sensor per
// local calendar day across every input file.
const SummaryFilename = "dbh_summary.csv"

// DailyGrowth is one combined-output row. Min/Max are nil when every
// Size reading of the day was missing, and Growth follows suit.
type DailyGrowth struct {
	SensorID string
	Date     string
	MinSize  *float64
	MaxSize  *float64
	GrowthMM *float64
	GrowthCM *float64
}

// The date column keeps the name Timestamp in the output; downstream
// consumers of the combined table already expect it.
var summaryHeader = []string{
	"Sensor_ID", "Timestamp", "Min_Size", "Max_Size", "Growth_mm", "Growth_cm",
}

// SummarizeDaily groups corrected records by sensor and local calendar
// date and derives the growth columns. Rows are ordered by sensor, then
// date.
func SummarizeDaily(records []Record) []DailyGrowth {
	type key struct {
		sensorID string
		date     string
	}

	groups := make(map[key]*DailyGrowth)
	for _, rec := range records {
		k := key{sensorID: rec.SensorID, date: timestamp.Date(rec.Timestamp)}
		day, ok := groups[k]
		if !ok {
			day = &DailyGrowth{SensorID: k.sensorID, Date: k.date}
			groups[k] = day
		}

		if rec.Size == nil {
			continue
		}
		if day.MinSize == nil || *rec.Size < *day.MinSize {
			v := *rec.Size
			day.MinSize = &v
		}
		if day.MaxSize == nil || *rec.Size > *day.MaxSize {
			v := *rec.Size
			day.MaxSize = &v
		}
	}

	daily := make([]DailyGrowth, 0, len(groups))
	for _, day := range groups {
		if day.MinSize != nil && day.MaxSize != nil {
			mm := *day.MaxSize - *day.MinSize
			cm := mm / 10.0
			day.GrowthMM = &mm
			day.GrowthCM = &cm
		}
		daily = append(daily, *day)
	}

	sort.Slice(daily, func(i, j int) bool {
		if daily[i].SensorID != daily[j].SensorID {
			return daily[i].SensorID < daily[j].SensorID
		}
		return daily[i].Date < daily[j].Date
	})
	return daily
}

// WriteSummary writes the combined daily growth table into destFolder.
// Zero rows still produce a header-only file.
func WriteSummary(destFolder string, daily []DailyGrowth) error {
	rows := make([][]string, 0, len(daily))
	for _, day := range daily {
		rows = append(rows, []string{
			day.SensorID,
			day.Date,
			formatValue(day.MinSize),
			formatValue(day.MaxSize),
			formatValue(day.GrowthMM),
			formatValue(day.GrowthCM),
		})
	}
	return tables.WriteCSV(filepath.Join(destFolder, SummaryFilename), summaryHeader, rows)
}

func formatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}

// ProcessFolder reads every dendrometer file in the raw folder, applies
// the rollover correction per file, aggregates all sensors into one
// combined daily table, and writes it into the summaries folder. An
// empty raw folder is reported and yields no output table.
func ProcessFolder(cfg config.Config) ([]DailyGrowth, error) {
	files, err := tables.ListCSV(cfg.DBHRawFolder)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		slog.Warn("No DBH files found", slog.String("folder", cfg.DBHRawFolder))
		return nil, nil
	}

	loc := cfg.Location()

	var all []Record
	for _, path := range files {
		slog.Info("Processing DBH", slog.String("file", filepath.Base(path)))

		records, err := ReadFile(path, loc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if occurrences := CorrectRollover(records, cfg.RolloverThreshold); occurrences > 1 {
			slog.Warn("Multiple rollover readings in file, corrected from the last one only",
				slog.String("file", filepath.Base(path)),
				slog.Int("occurrences", occurrences))
		}

		sensorID := tables.StationID(path)
		for i := range records {
			records[i].SensorID = sensorID
		}
		all = append(all, records...)
	}

	daily := SummarizeDaily(all)
	if err := WriteSummary(cfg.SummariesFolder, daily); err != nil {
		return nil, err
	}

	slog.Info("DBH summary generated",
		slog.String("path", filepath.Join(cfg.SummariesFolder, SummaryFilename)),
		slog.Int("rows", len(daily)))
	return daily, nil
}
