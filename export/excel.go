// Package export assembles the generated summary tables into a single
// Excel workbook, one sheet per summary file, for the story authors who
// work outside the CSV toolchain.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/maplegrove-lab/station-summary/tables"
)

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// Workbook reads every summary CSV in summariesFolder and writes them as
// sheets of one workbook at path. Sheets appear in filename order.
func Workbook(summariesFolder, path string) error {
	files, err := tables.ListCSV(summariesFolder)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no summary tables found in %s", summariesFolder)
	}

	f := excelize.NewFile()
	defer f.Close()

	names := sheetNames(files)
	for i, file := range files {
		sheet := names[i]

		if i == 0 {
			// Reuse the default sheet for the first table.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		if err := writeSheet(f, sheet, file); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create workbook directory: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("Summaries workbook written",
		slog.String("path", path), slog.Int("sheets", len(files)))
	return nil
}

// writeSheet copies one summary CSV into a sheet, header included.
func writeSheet(f *excelize.File, sheet, csvPath string) error {
	rows, err := tables.ReadCSVFile(csvPath, ',')
	if err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	return nil
}

// sheetNames derives a legal sheet name per summary file. Stems that
// collide after truncation to the Excel limit get a numeric suffix so
// no two tables merge into one sheet.
func sheetNames(files []string) []string {
	seen := make(map[string]bool)
	names := make([]string, len(files))

	for i, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		if len(name) > maxSheetName {
			name = name[:maxSheetName]
		}

		stem := name
		for n := 2; seen[name]; n++ {
			suffix := fmt.Sprintf("_%d", n)
			base := stem
			if len(base)+len(suffix) > maxSheetName {
				base = base[:maxSheetName-len(suffix)]
			}
			name = base + suffix
		}

		seen[name] = true
		names[i] = name
	}
	return names
}
