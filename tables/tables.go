// Package tables provides the flat-table primitives the pipeline stages
// share: reading logger CSV files with the field-encoding fallback,
// writing summary CSV files, locating input files, and deriving
// station/sensor identifiers from filenames.
package tables

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// ReadFile reads the file at path and decodes it with the logger
// encoding policy: Latin-1 first, and on a decode failure a permissive
// UTF-8 pass that drops undecodable bytes. Field loggers are not
// consistent about encodings; decoding is best-effort and never fatal.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return decodeFallback(data), nil
}

// decodeFallback applies the Latin-1 -> lenient UTF-8 policy to raw
// file bytes.
func decodeFallback(data []byte) string {
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err == nil {
		return string(decoded)
	}
	// Lenient UTF-8: keep what decodes, drop what does not.
	return strings.ToValidUTF8(string(data), "")
}

// ReadCSVFile reads and decodes the file at path and parses it as CSV
// with the given delimiter. Rows may have varying field counts; the
// caller decides what to do with short rows.
func ReadCSVFile(path string, delimiter rune) ([][]string, error) {
	content, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCSV(content, delimiter)
}

// ParseCSV parses already-decoded CSV content.
func ParseCSV(content string, delimiter rune) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	return records, nil
}

// WriteCSV writes a header row and data rows to path, creating the
// destination directory if needed. Output is always UTF-8.
func WriteCSV(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}
	return nil
}

// WalkCSV returns every .csv file under folder, at any nesting depth,
// in walk order. The extracted TMS tree keeps one subfolder per
// download batch.
func WalkCSV(folder string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".csv") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk folder %s: %w", folder, err)
	}
	return files, nil
}

// ListCSV returns the .csv files directly inside folder. The extension
// match is case-insensitive; dendrometer downloads arrive as both .csv
// and .CSV.
func ListCSV(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to list folder %s: %w", folder, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(entry.Name()), ".csv") {
			files = append(files, filepath.Join(folder, entry.Name()))
		}
	}
	return files, nil
}

// StationID derives the station or sensor identifier from a file path:
// the part of the filename stem before the first underscore. A stem
// without an underscore is returned whole.
func StationID(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	id, _, _ := strings.Cut(stem, "_")
	return id
}
