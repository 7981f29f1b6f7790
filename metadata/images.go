package metadata

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/maplegrove-lab/station-summary/tables"
)

// SensorIDPlaceholder is the token in the image URL template that is
// replaced by each row's sensor identifier.
const SensorIDPlaceholder = "{sensor_id}"

// ImageURL renders the image URL for one sensor from the template.
func ImageURL(template, sensorID string) string {
	return strings.ReplaceAll(template, SensorIDPlaceholder, sensorID)
}

// ImagesOutputPath derives the augmented-table path from the metadata
// input path, e.g. joined_dendro.csv -> joined_dendro_with_images.csv.
func ImagesOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_with_images" + ext
}

// AddImageURLs reads the joined dendrometer metadata table, fills an
// image_url column from the URL template, and writes the augmented
// table to outputPath for the story map. An existing image_url column
// is overwritten; otherwise the column is appended. The sensor id
// column is matched by name, case-insensitively. Returns the number of
// data rows written.
func AddImageURLs(inputPath, outputPath, template string) (int, error) {
	if template == "" {
		return 0, fmt.Errorf("image url template is empty")
	}

	rows, err := tables.ReadCSVFile(inputPath, ',')
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("file %s has no header row", inputPath)
	}

	header := rows[0]
	sensorCol := findColumn(header, "sensor_id")
	if sensorCol < 0 {
		return 0, fmt.Errorf("missing sensor_id column in %s", inputPath)
	}

	urlCol := findColumn(header, "image_url")
	if urlCol < 0 {
		urlCol = len(header)
		header = append(header, "image_url")
	}

	out := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		augmented := make([]string, len(header))
		copy(augmented, row)

		sensorID := ""
		if sensorCol < len(row) {
			sensorID = strings.TrimSpace(row[sensorCol])
		}
		augmented[urlCol] = ImageURL(template, sensorID)
		out = append(out, augmented)
	}

	if err := tables.WriteCSV(outputPath, header, out); err != nil {
		return 0, err
	}
	return len(out), nil
}

// findColumn locates a header column by case-insensitive name.
func findColumn(header []string, name string) int {
	for i, col := range header {
		if strings.EqualFold(strings.TrimSpace(col), name) {
			return i
		}
	}
	return -1
}
