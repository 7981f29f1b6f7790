// Package config defines the pipeline configuration shared by every
// stage. The defaults reproduce the field-season layout the loggers are
// collected into: extracted TMS files, raw dendrometer files, and the
// two pre-joined metadata tables.
package config

import (
	"errors"
	"time"
)

// Default folder and file locations, relative to the working directory.
const (
	DefaultExtractFolder   = "./Extracted"
	DefaultSummariesFolder = "./Summaries"
	DefaultDBHRawFolder    = "./DBH_Raw"
	DefaultJoinedDendroCSV = "./joined_dendro.csv"
	DefaultJoinedTMSCSV    = "./joined_tms.csv"

	// DefaultTimezone is the local zone of the study sites. Dendrometer
	// loggers record in UTC; summaries are grouped by local calendar day.
	DefaultTimezone = "America/New_York"

	// DefaultRolloverThreshold is the maximum Size reading the dendrometer
	// encoder reports before wrapping back toward zero.
	DefaultRolloverThreshold = 8890

	// DefaultImageURLTemplate points at each sensor's first photo on the
	// project's GitHub Pages site; {sensor_id} is filled per row.
	DefaultImageURLTemplate = "https://maplegrove-lab.github.io/arboretum/Images/{sensor_id}/1.jpeg"
)

// Config validation errors.
var (
	ErrExtractFolderEmpty   = errors.New("extract folder must not be empty")
	ErrSummariesFolderEmpty = errors.New("summaries folder must not be empty")
	ErrDBHRawFolderEmpty    = errors.New("dbh raw folder must not be empty")
	ErrMetadataPathEmpty    = errors.New("metadata csv paths must not be empty")
	ErrThresholdInvalid     = errors.New("rollover threshold must be positive")
	ErrTimezoneInvalid      = errors.New("timezone cannot be loaded")
)

// Config holds the folder layout and sensor parameters for one pipeline
// run. All stages take it by value; nothing mutates it after loading.
type Config struct {
	ExtractFolder   string `json:"extract_folder" yaml:"extract_folder"`
	SummariesFolder string `json:"summaries_folder" yaml:"summaries_folder"`
	DBHRawFolder    string `json:"dbh_raw_folder" yaml:"dbh_raw_folder"`
	JoinedDendroCSV string `json:"joined_dendro_csv" yaml:"joined_dendro_csv"`
	JoinedTMSCSV    string `json:"joined_tms_csv" yaml:"joined_tms_csv"`

	// Timezone is the IANA name of the zone dendrometer timestamps are
	// converted into before daily grouping.
	Timezone string `json:"timezone" yaml:"timezone"`

	// RolloverThreshold is the Size value at which the dendrometer encoder
	// wraps. Readings after the last wrap are shifted by this amount.
	RolloverThreshold float64 `json:"rollover_threshold" yaml:"rollover_threshold"`

	// ExcelWorkbook is the path of the combined summaries workbook. Empty
	// disables the workbook export.
	ExcelWorkbook string `json:"excel_workbook" yaml:"excel_workbook"`

	// ImageURLTemplate builds the image_url column of the augmented
	// dendrometer metadata table; {sensor_id} is replaced per row.
	ImageURLTemplate string `json:"image_url_template" yaml:"image_url_template"`
}

// Default returns the configuration matching the standard field-season
// folder layout.
func Default() Config {
	return Config{
		ExtractFolder:     DefaultExtractFolder,
		SummariesFolder:   DefaultSummariesFolder,
		DBHRawFolder:      DefaultDBHRawFolder,
		JoinedDendroCSV:   DefaultJoinedDendroCSV,
		JoinedTMSCSV:      DefaultJoinedTMSCSV,
		Timezone:          DefaultTimezone,
		RolloverThreshold: DefaultRolloverThreshold,
		ExcelWorkbook:     "",
		ImageURLTemplate:  DefaultImageURLTemplate,
	}
}

// Validate checks that the Config is well-formed and that the configured
// timezone exists in the zone database.
func (c Config) Validate() error {
	if c.ExtractFolder == "" {
		return ErrExtractFolderEmpty
	}
	if c.SummariesFolder == "" {
		return ErrSummariesFolderEmpty
	}
	if c.DBHRawFolder == "" {
		return ErrDBHRawFolderEmpty
	}
	if c.JoinedDendroCSV == "" || c.JoinedTMSCSV == "" {
		return ErrMetadataPathEmpty
	}
	if c.RolloverThreshold <= 0 {
		return ErrThresholdInvalid
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return errors.Join(ErrTimezoneInvalid, err)
	}
	return nil
}

// Location loads the configured timezone. Call Validate first; Location
// panics on a bad zone name so stage code can treat it as infallible.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		panic("config: timezone not validated: " + err.Error())
	}
	return loc
}
