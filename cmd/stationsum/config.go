// Config loading for the stationsum CLI. Defaults reproduce the
// standard field-season folder layout; a config file only needs to name
// what differs.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/maplegrove-lab/station-summary/config"
)

const (
	configFileName = "stationsum"
	configFileType = "yaml"

	cfgKeyExtractFolder   = "extract_folder"
	cfgKeySummariesFolder = "summaries_folder"
	cfgKeyDBHRawFolder    = "dbh_raw_folder"
	cfgKeyJoinedDendroCSV = "joined_dendro_csv"
	cfgKeyJoinedTMSCSV    = "joined_tms_csv"
	cfgKeyTimezone        = "timezone"
	cfgKeyThreshold       = "rollover_threshold"
	cfgKeyExcelWorkbook   = "excel_workbook"
	cfgKeyImageURL        = "image_url_template"
)

// loadConfig reads stationsum.yaml via Viper. A missing config file is
// not an error; the defaults describe a complete run.
func loadConfig(configFile string) (config.Config, error) {
	defaults := config.Default()

	v := viper.New()
	v.SetDefault(cfgKeyExtractFolder, defaults.ExtractFolder)
	v.SetDefault(cfgKeySummariesFolder, defaults.SummariesFolder)
	v.SetDefault(cfgKeyDBHRawFolder, defaults.DBHRawFolder)
	v.SetDefault(cfgKeyJoinedDendroCSV, defaults.JoinedDendroCSV)
	v.SetDefault(cfgKeyJoinedTMSCSV, defaults.JoinedTMSCSV)
	v.SetDefault(cfgKeyTimezone, defaults.Timezone)
	v.SetDefault(cfgKeyThreshold, defaults.RolloverThreshold)
	v.SetDefault(cfgKeyExcelWorkbook, defaults.ExcelWorkbook)
	v.SetDefault(cfgKeyImageURL, defaults.ImageURLTemplate)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return config.Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return config.Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return config.Config{
		ExtractFolder:     v.GetString(cfgKeyExtractFolder),
		SummariesFolder:   v.GetString(cfgKeySummariesFolder),
		DBHRawFolder:      v.GetString(cfgKeyDBHRawFolder),
		JoinedDendroCSV:   v.GetString(cfgKeyJoinedDendroCSV),
		JoinedTMSCSV:      v.GetString(cfgKeyJoinedTMSCSV),
		Timezone:          v.GetString(cfgKeyTimezone),
		RolloverThreshold: v.GetFloat64(cfgKeyThreshold),
		ExcelWorkbook:     v.GetString(cfgKeyExcelWorkbook),
		ImageURLTemplate:  v.GetString(cfgKeyImageURL),
	}, nil
}
