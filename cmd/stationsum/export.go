package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/maplegrove-lab/station-summary/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Bundle the generated summaries into an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ExcelWorkbook == "" {
			return fmt.Errorf("no excel_workbook path configured")
		}
		return export.Workbook(cfg.SummariesFolder, cfg.ExcelWorkbook)
	},
}
