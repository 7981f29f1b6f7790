package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/maplegrove-lab/station-summary/climate"
	"github.com/maplegrove-lab/station-summary/dendro"
	"github.com/maplegrove-lab/station-summary/export"
	"github.com/maplegrove-lab/station-summary/metadata"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the whole pipeline: climate, dbh, metadata",
	Long: `Run all stages in order: summarize the climate files, correct and
summarize the dendrometer files, then stage the joined metadata. When a
workbook path is configured the summaries are also exported to Excel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		slog.Info("Generating climate summaries")
		if err := climate.SummarizeFolder(cfg); err != nil {
			return err
		}

		slog.Info("Processing DBH corrections")
		if _, err := dendro.ProcessFolder(cfg); err != nil {
			return err
		}

		slog.Info("Staging metadata")
		db, err := metadata.Load(cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		logMetadata(db)

		if cfg.ExcelWorkbook != "" {
			if err := export.Workbook(cfg.SummariesFolder, cfg.ExcelWorkbook); err != nil {
				return err
			}
		}

		slog.Info("All tasks complete")
		return nil
	},
}

// logMetadata reports what was staged, since the join itself happens
// outside this tool.
func logMetadata(db *metadata.DB) {
	for _, table := range []string{metadata.TableDendro, metadata.TableTMS} {
		count, err := db.RowCount(table)
		if err != nil {
			slog.Warn("Failed to count staged rows",
				slog.String("table", table), slog.Any("error", err))
			continue
		}
		slog.Info("Metadata staged",
			slog.String("table", table),
			slog.Int("columns", len(db.Columns(table))),
			slog.Int("rows", count))
	}
}
