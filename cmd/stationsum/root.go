package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/maplegrove-lab/station-summary/config"
)

var (
	// flagConfigFile is set by the --config flag.
	flagConfigFile string

	// cfg is loaded by PersistentPreRunE for every subcommand.
	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "stationsum",
	Short: "stationsum summarizes field-station sensor data",
	Long: `stationsum processes the data collected from the forest monitoring
stations: it builds daily min/max summaries from the TMS climate logger
files, corrects the dendrometer size readings for the encoder rollover
and derives daily growth, and stages the joined sensor metadata for the
final map export.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		setupLogging()

		loaded, err := loadConfig(flagConfigFile)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigFile, "config", "",
		"config file (default: ./stationsum.yaml)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(climateCmd)
	rootCmd.AddCommand(dbhCmd)
	rootCmd.AddCommand(metadataCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogging routes pipeline progress to stderr as text.
func setupLogging() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))
}
