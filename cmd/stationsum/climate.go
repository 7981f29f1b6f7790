package main

import (
	"github.com/spf13/cobra"

	"github.com/maplegrove-lab/station-summary/climate"
)

var climateCmd = &cobra.Command{
	Use:   "climate",
	Short: "Summarize the TMS climate files into per-station daily tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return climate.SummarizeFolder(cfg)
	},
}
