package main

import (
	"github.com/spf13/cobra"

	"github.com/maplegrove-lab/station-summary/dendro"
)

var dbhCmd = &cobra.Command{
	Use:   "dbh",
	Short: "Correct dendrometer rollovers and build the combined growth table",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := dendro.ProcessFolder(cfg)
		return err
	},
}
