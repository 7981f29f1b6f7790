package main

import (
	"github.com/spf13/cobra"

	"github.com/maplegrove-lab/station-summary/metadata"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Stage the joined sensor metadata tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := metadata.Load(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		logMetadata(db)
		return nil
	},
}
