package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/maplegrove-lab/station-summary/metadata"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Add per-sensor image URLs to the dendrometer metadata table",
	Long: `Read the joined dendrometer metadata, fill an image_url column from
the configured URL template, and write the augmented table next to the
input for the story map.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outputPath := metadata.ImagesOutputPath(cfg.JoinedDendroCSV)

		rows, err := metadata.AddImageURLs(cfg.JoinedDendroCSV, outputPath, cfg.ImageURLTemplate)
		if err != nil {
			return err
		}

		slog.Info("Image URLs added",
			slog.String("path", outputPath), slog.Int("rows", rows))
		return nil
	},
}
