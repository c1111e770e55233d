package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit"
)

var extractOut string

var extractCmd = &cobra.Command{
	Use:   "extract [scene]",
	Short: "Extract geometry metrics from a scene",
	Long: `Extract aggregates triangle, vertex, material and bounding box data
from the scene's visible mesh objects into the metadata record. With
--out, the resulting record is written to a flat record file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession(args[0])
		if err != nil {
			fatal("Failed to open scene", err)
		}

		stats, err := s.Service().ExtractMetrics()
		if err != nil {
			fatal("Failed to extract metrics", err)
		}

		fmt.Printf("triangles: %d\nvertices: %d\nmaterials: %d\nbounding box: %.4f x %.4f x %.4f\n",
			stats.Triangles, stats.Vertices, stats.MaterialCount, stats.BBoxX, stats.BBoxY, stats.BBoxZ)

		if extractOut != "" {
			if err := assetkit.SaveRecord(extractOut, s.Service().Record()); err != nil {
				fatal("Failed to write record file", err)
			}
			fmt.Printf("record written to %s\n", extractOut)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "Write the record to this file")
}
