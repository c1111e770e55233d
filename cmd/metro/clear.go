package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit/pkg/schema"
)

var clearCmd = &cobra.Command{
	Use:   "clear [scene]",
	Short: "Remove embedded metadata from a scene",
	Long: `Clear resets the record to its defaults, deletes the embedded
metadata properties from the scene, and saves it. Foreign attached
properties are left alone.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession(args[0])
		if err != nil {
			fatal("Failed to open scene", err)
		}

		s.Service().Clear()
		delete(s.Scene().Props, schema.MetadataKey)
		delete(s.Scene().Props, schema.MetadataJSONKey)

		if err := s.Save(); err != nil {
			fatal("Failed to save scene", err)
		}
		fmt.Printf("metadata cleared from %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
