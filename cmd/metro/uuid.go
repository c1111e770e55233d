package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var uuidCmd = &cobra.Command{
	Use:   "uuid [scene]",
	Short: "Assign a fresh lineage UUID to the scene's metadata",
	Long: `Uuid generates a new UUID v4 for the record's lineage field, embeds
the updated document, and prints the identifier.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession(args[0])
		if err != nil {
			fatal("Failed to open scene", err)
		}

		if recordArg == "" {
			if _, err := s.Service().ReadBack(); err != nil {
				fatal("Failed to read stored metadata", err)
			}
		}

		id := s.Service().GenerateLineageID()
		if _, err := s.Inject(); err != nil {
			fatal("Failed to inject metadata", err)
		}
		fmt.Println(id)
	},
}

func init() {
	rootCmd.AddCommand(uuidCmd)
}
