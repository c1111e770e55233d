package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit/pkg/core"
)

var injectCmd = &cobra.Command{
	Use:   "inject [scene]",
	Short: "Embed the metadata document into the scene's properties",
	Long: `Inject validates the record, writes the collected document into the
scene's attached properties (structured where the store supports it,
plus a JSON-string backup), and saves the scene file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession(args[0])
		if err != nil {
			fatal("Failed to open scene", err)
		}

		if _, err := s.Inject(); err != nil {
			if verrs, ok := core.AsValidationError(err); ok {
				printValidation(verrs.Fields)
				os.Exit(1)
			}
			fatal("Failed to inject metadata", err)
		}
		fmt.Printf("metadata embedded in %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(injectCmd)
}
