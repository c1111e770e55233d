package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit/internal/json"
)

var collectCmd = &cobra.Command{
	Use:   "collect [scene]",
	Short: "Print the collected metadata document",
	Long: `Collect builds the nested, versioned metadata document from the
scene's record and prints it as JSON. Nothing is written.`,
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

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s.Service().Collect()); err != nil {
			fatal("Failed to encode document", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(collectCmd)
}
