package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit"
	"github.com/metro3d/assetkit/pkg/core"
)

var sidecarOut string

var sidecarCmd = &cobra.Command{
	Use:   "sidecar [scene]",
	Short: "Export the metadata document to a .metro.json sidecar",
	Long: `Sidecar validates the record and writes the collected document to a
standalone .metro.json file. The path derives from the scene file (or
the project's sidecar_dir) unless --out names a target.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var opts []assetkit.Option
		if sidecarOut != "" {
			opts = append(opts, assetkit.WithSidecarPath(sidecarOut))
		}
		s, err := openSession(args[0], opts...)
		if err != nil {
			fatal("Failed to open scene", err)
		}

		if recordArg == "" {
			if _, err := s.Service().ReadBack(); err != nil {
				fatal("Failed to read stored metadata", err)
			}
		}

		written, err := s.ExportSidecar()
		if err != nil {
			if verrs, ok := core.AsValidationError(err); ok {
				printValidation(verrs.Fields)
				os.Exit(1)
			}
			fatal("Failed to export sidecar", err)
		}
		fmt.Printf("sidecar written to %s\n", written)
	},
}

func init() {
	rootCmd.AddCommand(sidecarCmd)
	sidecarCmd.Flags().StringVarP(&sidecarOut, "out", "o", "", "Explicit sidecar path")
}
