package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit"
)

var setCmd = &cobra.Command{
	Use:   "set [scene] [field=value ...]",
	Short: "Set record fields and re-embed the metadata",
	Long: `Set reads the stored metadata back, applies the given field=value
pairs (internal snake_case names and their accepted aliases both
work), and injects the updated document into the scene. Values that
fail coercion or name an invalid enum member are skipped, like any
other ingested document.`,
	Args: cobra.MinimumNArgs(2),
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

		doc := assetkit.Document{}
		for _, pair := range args[1:] {
			key, value, ok := strings.Cut(pair, "=")
			if !ok {
				fmt.Fprintf(os.Stderr, "ignoring %q: expected field=value\n", pair)
				continue
			}
			doc[strings.TrimSpace(key)] = strings.TrimSpace(value)
		}

		report := assetkit.Ingest(s.Service().Record(), doc)
		for key := range report.Raw {
			fmt.Fprintf(os.Stderr, "unknown field %q skipped\n", key)
		}

		if _, err := s.Inject(); err != nil {
			fatal("Failed to inject metadata", err)
		}
		fmt.Printf("updated %s (%d fields mapped)\n", args[0], len(report.Mapped))
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
}
