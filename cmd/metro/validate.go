package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [scene]",
	Short: "Validate the metadata record for a scene",
	Long: `Validate checks the record against the schema constraints (field
lengths, tag limits, lineage UUID format). Previously embedded
metadata is read back first, so the check covers what is actually
stored. Exits non-zero when any field is invalid.`,
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

		if errs := s.Service().Validate(); len(errs) > 0 {
			printValidation(errs)
			os.Exit(1)
		}
		fmt.Println("metadata is valid")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
