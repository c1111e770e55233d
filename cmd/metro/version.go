package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of metro",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("metro version %s\n", assetkit.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
