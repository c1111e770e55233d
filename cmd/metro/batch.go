package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit/internal/platform"
)

var (
	batchRoot    string
	batchSidecar bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [pattern]",
	Short: "Inject metadata into every scene matching a glob",
	Long: `Batch walks the project for scene files matching a doublestar
pattern (e.g. "assets/**/*.json"), re-extracts their metrics, and
embeds the metadata document into each. The pattern is anchored at
--root, or at the discovered project root, or the working directory.
Scenes that fail validation are reported and skipped; the command
exits non-zero if any scene failed.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := batchRoot
		if root == "" {
			wd, err := os.Getwd()
			if err != nil {
				fatal("Failed to get working directory", err)
			}
			if found, err := platform.FindProjectRoot(wd); err == nil && found != "" {
				root = found
			} else {
				root = wd
			}
		}

		matches, err := doublestar.Glob(os.DirFS(root), args[0])
		if err != nil {
			fatal("Invalid glob pattern", err)
		}
		if len(matches) == 0 {
			fmt.Println("no scenes matched")
			return
		}

		failed := 0
		for _, match := range matches {
			path := filepath.Join(root, match)
			if err := batchOne(path); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "%s: %v\n", match, err)
				continue
			}
			fmt.Printf("ok %s\n", match)
		}

		fmt.Printf("%d scene(s) processed, %d failed\n", len(matches)-failed, failed)
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func batchOne(path string) error {
	s, err := openSession(path)
	if err != nil {
		return err
	}
	if recordArg == "" {
		if _, err := s.Service().ReadBack(); err != nil {
			return err
		}
	}
	if _, err := s.Inject(); err != nil {
		return err
	}
	if batchSidecar {
		if _, err := s.ExportSidecar(); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().StringVar(&batchRoot, "root", "", "Directory the pattern is anchored at")
	batchCmd.Flags().BoolVar(&batchSidecar, "sidecar", false, "Also export a sidecar per scene")
}
