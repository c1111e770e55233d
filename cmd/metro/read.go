package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/metro3d/assetkit"
	"github.com/metro3d/assetkit/internal/json"
	"github.com/metro3d/assetkit/pkg/adapters/gltf"
	"github.com/metro3d/assetkit/pkg/adapters/sidecar"
)

var readJSON bool

var readCmd = &cobra.Command{
	Use:   "read [file]",
	Short: "Read metadata back from a scene, glTF file, or sidecar",
	Long: `Read ingests previously written metadata into a fresh record and
prints it. The source is chosen by extension: .gltf/.glb files are
read through their scene extras, .metro.json sidecars directly, and
anything else as a scene file with attached properties. With --json
the flat record is printed as a JSON object.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		record, report, err := readMetadata(path)
		if err != nil {
			fatal("Failed to read metadata", err)
		}

		if readJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(record.Flat()); err != nil {
				fatal("Failed to encode record", err)
			}
			return
		}

		fmt.Printf("mapped fields: %s\n", strings.Join(report.Mapped, ", "))
		if len(report.Raw) > 0 {
			keys := make([]string, 0, len(report.Raw))
			for k := range report.Raw {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Printf("unrecognized keys: %s\n", strings.Join(keys, ", "))
		}
	},
}

func readMetadata(path string) (*assetkit.Record, assetkit.Report, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gltf", ".glb":
		f, err := gltf.Load(path)
		if err != nil {
			return nil, assetkit.Report{}, err
		}
		doc, found, err := f.Extract()
		if err != nil {
			return nil, assetkit.Report{}, err
		}
		if !found {
			return nil, assetkit.Report{}, fmt.Errorf("%s carries no embedded metadata", path)
		}
		r := assetkit.NewRecord()
		return r, assetkit.Ingest(r, doc), nil

	default:
		if strings.HasSuffix(strings.ToLower(path), ".metro.json") {
			doc, err := sidecar.Read(path)
			if err != nil {
				return nil, assetkit.Report{}, err
			}
			r := assetkit.NewRecord()
			return r, assetkit.Ingest(r, doc), nil
		}

		s, err := openSession(path, assetkit.WithAutoExtract(false))
		if err != nil {
			return nil, assetkit.Report{}, err
		}
		report, err := s.Service().ReadBack()
		if err != nil {
			return nil, assetkit.Report{}, err
		}
		return s.Service().Record(), report, nil
	}
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output the flat record as JSON")
}
