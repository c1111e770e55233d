package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/metro3d/assetkit/internal/fsutil"
	"github.com/metro3d/assetkit/internal/json"
	"github.com/metro3d/assetkit/pkg/core"
)

// LoadRecord reads a flat record file (YAML or JSON, chosen by
// extension) and ingests it into a fresh record. Alias keys and
// dotted external keys are accepted the same way embedded metadata
// is; the report lists what mapped and what did not.
func LoadRecord(path string) (*core.Record, core.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.Report{}, fmt.Errorf("reading record file: %w", err)
	}

	var doc core.Document
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, core.Report{}, fmt.Errorf("parsing record yaml %s: %w", path, err)
		}
	} else {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, core.Report{}, fmt.Errorf("parsing record json %s: %w", path, err)
		}
	}

	r := core.NewRecord()
	report := core.Ingest(r, doc)
	return r, report, nil
}

// SaveRecord writes the record as a flat snake_case document, in the
// format the extension names.
func SaveRecord(path string, r *core.Record) error {
	flat := r.Flat()

	var data []byte
	var err error
	if isYAML(path) {
		data, err = yaml.Marshal(flat)
	} else {
		data, err = json.MarshalIndent(flat, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("serializing record: %w", err)
	}

	if err := fsutil.WriteFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("writing record file %s: %w", path, err)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
