package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/metro3d/assetkit"
	"github.com/metro3d/assetkit/pkg/core"
)

// openSession opens a scene and, when --record was given, loads the
// flat record file over it. Geometry metrics are re-extracted after
// loading so technical fields always reflect the actual scene.
func openSession(scenePath string, opts ...assetkit.Option) (*assetkit.Session, error) {
	opts = append([]assetkit.Option{assetkit.WithLogger(slog.Default())}, opts...)
	s, err := assetkit.Open(scenePath, opts...)
	if err != nil {
		return nil, err
	}

	if recordArg != "" {
		r, report, err := assetkit.LoadRecord(recordArg)
		if err != nil {
			return nil, err
		}
		slog.Debug("record file loaded", "path", recordArg, "mapped", len(report.Mapped), "raw", len(report.Raw))
		s.Service().SetRecord(r)
		if _, err := s.Service().ExtractMetrics(); err != nil && !errors.Is(err, core.ErrNoMetrics) {
			return nil, err
		}
	}
	return s, nil
}

// printValidation writes field errors to stderr, one per line.
func printValidation(errs []assetkit.FieldError) {
	for _, e := range errs {
		fmt.Fprintf(os.Stderr, "invalid %s: %s\n", e.Field, e.Message)
	}
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
