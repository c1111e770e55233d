// Package platform wires the metadata mapper to its adapters: scene
// files for geometry and attached properties, sidecar files for
// standalone exports, and the project config discovered on disk. The
// public assetkit package re-exports the surface defined here.
package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/metro3d/assetkit/pkg/adapters/sceneprops"
	"github.com/metro3d/assetkit/pkg/adapters/sidecar"
	"github.com/metro3d/assetkit/pkg/core"
	"github.com/metro3d/assetkit/pkg/scene"
)

// Session binds a metadata service to the scene file it operates on.
type Session struct {
	svc         *core.Service
	scene       *scene.Scene
	cfg         *Config
	root        string
	sidecarPath string
	logger      *slog.Logger
}

// Open loads a scene file and builds a fully wired metadata session
// around it: scene-backed metrics and property store, sidecar sink,
// project defaults, and an initial metrics extraction.
func Open(scenePath string, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	sc, err := scene.Load(scenePath)
	if err != nil {
		if o.mustExist || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		base := filepath.Base(scenePath)
		sc = scene.New(strings.TrimSuffix(base, filepath.Ext(base)))
		sc.Path = scenePath
	}

	cfg, root, err := resolveConfig(filepath.Dir(scenePath), o.configPath)
	if err != nil {
		return nil, err
	}

	var metrics core.MetricsProvider = sc
	if o.metrics != nil {
		metrics = o.metrics
	}
	var store core.PropertyStore = sceneprops.NewStore(sc)
	if o.store != nil {
		store = o.store
	}

	svcOpts := []core.ServiceOption{
		core.WithLogger(logger),
		core.WithMetrics(metrics),
		core.WithStore(store),
	}
	if !o.noSidecar {
		svcOpts = append(svcOpts, core.WithSidecar(sidecar.NewWriter(sidecarBase(scenePath, cfg, root))))
	}

	s := &Session{
		svc:         core.NewService(svcOpts...),
		scene:       sc,
		cfg:         cfg,
		root:        root,
		sidecarPath: o.sidecarPath,
		logger:      logger,
	}

	if cfg != nil && len(cfg.Defaults) > 0 {
		applied := core.Apply(s.svc.Record(), cfg.Defaults)
		logger.Debug("applied project defaults", "fields", applied, "root", root)
	}

	if o.autoExtract {
		if _, err := s.svc.ExtractMetrics(); err != nil && !errors.Is(err, core.ErrNoMetrics) {
			return nil, fmt.Errorf("extracting metrics: %w", err)
		}
	}
	return s, nil
}

// Service exposes the underlying metadata service.
func (s *Session) Service() *core.Service { return s.svc }

// Scene exposes the backing scene document.
func (s *Session) Scene() *scene.Scene { return s.scene }

// Config returns the discovered project config, nil when none exists.
func (s *Session) Config() *Config { return s.cfg }

// ProjectRoot returns the discovered project root, empty when none.
func (s *Session) ProjectRoot() string { return s.root }

// Save persists the scene file back to its source path.
func (s *Session) Save() error {
	return s.scene.Save(s.scene.Path)
}

// Inject validates, writes the metadata document into the scene's
// attached properties, and persists the scene.
func (s *Session) Inject() (core.Document, error) {
	doc, err := s.svc.InjectProps()
	if err != nil {
		return nil, err
	}
	if err := s.Save(); err != nil {
		return nil, err
	}
	return doc, nil
}

// ExportSidecar validates and writes the sidecar file, honoring the
// session's explicit sidecar path when one was configured.
func (s *Session) ExportSidecar() (string, error) {
	return s.svc.ExportSidecar(s.sidecarPath)
}

// sidecarBase picks the path sidecar names derive from. A project
// sidecar_dir redirects exports into that directory, keeping the
// scene's file name.
func sidecarBase(scenePath string, cfg *Config, root string) string {
	if cfg == nil || cfg.SidecarDir == "" {
		return scenePath
	}
	dir := cfg.SidecarDir
	if !filepath.IsAbs(dir) && root != "" {
		dir = filepath.Join(root, dir)
	}
	return filepath.Join(dir, filepath.Base(scenePath))
}
