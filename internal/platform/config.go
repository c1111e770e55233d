package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/metro3d/assetkit/internal/json"
)

// ConfigFileName is the project config marker discovered by walking
// up from the scene directory.
const ConfigFileName = "metro.json"

// Config carries project-wide defaults applied to every freshly
// opened session before any per-file metadata is read.
type Config struct {
	// Defaults holds flat record fields (internal keys or any of
	// their accepted aliases) applied to new sessions.
	Defaults map[string]any `json:"defaults,omitempty"`

	// SidecarDir, when set, redirects derived sidecar paths into
	// this directory (relative paths resolve against the project
	// root).
	SidecarDir string `json:"sidecar_dir,omitempty"`
}

// FindProjectRoot walks upwards from startDir looking for a project
// root indicator: a metro.json file or a .git directory. It returns
// an empty string when no indicator is found.
func FindProjectRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasEntry(dir, ConfigFileName) || hasEntry(dir, ".git") {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

// LoadConfig reads a project config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// resolveConfig locates and loads the project config for a scene. An
// explicit path wins; otherwise the config is discovered from the
// scene's directory. A missing config is not an error.
func resolveConfig(sceneDir, explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := LoadConfig(explicit)
		if err != nil {
			return nil, "", err
		}
		return cfg, filepath.Dir(explicit), nil
	}

	root, err := FindProjectRoot(sceneDir)
	if err != nil || root == "" {
		return nil, "", err
	}
	path := filepath.Join(root, ConfigFileName)
	cfg, err := LoadConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// .git marked the root but no config file exists.
			return nil, root, nil
		}
		return nil, "", err
	}
	return cfg, root, nil
}

func hasEntry(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
