// Package config provides the repository settings loader for fanout.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/fanout/internal/core/domain"
	"go.trai.ch/fanout/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the settings file looked up in the repository root.
const DefaultFilename = "fanout.yaml"

// DefaultManifest is the per-project marker filename when the settings file
// does not override it.
const DefaultManifest = "project.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Filename string
	log      ports.Logger
}

// NewLoader creates a new Loader reading the default filename.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		Filename: DefaultFilename,
		log:      log,
	}
}

// Load reads the settings from the given working directory.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read settings file")
	}

	var file SettingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse settings file")
	}

	if file.Capacity < 1 {
		return nil, zerr.With(
			zerr.New("capacity must match the pipeline's stage slot count"),
			"capacity", file.Capacity,
		)
	}

	if file.Version == "" {
		l.log.Warn("settings file has no version; assuming current schema")
	}

	manifest := file.Manifest
	if manifest == "" {
		manifest = DefaultManifest
	}

	return &domain.Settings{
		Version:                file.Version,
		Capacity:               file.Capacity,
		AlwaysBuildAllProjects: file.AlwaysBuildAllProjects,
		Projects:               file.Projects,
		BuildAllPatterns:       file.BuildAllPatterns,
		Ignore:                 file.Ignore,
		Manifest:               manifest,
	}, nil
}
