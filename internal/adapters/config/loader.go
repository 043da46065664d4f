// Package config provides the configuration loader for binit.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked for when --config is not given.
const DefaultFilename = "binit.yaml"

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct{}

// configFile represents the structure of the binit.yaml configuration file.
type configFile struct {
	ShredRuns *int   `yaml:"shredRuns"`
	Recursive *bool  `yaml:"recursive"`
	TrashDir  string `yaml:"trashDir"`
	Progress  string `yaml:"progress"`
}

// Load reads the configuration from the given path. A missing file yields
// the defaults; a malformed file or an unknown progress mode is an error.
func (l *FileLoader) Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, zerr.Wrap(err, "failed to read config file")
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, zerr.Wrap(err, "failed to parse config file")
	}

	if file.ShredRuns != nil {
		if *file.ShredRuns < 0 {
			return cfg, zerr.With(zerr.New("shredRuns must not be negative"), "shredRuns", *file.ShredRuns)
		}
		cfg.ShredRuns = *file.ShredRuns
	}
	if file.Recursive != nil {
		cfg.Recursive = *file.Recursive
	}
	if file.TrashDir != "" {
		cfg.TrashDir = file.TrashDir
	}
	if file.Progress != "" {
		switch mode := domain.ProgressMode(file.Progress); mode {
		case domain.ProgressConsole, domain.ProgressProgrock, domain.ProgressOff:
			cfg.Progress = mode
		default:
			return cfg, zerr.With(zerr.New("unknown progress mode"), "progress", file.Progress)
		}
	}

	return cfg, nil
}
