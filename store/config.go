package store

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"logicsim"
)

// ConfigFile is the workspace manifest name, searched for upward from the
// working directory.
const ConfigFile = "logicsim.toml"

// A Config is the decoded workspace manifest.
//
type Config struct {
	Library LibraryConfig `toml:"library"`
}

// LibraryConfig configures where chip definitions live and how new chips are
// filed.
//
type LibraryConfig struct {
	// Dir is the chip definition directory, relative to the manifest.
	Dir string `toml:"dir"`
	// Folder is the default folder for chips saved without one.
	Folder string `toml:"folder"`
}

// DefaultConfig returns the configuration used when no manifest exists.
//
func DefaultConfig() Config {
	return Config{
		Library: LibraryConfig{
			Dir:    "chips",
			Folder: logicsim.DefaultFolder,
		},
	}
}

// FindConfig walks up from startDir looking for the workspace manifest and
// returns its path, or ok=false if no manifest exists on the way to the
// filesystem root.
//
func FindConfig(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "resolve start directory")
	}
	for {
		candidate := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !os.IsNotExist(err) {
			return "", false, errors.Wrapf(err, "stat %q", candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// LoadConfig decodes the manifest at path, filling unset fields with
// defaults.
//
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse %q", path)
	}
	if cfg.Library.Dir == "" {
		cfg.Library.Dir = "chips"
	}
	if cfg.Library.Folder == "" {
		cfg.Library.Folder = logicsim.DefaultFolder
	}
	return cfg, nil
}
