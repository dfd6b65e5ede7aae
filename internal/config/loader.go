package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Darnix-a/cleanmypc/internal/platform"
)

// DefaultConfigFile is the configuration file name inside the XDG config dir.
const DefaultConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// DefaultPath returns $XDG_CONFIG_HOME/cleanmypc/config.yaml for env.
func DefaultPath(env platform.Environment) string {
	return filepath.Join(env.ConfigHome, AppName, DefaultConfigFile)
}

// Load reads the YAML (or JSON) file at path on top of the built-in
// defaults. Fields missing from the file keep their default value and
// unknown fields are ignored.
//
// On any error Load still returns a usable default configuration together
// with the error, so callers can warn and carry on.
func Load(path string, env platform.Environment) (*Config, error) {
	cfg := Default(env)

	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}

	loaded := Default(env)
	if err := yaml.Unmarshal(data, loaded); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if loaded.DownloadsPath == "" {
		loaded.DownloadsPath = cfg.DownloadsPath
	}
	loaded.normalize()

	return loaded, nil
}
