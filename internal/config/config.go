// Package config loads the optional schemer.yaml project file from the
// schema root. Explicit CLI flags always override config values.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound);
// an absent config file is not an error condition for a build.
var ErrConfigNotFound = errors.New("config file not found")

// ProjectConfig presets build inputs for a schema tree so pipelines can
// run a bare `schemer -p dir`.
type ProjectConfig struct {
	// Output is the default output file path. Empty keeps console mode.
	Output string `yaml:"output,omitempty"`

	// MacroFiles are merged, in order, before any macro files given on
	// the command line.
	MacroFiles []string `yaml:"macro_files,omitempty"`

	// Macros are inline definitions merged after all macro files but
	// before the -m JSON argument.
	Macros map[string]string `yaml:"macros,omitempty"`
}

const ConfigFileName = "schemer.yaml"

// Load reads rootPath/schemer.yaml.
func Load(rootPath string) (*ProjectConfig, error) {
	configPath := filepath.Join(rootPath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
