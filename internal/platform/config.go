package platform

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration the CLI reads. Every field
// has a working default; a missing config file is not an error.
type FileConfig struct {
	DataFile             string `yaml:"data_file"`
	Collation            string `yaml:"collation"`
	OverpassURL          string `yaml:"overpass_url"`
	NominatimURL         string `yaml:"nominatim_url"`
	LookupTimeoutSeconds int    `yaml:"lookup_timeout_seconds"`
}

// DefaultConfigFile is the config filename looked up in the working
// directory when no --config flag is given.
const DefaultConfigFile = "leafleter.yaml"

// DefaultDataFile is the document file used when neither flag nor config
// sets one.
const DefaultDataFile = "leafleter.json"

// DefaultFileConfig returns the built-in configuration.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		DataFile:             DefaultDataFile,
		LookupTimeoutSeconds: 30,
	}
}

// LoadFileConfig reads the YAML config at path, layering it over the
// defaults. A missing file yields the defaults; malformed YAML is an error.
func LoadFileConfig(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if cfg.LookupTimeoutSeconds <= 0 {
		cfg.LookupTimeoutSeconds = 30
	}
	return cfg, nil
}

// LookupTimeout returns the configured timeout as a duration.
func (c FileConfig) LookupTimeout() time.Duration {
	return time.Duration(c.LookupTimeoutSeconds) * time.Second
}
