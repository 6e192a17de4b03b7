package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/usermanager/internal/flagx"
)

// FileConfig is the on-disk shape of the configuration. Empty values leave
// the corresponding Config field untouched.
type FileConfig struct {
	Mode      string `json:"mode" yaml:"mode"`
	Storage   string `json:"storage" yaml:"storage"`
	LogLevel  string `json:"log_level" yaml:"log_level"`
	LogFormat string `json:"log_format" yaml:"log_format"`
	LogFile   string `json:"log_file" yaml:"log_file"`
}

// readFile decodes path, picking the format by extension (.json, .yaml, .yml).
func readFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	c := &FileConfig{}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension: %s", ext)
	}

	return c, nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseFile overlays values from the file named by -c / -config.
// Nothing happens when the flag is absent. An unreadable or malformed
// file panics, as the process cannot start with a broken configuration.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	c, err := readFile(path)
	if err != nil {
		panic(err)
	}

	setIfNotEmpty(&config.Mode, c.Mode)
	setIfNotEmpty(&config.Storage, c.Storage)
	setIfNotEmpty(&config.LogLevel, c.LogLevel)
	setIfNotEmpty(&config.LogFormat, c.LogFormat)
	setIfNotEmpty(&config.LogFile, c.LogFile)
}
