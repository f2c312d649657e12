package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ghodss/yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// DEFAULT_CONFIG is looked up relative to the working directory
const DEFAULT_CONFIG = "config.yaml"

// Config holds the per-user cluster settings
type Config struct {
	Allocation string `json:"allocation" toml:"allocation"`
	Username   string `json:"username" toml:"username"`
}

// Validate reports every required key that is missing
func (c Config) Validate() error {
	var errs *multierror.Error
	if c.Allocation == "" {
		errs = multierror.Append(errs, errors.New("missing required key \"allocation\""))
	}
	if c.Username == "" {
		errs = multierror.Append(errs, errors.New("missing required key \"username\""))
	}
	return errs.ErrorOrNil()
}

// ParseConfig decodes raw as TOML when format is "toml" and as YAML
// otherwise
func ParseConfig(raw []byte, format string) (conf Config, err error) {
	switch format {
	case "toml":
		err = toml.Unmarshal(raw, &conf)
	default:
		err = yaml.Unmarshal(raw, &conf)
	}
	if err != nil {
		return conf, err
	}
	return conf, conf.Validate()
}

// LoadConfig reads filename from fs and parses it according to its
// extension
func LoadConfig(fs afero.Fs, filename string) (Config, error) {
	cont, err := afero.ReadFile(fs, filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config at path %s: %w", filename, err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	conf, err := ParseConfig(cont, format)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config at path %s: %w", filename, err)
	}
	return conf, nil
}
